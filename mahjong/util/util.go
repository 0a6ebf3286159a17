package util

// GenRange 创建一个长度为length的slice
// 值为连续的整形，第一个数为from
func GenRange[T ~int | ~uint8](length int, from T) []T {
	_range := make([]T, length)
	for i := 0; i < length; i++ {
		_range[i] = from + T(i)
	}
	return _range
}

// InSlice 判断某个值是否在切片中
func InSlice[T comparable](finder T, slice []T) bool {
	return IndexOf(finder, slice) >= 0
}

// IndexOf 查找某个值在切片中第一次出现的位置，不存在返回-1
func IndexOf[T comparable](finder T, slice []T) int {
	for i, v := range slice {
		if v == finder {
			return i
		}
	}
	return -1
}

// SliceCopy 拷贝一个切片
func SliceCopy[T any](s []T) []T {
	slice := make([]T, len(s))
	copy(slice, s)
	return slice
}

// SliceRemoveAt 返回删除下标i之后的新切片，保持原有顺序
func SliceRemoveAt[T any](s []T, i int) []T {
	return append(append(make([]T, 0, len(s)-1), s[:i]...), s[i+1:]...)
}

// SliceAppend 返回追加元素后的新切片，不修改原切片
func SliceAppend[T any](s []T, values ...T) []T {
	return append(SliceCopy(s), values...)
}
