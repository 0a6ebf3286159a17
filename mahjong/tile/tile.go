package tile

import "github.com/fatih/color"

const (
	Total            = 96
	Kinds            = 24
	Categories       = 8
	CopiesPerKind    = 4
	KindsPerCategory = 3
	TilesPerCategory = CopiesPerKind * KindsPerCategory
)

var faces = [Kinds]string{
	"上", "大", "人", "孔", "乙", "己", "化", "三", "千", "七", "十", "士",
	"尔", "小", "生", "八", "九", "子", "佳", "作", "仁", "福", "禄", "寿",
}

var wildcardPaint = color.New(color.FgHiRed, color.Bold).SprintfFunc()

// Tile is one of the 96 physical tiles, four copies per kind.
type Tile byte

// Of returns the lowest tile of a kind.
func Of(kind int) Tile {
	return Tile(kind * CopiesPerKind)
}

func (t Tile) Kind() int {
	return int(t) / CopiesPerKind
}

func (t Tile) Category() int {
	return int(t) / TilesPerCategory
}

func (t Tile) Valid() bool {
	return int(t) < Total
}

func (t Tile) String() string {
	return faces[t.Kind()]
}

// CategoryOf returns the category a kind belongs to.
func CategoryOf(kind int) int {
	return kind / KindsPerCategory
}

// Paint renders a tile, highlighting tiles of the wildcard's kind.
func Paint(t, wildcard Tile) string {
	if t.Kind() == wildcard.Kind() {
		return wildcardPaint("%s", t.String())
	}
	return t.String()
}

// Count buckets tiles by kind.
func Count(tiles []Tile) [Kinds]int {
	var counts [Kinds]int
	for _, t := range tiles {
		counts[t.Kind()]++
	}
	return counts
}

// Ints converts tiles to plain ids for the wire, where a byte slice would be base64 encoded.
func Ints(tiles []Tile) []int {
	ret := make([]int, len(tiles))
	for i, t := range tiles {
		ret[i] = int(t)
	}
	return ret
}

func FromInts(ids []int) []Tile {
	ret := make([]Tile, len(ids))
	for i, id := range ids {
		ret[i] = Tile(id)
	}
	return ret
}
