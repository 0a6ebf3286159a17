package belief

const (
	// claimPool approximates the tiles a seat may claim from during one round.
	claimPool = 38

	sameKindHorizon = 6
	sameKindMask    = 1<<0 | 1<<3
)

// ProbOf estimates the chance of drawing the kind within skip draws of this seat.
func (b Belief) ProbOf(kind, skip int) float32 {
	if b.remaining[kind] == 0 {
		return 0
	}
	var acc float32
	for mask := 0; mask < 1<<skip; mask++ {
		if mask&1 == 0 {
			continue
		}
		if p := b.sequence(kind, mask, skip); p != 1 {
			acc += p
		}
	}
	return acc
}

// SameKindProbOf estimates the chance of drawing the kind on both of the next two own draws
// over a six-draw horizon.
func (b Belief) SameKindProbOf(kind int) float32 {
	if b.remaining[kind] == 0 {
		return 0
	}
	var acc float32
	for mask := 0; mask < 1<<sameKindHorizon; mask++ {
		if mask&sameKindMask != sameKindMask {
			continue
		}
		if p := b.sequence(kind, mask, sameKindHorizon); p != 1 {
			acc += p
		}
	}
	return acc
}

// ClaimProbOf approximates picking the kind up from one of the two neighbours' discards.
func (b Belief) ClaimProbOf(kind int) float32 {
	return 2 * float32(b.remaining[kind]) / float32(b.total+claimPool)
}

// sequence walks the mask from its highest bit down, a set bit being a draw of the kind.
func (b Belief) sequence(kind, mask, steps int) float32 {
	n := float32(b.remaining[kind])
	remaining := float32(b.total)
	p := float32(1)
	for k := steps - 1; k >= 0; k-- {
		if n == 0 || remaining <= 0 {
			return 0
		}
		if mask&(1<<k) != 0 {
			p *= n / remaining
			n--
		} else {
			p *= 1 - n/remaining
		}
		remaining--
	}
	return p
}
