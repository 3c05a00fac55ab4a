package engine

// AgeBracket - a named age range used to derive a life-stage tag
type AgeBracket struct {
	Label string
	Lower int
	Upper int
}

// Declaration order is the tie break: when two brackets sit at the same
// boundary distance the earlier one wins.
var ageBrackets = []AgeBracket{
	{Label: "Elder", Lower: 51, Upper: 120},
	{Label: "Adult", Lower: 36, Upper: 50},
	{Label: "Young Adult", Lower: 21, Upper: 35},
	{Label: "Adolescent", Lower: 0, Upper: 20},
}

// AgeBracketTag maps an age to the bracket whose nearest boundary is closest.
func AgeBracketTag(age int) string {
	best := ageBrackets[0]
	bestDistance := best.boundaryDistance(age)
	for _, bracket := range ageBrackets[1:] {
		if d := bracket.boundaryDistance(age); d < bestDistance {
			best = bracket
			bestDistance = d
		}
	}
	return best.Label
}

// boundaryDistance is the minimum absolute difference between the age and
// either edge of the bracket.
func (b AgeBracket) boundaryDistance(age int) int {
	lower := abs(age - b.Lower)
	upper := abs(age - b.Upper)
	if lower < upper {
		return lower
	}
	return upper
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
