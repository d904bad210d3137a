package core

// Points awarded per removal batch.
const (
	PointsThree = 100
	PointsFour  = 200
	PointsFive  = 400 // Flat for five or more
)

// Score returns the points for removing matchCount tokens in one batch.
func Score(matchCount int) int {
	switch {
	case matchCount < MinRun:
		return 0
	case matchCount == MinRun:
		return PointsThree
	case matchCount == 4:
		return PointsFour
	default:
		return PointsFive
	}
}
