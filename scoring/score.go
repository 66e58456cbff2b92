package scoring

// ApplyPoints adds a point delta to a student's running score. Direct
// admin entries are not clamped; the sheet is allowed to go wherever the
// administrator sends it.
func ApplyPoints(oldScore float64, points float64) float64 {
	return oldScore + points
}

// ItemPoints is the score contribution of a completed-item set.
func ItemPoints(sugiot, kartisiot []int) float64 {
	return float64((len(sugiot) + len(kartisiot)) * PointsPerItem)
}

// RecomputeScoreFromItems rescores a student after their completion
// lists changed: the old item contribution is backed out and the new one
// applied, keeping whatever direct point entries the score also carries.
// Clamped at zero.
func RecomputeScoreFromItems(oldScore, oldItemPoints, newItemPoints float64) float64 {
	newScore := oldScore - oldItemPoints + newItemPoints
	if newScore < 0 {
		return 0
	}
	return newScore
}
