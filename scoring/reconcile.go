package scoring

// The stored class bonus is a single scalar that conflates the bonus an
// administrator entered by hand with the automatically computed
// full-completion bonus. The split is never persisted, so every write
// that must keep the manual part alive first reconstructs it from the
// stored total and the automatic bonus that was in effect when the total
// was last written.

// InferManualBonus reconstructs the manual component of a stored total.
// Clamped at zero: drift can make the previous auto bonus exceed the
// stored total, and a negative manual bonus is never real.
func InferManualBonus(storedTotal, previousAutoBonus float64) float64 {
	manual := storedTotal - previousAutoBonus
	if manual < 0 {
		return 0
	}
	return manual
}

// ReconcileAutoBonus produces the new stored total after the automatic
// bonus changed (a student's completion data was updated) while the
// manual component stays whatever it was.
func ReconcileAutoBonus(storedTotal, previousAutoBonus, newAutoBonus float64) float64 {
	return InferManualBonus(storedTotal, previousAutoBonus) + newAutoBonus
}

// AccumulateManualBonus applies a manual admin entry to the stored total.
// Entries accumulate: entering 100 twice leaves the class 200 richer,
// the second entry never overwrites the first.
func AccumulateManualBonus(storedTotal, delta float64) float64 {
	return storedTotal + delta
}
