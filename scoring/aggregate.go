package scoring

// AggregateClass counts, for every catalog item, how many of the given
// students completed it. Students with a blank name are skipped: they
// represent empty spreadsheet rows, not members of the class. The result
// is always computed fresh from the rows it is given.
func AggregateClass(grade string, students []Student) ClassProgress {
	progress := ClassProgress{
		Grade:           grade,
		SugiotCounts:    make([]int, TotalSugiot),
		KartisiotCounts: make([]int, TotalKartisiot),
	}

	for _, student := range students {
		if student.Name == "" {
			continue
		}
		progress.StudentCount++
		for _, n := range student.SugiotCompleted {
			if n >= 1 && n <= TotalSugiot {
				progress.SugiotCounts[n-1]++
			}
		}
		for _, n := range student.KartisiotCompleted {
			if n >= 1 && n <= TotalKartisiot {
				progress.KartisiotCounts[n-1]++
			}
		}
	}

	progress.AutoBonus = AutoBonus(progress)
	return progress
}

// AutoBonus converts class progress into the automatic bonus: every item
// completed by the whole class is worth BonusForFullClass. A class with
// zero students never yields a bonus, so an all-zero count column does
// not read as "fully completed".
func AutoBonus(progress ClassProgress) float64 {
	if progress.StudentCount == 0 {
		return 0
	}
	full := 0
	for _, count := range progress.SugiotCounts {
		if count == progress.StudentCount {
			full++
		}
	}
	for _, count := range progress.KartisiotCounts {
		if count == progress.StudentCount {
			full++
		}
	}
	return float64(full * BonusForFullClass)
}
