package scoring

import "sort"

// ClassSummaries projects one summary row per distinct grade: the sum of
// member scores plus the class bonus (zero when absent). Summaries are
// ordered by total score descending; ties keep encounter order.
func ClassSummaries(students []Student, classBonuses map[string]float64) []ClassSummary {
	order := []string{}
	scores := map[string]float64{}
	counts := map[string]int{}

	for _, student := range students {
		if _, ok := counts[student.Grade]; !ok {
			order = append(order, student.Grade)
		}
		scores[student.Grade] += student.Score
		counts[student.Grade]++
	}

	summaries := make([]ClassSummary, 0, len(order))
	for _, grade := range order {
		bonus := classBonuses[grade]
		summaries = append(summaries, ClassSummary{
			Grade:        grade,
			TotalScore:   scores[grade] + bonus,
			StudentCount: counts[grade],
			ClassBonus:   bonus,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].TotalScore > summaries[j].TotalScore
	})
	return summaries
}

// TopStudents returns the highest-scoring students, at most limit of
// them. The sort is stable, so equal scores keep their original order.
func TopStudents(students []Student, limit int) []Student {
	sorted := make([]Student, len(students))
	copy(sorted, students)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score > sorted[j].Score
	})
	if limit < len(sorted) {
		sorted = sorted[:limit]
	}
	return sorted
}
