package scoring_test

import (
	"testing"

	"github.com/gemarathon/backend/scoring"
	"github.com/stretchr/testify/assert"
)

func TestAggregateClass(t *testing.T) {
	students := []scoring.Student{
		{Name: "אבי", SugiotCompleted: []int{1, 2, 5}, KartisiotCompleted: []int{1}},
		{Name: "בני", SugiotCompleted: []int{2, 5}, KartisiotCompleted: []int{1, 2}},
		{Name: "", SugiotCompleted: []int{1, 2, 3}}, // blank row, excluded
	}

	progress := scoring.AggregateClass("ח1", students)

	assert.Equal(t, "ח1", progress.Grade)
	assert.Equal(t, 2, progress.StudentCount)
	assert.Equal(t, 1, progress.SugiotCounts[0]) // sugia 1
	assert.Equal(t, 2, progress.SugiotCounts[1]) // sugia 2
	assert.Equal(t, 2, progress.SugiotCounts[4]) // sugia 5
	assert.Equal(t, 2, progress.KartisiotCounts[0])
	assert.Equal(t, 1, progress.KartisiotCounts[1])
}

func TestAutoBonus(t *testing.T) {
	t.Run("Full Class Completion", func(t *testing.T) {
		// 3 students, everyone completed sugia 5 and kartisia 1
		students := []scoring.Student{
			{Name: "a", SugiotCompleted: []int{5}, KartisiotCompleted: []int{1}},
			{Name: "b", SugiotCompleted: []int{5, 6}, KartisiotCompleted: []int{1}},
			{Name: "c", SugiotCompleted: []int{5}, KartisiotCompleted: []int{1, 2}},
		}
		progress := scoring.AggregateClass("10A", students)
		assert.Equal(t, float64(2*scoring.BonusForFullClass), progress.AutoBonus)
	})

	t.Run("One Student Missing Blocks Bonus", func(t *testing.T) {
		students := []scoring.Student{
			{Name: "a", SugiotCompleted: []int{5}},
			{Name: "b", SugiotCompleted: []int{5}},
			{Name: "c"},
		}
		progress := scoring.AggregateClass("10A", students)
		assert.Zero(t, progress.AutoBonus)
	})

	t.Run("Completing Last Item Adds Exactly One Bonus", func(t *testing.T) {
		before := []scoring.Student{
			{Name: "a", SugiotCompleted: []int{5}},
			{Name: "b", SugiotCompleted: []int{5}},
			{Name: "c"},
		}
		after := []scoring.Student{
			{Name: "a", SugiotCompleted: []int{5}},
			{Name: "b", SugiotCompleted: []int{5}},
			{Name: "c", SugiotCompleted: []int{5}},
		}
		diff := scoring.AggregateClass("10A", after).AutoBonus -
			scoring.AggregateClass("10A", before).AutoBonus
		assert.Equal(t, float64(scoring.BonusForFullClass), diff)
	})

	t.Run("Zero Students Never Bonus", func(t *testing.T) {
		progress := scoring.AggregateClass("ריק", nil)
		assert.Zero(t, progress.AutoBonus)
		// no 0 == 0 false positive on any item
		for _, count := range progress.SugiotCounts {
			assert.Zero(t, count)
		}
	})
}
