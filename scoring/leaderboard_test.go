package scoring_test

import (
	"testing"

	"github.com/gemarathon/backend/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassSummaries(t *testing.T) {
	students := []scoring.Student{
		{Name: "a", Grade: "ח1", Score: 100},
		{Name: "b", Grade: "ח2", Score: 300},
		{Name: "c", Grade: "ח1", Score: 50},
	}
	bonuses := map[string]float64{"ח1": 300}

	summaries := scoring.ClassSummaries(students, bonuses)
	require.Len(t, summaries, 2)

	// ח1: 100+50+300 bonus = 450, beats ח2's 300
	assert.Equal(t, "ח1", summaries[0].Grade)
	assert.Equal(t, 450.0, summaries[0].TotalScore)
	assert.Equal(t, 2, summaries[0].StudentCount)
	assert.Equal(t, 300.0, summaries[0].ClassBonus)

	assert.Equal(t, "ח2", summaries[1].Grade)
	assert.Equal(t, 300.0, summaries[1].TotalScore)
	assert.Zero(t, summaries[1].ClassBonus)
}

func TestClassSummariesTiesKeepEncounterOrder(t *testing.T) {
	students := []scoring.Student{
		{Name: "a", Grade: "ט1", Score: 200},
		{Name: "b", Grade: "ט2", Score: 200},
	}
	summaries := scoring.ClassSummaries(students, nil)
	require.Len(t, summaries, 2)
	assert.Equal(t, "ט1", summaries[0].Grade)
	assert.Equal(t, "ט2", summaries[1].Grade)
}

func TestTopStudents(t *testing.T) {
	students := []scoring.Student{
		{ID: "1", Name: "a", Score: 10},
		{ID: "2", Name: "b", Score: 30},
		{ID: "3", Name: "c", Score: 30},
		{ID: "4", Name: "d", Score: 5},
	}

	t.Run("Stable Order On Ties", func(t *testing.T) {
		top := scoring.TopStudents(students, 3)
		require.Len(t, top, 3)
		assert.Equal(t, "2", top[0].ID)
		assert.Equal(t, "3", top[1].ID)
		assert.Equal(t, "1", top[2].ID)
	})

	t.Run("Limit Exceeds Count", func(t *testing.T) {
		top := scoring.TopStudents(students, 10)
		assert.Len(t, top, 4)
	})

	t.Run("Input Not Mutated", func(t *testing.T) {
		scoring.TopStudents(students, 2)
		assert.Equal(t, "1", students[0].ID)
	})
}
