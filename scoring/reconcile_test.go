package scoring_test

import (
	"testing"

	"github.com/gemarathon/backend/scoring"
	"github.com/stretchr/testify/assert"
)

func TestInferManualBonus(t *testing.T) {
	t.Run("Stored Minus Previous Auto", func(t *testing.T) {
		assert.Equal(t, 150.0, scoring.InferManualBonus(450, 300))
	})

	t.Run("Clamped At Zero On Drift", func(t *testing.T) {
		assert.Equal(t, 0.0, scoring.InferManualBonus(200, 300))
	})
}

func TestReconcileAutoBonus(t *testing.T) {
	t.Run("Manual Component Survives Auto Change", func(t *testing.T) {
		// stored 450 = manual 150 + auto 300; auto grows to 600
		got := scoring.ReconcileAutoBonus(450, 300, 600)
		assert.Equal(t, 750.0, got)
	})

	t.Run("Auto Shrinks Manual Stays", func(t *testing.T) {
		got := scoring.ReconcileAutoBonus(450, 300, 0)
		assert.Equal(t, 150.0, got)
	})

	t.Run("No Manual Component", func(t *testing.T) {
		got := scoring.ReconcileAutoBonus(300, 300, 600)
		assert.Equal(t, 600.0, got)
	})
}

func TestAccumulateManualBonus(t *testing.T) {
	// two entries of a then b onto zero yield a+b, never b alone
	total := scoring.AccumulateManualBonus(0, 100)
	total = scoring.AccumulateManualBonus(total, 250)
	assert.Equal(t, 350.0, total)
}

func TestRecomputeScoreFromItems(t *testing.T) {
	t.Run("Swap Item Contribution", func(t *testing.T) {
		// 50 points of which 30 from items; items now worth 70
		assert.Equal(t, 90.0, scoring.RecomputeScoreFromItems(50, 30, 70))
	})

	t.Run("Clamped At Zero", func(t *testing.T) {
		assert.Equal(t, 0.0, scoring.RecomputeScoreFromItems(20, 30, 0))
	})
}

func TestItemPoints(t *testing.T) {
	got := scoring.ItemPoints([]int{1, 2, 3}, []int{1})
	assert.Equal(t, float64(4*scoring.PointsPerItem), got)
}
