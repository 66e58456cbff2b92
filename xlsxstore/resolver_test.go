package xlsxstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSheet(t *testing.T) {
	store := NewStore("unused.xlsx", map[string]string{"י2": "יא 2"})

	t.Run("Alias Table Wins", func(t *testing.T) {
		sheet, err := store.resolveSheet([]string{"יא 2", "י2 ישן"}, "י2")
		require.Nil(t, err)
		assert.Equal(t, "יא 2", sheet)
	})

	t.Run("Exact Name", func(t *testing.T) {
		sheet, err := store.resolveSheet([]string{"ח1", "ח2"}, "ח2")
		require.Nil(t, err)
		assert.Equal(t, "ח2", sheet)
	})

	t.Run("Legacy Numeral Letter Swap", func(t *testing.T) {
		sheet, err := store.resolveSheet([]string{"ח3"}, "3ה")
		require.Nil(t, err)
		assert.Equal(t, "ח3", sheet)
	})

	t.Run("Kita Prefix Variant", func(t *testing.T) {
		sheet, err := store.resolveSheet([]string{"כיתה ט1"}, "ט1")
		require.Nil(t, err)
		assert.Equal(t, "כיתה ט1", sheet)
	})

	t.Run("Case And Space Insensitive Containment", func(t *testing.T) {
		sheet, err := store.resolveSheet([]string{"Class 10A"}, "10a")
		require.Nil(t, err)
		assert.Equal(t, "Class 10A", sheet)
	})

	t.Run("First And Last Character Agreement", func(t *testing.T) {
		sheet, err := store.resolveSheet([]string{"1 נ"}, "1xנ")
		require.Nil(t, err)
		assert.Equal(t, "1 נ", sheet)
	})

	t.Run("Not Found Reports Available", func(t *testing.T) {
		_, err := store.resolveSheet([]string{"ח1", "ח2"}, "xyz")
		require.NotNil(t, err)
		assert.Equal(t, []string{"ח1", "ח2"}, err.Available)
	})
}

func TestNameVariants(t *testing.T) {
	variants := nameVariants(" דוד כהן ")
	assert.Equal(t, []string{
		"דוד כהן",
		"כהן דוד",
		"דוד-כהן",
		"כהן-דוד",
	}, variants)

	// single-word names get no variants
	assert.Equal(t, []string{"דוד"}, nameVariants("דוד"))
}

func TestFindStudentRow(t *testing.T) {
	rows := [][]string{
		{}, {}, {}, // header rows 1-3
		{"", "דוד כהן", "50"},
		{"", "", ""},
		{"", "לוי יוסי", "30"},
	}

	t.Run("Direct Match", func(t *testing.T) {
		row, err := findStudentRow(rows, "דוד כהן", "ח1")
		require.Nil(t, err)
		assert.Equal(t, 3, row)
	})

	t.Run("Swapped Match", func(t *testing.T) {
		row, err := findStudentRow(rows, "יוסי לוי", "ח1")
		require.Nil(t, err)
		assert.Equal(t, 5, row)
	})

	t.Run("Not Found Diagnostics", func(t *testing.T) {
		_, err := findStudentRow(rows, "משה רבנו", "ח1")
		require.NotNil(t, err)
		assert.Len(t, err.TriedNames, 4)
		assert.Equal(t, []string{"דוד כהן", "לוי יוסי"}, err.AvailableStudents)
	})
}
