package xlsxstore_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/gemarathon/backend/xlsxstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type testRow struct {
	name      string
	score     float64
	sugiot    string
	kartisiot string
}

type testSheet struct {
	name  string
	bonus float64
	rows  []testRow
}

func writeTestWorkbook(t *testing.T, sheets []testSheet) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gemarathon.xlsx")
	f := excelize.NewFile()
	for i, sheet := range sheets {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", sheet.name))
		} else {
			_, err := f.NewSheet(sheet.name)
			require.NoError(t, err)
		}
		if sheet.bonus != 0 {
			require.NoError(t, f.SetCellValue(sheet.name, "D2", sheet.bonus))
		}
		for r, row := range sheet.rows {
			axisRow := 4 + r
			require.NoError(t, f.SetCellValue(sheet.name, cell("B", axisRow), row.name))
			require.NoError(t, f.SetCellValue(sheet.name, cell("C", axisRow), row.score))
			if row.sugiot != "" {
				require.NoError(t, f.SetCellValue(sheet.name, cell("E", axisRow), row.sugiot))
			}
			if row.kartisiot != "" {
				require.NoError(t, f.SetCellValue(sheet.name, cell("F", axisRow), row.kartisiot))
			}
		}
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func cell(col string, row int) string {
	name, _ := excelize.JoinCellName(col, row)
	return name
}

func TestLoadBoard(t *testing.T) {
	path := writeTestWorkbook(t, []testSheet{
		{
			name:  "ח1",
			bonus: 300,
			rows: []testRow{
				{name: "דוד כהן", score: 120, sugiot: "1,2,5", kartisiot: "1"},
				{name: "", score: 999}, // blank row stays out
				{name: "יוסי לוי", score: 70, sugiot: "2,5"},
			},
		},
		{
			name: "ט2",
			rows: []testRow{
				{name: "אבי מזרחי", score: 40},
			},
		},
	})
	store := xlsxstore.NewStore(path, nil)

	board, err := store.LoadBoard(context.Background())
	require.NoError(t, err)

	require.Len(t, board.Students, 3)
	assert.Equal(t, "דוד כהן", board.Students[0].Name)
	assert.Equal(t, "ח1", board.Students[0].Grade)
	assert.Equal(t, 120.0, board.Students[0].Score)
	assert.ElementsMatch(t, []int{1, 2, 5}, board.Students[0].SugiotCompleted)

	assert.Equal(t, 300.0, board.ClassBonuses["ח1"])
	assert.Equal(t, 0.0, board.ClassBonuses["ט2"])

	progress := board.ClassProgress["ח1"]
	assert.Equal(t, 2, progress.StudentCount)
	assert.Equal(t, 2, progress.SugiotCounts[1]) // sugia 2 done by both
	assert.Equal(t, 1, progress.SugiotCounts[0])
}

func TestAddPoints(t *testing.T) {
	path := writeTestWorkbook(t, []testSheet{
		{name: "ח1", rows: []testRow{{name: "דוד כהן", score: 50}}},
	})
	store := xlsxstore.NewStore(path, nil)

	res, err := store.AddPoints(context.Background(), "דוד כהן", "ח1", 20)
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.OldScore)
	assert.Equal(t, 70.0, res.NewScore)
	assert.Equal(t, "ח1", res.SheetName)

	// persisted
	board, err := store.LoadBoard(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 70.0, board.Students[0].Score)
}

func TestAddPointsSwappedNameMatches(t *testing.T) {
	path := writeTestWorkbook(t, []testSheet{
		{name: "ח1", rows: []testRow{{name: "כהן דוד", score: 10}}},
	})
	store := xlsxstore.NewStore(path, nil)

	res, err := store.AddPoints(context.Background(), "דוד כהן", "ח1", 5)
	require.NoError(t, err)
	assert.Equal(t, 15.0, res.NewScore)
}

func TestAddPointsStudentNotFound(t *testing.T) {
	path := writeTestWorkbook(t, []testSheet{
		{name: "ח1", rows: []testRow{{name: "דוד כהן", score: 50}}},
	})
	store := xlsxstore.NewStore(path, nil)

	_, err := store.AddPoints(context.Background(), "אין כזה", "ח1", 20)
	var nfErr *xlsxstore.StudentNotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Contains(t, nfErr.TriedNames, "אין כזה")
	assert.Contains(t, nfErr.TriedNames, "כזה אין")
	assert.Contains(t, nfErr.AvailableStudents, "דוד כהן")
}

func TestAddPointsClassNotFound(t *testing.T) {
	path := writeTestWorkbook(t, []testSheet{
		{name: "ח1", rows: []testRow{{name: "דוד כהן", score: 50}}},
	})
	store := xlsxstore.NewStore(path, nil)

	_, err := store.AddPoints(context.Background(), "דוד כהן", "xyz", 20)
	var cnfErr *xlsxstore.ClassNotFoundError
	require.ErrorAs(t, err, &cnfErr)
	assert.Contains(t, cnfErr.Available, "ח1")
}

func TestAddPointsBatchAllOrNothing(t *testing.T) {
	path := writeTestWorkbook(t, []testSheet{
		{name: "ח1", rows: []testRow{
			{name: "דוד כהן", score: 50},
			{name: "יוסי לוי", score: 30},
		}},
	})
	store := xlsxstore.NewStore(path, nil)
	ctx := context.Background()

	t.Run("One Missing Fails Whole Batch", func(t *testing.T) {
		_, err := store.AddPointsBatch(ctx, []xlsxstore.StudentRef{
			{Name: "דוד כהן", Grade: "ח1"},
			{Name: "לא קיים", Grade: "ח1"},
		}, 20)
		require.Error(t, err)

		board, err := store.LoadBoard(ctx)
		require.NoError(t, err)
		assert.Equal(t, 50.0, board.Students[0].Score) // untouched
		assert.Equal(t, 30.0, board.Students[1].Score)
	})

	t.Run("All Resolved Applies To All", func(t *testing.T) {
		results, err := store.AddPointsBatch(ctx, []xlsxstore.StudentRef{
			{Name: "דוד כהן", Grade: "ח1"},
			{Name: "יוסי לוי", Grade: "ח1"},
		}, 20)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, 70.0, results[0].NewScore)
		assert.Equal(t, 50.0, results[1].NewScore)
	})
}

func TestSetCompletion(t *testing.T) {
	path := writeTestWorkbook(t, []testSheet{
		{
			name:  "ח1",
			bonus: 100, // pure manual: no item fully completed yet
			rows: []testRow{
				{name: "דוד כהן", score: 50, sugiot: "1,2,3"},
				{name: "יוסי לוי", score: 60, sugiot: "5"},
			},
		},
	})
	store := xlsxstore.NewStore(path, nil)
	ctx := context.Background()

	// items go from 3 (30 pts) to 6 (60 pts); sugia 5 becomes fully
	// completed, so auto bonus goes 0 -> 300 and manual 100 survives
	res, err := store.SetCompletion(ctx, "דוד כהן", "ח1",
		[]int{1, 2, 3, 4, 5}, []int{1})
	require.NoError(t, err)

	assert.Equal(t, 50.0, res.OldScore)
	assert.Equal(t, 80.0, res.NewScore) // 50 - 30 + 60
	assert.Equal(t, 400.0, res.ClassBonusUpdated)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, res.SugiotCompleted)

	board, err := store.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 80.0, board.Students[0].Score)
	assert.Equal(t, 400.0, board.ClassBonuses["ח1"])
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5}, board.Students[0].SugiotCompleted)
}

func TestSetCompletionDeduplicatesAndClampsRange(t *testing.T) {
	path := writeTestWorkbook(t, []testSheet{
		{name: "ח1", rows: []testRow{{name: "דוד כהן", score: 0}}},
	})
	store := xlsxstore.NewStore(path, nil)

	res, err := store.SetCompletion(context.Background(), "דוד כהן", "ח1",
		[]int{2, 2, 40, 1}, []int{12, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1}, res.SugiotCompleted)
	assert.Equal(t, []int{3}, res.KartisiotCompleted)
	assert.Equal(t, 30.0, res.NewScore) // 3 items x 10
}

func TestAddClassBonusAccumulates(t *testing.T) {
	path := writeTestWorkbook(t, []testSheet{
		{name: "ח1", rows: []testRow{{name: "דוד כהן", score: 50}}},
	})
	store := xlsxstore.NewStore(path, nil)
	ctx := context.Background()

	first, err := store.AddClassBonus(ctx, "ח1", 100)
	require.NoError(t, err)
	assert.Equal(t, 100.0, first.TotalBonus)
	assert.Equal(t, 0.0, first.PreviousTotal)

	second, err := store.AddClassBonus(ctx, "ח1", 250)
	require.NoError(t, err)
	assert.Equal(t, 350.0, second.TotalBonus) // a+b, never b alone

	board, err := store.LoadBoard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 350.0, board.ClassBonuses["ח1"])
}

func TestAddClassBonusClassNotFound(t *testing.T) {
	path := writeTestWorkbook(t, []testSheet{
		{name: "ח1", rows: []testRow{{name: "דוד כהן", score: 50}}},
	})
	store := xlsxstore.NewStore(path, nil)

	_, err := store.AddClassBonus(context.Background(), "zzz", 100)
	var cnfErr *xlsxstore.ClassNotFoundError
	require.ErrorAs(t, err, &cnfErr)
	assert.Equal(t, "zzz", cnfErr.Grade)
}

func TestAliasTableResolution(t *testing.T) {
	path := writeTestWorkbook(t, []testSheet{
		{name: "כיתה ח1", rows: []testRow{{name: "דוד כהן", score: 50}}},
	})
	store := xlsxstore.NewStore(path, map[string]string{"שמיניסטים": "כיתה ח1"})

	res, err := store.AddPoints(context.Background(), "דוד כהן", "שמיניסטים", 10)
	require.NoError(t, err)
	assert.Equal(t, "כיתה ח1", res.SheetName)
}
