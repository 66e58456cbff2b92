package xlsxstore

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newBonusWorkbook(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "ח1")
	require.NoError(t, f.SetCellValue("ח1", "D2", 100))
	require.NoError(t, f.SetCellValue("ח1", "B4", "דנה לוי"))
	require.NoError(t, f.SetCellValue("ח1", "C4", 50))

	path := filepath.Join(t.TempDir(), "board.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestBonusWriteRetriesOnceOnMismatch(t *testing.T) {
	store := NewStore(newBonusWorkbook(t), nil)

	diskRead := store.readBonusBack
	reads := 0
	store.readBonusBack = func(sheet string) (float64, error) {
		reads++
		if reads == 1 {
			// simulate a stale read so the write gets one retry
			return -1, nil
		}
		return diskRead(sheet)
	}

	res, err := store.AddClassBonus(context.Background(), "ח1", 250)
	require.NoError(t, err)
	assert.Equal(t, 2, reads)
	assert.Equal(t, float64(350), res.TotalBonus)

	persisted, err := diskRead("ח1")
	require.NoError(t, err)
	assert.Equal(t, float64(350), persisted)
}

func TestBonusWriteGivesUpAfterSecondMismatch(t *testing.T) {
	store := NewStore(newBonusWorkbook(t), nil)

	reads := 0
	store.readBonusBack = func(sheet string) (float64, error) {
		reads++
		return -1, nil
	}

	res, err := store.AddClassBonus(context.Background(), "ח1", 250)
	require.NoError(t, err)
	assert.Equal(t, 2, reads)
	assert.Equal(t, float64(350), res.TotalBonus)
}

func TestBonusWriteVerificationReadFailureDoesNotFail(t *testing.T) {
	store := NewStore(newBonusWorkbook(t), nil)

	store.readBonusBack = func(sheet string) (float64, error) {
		return 0, errors.New("file locked")
	}

	_, err := store.AddClassBonus(context.Background(), "ח1", 250)
	require.NoError(t, err)
}
