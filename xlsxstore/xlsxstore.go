package xlsxstore

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/gemarathon/backend/scoring"
	"github.com/xuri/excelize/v2"
)

// Workbook layout, 1-based spreadsheet coordinates. One sheet per class:
// student names in column B, score in C, the combined class bonus in D2,
// completed sugiot in E and kartisiot in F, data starting at row 4.
const (
	colName      = 2
	colScore     = 3
	colBonus     = 4
	colSugiot    = 5
	colKartisiot = 6

	bonusCellAxis = "D2"
	dataStartRow  = 4
)

// Board is one full read of the workbook: every student row plus the
// per-class bonus and progress maps, keyed by sheet name.
type Board struct {
	Students      []scoring.Student                `json:"students"`
	ClassBonuses  map[string]float64               `json:"classBonuses"`
	ClassProgress map[string]scoring.ClassProgress `json:"classProgress"`
}

// Store reads and writes the Gemarathon workbook. The workbook file is
// the system of record; the store holds no state beyond the path and
// the class alias table, and every read opens the file fresh.
type Store struct {
	path    string
	aliases map[string]string // class label -> sheet name
	logger  *slog.Logger

	// readBonusBack verifies bonus writes; defaults to re-reading the
	// file from disk, replaceable in tests
	readBonusBack func(sheet string) (float64, error)

	// serializes writers within this process; nothing guards the file
	// against other processes (accepted last-write-wins)
	mu sync.Mutex
}

func NewStore(path string, aliases map[string]string) *Store {
	if aliases == nil {
		aliases = map[string]string{}
	}
	s := &Store{
		path:    path,
		aliases: aliases,
		logger:  slog.Default().With("module", "xlsxstore"),
	}
	s.readBonusBack = s.readBonusFromDisk
	return s
}

func (s *Store) open() (*excelize.File, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", s.path, err)
	}
	return f, nil
}

// LoadBoard reads the whole workbook. Class progress is recomputed from
// the rows on every call and never cached here.
func (s *Store) LoadBoard(ctx context.Context) (*Board, error) {
	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer closeQuietly(f, s.logger)

	board := &Board{
		Students:      []scoring.Student{},
		ClassBonuses:  map[string]float64{},
		ClassProgress: map[string]scoring.ClassProgress{},
	}

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
		}
		if len(rows) < 2 {
			continue
		}

		students := readSheetStudents(sheet, rows)
		board.Students = append(board.Students, students...)
		board.ClassBonuses[sheet] = s.readBonusCell(f, sheet)
		board.ClassProgress[sheet] = scoring.AggregateClass(sheet, students)
	}

	return board, nil
}

// readSheetStudents converts sheet rows into students. Blank-name rows
// are dropped; they are padding, not members.
func readSheetStudents(sheet string, rows [][]string) []scoring.Student {
	students := []scoring.Student{}
	for r := dataStartRow - 1; r < len(rows); r++ {
		name := strings.TrimSpace(cellAt(rows[r], colName-1))
		if name == "" {
			continue
		}
		students = append(students, scoring.Student{
			ID:                 fmt.Sprintf("sheet_%s_row_%d", sheet, r),
			Name:               name,
			Grade:              sheet,
			Score:              parseScore(cellAt(rows[r], colScore-1)),
			SugiotCompleted:    scoring.ParseItemCell(cellAt(rows[r], colSugiot-1), 1, scoring.TotalSugiot),
			KartisiotCompleted: scoring.ParseItemCell(cellAt(rows[r], colKartisiot-1), 1, scoring.TotalKartisiot),
		})
	}
	return students
}

func (s *Store) readBonusCell(f *excelize.File, sheet string) float64 {
	value, err := f.GetCellValue(sheet, bonusCellAxis)
	if err != nil {
		s.logger.Warn("failed to read bonus cell", "sheet", sheet, "error", err)
		return 0
	}
	return parseScore(value)
}

// cellAt is GetRows-safe indexing: excelize trims trailing empty cells.
func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func parseScore(cell string) float64 {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return 0
	}
	score, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0
	}
	return score
}

func closeQuietly(f *excelize.File, logger *slog.Logger) {
	if err := f.Close(); err != nil {
		logger.Warn("failed to close workbook", "error", err)
	}
}
