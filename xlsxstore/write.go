package xlsxstore

import (
	"context"
	"fmt"
	"math"

	"github.com/gemarathon/backend/logger"
	"github.com/gemarathon/backend/scoring"
	"github.com/xuri/excelize/v2"
)

type StudentRef struct {
	Name  string `json:"name"`
	Grade string `json:"grade"`
}

type PointsResult struct {
	Student     string  `json:"student"`
	Grade       string  `json:"grade"`
	SheetName   string  `json:"sheetName"`
	OldScore    float64 `json:"oldScore"`
	NewScore    float64 `json:"newScore"`
	PointsAdded float64 `json:"pointsAdded"`
}

type CompletionResult struct {
	Student            string  `json:"student"`
	Grade              string  `json:"grade"`
	SheetName          string  `json:"sheetName"`
	SugiotCompleted    []int   `json:"sugiotCompleted"`
	KartisiotCompleted []int   `json:"kartisiotCompleted"`
	OldScore           float64 `json:"oldScore"`
	NewScore           float64 `json:"newScore"`
	ClassBonusUpdated  float64 `json:"classBonusUpdated"`
}

type BonusResult struct {
	Grade         string  `json:"grade"`
	SheetName     string  `json:"sheetName"`
	ManualBonus   float64 `json:"manualBonus"`
	AutoBonus     float64 `json:"autoBonus"`
	TotalBonus    float64 `json:"totalBonus"`
	PreviousTotal float64 `json:"previousTotal"`
}

// AddPoints adds a point delta to one student's score cell.
func (s *Store) AddPoints(ctx context.Context, name, grade string, points float64) (*PointsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer closeQuietly(f, s.logger)

	sheet, row, oldScore, err := s.locateStudent(f, name, grade)
	if err != nil {
		return nil, err
	}

	newScore := scoring.ApplyPoints(oldScore, points)
	if err := setCell(f, sheet, colScore, row+1, newScore); err != nil {
		return nil, err
	}
	if err := f.Save(); err != nil {
		return nil, fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.FromContext(ctx).Info("points added",
		"student", name, "sheet", sheet, "points", points, "newScore", newScore)

	return &PointsResult{
		Student:     name,
		Grade:       grade,
		SheetName:   sheet,
		OldScore:    oldScore,
		NewScore:    newScore,
		PointsAdded: points,
	}, nil
}

// AddPointsBatch applies one point delta to several students in a
// single save. Every target is resolved before anything is written, so
// an unresolvable student fails the whole batch with no cell changed.
func (s *Store) AddPointsBatch(ctx context.Context, targets []StudentRef, points float64) ([]PointsResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer closeQuietly(f, s.logger)

	type pendingWrite struct {
		sheet    string
		row      int
		oldScore float64
	}
	pending := make([]pendingWrite, 0, len(targets))
	for _, target := range targets {
		sheet, row, oldScore, err := s.locateStudent(f, target.Name, target.Grade)
		if err != nil {
			return nil, err
		}
		pending = append(pending, pendingWrite{sheet: sheet, row: row, oldScore: oldScore})
	}

	results := make([]PointsResult, 0, len(targets))
	for i, write := range pending {
		newScore := scoring.ApplyPoints(write.oldScore, points)
		if err := setCell(f, write.sheet, colScore, write.row+1, newScore); err != nil {
			return nil, err
		}
		results = append(results, PointsResult{
			Student:     targets[i].Name,
			Grade:       targets[i].Grade,
			SheetName:   write.sheet,
			OldScore:    write.oldScore,
			NewScore:    newScore,
			PointsAdded: points,
		})
	}
	if err := f.Save(); err != nil {
		return nil, fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.FromContext(ctx).Info("batch points added",
		"students", len(targets), "points", points)
	return results, nil
}

// SetCompletion rewrites a student's completion lists, rescores the
// student from item counts, and reconciles the class bonus cell: the
// manual component inferred against the pre-update automatic bonus is
// preserved while the automatic part is recomputed from the new data.
func (s *Store) SetCompletion(ctx context.Context, name, grade string, sugiot, kartisiot []int) (*CompletionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer closeQuietly(f, s.logger)

	sheets := f.GetSheetList()
	sheet, cerr := s.resolveSheet(sheets, grade)
	if cerr != nil {
		return nil, cerr
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	row, serr := findStudentRow(rows, name, grade)
	if serr != nil {
		return nil, serr
	}

	newSugiot := scoring.NormalizeItems(sugiot, 1, scoring.TotalSugiot)
	newKartisiot := scoring.NormalizeItems(kartisiot, 1, scoring.TotalKartisiot)

	oldScore := parseScore(cellAt(rows[row], colScore-1))
	oldSugiot := scoring.ParseItemCell(cellAt(rows[row], colSugiot-1), 1, scoring.TotalSugiot)
	oldKartisiot := scoring.ParseItemCell(cellAt(rows[row], colKartisiot-1), 1, scoring.TotalKartisiot)

	newScore := scoring.RecomputeScoreFromItems(
		oldScore,
		scoring.ItemPoints(oldSugiot, oldKartisiot),
		scoring.ItemPoints(newSugiot, newKartisiot))

	// automatic bonus in effect before this update, from the rows as read
	oldAuto := scoring.AggregateClass(sheet, readSheetStudents(sheet, rows)).AutoBonus
	storedBonus := s.readBonusCell(f, sheet)

	if err := setCell(f, sheet, colScore, row+1, newScore); err != nil {
		return nil, err
	}
	if err := setCell(f, sheet, colSugiot, row+1, scoring.FormatItemCell(newSugiot)); err != nil {
		return nil, err
	}
	if err := setCell(f, sheet, colKartisiot, row+1, scoring.FormatItemCell(newKartisiot)); err != nil {
		return nil, err
	}

	// recompute against the sheet as it now stands
	rowsAfter, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to re-read sheet %s: %w", sheet, err)
	}
	newAuto := scoring.AggregateClass(sheet, readSheetStudents(sheet, rowsAfter)).AutoBonus
	newTotal := scoring.ReconcileAutoBonus(storedBonus, oldAuto, newAuto)

	if err := s.writeBonusVerified(ctx, f, sheet, newTotal); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("completion updated",
		"student", name, "sheet", sheet,
		"sugiot", len(newSugiot), "kartisiot", len(newKartisiot),
		"newScore", newScore, "classBonus", newTotal)

	return &CompletionResult{
		Student:            name,
		Grade:              grade,
		SheetName:          sheet,
		SugiotCompleted:    newSugiot,
		KartisiotCompleted: newKartisiot,
		OldScore:           oldScore,
		NewScore:           newScore,
		ClassBonusUpdated:  newTotal,
	}, nil
}

// AddClassBonus applies a manual bonus entry. Entries accumulate onto
// the stored total; the automatic component is reported back for the
// client cache but not touched.
func (s *Store) AddClassBonus(ctx context.Context, grade string, bonus float64) (*BonusResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := s.open()
	if err != nil {
		return nil, err
	}
	defer closeQuietly(f, s.logger)

	sheet, cerr := s.resolveSheet(f.GetSheetList(), grade)
	if cerr != nil {
		return nil, cerr
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	autoBonus := scoring.AggregateClass(sheet, readSheetStudents(sheet, rows)).AutoBonus

	stored := s.readBonusCell(f, sheet)
	total := scoring.AccumulateManualBonus(stored, bonus)

	if err := s.writeBonusVerified(ctx, f, sheet, total); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("class bonus added",
		"sheet", sheet, "delta", bonus, "total", total)

	return &BonusResult{
		Grade:         grade,
		SheetName:     sheet,
		ManualBonus:   bonus,
		AutoBonus:     autoBonus,
		TotalBonus:    total,
		PreviousTotal: stored,
	}, nil
}

// locateStudent resolves the sheet and row of one student and returns
// the current score. The caller holds the store lock.
func (s *Store) locateStudent(f *excelize.File, name, grade string) (string, int, float64, error) {
	sheet, cerr := s.resolveSheet(f.GetSheetList(), grade)
	if cerr != nil {
		return "", 0, 0, cerr
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return "", 0, 0, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	row, serr := findStudentRow(rows, name, grade)
	if serr != nil {
		return "", 0, 0, serr
	}
	return sheet, row, parseScore(cellAt(rows[row], colScore-1)), nil
}

// writeBonusVerified writes the bonus cell, saves, and reads the value
// back from disk. A mismatch triggers one rewrite; a second mismatch is
// logged as a warning and the write is treated as done.
func (s *Store) writeBonusVerified(ctx context.Context, f *excelize.File, sheet string, total float64) error {
	log := logger.FromContext(ctx)

	for attempt := 0; attempt < 2; attempt++ {
		if err := f.SetCellValue(sheet, bonusCellAxis, total); err != nil {
			return fmt.Errorf("failed to set bonus cell on sheet %s: %w", sheet, err)
		}
		if err := f.Save(); err != nil {
			return fmt.Errorf("failed to save workbook: %w", err)
		}

		readBack, err := s.readBonusBack(sheet)
		if err != nil {
			log.Warn("bonus write verification read failed", "sheet", sheet, "error", err)
			return nil
		}
		if math.Abs(readBack-total) < 0.01 {
			return nil
		}
		log.Warn("bonus write verification mismatch",
			"sheet", sheet, "expected", total, "got", readBack, "attempt", attempt+1)
	}
	return nil
}

func (s *Store) readBonusFromDisk(sheet string) (float64, error) {
	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return 0, err
	}
	defer closeQuietly(f, s.logger)
	value, err := f.GetCellValue(sheet, bonusCellAxis)
	if err != nil {
		return 0, err
	}
	return parseScore(value), nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to build cell axis: %w", err)
	}
	if err := f.SetCellValue(sheet, axis, value); err != nil {
		return fmt.Errorf("failed to set cell %s on sheet %s: %w", axis, sheet, err)
	}
	return nil
}
