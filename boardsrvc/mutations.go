package boardsrvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gemarathon/backend/histstore"
	"github.com/gemarathon/backend/logger"
	"github.com/gemarathon/backend/scoring"
	"github.com/gemarathon/backend/srvcerror"
	"github.com/gemarathon/backend/xlsxstore"
)

// AddPoints adds points to one student and records the change in the
// notification feed.
func (s *BoardService) AddPoints(ctx context.Context, name, grade string, points float64) (*xlsxstore.PointsResult, error) {
	name = strings.TrimSpace(name)
	grade = strings.TrimSpace(grade)
	if name == "" {
		return nil, newErrValidation("שם תלמיד חסר")
	}
	if grade == "" {
		return nil, newErrValidation("כיתה חסרה")
	}
	if points == 0 {
		return nil, newErrValidation("מספר נקודות חייב להיות שונה מאפס")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.topBefore(ctx)

	ctx = logger.WithGrade(ctx, grade)
	res, err := s.store.AddPoints(ctx, name, grade, points)
	if err != nil {
		return nil, s.mapStoreError(err)
	}

	s.recordPoints(ctx, res.Student, points)
	s.afterWrite(ctx, before)
	return res, nil
}

// AddPointsBatch adds the same number of points to every target. The
// write is all-or-nothing: one unresolvable target fails the batch with
// no cell modified.
func (s *BoardService) AddPointsBatch(ctx context.Context, targets []xlsxstore.StudentRef, points float64) ([]xlsxstore.PointsResult, error) {
	if len(targets) == 0 {
		return nil, newErrValidation("רשימת תלמידים ריקה")
	}
	if points == 0 {
		return nil, newErrValidation("מספר נקודות חייב להיות שונה מאפס")
	}
	for _, t := range targets {
		if strings.TrimSpace(t.Name) == "" || strings.TrimSpace(t.Grade) == "" {
			return nil, newErrValidation("שם תלמיד או כיתה חסרים באחת הרשומות")
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.topBefore(ctx)

	results, err := s.store.AddPointsBatch(ctx, targets, points)
	if err != nil {
		return nil, s.mapStoreError(err)
	}

	for _, res := range results {
		s.recordPoints(ctx, res.Student, points)
	}
	s.afterWrite(ctx, before)
	return results, nil
}

// UpdateCompletion replaces a student's completed sugiot and kartisiot
// lists, recomputes their score from the item delta and reconciles the
// class auto-bonus.
func (s *BoardService) UpdateCompletion(ctx context.Context, name, grade string, sugiot, kartisiot []int) (*xlsxstore.CompletionResult, error) {
	name = strings.TrimSpace(name)
	grade = strings.TrimSpace(grade)
	if name == "" {
		return nil, newErrValidation("שם תלמיד חסר")
	}
	if grade == "" {
		return nil, newErrValidation("כיתה חסרה")
	}
	for _, n := range sugiot {
		if n < 1 || n > scoring.TotalSugiot {
			return nil, newErrValidation(fmt.Sprintf("מספר סוגיה לא חוקי: %d", n))
		}
	}
	for _, n := range kartisiot {
		if n < 1 || n > scoring.TotalKartisiot {
			return nil, newErrValidation(fmt.Sprintf("מספר כרטיסיה לא חוקי: %d", n))
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.topBefore(ctx)

	ctx = logger.WithGrade(ctx, grade)
	res, err := s.store.SetCompletion(ctx, name, grade, sugiot, kartisiot)
	if err != nil {
		return nil, s.mapStoreError(err)
	}

	if delta := res.NewScore - res.OldScore; delta != 0 {
		s.recordPoints(ctx, res.Student, delta)
	}
	s.afterWrite(ctx, before)
	return res, nil
}

// AddClassBonus adds a manual bonus on top of whatever is already in
// the class bonus cell, auto-bonus included.
func (s *BoardService) AddClassBonus(ctx context.Context, grade string, bonus float64) (*xlsxstore.BonusResult, error) {
	grade = strings.TrimSpace(grade)
	if grade == "" {
		return nil, newErrValidation("כיתה חסרה")
	}
	if bonus == 0 {
		return nil, newErrValidation("בונוס חייב להיות שונה מאפס")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = logger.WithGrade(ctx, grade)
	res, err := s.store.AddClassBonus(ctx, grade, bonus)
	if err != nil {
		return nil, s.mapStoreError(err)
	}

	// a bonus grant cannot move students between top-10 slots, but the
	// cached snapshot must pick up the new class total
	s.afterWrite(ctx, nil)
	return res, nil
}

func (s *BoardService) recordPoints(ctx context.Context, name string, points float64) {
	details := fmt.Sprintf("%+g נקודות", points)
	if _, err := s.history.Append(ctx, name, histstore.ReasonAddedPoints, details); err != nil {
		s.logger.Warn("failed to record history entry", "student", name, "error", err)
	}
}

// topBefore captures the top-10 right before a write so afterWrite can
// detect who fell out of it.
func (s *BoardService) topBefore(ctx context.Context) []scoring.Student {
	board, err := s.store.LoadBoard(ctx)
	if err != nil {
		s.logger.Warn("failed to read board before write", "error", err)
		return nil
	}
	return scoring.TopStudents(board.Students, topDropoutLimit)
}

// afterWrite refreshes the snapshot, records top-10 dropouts and uploads
// a workbook backup. All of it is best effort.
func (s *BoardService) afterWrite(ctx context.Context, before []scoring.Student) {
	board, err := s.store.LoadBoard(ctx)
	if err != nil {
		s.logger.Warn("failed to re-read board after write", "error", err)
		s.backupWorkbook(ctx)
		return
	}
	s.putSnapshot(ctx, board)

	after := scoring.TopStudents(board.Students, topDropoutLimit)
	for _, name := range droppedFromTop(before, after) {
		if _, err := s.history.Append(ctx, name, histstore.ReasonDroppedTop10, ""); err != nil {
			s.logger.Warn("failed to record dropout entry", "student", name, "error", err)
		}
	}

	s.backupWorkbook(ctx)
}

func droppedFromTop(before, after []scoring.Student) []string {
	stillIn := make(map[string]bool, len(after))
	for _, st := range after {
		stillIn[st.ID] = true
	}
	var dropped []string
	for _, st := range before {
		if !stillIn[st.ID] {
			dropped = append(dropped, st.Name)
		}
	}
	return dropped
}

func (s *BoardService) backupWorkbook(ctx context.Context) {
	if s.backup == nil {
		return
	}
	key, err := s.backup.BackupWorkbook(ctx, s.workbookPath)
	if err != nil {
		s.logger.Warn("workbook backup failed", "error", err)
		return
	}
	s.logger.Info("workbook backed up", "key", key)
}

// mapStoreError turns typed workbook errors into service errors while
// keeping the lookup diagnostics available to the transport layer.
func (s *BoardService) mapStoreError(err error) error {
	var classErr *xlsxstore.ClassNotFoundError
	if errors.As(err, &classErr) {
		return newErrClassNotFound(classErr.Grade).SetDebug(err)
	}
	var studentErr *xlsxstore.StudentNotFoundError
	if errors.As(err, &studentErr) {
		return newErrStudentNotFound(studentErr.Name).SetDebug(err)
	}
	var srvcErr *srvcerror.Error
	if errors.As(err, &srvcErr) {
		return srvcErr
	}
	return newErrTransport().SetDebug(err)
}
