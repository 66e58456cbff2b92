package boardsrvc

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gemarathon/backend/histstore"
	"github.com/gemarathon/backend/scoring"
	"github.com/gemarathon/backend/snapcache"
	"github.com/gemarathon/backend/xlsxstore"
)

const topDropoutLimit = 10

type boardStore interface {
	LoadBoard(ctx context.Context) (*xlsxstore.Board, error)
	AddPoints(ctx context.Context, name, grade string, points float64) (*xlsxstore.PointsResult, error)
	AddPointsBatch(ctx context.Context, targets []xlsxstore.StudentRef, points float64) ([]xlsxstore.PointsResult, error)
	SetCompletion(ctx context.Context, name, grade string, sugiot, kartisiot []int) (*xlsxstore.CompletionResult, error)
	AddClassBonus(ctx context.Context, grade string, bonus float64) (*xlsxstore.BonusResult, error)
}

type historyStore interface {
	Append(ctx context.Context, studentName, reason, details string) (*histstore.Entry, error)
	List(ctx context.Context, limit int) ([]histstore.Entry, error)
}

type workbookBackup interface {
	BackupWorkbook(ctx context.Context, path string) (string, error)
	ListSnapshots(ctx context.Context) ([]string, error)
}

// BoardView is the full dashboard payload: the raw board plus the
// projections every page renders from it.
type BoardView struct {
	Students       []scoring.Student                `json:"students"`
	ClassBonuses   map[string]float64               `json:"classBonuses"`
	ClassProgress  map[string]scoring.ClassProgress `json:"classProgress"`
	ClassSummaries []scoring.ClassSummary           `json:"classSummaries"`
	TopStudents    []scoring.Student                `json:"topStudents"`
}

// BoardService orchestrates the workbook store, the reconciliation
// engine, the history feed and the snapshot cache.
type BoardService struct {
	logger *slog.Logger

	store   boardStore
	history historyStore
	cache   snapcache.Cache

	// optional: nil disables workbook snapshot uploads
	backup       workbookBackup
	workbookPath string

	mu sync.Mutex // serializes mutations and their top-10 bookkeeping
}

func New(store boardStore, history historyStore, cache snapcache.Cache) *BoardService {
	if cache == nil {
		cache = snapcache.NewMemory()
	}
	return &BoardService{
		logger:  slog.Default().With("module", "boardsrvc"),
		store:   store,
		history: history,
		cache:   cache,
	}
}

// WithBackup enables workbook snapshot uploads after successful writes.
func (s *BoardService) WithBackup(backup workbookBackup, workbookPath string) *BoardService {
	s.backup = backup
	s.workbookPath = workbookPath
	return s
}

// GetBoard reads the current board. A failed read degrades to the last
// snapshot that was read successfully, and to an empty board when there
// has never been one; the read path never returns an error.
func (s *BoardService) GetBoard(ctx context.Context, topLimit int) *BoardView {
	if topLimit <= 0 {
		topLimit = topDropoutLimit
	}

	board, err := s.store.LoadBoard(ctx)
	if err != nil {
		s.logger.Error("board read failed, serving last known good", "error", err)
		board = s.lastKnownGood(ctx)
	} else {
		s.putSnapshot(ctx, board)
	}

	return s.project(board, topLimit)
}

// History returns the notification feed, newest first.
func (s *BoardService) History(ctx context.Context, limit int) ([]histstore.Entry, error) {
	entries, err := s.history.List(ctx, limit)
	if err != nil {
		return nil, newErrTransport().SetDebug(err)
	}
	return entries, nil
}

// Snapshots lists the workbook backup keys in the configured bucket.
func (s *BoardService) Snapshots(ctx context.Context) ([]string, error) {
	if s.backup == nil {
		return []string{}, nil
	}
	keys, err := s.backup.ListSnapshots(ctx)
	if err != nil {
		return nil, newErrTransport().SetDebug(err)
	}
	return keys, nil
}

// StartRefresher re-reads the board at a fixed interval so the snapshot
// cache stays warm between user actions. Stops when ctx is done.
func (s *BoardService) StartRefresher(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				board, err := s.store.LoadBoard(ctx)
				if err != nil {
					s.logger.Warn("background refresh failed", "error", err)
					continue
				}
				s.putSnapshot(ctx, board)
			}
		}
	}()
}

func (s *BoardService) project(board *xlsxstore.Board, topLimit int) *BoardView {
	if board == nil {
		board = &xlsxstore.Board{
			Students:      []scoring.Student{},
			ClassBonuses:  map[string]float64{},
			ClassProgress: map[string]scoring.ClassProgress{},
		}
	}
	return &BoardView{
		Students:       board.Students,
		ClassBonuses:   board.ClassBonuses,
		ClassProgress:  board.ClassProgress,
		ClassSummaries: scoring.ClassSummaries(board.Students, board.ClassBonuses),
		TopStudents:    scoring.TopStudents(board.Students, topLimit),
	}
}

// putSnapshot stores a fresh read as the last known good board. A read
// that came back empty is suppressed while a non-empty snapshot exists:
// wiping a populated board with a transient empty result would zero out
// still-pending local state on every consumer.
func (s *BoardService) putSnapshot(ctx context.Context, board *xlsxstore.Board) {
	if len(board.Students) == 0 {
		if cached := s.lastKnownGood(ctx); cached != nil && len(cached.Students) > 0 {
			s.logger.Warn("suppressing empty refresh over non-empty snapshot")
			return
		}
	}
	if err := s.cache.Put(ctx, board); err != nil {
		s.logger.Warn("failed to store board snapshot", "error", err)
	}
}

func (s *BoardService) lastKnownGood(ctx context.Context) *xlsxstore.Board {
	board, err := s.cache.Get(ctx)
	if err != nil {
		s.logger.Warn("failed to read board snapshot", "error", err)
		return nil
	}
	return board
}
