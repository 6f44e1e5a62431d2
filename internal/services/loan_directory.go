package services

import (
	"context"
	"sync"
	"sync/atomic"

	"bitbucket.org/Amartha/go-emi-collection/internal/common/metrics"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
	"bitbucket.org/Amartha/go-emi-collection/internal/models"
	"bitbucket.org/Amartha/go-emi-collection/internal/monitoring"
)

type LoanDirectoryService interface {
	// Load fetches the whole directory and returns the resulting state. When a
	// newer Load or a Reset was issued meanwhile, the fetched result is dropped
	// and the current state is returned instead.
	Load(ctx context.Context) models.LoanDirectoryState

	// State returns a copy of the current state.
	State() models.LoanDirectoryState

	// Reset returns the directory to Idle and drops any in-flight result.
	Reset()
}

type loanDirectory struct {
	srv *Services

	mu    sync.RWMutex
	state models.LoanDirectoryState

	// seq is the id of the latest issued request; only its result is applied
	seq atomic.Uint64
}

var _ LoanDirectoryService = (*loanDirectory)(nil)

func newLoanDirectory(srv *Services) *loanDirectory {
	return &loanDirectory{
		srv:   srv,
		state: models.NewIdleDirectory(),
	}
}

func (s *loanDirectory) Load(ctx context.Context) (state models.LoanDirectoryState) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(state.Err)) }()

	seq := s.seq.Add(1)
	s.apply(seq, models.NewLoadingDirectory())

	next := s.fetch(ctx)
	if !s.apply(seq, next) {
		s.record(metrics.ResultStale)
		xlog.Info(ctx, "[LOAN-DIRECTORY]",
			xlog.String("message", "dropped stale directory response"),
			xlog.Any("requestSeq", seq),
			xlog.String("status", string(next.Status)))
		return s.State()
	}

	s.record(resultOf(next.Err))
	return next.Clone()
}

func (s *loanDirectory) fetch(ctx context.Context) models.LoanDirectoryState {
	payloads, err := s.srv.collectionAPI.GetCustomers(ctx)
	if err != nil {
		return models.NewFailedDirectory(models.MessageUnableToFetchLoans, err)
	}

	records, err := toLoanAccounts(payloads)
	if err != nil {
		return models.NewFailedDirectory(models.MessageUnableToFetchLoans, err)
	}

	return models.NewLoadedDirectory(records)
}

// apply stores next when seq is still the latest issued request.
func (s *loanDirectory) apply(seq uint64, next models.LoanDirectoryState) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq.Load() {
		return false
	}
	s.state = next
	return true
}

func (s *loanDirectory) State() models.LoanDirectoryState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Clone()
}

func (s *loanDirectory) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq.Add(1)
	s.state = models.NewIdleDirectory()
}

func (s *loanDirectory) record(result string) {
	if s.srv.metrics == nil {
		return
	}
	s.srv.metrics.GetCollectionPrometheus().RecordDirectoryLoad(result)
}
