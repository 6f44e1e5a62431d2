package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"bitbucket.org/Amartha/go-emi-collection/internal/common"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/metrics"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/validation"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/xlog/ctxdata"
	"bitbucket.org/Amartha/go-emi-collection/internal/models"
	"bitbucket.org/Amartha/go-emi-collection/internal/monitoring"
)

const attemptIDPrefix = "PAY"

type PaymentSubmissionService interface {
	// Submit validates the form input and, when valid, posts one payment. The
	// returned outcome is also the new current outcome unless a newer Submit
	// or a Reset was issued while this one was in flight.
	Submit(ctx context.Context, accountNumber, amountText string) models.PaymentOutcome

	Outcome() models.PaymentOutcome

	// Reset returns the form to Idle and drops any in-flight result.
	Reset()
}

// DirectoryRefresher reloads the loan directory after a confirmed payment.
type DirectoryRefresher interface {
	Load(ctx context.Context) models.LoanDirectoryState
}

type paymentSubmission struct {
	srv       *Services
	refresher DirectoryRefresher

	mu      sync.RWMutex
	outcome models.PaymentOutcome
	seq     atomic.Uint64
}

var _ PaymentSubmissionService = (*paymentSubmission)(nil)

func newPaymentSubmission(srv *Services) *paymentSubmission {
	return &paymentSubmission{
		srv:     srv,
		outcome: models.NewIdlePayment(),
	}
}

func (s *paymentSubmission) Submit(ctx context.Context, accountNumber, amountText string) (outcome models.PaymentOutcome) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(outcome.Err)) }()

	req, err := newPaymentRequest(accountNumber, amountText)
	if err != nil {
		outcome = models.NewFailedPayment(validationMessage(err), err)
		s.set(outcome)
		s.record(metrics.ResultValidation)
		return outcome
	}

	attemptID := s.srv.idgenerator.Generate(attemptIDPrefix)
	if ctxdata.GetCorrelationId(ctx) == "" {
		ctx = ctxdata.WithCorrelationId(ctx, attemptID)
	}
	logFields := []xlog.Field{
		xlog.String("attemptId", attemptID),
		xlog.String("accountNumber", req.AccountNumber),
		xlog.String("amount", req.Amount.String()),
	}

	seq := s.seq.Add(1)
	s.apply(seq, models.NewSubmittingPayment())
	xlog.Info(ctx, "[PAYMENT]", append(logFields, xlog.String("message", "submitting payment"))...)

	next := s.send(ctx, req)
	if !s.apply(seq, next) {
		s.record(metrics.ResultStale)
		xlog.Info(ctx, "[PAYMENT]", append(logFields,
			xlog.String("message", "dropped stale payment response"),
			xlog.String("status", string(next.Status)))...)
		return s.Outcome()
	}
	s.record(resultOf(next.Err))

	if next.Status == models.PaymentSucceeded && s.refresher != nil {
		directory := s.refresher.Load(ctx)
		xlog.Info(ctx, "[PAYMENT]", append(logFields,
			xlog.String("message", "directory refreshed after payment"),
			xlog.String("directoryStatus", string(directory.Status)))...)
	}

	return next
}

func (s *paymentSubmission) send(ctx context.Context, req models.PaymentRequest) models.PaymentOutcome {
	res, err := s.srv.collectionAPI.SubmitPayment(ctx, req)
	if err != nil {
		return models.NewFailedPayment(models.MessageServerNotReachable, err)
	}

	if res.IsSuccess() {
		return models.NewSucceededPayment(messageOr(res.Message, models.MessagePaymentSucceeded))
	}

	return models.NewFailedPayment(
		messageOr(res.Message, models.MessagePaymentFailed),
		&common.BusinessError{StatusCode: res.StatusCode, Message: res.Message},
	)
}

// newPaymentRequest never touches the network. Every error is a
// *common.ValidationError.
func newPaymentRequest(accountNumber, amountText string) (models.PaymentRequest, error) {
	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		return models.PaymentRequest{}, &common.ValidationError{Field: "account_number", Err: common.ErrEmptyField}
	}

	amount, err := common.ParseAmount(amountText)
	if err != nil {
		return models.PaymentRequest{}, &common.ValidationError{Field: "amount", Err: err}
	}

	req := models.PaymentRequest{
		AccountNumber: accountNumber,
		Amount:        models.NewDecimalFromExternal(amount),
	}
	if err = validation.ValidateStruct(req); err != nil {
		return models.PaymentRequest{}, &common.ValidationError{
			Field: "amount",
			Err:   fmt.Errorf("%w: %v", common.ErrInvalidAmount, err),
		}
	}

	return req, nil
}

func validationMessage(err error) string {
	if errors.Is(err, common.ErrInvalidAmount) {
		return models.MessageInvalidAmount
	}
	return models.MessageFillAllFields
}

func messageOr(message, fallback string) string {
	if strings.TrimSpace(message) == "" {
		return fallback
	}
	return message
}

func (s *paymentSubmission) apply(seq uint64, next models.PaymentOutcome) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq.Load() {
		return false
	}
	s.outcome = next
	return true
}

// set stores a local outcome without touching the request sequence, so a
// rejected form does not invalidate a payment already in flight.
func (s *paymentSubmission) set(next models.PaymentOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.outcome = next
}

func (s *paymentSubmission) Outcome() models.PaymentOutcome {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.outcome
}

func (s *paymentSubmission) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq.Add(1)
	s.outcome = models.NewIdlePayment()
}

func (s *paymentSubmission) record(result string) {
	if s.srv.metrics == nil {
		return
	}
	s.srv.metrics.GetCollectionPrometheus().RecordPaymentSubmission(result)
}
