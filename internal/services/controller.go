package services

//go:generate mockgen -source=controller.go -destination=mock/controller.go -package=mock

import (
	"context"

	"bitbucket.org/Amartha/go-emi-collection/internal/models"
)

// Controller is everything the presentation layer may do. It only reads state
// through copies and never mutates it.
type Controller interface {
	LoadDirectory(ctx context.Context) models.LoanDirectoryState
	CurrentDirectoryState() models.LoanDirectoryState
	SubmitPayment(ctx context.Context, accountNumber, amountText string) models.PaymentOutcome
	CurrentPaymentOutcome() models.PaymentOutcome
	ResetPaymentForm()

	// Teardown resets both the directory and the payment form, as when the
	// owning screen goes away.
	Teardown()
}

type controller struct {
	directory LoanDirectoryService
	payment   PaymentSubmissionService
}

var _ Controller = (*controller)(nil)

func (c *controller) LoadDirectory(ctx context.Context) models.LoanDirectoryState {
	return c.directory.Load(ctx)
}

func (c *controller) CurrentDirectoryState() models.LoanDirectoryState {
	return c.directory.State()
}

func (c *controller) SubmitPayment(ctx context.Context, accountNumber, amountText string) models.PaymentOutcome {
	return c.payment.Submit(ctx, accountNumber, amountText)
}

func (c *controller) CurrentPaymentOutcome() models.PaymentOutcome {
	return c.payment.Outcome()
}

func (c *controller) ResetPaymentForm() {
	c.payment.Reset()
}

func (c *controller) Teardown() {
	c.payment.Reset()
	c.directory.Reset()
}
