package services

import (
	"bitbucket.org/Amartha/go-emi-collection/internal/common/idgenerator"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/metrics"
	"bitbucket.org/Amartha/go-emi-collection/internal/config"
	"bitbucket.org/Amartha/go-emi-collection/internal/repositories"
)

type Services struct {
	conf config.Config

	collectionAPI repositories.CollectionAPI
	idgenerator   idgenerator.Generator
	metrics       metrics.Metrics

	LoanDirectory *loanDirectory
	Payment       *paymentSubmission
	Controller    Controller
}

// New wires the directory and payment services around one collection API
// client. metrics may be nil.
func New(
	conf config.Config,
	collectionAPI repositories.CollectionAPI,
	idgenerator idgenerator.Generator,
	metrics metrics.Metrics,
) *Services {
	srv := &Services{
		conf:          conf,
		collectionAPI: collectionAPI,
		idgenerator:   idgenerator,
		metrics:       metrics,
	}

	srv.LoanDirectory = newLoanDirectory(srv)
	srv.Payment = newPaymentSubmission(srv)
	if conf.Payment.RefreshDirectoryOnSuccess {
		srv.Payment.refresher = srv.LoanDirectory
	}
	srv.Controller = &controller{directory: srv.LoanDirectory, payment: srv.Payment}

	return srv
}
