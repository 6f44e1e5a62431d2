package services

import (
	"errors"
	"fmt"

	"bitbucket.org/Amartha/go-emi-collection/internal/common"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/metrics"
	"bitbucket.org/Amartha/go-emi-collection/internal/common/validation"
	"bitbucket.org/Amartha/go-emi-collection/internal/models"
)

// toLoanAccounts turns the wire payload into records. Any missing key, rule
// violation or repeated account number rejects the whole directory.
func toLoanAccounts(payloads []models.LoanAccountPayload) ([]models.LoanAccount, error) {
	const op = "toLoanAccounts"

	records := make([]models.LoanAccount, 0, len(payloads))
	seen := make(map[string]struct{}, len(payloads))

	for i, payload := range payloads {
		if missing := payload.MissingFields(); len(missing) > 0 {
			return nil, &common.DecodeError{Op: op, Err: fmt.Errorf("record %d: missing %v", i, missing)}
		}

		record := payload.ToLoanAccount()
		if err := validation.ValidateStruct(record); err != nil {
			return nil, &common.DecodeError{Op: op, Err: fmt.Errorf("record %d: %w", i, err)}
		}

		if _, ok := seen[record.AccountNumber]; ok {
			return nil, &common.DecodeError{
				Op:  op,
				Err: fmt.Errorf("%w: %s", common.ErrDuplicateAccount, record.AccountNumber),
			}
		}
		seen[record.AccountNumber] = struct{}{}

		records = append(records, record)
	}

	return records, nil
}

// resultOf maps an error to the metrics result label.
func resultOf(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, common.ErrValidation):
		return metrics.ResultValidation
	case errors.Is(err, common.ErrBusiness):
		return metrics.ResultBusiness
	case errors.Is(err, common.ErrDecode):
		return metrics.ResultDecode
	default:
		return metrics.ResultTransport
	}
}
