package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		others   []error
	}{
		{
			name:     "validation",
			err:      &ValidationError{Field: "amount", Err: ErrUnparseableAmount},
			sentinel: ErrValidation,
			others:   []error{ErrTransport, ErrBusiness, ErrDecode},
		},
		{
			name:     "transport",
			err:      &TransportError{Op: "GetCustomers", Err: context.DeadlineExceeded},
			sentinel: ErrTransport,
			others:   []error{ErrValidation, ErrBusiness, ErrDecode},
		},
		{
			name:     "business",
			err:      &BusinessError{StatusCode: 400, Message: "Insufficient balance"},
			sentinel: ErrBusiness,
			others:   []error{ErrValidation, ErrTransport, ErrDecode},
		},
		{
			name:     "decode",
			err:      &DecodeError{Op: "GetCustomers", Err: ErrNullDirectory},
			sentinel: ErrDecode,
			others:   []error{ErrValidation, ErrTransport, ErrBusiness},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("wrapped: %w", tt.err)
			assert.ErrorIs(t, wrapped, tt.sentinel)
			for _, other := range tt.others {
				assert.False(t, errors.Is(wrapped, other))
			}
		})
	}
}

func TestTypedErrors_Unwrap(t *testing.T) {
	err := &TransportError{Op: "SubmitPayment", Err: context.DeadlineExceeded}
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	verr := &ValidationError{Field: "account_number", Err: ErrEmptyField}
	assert.ErrorIs(t, verr, ErrEmptyField)
	assert.Equal(t, "validation failed: account_number: required field is empty", verr.Error())

	var berr *BusinessError
	assert.True(t, errors.As(fmt.Errorf("x: %w", &BusinessError{StatusCode: 422}), &berr))
	assert.Equal(t, 422, berr.StatusCode)
	assert.Equal(t, "request declined by collection service: status 422", berr.Error())
}
