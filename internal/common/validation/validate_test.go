package validation

import (
	"errors"
	"testing"

	"bitbucket.org/Amartha/go-emi-collection/internal/models"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStruct(t *testing.T) {
	type args struct {
		toValidate interface{}
	}
	tests := []struct {
		name      string
		args      args
		wantErr   bool
		wantCodes []string
	}{
		{
			name: "success PaymentRequest",
			args: args{
				toValidate: models.PaymentRequest{
					AccountNumber: "ACC1",
					Amount:        models.MustDecimal("500"),
				},
			},
		},
		{
			name: "zero amount PaymentRequest",
			args: args{
				toValidate: models.PaymentRequest{
					AccountNumber: "ACC1",
					Amount:        models.MustDecimal("0"),
				},
			},
			wantErr:   true,
			wantCodes: []string{"INVALID_AMOUNT"},
		},
		{
			name: "missing account and negative amount PaymentRequest",
			args: args{
				toValidate: models.PaymentRequest{
					Amount: models.MustDecimal("-1"),
				},
			},
			wantErr:   true,
			wantCodes: []string{"MISSING_FIELD", "INVALID_AMOUNT"},
		},
		{
			name: "success LoanAccount",
			args: args{
				toValidate: models.LoanAccount{
					AccountNumber:       "ACC1",
					IssueDate:           "2024-01-01",
					InterestRatePercent: models.MustDecimal("0"),
					TenureMonths:        12,
					EMIDue:              models.MustDecimal("0"),
				},
			},
		},
		{
			name: "invalid LoanAccount",
			args: args{
				toValidate: models.LoanAccount{
					AccountNumber:       "ACC1",
					IssueDate:           "2024-01-01",
					InterestRatePercent: models.MustDecimal("-0.5"),
					TenureMonths:        0,
					EMIDue:              models.MustDecimal("100"),
				},
			},
			wantErr:   true,
			wantCodes: []string{"INVALID_AMOUNT", "INVALID_VALUE"},
		},
		{
			name: "validate error not register",
			args: args{
				toValidate: struct {
					Name string `json:"name" validate:"required,email"`
				}{
					Name: "not-an-email",
				},
			},
			wantErr:   true,
			wantCodes: []string{"UNKNOWN"},
		},
		{
			name:      "invalid validation input",
			args:      args{toValidate: nil},
			wantErr:   true,
			wantCodes: []string{"UNKNOWN"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.args.toValidate)
			assert.Equal(t, tt.wantErr, err != nil)
			if !tt.wantErr {
				return
			}

			var merr *multierror.Error
			require.True(t, errors.As(err, &merr))

			var codes []string
			for _, e := range merr.Errors {
				var resp ErrorValidateResponse
				require.True(t, errors.As(e, &resp))
				codes = append(codes, resp.Code)
			}
			assert.Equal(t, tt.wantCodes, codes)
		})
	}
}

func TestValidateStruct_FieldNameFromJSONTag(t *testing.T) {
	err := ValidateStruct(models.PaymentRequest{Amount: models.MustDecimal("1")})
	require.Error(t, err)

	var merr *multierror.Error
	require.True(t, errors.As(err, &merr))
	require.Len(t, merr.Errors, 1)

	resp, ok := merr.Errors[0].(ErrorValidateResponse)
	require.True(t, ok)
	assert.Equal(t, "account_number", resp.Field)
	assert.Equal(t, "field is missing", resp.Message)
}
