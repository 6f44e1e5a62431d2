package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

type (
	// PaymentFormRequest carries the two form inputs as typed by the collector.
	// Amount is text on purpose, parsing it is part of submission.
	PaymentFormRequest struct {
		AccountNumber string     `json:"account_number" form:"account_number" example:"ACC1"`
		Amount        FormAmount `json:"amount" form:"amount" example:"500"`
	}

	// FormAmount is the raw amount input. It accepts a JSON string or a JSON
	// number and keeps the digits exactly as sent; null is empty.
	FormAmount string

	LoanDirectoryResponse struct {
		Kind    string          `json:"kind" example:"loanDirectory"`
		Status  DirectoryStatus `json:"status" example:"loaded"`
		Records []LoanAccount   `json:"records"`
		Reason  string          `json:"reason,omitempty"`
	}

	PaymentOutcomeResponse struct {
		Kind      string        `json:"kind" example:"paymentOutcome"`
		Status    PaymentStatus `json:"status" example:"succeeded"`
		Message   string        `json:"message,omitempty"`
		ClearForm bool          `json:"clear_form"`
	}
)

func (s LoanDirectoryState) ToResponse() LoanDirectoryResponse {
	records := s.Records
	if records == nil {
		records = []LoanAccount{}
	}

	return LoanDirectoryResponse{
		Kind:    "loanDirectory",
		Status:  s.Status,
		Records: records,
		Reason:  s.Reason,
	}
}

func (o PaymentOutcome) ToResponse() PaymentOutcomeResponse {
	return PaymentOutcomeResponse{
		Kind:      "paymentOutcome",
		Status:    o.Status,
		Message:   o.Message,
		ClearForm: o.ShouldClearForm(),
	}
}

func (a *FormAmount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*a = FormAmount(text)
		return nil
	}

	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("amount must be a string or a number: %w", err)
	}
	*a = FormAmount(number.String())
	return nil
}

// UnmarshalParam lets echo bind the amount from form and query values.
func (a *FormAmount) UnmarshalParam(param string) error {
	*a = FormAmount(param)
	return nil
}
