package models

// PaymentRequest is the body of POST /payments. Amount is serialized as a
// JSON number.
type PaymentRequest struct {
	AccountNumber string  `json:"account_number" validate:"required"`
	Amount        Decimal `json:"amount" validate:"decimalGreaterThan=0"`
}

// PaymentResponse is what came back from POST /payments, whatever the status.
// Message is empty when the body was absent, undecodable or had no message.
type PaymentResponse struct {
	StatusCode int
	Message    string
}

func (r PaymentResponse) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

type PaymentResponseBody struct {
	Message *string `json:"message"`
}
