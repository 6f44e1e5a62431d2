package models

type PaymentStatus string

const (
	PaymentIdle       PaymentStatus = "idle"
	PaymentSubmitting PaymentStatus = "submitting"
	PaymentSucceeded  PaymentStatus = "succeeded"
	PaymentFailed     PaymentStatus = "failed"
)

// PaymentOutcome is the view state of the payment form.
type PaymentOutcome struct {
	Status  PaymentStatus `json:"status"`
	Message string        `json:"message,omitempty"`
	Err     error         `json:"-"`
}

func NewIdlePayment() PaymentOutcome {
	return PaymentOutcome{Status: PaymentIdle}
}

func NewSubmittingPayment() PaymentOutcome {
	return PaymentOutcome{Status: PaymentSubmitting}
}

func NewSucceededPayment(message string) PaymentOutcome {
	return PaymentOutcome{Status: PaymentSucceeded, Message: message}
}

func NewFailedPayment(message string, err error) PaymentOutcome {
	return PaymentOutcome{Status: PaymentFailed, Message: message, Err: err}
}

// ShouldClearForm tells the presentation layer to empty the account number
// and amount inputs. Every failure keeps them populated.
func (o PaymentOutcome) ShouldClearForm() bool {
	return o.Status == PaymentSucceeded
}
