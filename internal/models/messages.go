package models

// User facing messages rendered by the presentation layer.
const (
	MessageFillAllFields      = "Please fill all fields"
	MessageInvalidAmount      = "Please enter a valid amount"
	MessagePaymentSucceeded   = "Payment successful"
	MessagePaymentFailed      = "Payment failed"
	MessageServerNotReachable = "Server not reachable"
	MessageUnableToFetchLoans = "Unable to fetch loan details"
)
