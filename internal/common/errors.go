package common

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = errors.New("validation failed")
	ErrTransport  = errors.New("collection service not reachable")
	ErrBusiness   = errors.New("request declined by collection service")
	ErrDecode     = errors.New("unexpected response shape")

	ErrEmptyField            = errors.New("required field is empty")
	ErrInvalidAmount         = errors.New("amount must be greater than zero")
	ErrUnparseableAmount     = errors.New("amount is not a number")
	ErrDuplicateAccount      = errors.New("duplicate account number in directory")
	ErrNullDirectory         = errors.New("directory body is null")
	ErrUnexpectedStatus      = errors.New("unexpected http status")
	ErrUnsupportedHTTPMethod = errors.New("unsupported http method")
)

// ValidationError is a local, pre-network rejection of user input.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%v: %v", ErrValidation, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrValidation, e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// TransportError means no usable response was received.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// BusinessError means the service responded and declined the operation.
// Message is empty when the response carried none.
type BusinessError struct {
	StatusCode int
	Message    string
}

func (e *BusinessError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%v: status %d", ErrBusiness, e.StatusCode)
	}
	return fmt.Sprintf("%v: status %d: %s", ErrBusiness, e.StatusCode, e.Message)
}

func (e *BusinessError) Is(target error) bool { return target == ErrBusiness }

// DecodeError means the response could not be turned into the expected typed
// result. Nothing from the response is applied.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: %v: %v", e.Op, ErrDecode, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
