package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// Order book error kinds. Each OrderBookError unwraps to exactly one of these,
// so callers can branch with errors.Is.
var (
	ErrCurrencyNotRecognized = errors.New("currency not recognized")
	ErrInvalidPairFormat     = errors.New("invalid currency pair format")
	ErrInvalidPrice          = errors.New("invalid price")
	ErrInvalidOrderFormat    = errors.New("invalid order format")
	ErrInvalidPagination     = errors.New("invalid pagination")
)

// Stable error codes reported to callers alongside the message.
const (
	CodeCurrencyNotRecognized = -24
	CodeInvalidPairFormat     = -101
	CodeInvalidPrice          = -102
	CodeInvalidOrderFormat    = -119
	CodeInvalidPagination     = -953
)

// OrderBookError is a caller-caused failure of an order book operation.
type OrderBookError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	kind    error
}

func (e *OrderBookError) Error() string {
	return e.Message
}

func (e *OrderBookError) Unwrap() error {
	return e.kind
}

// NewCurrencyNotRecognized reports a 3-letter segment that is not a known currency.
func NewCurrencyNotRecognized(code string) error {
	return &OrderBookError{
		Code:    CodeCurrencyNotRecognized,
		Message: fmt.Sprintf("Currency %s not found", code),
		kind:    ErrCurrencyNotRecognized,
	}
}

// NewInvalidPairFormat reports a pair string that is not exactly 6 characters.
func NewInvalidPairFormat() error {
	return &OrderBookError{
		Code:    CodeInvalidPairFormat,
		Message: "Invalid currency format.",
		kind:    ErrInvalidPairFormat,
	}
}

// NewInvalidPrice reports a zero or negative price.
func NewInvalidPrice() error {
	return &OrderBookError{
		Code:    CodeInvalidPrice,
		Message: "Invalid price. Price must be a positive number.",
		kind:    ErrInvalidPrice,
	}
}

// NewInvalidOrderFormat reports a malformed placement request.
func NewInvalidOrderFormat() error {
	return &OrderBookError{
		Code:    CodeInvalidOrderFormat,
		Message: "Invalid order request. Please refer the docs for expected order information.",
		kind:    ErrInvalidOrderFormat,
	}
}

// NewInvalidPagination reports an offset past the end of the trade history.
func NewInvalidPagination(maxPage int) error {
	return &OrderBookError{
		Code:    CodeInvalidPagination,
		Message: fmt.Sprintf("No such page. Latest page is %d", maxPage),
		kind:    ErrInvalidPagination,
	}
}

// AsOrderBookError extracts an OrderBookError from err's chain.
func AsOrderBookError(err error) (*OrderBookError, bool) {
	var obErr *OrderBookError
	if errors.As(err, &obErr) {
		return obErr, true
	}
	return nil, false
}
