package view

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes rejected transitions.
type ErrorCode string

const (
	// ErrCodePageOutOfRange indicates a page index outside [1, totalPages].
	ErrCodePageOutOfRange ErrorCode = "PAGE_OUT_OF_RANGE"

	// ErrCodeInvalidPageSize indicates a page size below 1.
	ErrCodeInvalidPageSize ErrorCode = "INVALID_PAGE_SIZE"

	// ErrCodeUnknownRecord indicates a selection of a SKU not in the dataset.
	ErrCodeUnknownRecord ErrorCode = "UNKNOWN_RECORD"
)

// Error is a rejected transition. The controller state is unchanged.
type Error struct {
	Code    ErrorCode
	Message string

	// Details contains additional context, such as the requested and
	// current page.
	Details map[string]string

	// Err is the underlying paging error, if any.
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsPageOutOfRange reports whether err is a rejected page navigation.
func IsPageOutOfRange(err error) bool {
	return hasCode(err, ErrCodePageOutOfRange)
}

// IsInvalidPageSize reports whether err is a rejected page size.
func IsInvalidPageSize(err error) bool {
	return hasCode(err, ErrCodeInvalidPageSize)
}

// IsUnknownRecord reports whether err is a rejected selection.
func IsUnknownRecord(err error) bool {
	return hasCode(err, ErrCodeUnknownRecord)
}

func hasCode(err error, code ErrorCode) bool {
	var ve *Error
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}

func newPageError(requested, current, totalPages int, cause error) *Error {
	return &Error{
		Code:    ErrCodePageOutOfRange,
		Err:     cause,
		Message: fmt.Sprintf("page %d does not exist (%d pages)", requested, totalPages),
		Details: map[string]string{
			"requested":   fmt.Sprint(requested),
			"current":     fmt.Sprint(current),
			"total_pages": fmt.Sprint(totalPages),
		},
	}
}

func newPageSizeError(size int, cause error) *Error {
	return &Error{
		Code:    ErrCodeInvalidPageSize,
		Message: fmt.Sprintf("page size %d is below 1", size),
		Err:     cause,
	}
}

func newUnknownRecordError(sku string) *Error {
	return &Error{
		Code:    ErrCodeUnknownRecord,
		Message: fmt.Sprintf("no record with sku %q", sku),
		Details: map[string]string{"sku": sku},
	}
}
