package errors

import perrors "github.com/pingcap/errors"

const (
	ErrCodeInvalidRange = 1000
	ErrCodeInvalidScale = 1001
	ErrCodeConvert      = 2000
	ErrCodeConfig       = 3000
)

type CodeError struct {
	Code uint16
	error
}

func (e *CodeError) Unwrap() error {
	return e.error
}

func NewCodeError(code uint16, err error) error {
	return &CodeError{
		Code:  code,
		error: err,
	}
}

func NewCodeErrorMessage(code uint16, message string) error {
	return &CodeError{
		Code:  code,
		error: perrors.New(message),
	}
}

// CodeOf returns the code of the CodeError at the root of err, or 0.
func CodeOf(err error) uint16 {
	if err == nil {
		return 0
	}
	if ce, ok := perrors.Cause(err).(*CodeError); ok {
		return ce.Code
	}
	return 0
}

var (
	ErrNegativeScale = NewCodeErrorMessage(ErrCodeInvalidScale, "negative scale factor")
)
