package constants

import "net/http"

type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound           = NewCodedError("not found", http.StatusNotFound)
	ErrBadRequest           = NewCodedError("bad request", http.StatusBadRequest)
	ErrInvalidConfiguration = NewCodedError("invalid configuration", http.StatusBadRequest)
	ErrWarehouseUnavailable = NewCodedError("warehouse unavailable", http.StatusServiceUnavailable)
)
