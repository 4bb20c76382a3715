package adapter

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a backend failure independently of the transport.
type ErrorCode string

const (
	CodeNotFound        ErrorCode = "not_found"
	CodeAlreadyExists   ErrorCode = "already_exists"
	CodeInvalidArgument ErrorCode = "invalid_argument"
	CodeRejected        ErrorCode = "rejected"
	CodeUnavailable     ErrorCode = "unavailable"
	CodeTimeout         ErrorCode = "timeout"
	CodeCanceled        ErrorCode = "canceled"
	CodeInternal        ErrorCode = "internal"
	CodeUnknown         ErrorCode = "unknown"
)

// ServiceError is the normalized form of every backend failure.
type ServiceError struct {
	// Method is the full RPC method name, e.g. "/user.UserService/LoginUser".
	Method string
	// Code classifies the failure.
	Code ErrorCode
	// Message is the backend's description. It is meant for logs, not for
	// clients.
	Message string
	// Retryable reports whether repeating the call may succeed. The gateway
	// itself never retries.
	Retryable bool
}

func (e *ServiceError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: %s", e.Method, e.Code)
	}
	return fmt.Sprintf("%s: %s: %s", e.Method, e.Code, e.Message)
}

// CodeOf returns the code of the ServiceError in err's chain, or "" when
// there is none.
func CodeOf(err error) ErrorCode {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr.Code
	}
	return ""
}

// IsNotFound reports whether err is a ServiceError with CodeNotFound.
func IsNotFound(err error) bool {
	return CodeOf(err) == CodeNotFound
}
