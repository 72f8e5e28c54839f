// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error by how it is surfaced to the caller.
type Kind int

const (
	KindInternal Kind = iota
	KindAuthentication
	KindAuthorization
	KindTenantIntegrity
	KindConflict
	KindValidation
	KindNotFound
	KindTooManyRequests
	KindUnavailable
)

var kindStatus = map[Kind]int{
	KindInternal:        http.StatusInternalServerError,
	KindAuthentication:  http.StatusUnauthorized,
	KindAuthorization:   http.StatusForbidden,
	KindTenantIntegrity: http.StatusBadRequest,
	KindConflict:        http.StatusConflict,
	KindValidation:      http.StatusBadRequest,
	KindNotFound:        http.StatusNotFound,
	KindTooManyRequests: http.StatusTooManyRequests,
	KindUnavailable:     http.StatusServiceUnavailable,
}

func (k Kind) Status() int {
	if s, ok := kindStatus[k]; ok {
		return s
	}
	return http.StatusInternalServerError
}

func (k Kind) String() string {
	switch k {
	case KindAuthentication:
		return "authentication"
	case KindAuthorization:
		return "authorization"
	case KindTenantIntegrity:
		return "tenant_integrity"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindTooManyRequests:
		return "too_many_requests"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// Error is an error that knows its HTTP surface. Fields carries per-field
// messages for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string

	err error
}

func (e *Error) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.err
}

func NewError(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, err: cause}
}

func NewAuthenticationError(message string, cause error) *Error {
	return NewError(KindAuthentication, message, cause)
}

func NewAuthorizationError(message string) *Error {
	return NewError(KindAuthorization, message, nil)
}

func NewTenantIntegrityError(message string, cause error) *Error {
	return NewError(KindTenantIntegrity, message, cause)
}

func NewConflictError(message string) *Error {
	return NewError(KindConflict, message, nil)
}

func NewNotFoundError(message string) *Error {
	return NewError(KindNotFound, message, nil)
}

func NewValidationError(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

// AsError extracts an *Error from err, falling back to an internal error
// that does not leak the underlying message.
func AsError(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return NewError(KindInternal, "internal server error", err)
}
