// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const maxBodyBytes = 1 << 20

// NewValidator returns a validator reporting fields by their json name.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ValidationErrorFrom turns validator errors into a field level
// ValidationError.
func ValidationErrorFrom(err error) *Error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewValidationError(err.Error(), nil)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}

	return NewValidationError("invalid request payload", fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "email":
		return "must be a valid email address"
	case "ip":
		return "must be a valid IP address"
	case "oneof":
		return fmt.Sprintf("must be one of %s", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// DecodeAndValidate reads a JSON body into dst and validates it.
func DecodeAndValidate(r *http.Request, v *validator.Validate, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return NewValidationError(fmt.Sprintf("malformed request body: %v", err), nil)
	}

	if err := v.Struct(dst); err != nil {
		return ValidationErrorFrom(err)
	}

	return nil
}
