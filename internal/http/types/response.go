// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"net/http"
)

type ErrorResponse struct {
	Status  int               `json:"status"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// WriteJSON writes data wrapped in the standard response envelope.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(Response{
		Status:  status,
		Message: http.StatusText(status),
		Data:    data,
	})
}

// WriteError writes err as {"status", "message", "fields"}, using the kind
// of an *Error and 500 for anything else.
func WriteError(w http.ResponseWriter, err error) error {
	e := AsError(err)
	status := e.Kind.Status()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	return json.NewEncoder(w).Encode(ErrorResponse{
		Status:  status,
		Message: e.Message,
		Fields:  e.Fields,
	})
}
