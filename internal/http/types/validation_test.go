// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type registration struct {
	DeviceID string `json:"device_id" validate:"required,max=128"`
	Hostname string `json:"hostname" validate:"required"`
}

func TestDecodeAndValidate(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedFields []string
		expectErr      bool
	}{
		{name: "valid", body: `{"device_id":"dev-42","hostname":"pi"}`},
		{name: "missing fields", body: `{}`, expectedFields: []string{"device_id", "hostname"}, expectErr: true},
		{name: "unknown field", body: `{"device_id":"dev-42","hostname":"pi","owner":"x"}`, expectErr: true},
		{name: "not json", body: `device`, expectErr: true},
	}

	v := NewValidator()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst registration
			err := DecodeAndValidate(req, v, &dst)

			if !tt.expectErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			var e *Error
			if !errors.As(err, &e) || e.Kind != KindValidation {
				t.Fatalf("expected a validation error, got %v", err)
			}

			for _, f := range tt.expectedFields {
				if _, ok := e.Fields[f]; !ok {
					t.Errorf("expected field %s in %v", f, e.Fields)
				}
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		page      int64
		size      int64
		expectErr bool
	}{
		{name: "Defaults", query: ""},
		{name: "Explicit values", query: "?page=3&size=20", page: 3, size: 20},
		{name: "Negative page", query: "?page=-1", expectErr: true},
		{name: "Not a number", query: "?size=ten", expectErr: true},
		{name: "Too large", query: "?size=10000", expectErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v0/devices"+test.query, nil)

			page, size, err := ParsePagination(r)

			if (err != nil) != test.expectErr {
				t.Fatalf("expected error %v, got %v", test.expectErr, err)
			}

			if page != test.page || size != test.size {
				t.Errorf("expected %d/%d, got %d/%d", test.page, test.size, page, size)
			}
		})
	}
}
