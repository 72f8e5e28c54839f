// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"net/http"
	"strconv"
)

const maxPageSize = 500

// ParsePagination reads the page and size query parameters. Missing values
// are returned as zero and left to the storage defaults.
func ParsePagination(r *http.Request) (page, size int64, err error) {
	fields := make(map[string]string)

	page, ok := parsePositive(r, "page")
	if !ok {
		fields["page"] = "must be a positive integer"
	}

	size, ok = parsePositive(r, "size")
	if !ok {
		fields["size"] = "must be a positive integer"
	} else if size > maxPageSize {
		fields["size"] = "must be at most " + strconv.Itoa(maxPageSize)
	}

	if len(fields) > 0 {
		return 0, 0, NewValidationError("invalid pagination", fields)
	}

	return page, size, nil
}

func parsePositive(r *http.Request, name string) (int64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}

	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return 0, false
	}

	return v, true
}
