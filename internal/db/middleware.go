// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/fleet-service/internal/logging"
)

var errRequestFailed = errors.New("request failed")

// TransactionMiddleware runs each mutating request as one unit of work.
// Writes are kept only when the handler answers below 400. Safe methods
// pass straight through to the pool.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			err := db.WithTx(r.Context(), func(ctx context.Context) error {
				next.ServeHTTP(ww, r.WithContext(ctx))

				if ww.Status() >= http.StatusBadRequest {
					return fmt.Errorf("%w: %s %s answered %d", errRequestFailed, r.Method, r.URL.Path, ww.Status())
				}

				return nil
			})

			switch {
			case err == nil:
			case errors.Is(err, errRequestFailed):
				logger.Debugf("rolled back: %v", err)
			default:
				logger.Errorf("unit of work for %s %s not kept: %v", r.Method, r.URL.Path, err)
			}
		})
	}
}
