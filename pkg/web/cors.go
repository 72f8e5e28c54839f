// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/canonical/fleet-service/pkg/authentication"
)

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Handler(
		cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", authentication.APIKeyHeader, authentication.CustomerOverrideHeader},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: len(origins) != 1 || origins[0] != "*",
			MaxAge:           300,
		},
	)
}
