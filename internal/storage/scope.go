// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	sq "github.com/Masterminds/squirrel"
)

// Scope restricts a query to the rows of one customer, or explicitly lifts
// the restriction. The zero value is neither and every scoped query
// rejects it with ErrMissingScope.
type Scope struct {
	customerID string
	unscoped   bool
}

// ForCustomer scopes queries to customerID. An empty id yields the zero Scope.
func ForCustomer(customerID string) Scope {
	return Scope{customerID: customerID}
}

// Unscoped lifts tenant filtering, reserved for SUPERADMIN contexts and
// background jobs.
func Unscoped() Scope {
	return Scope{unscoped: true}
}

func (s Scope) CustomerID() (string, bool) {
	return s.customerID, s.customerID != ""
}

func (s Scope) IsUnscoped() bool {
	return s.unscoped
}

func (s Scope) valid() bool {
	return s.unscoped || s.customerID != ""
}

// predicate returns the filter for a scoped query, nil when unscoped.
func (s Scope) predicate(filter func(customerID string) sq.Sqlizer) (sq.Sqlizer, error) {
	if !s.valid() {
		return nil, ErrMissingScope
	}

	if s.unscoped {
		return nil, nil
	}

	return filter(s.customerID), nil
}

func byColumn(column string) func(string) sq.Sqlizer {
	return func(customerID string) sq.Sqlizer {
		return sq.Eq{column: customerID}
	}
}

// byOwner filters rows owned by users of the customer, for tables that
// only reference the user.
func byOwner(column string) func(string) sq.Sqlizer {
	return func(customerID string) sq.Sqlizer {
		return sq.Expr(column+" IN (SELECT id FROM users WHERE customer_id = ?)", customerID)
	}
}

func scopeSelect(q sq.SelectBuilder, s Scope, filter func(string) sq.Sqlizer) (sq.SelectBuilder, error) {
	p, err := s.predicate(filter)
	if err != nil {
		return q, err
	}
	if p != nil {
		q = q.Where(p)
	}
	return q, nil
}

func scopeUpdate(q sq.UpdateBuilder, s Scope, filter func(string) sq.Sqlizer) (sq.UpdateBuilder, error) {
	p, err := s.predicate(filter)
	if err != nil {
		return q, err
	}
	if p != nil {
		q = q.Where(p)
	}
	return q, nil
}

func scopeDelete(q sq.DeleteBuilder, s Scope, filter func(string) sq.Sqlizer) (sq.DeleteBuilder, error) {
	p, err := s.predicate(filter)
	if err != nil {
		return q, err
	}
	if p != nil {
		q = q.Where(p)
	}
	return q, nil
}
