// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package devices

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
	"github.com/canonical/fleet-service/pkg/tenancy"
)

const (
	maxReconcileAttempts = 3

	msgDuplicateRejected = "device is already registered elsewhere"
)

var (
	ErrRegistrationContention = errors.New("device registration kept racing, giving up")

	errLostInsertRace = errors.New("concurrent registration inserted the device first")
)

var _ ReconcilerInterface = (*Reconciler)(nil)

// Reconciler maps inbound registrations onto device rows keyed by the
// external device id. Ownership of an active device never changes hands.
type Reconciler struct {
	storage   RegistrationStorageInterface
	tx        TransactorInterface
	validator *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (r *Reconciler) Reconcile(ctx context.Context, reg Registration, tc types.TenantContext) (*Result, error) {
	ctx, span := r.tracer.Start(ctx, "devices.Reconciler.Reconcile")
	defer span.End()

	if err := r.validator.Struct(reg); err != nil {
		return nil, httpTypes.ValidationErrorFrom(err)
	}

	target, err := tenancy.WriteTarget(tc, reg.CustomerID)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= maxReconcileAttempts; attempt++ {
		result, err := r.attempt(ctx, reg, tc, target)

		if errors.Is(err, errLostInsertRace) {
			r.logger.Debugf("registration of %s lost an insert race, attempt %d", reg.DeviceID, attempt)
			continue
		}

		if err != nil {
			return nil, err
		}

		r.record(result, reg, tc, target)

		return result, nil
	}

	return nil, ErrRegistrationContention
}

func (r *Reconciler) attempt(ctx context.Context, reg Registration, tc types.TenantContext, target string) (*Result, error) {
	var result *Result

	err := r.tx.WithTx(ctx, func(ctx context.Context) error {
		existing, err := r.storage.LockDeviceByExternalID(ctx, reg.DeviceID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		device := &types.Device{
			DeviceID:     reg.DeviceID,
			CustomerID:   target,
			UserID:       tc.UserID(),
			Hostname:     reg.Hostname,
			Architecture: reg.Architecture,
			Model:        reg.Model,
			Addresses:    reg.Addresses,
			Capabilities: reg.Capabilities,
		}

		if existing != nil {
			device.ID = existing.ID
		}

		switch types.DecideRegistration(existing, target) {
		case types.DecisionCreate:
			created, inserted, err := r.storage.InsertDevice(ctx, device)
			if err != nil {
				return err
			}

			if !inserted {
				return errLostInsertRace
			}

			result = &Result{Action: ActionCreated, Device: created}
		case types.DecisionRestore:
			restored, err := r.storage.RestoreDevice(ctx, device)
			if err != nil {
				return err
			}

			result = &Result{Action: ActionRestored, Device: restored}
		case types.DecisionUpdate:
			updated, err := r.storage.UpdateDeviceRegistration(ctx, device)
			if err != nil {
				return err
			}

			result = &Result{Action: ActionUpdated, Device: updated}
		case types.DecisionReject:
			result = &Result{Action: ActionDuplicateRejected, Message: msgDuplicateRejected}
		default:
			return fmt.Errorf("unhandled registration decision for %s", reg.DeviceID)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *Reconciler) record(result *Result, reg Registration, tc types.TenantContext, target string) {
	if err := r.monitor.IncRegistration(map[string]string{"action": string(result.Action)}); err != nil {
		r.logger.Debugf("failed to count registration: %v", err)
	}

	if result.Action != ActionDuplicateRejected {
		r.logger.Infof("device %s %s for customer %s", reg.DeviceID, result.Action, target)
		return
	}

	r.logger.Warnf("device %s is owned by another customer, rejected registration for %s", reg.DeviceID, target)
	r.logger.Security().TenantIntegrityViolation(
		tc.UserID(),
		"registration of a device owned by another customer",
		logging.WithLabel("device_id", reg.DeviceID),
		logging.WithLabel("customer_id", target),
	)
}

func NewReconciler(
	s RegistrationStorageInterface,
	tx TransactorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Reconciler {
	return &Reconciler{
		storage:   s,
		tx:        tx,
		validator: httpTypes.NewValidator(),
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}
