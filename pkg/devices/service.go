// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package devices

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/canonical/fleet-service/internal/commands"
	httpTypes "github.com/canonical/fleet-service/internal/http/types"
	"github.com/canonical/fleet-service/internal/logging"
	"github.com/canonical/fleet-service/internal/monitoring"
	"github.com/canonical/fleet-service/internal/storage"
	"github.com/canonical/fleet-service/internal/tracing"
	"github.com/canonical/fleet-service/internal/types"
)

var (
	ErrNotDeviceOwner    = errors.New("device belongs to another user")
	ErrCommandNotAllowed = errors.New("only admins or the device owner may send commands")
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	store      StoreInterface
	authorizer AuthorizerInterface
	commands   CommandPublisherInterface
	alerts     AlertEvaluatorInterface
	validator  *validator.Validate
	now        func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListDevices(ctx context.Context, tc types.TenantContext, page storage.Pagination) ([]*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "devices.Service.ListDevices")
	defer span.End()

	return s.store.ListDevices(ctx, tc, page)
}

func (s *Service) GetDevice(ctx context.Context, tc types.TenantContext, id string) (*types.Device, error) {
	ctx, span := s.tracer.Start(ctx, "devices.Service.GetDevice")
	defer span.End()

	return s.store.GetDevice(ctx, tc, id)
}

// DeleteDevice soft deletes a device, a later registration of the same
// device id restores it.
func (s *Service) DeleteDevice(ctx context.Context, tc types.TenantContext, id string) error {
	ctx, span := s.tracer.Start(ctx, "devices.Service.DeleteDevice")
	defer span.End()

	if err := s.store.SoftDeleteDevice(ctx, tc, id); err != nil {
		return err
	}

	s.logger.Security().AdminAction(tc.UserID(), "delete", "device:"+id)

	return nil
}

func (s *Service) SendCommand(ctx context.Context, tc types.TenantContext, id string, req CommandRequest) (*commands.Command, error) {
	ctx, span := s.tracer.Start(ctx, "devices.Service.SendCommand")
	defer span.End()

	if err := s.validator.Struct(req); err != nil {
		return nil, httpTypes.ValidationErrorFrom(err)
	}

	device, err := s.store.GetDevice(ctx, tc, id)
	if err != nil {
		return nil, err
	}

	if !s.authorizer.CheckOwnerOr(ctx, tc, device.UserID, types.RoleAdmin) {
		return nil, ErrCommandNotAllowed
	}

	cmdID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate command ID: %w", err)
	}

	cmd := commands.Command{
		ID:       cmdID.String(),
		Name:     req.Name,
		Args:     req.Args,
		IssuedBy: tc.UserID(),
		IssuedAt: s.now().UTC(),
	}

	if err := s.commands.Publish(ctx, device.DeviceID, cmd); err != nil {
		return nil, fmt.Errorf("failed to send %s to device %s: %w", cmd.Name, device.DeviceID, err)
	}

	s.logger.Infof("command %s (%s) sent to device %s by %s", cmd.ID, cmd.Name, device.DeviceID, tc.UserID())

	return &cmd, nil
}

// Heartbeat records that a device is alive and runs its metrics through
// the alert rules. Only the user owning the device may report for it.
func (s *Service) Heartbeat(ctx context.Context, tc types.TenantContext, hb Heartbeat) (*HeartbeatResult, error) {
	ctx, span := s.tracer.Start(ctx, "devices.Service.Heartbeat")
	defer span.End()

	if err := s.validator.Struct(hb); err != nil {
		return nil, httpTypes.ValidationErrorFrom(err)
	}

	device, err := s.store.GetDeviceByExternalID(ctx, tc, hb.DeviceID)
	if err != nil {
		return nil, err
	}

	if device.UserID != tc.UserID() && !tc.IsSuperAdmin() {
		s.logger.Security().AuthzFailure(tc.UserID(), "heartbeat:"+hb.DeviceID, logging.WithLabel("reason", "not_device_owner"))
		return nil, ErrNotDeviceOwner
	}

	if err := s.store.TouchDevice(ctx, tc, device.ID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to record heartbeat: %w", err)
	}

	decisions, err := s.alerts.Evaluate(ctx, tc, device, hb.Metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate alerts: %w", err)
	}

	result := &HeartbeatResult{DeviceID: device.DeviceID, Alerts: make([]AlertOutcome, 0, len(decisions))}
	for _, d := range decisions {
		outcome := AlertOutcome{Type: d.Type, Outcome: d.Outcome}
		if d.Alert != nil {
			outcome.AlertID = d.Alert.ID
		}
		result.Alerts = append(result.Alerts, outcome)
	}

	return result, nil
}

func NewService(
	store StoreInterface,
	authorizer AuthorizerInterface,
	publisher CommandPublisherInterface,
	evaluator AlertEvaluatorInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		store:      store,
		authorizer: authorizer,
		commands:   publisher,
		alerts:     evaluator,
		validator:  httpTypes.NewValidator(),
		now:        time.Now,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
