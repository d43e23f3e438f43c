package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/notification/model"
	"frontdesk/internal/domains/notification/model/dto"
	"frontdesk/internal/domains/notification/pusher"
	"frontdesk/internal/domains/notification/repository"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	gRepo "frontdesk/shared/repository"
	"frontdesk/shared/timezone"
	"frontdesk/shared/validator"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentPushes = 8

// Notification manages push subscriptions and delivers dispatched events to them.
type Notification interface {
	Subscribe(ctx context.Context, req dto.SubscribeRequest, username string, now time.Time) (dto.SubscriptionResponse, error)
	Unsubscribe(ctx context.Context, req dto.UnsubscribeRequest, username string) error
	Deliver(ctx context.Context, event model.Event) error
}

type serviceImpl struct {
	subscriptions repository.Subscription
	deliveries    repository.Delivery
	pusher        pusher.Pusher
	otel          otel.Otel
}

func New(subscriptions repository.Subscription, deliveries repository.Delivery, pusher pusher.Pusher, otel otel.Otel) Notification {
	return &serviceImpl{
		subscriptions: subscriptions,
		deliveries:    deliveries,
		pusher:        pusher,
		otel:          otel,
	}
}

// Subscribe registers endpoint for username. Registering the same endpoint twice returns the existing subscription.
func (s *serviceImpl) Subscribe(ctx context.Context, req dto.SubscribeRequest, username string, now time.Time) (res dto.SubscriptionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Subscribe")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Endpoint = strings.TrimSpace(req.Endpoint)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	existing, err := s.subscriptions.Get(ctx, subscriptionFilter(username, req.Endpoint))
	if err != nil {
		log.Error().Err(err).Msg("failed to get push subscription")

		return res, fmt.Errorf("failed to get push subscription: %w", gRepo.AsFailure(err, model.SubscriptionEntityName))
	}

	if existing.ID != "" {
		res.FromModel(existing)

		return res, nil
	}

	subscription := req.ToModel(username, timezone.ToAppTime(now))

	if err = s.subscriptions.Insert(ctx, subscription); err != nil {
		log.Error().Err(err).Msg("failed to create push subscription")

		return res, fmt.Errorf("failed to create push subscription: %w", gRepo.AsFailure(err, model.SubscriptionEntityName))
	}

	res.FromModel(subscription)

	return res, nil
}

func (s *serviceImpl) Unsubscribe(ctx context.Context, req dto.UnsubscribeRequest, username string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Unsubscribe")
	defer scope.End()
	defer scope.TraceIfError(err)

	req.Endpoint = strings.TrimSpace(req.Endpoint)

	if err = validator.ValidateStruct(&req); err != nil {
		return err //nolint:wrapcheck
	}

	if err = s.subscriptions.Delete(ctx, subscriptionFilter(username, req.Endpoint)); err != nil {
		if errors.Is(err, gRepo.ErrNotFound) {
			return failure.NotFound("push subscription not found") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to delete push subscription")

		return fmt.Errorf("failed to delete push subscription: %w", gRepo.AsFailure(err, model.SubscriptionEntityName))
	}

	return nil
}

// Deliver pushes event to its recipients and records one delivery per subscription.
// Lifecycle events go to every subscriber except the actor, duty events to the recipient only,
// announcements to everyone.
// Subscriptions whose endpoint is gone are removed.
func (s *serviceImpl) Deliver(ctx context.Context, event model.Event) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Deliver")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter, ok := recipientFilter(event)
	if !ok {
		return nil
	}

	subscriptions, err := s.subscriptions.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Str("event", event.ID).Msg("failed to resolve push recipients")

		return fmt.Errorf("failed to resolve push recipients: %w", err)
	}

	if len(subscriptions) == 0 {
		return nil
	}

	deliveries := make([]model.Delivery, len(subscriptions))
	gone := make([]bool, len(subscriptions))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(maxConcurrentPushes)

	for i, subscription := range subscriptions {
		group.Go(func() error {
			pushErr := s.pusher.Push(groupCtx, subscription.Endpoint, event)
			if pushErr != nil {
				log.Warn().Err(pushErr).Str("endpoint", subscription.Endpoint).Msg("push delivery failed")
			}

			gone[i] = errors.Is(pushErr, pusher.ErrEndpointGone)
			deliveries[i] = model.NewDelivery(event, subscription, pushErr, timezone.Now())

			return nil
		})
	}

	_ = group.Wait()

	var errs []error

	if err = s.deliveries.InsertBulk(ctx, deliveries); err != nil {
		log.Error().Err(err).Str("event", event.ID).Msg("failed to record push deliveries")
		errs = append(errs, fmt.Errorf("failed to record push deliveries: %w", err))
	}

	for i, subscription := range subscriptions {
		if !gone[i] {
			continue
		}

		if err = s.subscriptions.Delete(ctx, shared.FilterByID(subscription.ID, model.FieldID, "")); err != nil && !errors.Is(err, gRepo.ErrNotFound) {
			log.Error().Err(err).Str("subscription", subscription.ID).Msg("failed to prune push subscription")
			errs = append(errs, fmt.Errorf("failed to prune push subscription: %w", err))
		}
	}

	return errors.Join(errs...)
}

func recipientFilter(event model.Event) (gDto.FilterGroup, bool) {
	if event.Kind.Announcement() {
		return gDto.FilterGroup{}, true
	}

	if event.Kind.Targeted() {
		if event.Recipient == "" {
			return gDto.FilterGroup{}, false
		}

		return gDto.NewAndGroup(gDto.Filter{
			Field:    model.FieldUsername,
			Value:    event.Recipient,
			Operator: gDto.FilterOperatorEq,
		}), true
	}

	return gDto.NewAndGroup(gDto.Filter{
		Field:    model.FieldUsername,
		Value:    event.Actor,
		Operator: gDto.FilterOperatorNotEq,
	}), true
}

func subscriptionFilter(username, endpoint string) gDto.FilterGroup {
	return gDto.NewAndGroup(
		gDto.Filter{Field: model.FieldUsername, Value: username, Operator: gDto.FilterOperatorEq},
		gDto.Filter{Field: model.FieldEndpoint, Value: endpoint, Operator: gDto.FilterOperatorEq},
	)
}
