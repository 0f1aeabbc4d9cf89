package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Shakesdigital/shakestravelapp-sub001/internal/cancellation"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/clock"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/domain"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/pricing"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/reference"
	"github.com/Shakesdigital/shakestravelapp-sub001/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"
)

const (
	defaultPendingTTL  = 30 * time.Minute
	defaultSweepBatch  = 100
	createAttempts     = 3
	abandonedReason    = "payment window expired"
	requesterActorRole = "requester"
)

type BookingConfig struct {
	// PendingTTL is how long a booking may wait in pending before the
	// sweeper cancels it.
	PendingTTL        time.Duration
	SweepBatch        int
	ReferenceAttempts int
	// ConflictRetry governs retries of writes that lost a race.
	ConflictRetry retry.Strategy
}

type BookingService struct {
	bookings  ports.BookingRepo
	inventory ports.InventoryStore
	listings  ports.ListingCatalog
	notifier  ports.BookingNotifier
	pricing   *pricing.Calculator
	refs      *reference.Generator
	clock     clock.Clock
	logger    logger.Logger
	cfg       BookingConfig
}

func NewBookingService(
	bookings ports.BookingRepo,
	inventory ports.InventoryStore,
	listings ports.ListingCatalog,
	notifier ports.BookingNotifier,
	calc *pricing.Calculator,
	clk clock.Clock,
	logger logger.Logger,
	cfg BookingConfig,
) *BookingService {
	if cfg.PendingTTL <= 0 {
		cfg.PendingTTL = defaultPendingTTL
	}
	if cfg.SweepBatch <= 0 {
		cfg.SweepBatch = defaultSweepBatch
	}
	if cfg.ConflictRetry.Attempts <= 0 {
		cfg.ConflictRetry = retry.Strategy{Attempts: 3, Delay: 20 * time.Millisecond, Backoff: 2}
	}
	return &BookingService{
		bookings:  bookings,
		inventory: inventory,
		listings:  listings,
		notifier:  notifier,
		pricing:   calc,
		refs:      reference.NewGenerator(bookings, reference.WithMaxAttempts(cfg.ReferenceAttempts)),
		clock:     clk,
		logger:    logger,
		cfg:       cfg,
	}
}

// onConflict runs fn again while it fails with domain.ErrConcurrencyConflict,
// pacing attempts by the conflict retry strategy. Any other outcome of fn is
// returned as is.
func (s *BookingService) onConflict(ctx context.Context, fn func() error) error {
	var err error
	_ = retry.DoContext(ctx, s.cfg.ConflictRetry, func() error {
		err = fn()
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			return err
		}
		return nil
	})
	return err
}

// bookable is the listing data a booking request is checked and priced against.
type bookable struct {
	listing   *domain.Listing
	excursion *domain.Excursion
	lodging   *domain.Lodging
}

func (s *BookingService) loadBookable(ctx context.Context, item domain.ItemRef) (*bookable, error) {
	switch item.Kind {
	case domain.ItemKindExcursion:
		ex, err := s.listings.GetExcursion(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		return &bookable{listing: &ex.Listing, excursion: ex}, nil
	case domain.ItemKindLodging:
		lo, err := s.listings.GetLodging(ctx, item.ID)
		if err != nil {
			return nil, err
		}
		return &bookable{listing: &lo.Listing, lodging: lo}, nil
	default:
		return nil, fmt.Errorf("%w: unknown item kind %q", domain.ErrValidation, item.Kind)
	}
}

// Create holds capacity, prices the request, assigns references and
// persists the booking in pending. Once the hold succeeds, every failure
// releases it again.
func (s *BookingService) Create(ctx context.Context, in domain.CreateBookingInput) (*domain.Booking, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	in.Dates = domain.NewDateRange(in.Dates.Start, in.Dates.End)

	now := s.clock.Now()
	if in.Dates.Start.Before(domain.Midnight(now)) {
		return nil, fmt.Errorf("%w: start date %s is in the past", domain.ErrValidation, in.Dates.Start.Format(domain.DateLayout))
	}

	item, err := s.loadBookable(ctx, in.Item)
	if err != nil {
		return nil, fmt.Errorf("load listing: %w", err)
	}
	if !item.listing.Bookable() {
		return nil, fmt.Errorf("%w: %s is %s", domain.ErrListingNotBookable, in.Item, item.listing.Status)
	}
	reservation := in.Reservation()
	if err = checkRequest(item, in, reservation); err != nil {
		return nil, err
	}

	if in.RequestID == "" {
		in.RequestID = uuid.New().String()
	}
	req := domain.HoldRequest{
		ID:         in.RequestID,
		Item:       in.Item,
		Dates:      in.Dates,
		Quantity:   reservation.Units(),
		SlotID:     in.SlotID,
		RoomTypeID: in.RoomTypeID,
	}

	var hold *domain.Hold
	if err = s.onConflict(ctx, func() error {
		var err error
		hold, err = s.inventory.CheckAndHold(ctx, req)
		return err
	}); err != nil {
		return nil, fmt.Errorf("hold capacity: %w", err)
	}
	if hold.Status == domain.HoldStatusReleased {
		return nil, fmt.Errorf("%w: request %s was already used", domain.ErrHoldReleased, in.RequestID)
	}
	if existing, err := s.bookings.GetByHoldID(ctx, hold.ID); err == nil {
		return existing, nil
	} else if !errors.Is(err, domain.ErrBookingNotFound) {
		return nil, fmt.Errorf("check earlier request: %w", err)
	}

	booking, err := s.createHeld(ctx, in, item, reservation, hold, now)
	if err != nil {
		if errors.Is(err, domain.ErrConcurrencyConflict) {
			// the same request id was persisted by a concurrent call, which
			// owns the hold now
			if existing, gerr := s.bookings.GetByHoldID(ctx, hold.ID); gerr == nil {
				return existing, nil
			}
			return nil, err
		}
		s.releaseAbandonedHold(ctx, hold.ID, err)
		return nil, err
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("booking_number", booking.BookingNumber),
		logger.String("item", booking.Item.String()),
		logger.String("user_id", booking.Requester.UserID),
		logger.String("total", booking.Pricing.Total.String()),
	)
	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking)

	return booking, nil
}

func checkRequest(item *bookable, in domain.CreateBookingInput, res domain.Reservation) error {
	for _, e := range in.Extras {
		if _, ok := item.listing.Extra(e.ServiceID); !ok {
			return fmt.Errorf("%w: unknown extra service %q", domain.ErrValidation, e.ServiceID)
		}
	}
	if item.lodging == nil {
		return nil
	}

	roomType, ok := item.lodging.RoomType(in.RoomTypeID)
	if !ok {
		return fmt.Errorf("%w: %s", domain.ErrRoomTypeNotFound, in.RoomTypeID)
	}
	if roomType.MaxGuests > 0 && res.PartySize() > roomType.MaxGuests*res.Units() {
		return fmt.Errorf("%w: party of %d does not fit %d %s room(s)",
			domain.ErrImpossibleRequest, res.PartySize(), res.Units(), roomType.Name)
	}
	return nil
}

func (s *BookingService) createHeld(
	ctx context.Context,
	in domain.CreateBookingInput,
	item *bookable,
	reservation domain.Reservation,
	hold *domain.Hold,
	now time.Time,
) (*domain.Booking, error) {
	var (
		quote domain.PricingBreakdown
		err   error
	)
	if item.excursion != nil {
		quote, err = s.pricing.PriceExcursion(item.excursion, reservation.PartySize(), in.Extras)
		reservation = domain.ExcursionReservation{SlotID: hold.SlotID, Party: in.Party}
	} else {
		r := reservation.(domain.LodgingReservation)
		quote, err = s.pricing.PriceLodging(item.lodging, r.RoomTypeID, in.Dates, r.Rooms, hold.Nights, in.Extras)
	}
	if err != nil {
		return nil, fmt.Errorf("price booking: %w", err)
	}

	b := &domain.Booking{
		ID:          uuid.New().String(),
		Item:        in.Item,
		Requester:   in.Requester,
		Dates:       in.Dates,
		Reservation: reservation,
		Extras:      in.Extras,
		HoldID:      hold.ID,
		Pricing:     quote,
		Status:      domain.BookingStatusPending,
		StatusHistory: []domain.StatusChange{{
			To:    domain.BookingStatusPending,
			Actor: domain.Actor{ID: in.Requester.UserID, Role: requesterActorRole},
			At:    now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	for attempt := 1; ; attempt++ {
		refs, err := s.refs.Assign(ctx, now)
		if err != nil {
			return nil, fmt.Errorf("assign references: %w", err)
		}
		b.BookingNumber, b.ConfirmationCode = refs.BookingNumber, refs.ConfirmationCode

		err = s.bookings.Create(ctx, b)
		if err == nil {
			return b, nil
		}
		if !errors.Is(err, domain.ErrReferenceCollision) || attempt == createAttempts {
			return nil, fmt.Errorf("create booking: %w", err)
		}
	}
}

func (s *BookingService) releaseAbandonedHold(ctx context.Context, holdID string, cause error) {
	if _, err := s.inventory.Release(context.WithoutCancel(ctx), holdID); err != nil {
		s.logger.Error("failed to release hold after create failure",
			logger.String("hold_id", holdID),
			logger.String("cause", cause.Error()),
			logger.String("error", err.Error()),
		)
		return
	}
	s.logger.Warn("hold released after create failure",
		logger.String("hold_id", holdID),
		logger.String("cause", cause.Error()),
	)
}

// Transition moves a booking along one edge of the status table and applies
// that edge's inventory and refund side effects. Any other target, unknown
// statuses included, is a *domain.TransitionError and leaves the booking as is.
func (s *BookingService) Transition(
	ctx context.Context,
	bookingID string,
	target domain.BookingStatus,
	actor domain.Actor,
	reason string,
) (*domain.Booking, error) {
	if actor.ID == "" {
		return nil, fmt.Errorf("%w: actor is required", domain.ErrValidation)
	}

	var (
		b      *domain.Booking
		change domain.StatusChange
	)
	err := s.onConflict(ctx, func() error {
		var err error
		b, change, err = s.transitionOnce(ctx, bookingID, target, actor, reason)
		return err
	})
	if err != nil {
		return nil, err
	}

	if target == domain.BookingStatusCancelled {
		s.releaseCancelledHold(ctx, b)
	}

	s.logger.Info("booking status changed",
		logger.String("booking_id", b.ID),
		logger.String("from", string(change.From)),
		logger.String("to", string(change.To)),
		logger.String("actor", actor.ID),
	)
	notifyCtx := context.WithoutCancel(ctx)
	go func() {
		s.notifier.NotifyStatusChanged(notifyCtx, b, change)
		if b.Cancellation != nil {
			s.notifier.NotifyRefundComputed(notifyCtx, b)
		}
	}()

	return b, nil
}

func (s *BookingService) transitionOnce(
	ctx context.Context,
	bookingID string,
	target domain.BookingStatus,
	actor domain.Actor,
	reason string,
) (*domain.Booking, domain.StatusChange, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return nil, domain.StatusChange{}, fmt.Errorf("get booking: %w", err)
	}
	from := b.Status
	if !from.CanTransitionTo(target) {
		return nil, domain.StatusChange{}, &domain.TransitionError{From: from, To: target}
	}

	now := s.clock.Now()
	switch target {
	case domain.BookingStatusConfirmed:
		if err = s.inventory.Confirm(ctx, b.HoldID); err != nil {
			return nil, domain.StatusChange{}, fmt.Errorf("confirm hold: %w", err)
		}
	case domain.BookingStatusCancelled:
		record, err := s.cancellationRecord(ctx, b, actor, reason, now)
		if err != nil {
			return nil, domain.StatusChange{}, err
		}
		b.Cancellation = record
	}

	change := domain.StatusChange{From: from, To: target, Actor: actor, Reason: reason, At: now}
	b.Status = target
	b.Stamp(target, now)
	b.StatusHistory = append(b.StatusHistory, change)

	if err = s.bookings.UpdateStatus(ctx, b, from, change); err != nil {
		return nil, domain.StatusChange{}, fmt.Errorf("update status: %w", err)
	}
	return b, change, nil
}

func (s *BookingService) cancellationRecord(
	ctx context.Context,
	b *domain.Booking,
	actor domain.Actor,
	reason string,
	now time.Time,
) (*domain.CancellationRecord, error) {
	item, err := s.loadBookable(ctx, b.Item)
	if err != nil {
		return nil, fmt.Errorf("load cancellation policy: %w", err)
	}
	refund, err := cancellation.ComputeRefund(item.listing.Policy, b.Dates.Start, now, b.Pricing.Total, b.Pricing.Currency)
	if err != nil {
		return nil, fmt.Errorf("compute refund: %w", err)
	}
	return &domain.CancellationRecord{
		Refund:      refund,
		Currency:    b.Pricing.Currency,
		Status:      domain.RefundStatusPending,
		Reason:      reason,
		CancelledBy: actor.ID,
		CancelledAt: now,
	}, nil
}

// releaseCancelledHold runs after the cancellation is persisted. A failure
// leaves hold_released false for ReleaseOrphanedHolds to retry.
func (s *BookingService) releaseCancelledHold(ctx context.Context, b *domain.Booking) {
	ctx = context.WithoutCancel(ctx)
	if _, err := s.inventory.Release(ctx, b.HoldID); err != nil && !errors.Is(err, domain.ErrHoldNotFound) {
		s.logger.Warn("hold release deferred to sweeper",
			logger.String("booking_id", b.ID),
			logger.String("hold_id", b.HoldID),
			logger.String("error", err.Error()),
		)
		return
	}
	if err := s.bookings.MarkHoldReleased(ctx, b.ID); err != nil {
		s.logger.Warn("failed to mark hold released",
			logger.String("booking_id", b.ID),
			logger.String("error", err.Error()),
		)
		return
	}
	b.HoldReleased = true
}

// Cancel is Transition to cancelled, returning the refund decision.
func (s *BookingService) Cancel(ctx context.Context, bookingID string, actor domain.Actor, reason string) (*domain.Booking, *domain.CancellationRecord, error) {
	b, err := s.Transition(ctx, bookingID, domain.BookingStatusCancelled, actor, reason)
	if err != nil {
		return nil, nil, err
	}
	return b, b.Cancellation, nil
}

func (s *BookingService) QueryAvailability(ctx context.Context, q domain.AvailabilityQuery) ([]domain.AvailabilityWindow, error) {
	if err := q.Dates.Validate(); err != nil {
		return nil, err
	}
	if q.PartySize < 0 || q.Rooms < 0 {
		return nil, fmt.Errorf("%w: party size and rooms cannot be negative", domain.ErrValidation)
	}
	if _, err := s.loadBookable(ctx, q.Item); err != nil {
		return nil, err
	}

	windows, err := s.inventory.QueryAvailability(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("query availability: %w", err)
	}
	return windows, nil
}

func (s *BookingService) Get(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrValidation)
	}
	return s.bookings.ListByUser(ctx, userID)
}

// CancelAbandoned cancels bookings left in pending longer than PendingTTL.
// Bookings confirmed in the meantime are skipped.
func (s *BookingService) CancelAbandoned(ctx context.Context) ([]*domain.Booking, error) {
	cutoff := s.clock.Now().Add(-s.cfg.PendingTTL)
	stale, err := s.bookings.ListPendingOlderThan(ctx, cutoff, s.cfg.SweepBatch)
	if err != nil {
		return nil, fmt.Errorf("list abandoned: %w", err)
	}

	var cancelled []*domain.Booking
	for _, b := range stale {
		done, err := s.Transition(ctx, b.ID, domain.BookingStatusCancelled, domain.ActorSystem, abandonedReason)
		if err != nil {
			if errors.Is(err, domain.ErrIllegalTransition) {
				continue
			}
			s.logger.Error("failed to cancel abandoned booking",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		cancelled = append(cancelled, done)
	}

	if len(cancelled) > 0 {
		s.logger.Info("abandoned bookings cancelled",
			logger.Int("count", len(cancelled)),
		)
	}
	return cancelled, nil
}

// ReleaseOrphanedHolds retries capacity release for cancelled bookings whose
// release failed earlier.
func (s *BookingService) ReleaseOrphanedHolds(ctx context.Context) (int, error) {
	orphans, err := s.bookings.ListUnreleasedHolds(ctx, s.cfg.SweepBatch)
	if err != nil {
		return 0, fmt.Errorf("list unreleased holds: %w", err)
	}

	released := 0
	for _, b := range orphans {
		if _, err = s.inventory.Release(ctx, b.HoldID); err != nil && !errors.Is(err, domain.ErrHoldNotFound) {
			s.logger.Error("failed to release orphaned hold",
				logger.String("booking_id", b.ID),
				logger.String("hold_id", b.HoldID),
				logger.String("error", err.Error()),
			)
			continue
		}
		if err = s.bookings.MarkHoldReleased(ctx, b.ID); err != nil {
			s.logger.Error("failed to mark hold released",
				logger.String("booking_id", b.ID),
				logger.String("error", err.Error()),
			)
			continue
		}
		released++
	}

	if released > 0 {
		s.logger.Info("orphaned holds released", logger.Int("count", released))
	}
	return released, nil
}
