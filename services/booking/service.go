package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "littlenest/database/repository/booking"
	childRepo "littlenest/database/repository/child"
	providerRepo "littlenest/database/repository/provider"
	"littlenest/models"
	"littlenest/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBookingRequest carries everything needed to create a booking.
type CreateBookingRequest struct {
	UserID           string                   `json:"userId"`
	ProviderID       string                   `json:"providerId"`
	ChildrenIDs      []string                 `json:"childrenIds"`
	ChildrenCount    int                      `json:"childrenCount"`
	StartDate        string                   `json:"startDate"`
	EndDate          string                   `json:"endDate"`
	PaymentMethod    string                   `json:"paymentMethod"`
	EmergencyContact *models.EmergencyContact `json:"emergencyContact,omitempty"`
	Notes            string                   `json:"notes,omitempty"`
	// Confirmed selects the creation mode: false creates the booking as
	// pending awaiting provider confirmation, true enters confirmed directly.
	Confirmed bool `json:"confirmed"`
}

// BookingService is the booking core's public surface.
type BookingService interface {
	// CheckAvailability reports whether the range can take childrenCount more
	// children, listing the specific dates that cannot. excludeBookingID
	// leaves an existing booking out of the occupancy count when re-validating
	// it against itself.
	CheckAvailability(providerID, startDate, endDate string, childrenCount int, excludeBookingID string) (*AvailabilityResult, error)
	// GetRangeAvailability returns the provider's per-day calendar view.
	GetRangeAvailability(providerID, startDate, endDate string) ([]models.DayAvailability, error)
	CreateBooking(req CreateBookingRequest) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	ListUserBookings(userID string, status models.BookingStatus) ([]models.Booking, error)
	ListProviderBookings(providerID string, status models.BookingStatus) ([]models.Booking, error)
	// Transition moves a booking to the target status if the lifecycle table
	// permits it from the booking's current status.
	Transition(bookingID string, target models.BookingStatus) (*models.Booking, error)
	// Cancel is the reason-tracked cancellation sub-operation: it enforces a
	// non-terminal current status and appends the reason to the audit notes.
	Cancel(bookingID, reason string, admin bool) (*models.Booking, error)
}

// ProviderLocker serializes booking writes per provider. utils.BookingLock is
// the production implementation.
type ProviderLocker interface {
	Acquire(ctx context.Context, providerID string) (string, error)
	Release(ctx context.Context, providerID, token string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Bookings  bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
	Children  childRepo.ChildRepository
	Engine    AvailabilityEngine
	Lock      ProviderLocker
	Logger    *zap.Logger
}

// getAcceptingProvider fetches a provider and enforces its master flags.
func (svc *DefaultBookingService) getAcceptingProvider(providerID string) (*models.Provider, error) {
	provider, err := svc.Providers.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider %s: %w", providerID, err)
	}
	if provider == nil {
		return nil, ProviderNotFoundError{ProviderID: providerID}
	}
	if !provider.AcceptingBookings() {
		return nil, ProviderUnavailableError{ProviderID: providerID}
	}
	return provider, nil
}

// CheckAvailability runs the capacity check against the current bookings.
// The answer is authoritative only at the instant of the check; CreateBooking
// repeats it under the provider lock before writing.
func (svc *DefaultBookingService) CheckAvailability(providerID, startDate, endDate string, childrenCount int, excludeBookingID string) (*AvailabilityResult, error) {
	provider, err := svc.getAcceptingProvider(providerID)
	if err != nil {
		return nil, err
	}
	days, err := svc.Engine.ComputeRangeAvailability(provider, startDate, endDate, excludeBookingID)
	if err != nil {
		return nil, err
	}
	result := checkRange(days, childrenCount)
	return &result, nil
}

// GetRangeAvailability returns the provider's derived day-by-day calendar.
func (svc *DefaultBookingService) GetRangeAvailability(providerID, startDate, endDate string) ([]models.DayAvailability, error) {
	provider, err := svc.Providers.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch provider %s: %w", providerID, err)
	}
	if provider == nil {
		return nil, ProviderNotFoundError{ProviderID: providerID}
	}
	return svc.Engine.ComputeRangeAvailability(provider, startDate, endDate, "")
}

// CreateBooking validates the request, serializes per provider, re-checks
// capacity under the lock and persists the booking. Preconditions run in a
// fixed order; the first failure wins.
func (svc *DefaultBookingService) CreateBooking(req CreateBookingRequest) (*models.Booking, error) {
	// 1. Children list consistency.
	if req.ChildrenCount != len(req.ChildrenIDs) {
		return nil, ChildrenMismatchError{Declared: req.ChildrenCount, Listed: len(req.ChildrenIDs)}
	}
	if len(req.ChildrenIDs) < 1 {
		return nil, ChildrenMismatchError{Declared: req.ChildrenCount, Listed: 0}
	}

	// 2. Every referenced child must exist.
	children, err := svc.Children.GetByIDs(req.ChildrenIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch children: %w", err)
	}
	if len(children) != len(req.ChildrenIDs) {
		found := make(map[string]bool, len(children))
		for _, c := range children {
			found[c.ID] = true
		}
		var missing []string
		for _, id := range req.ChildrenIDs {
			if !found[id] {
				missing = append(missing, id)
			}
		}
		return nil, ChildNotFoundError{MissingIDs: missing}
	}

	// 3. Provider must exist and be accepting bookings.
	provider, err := svc.getAcceptingProvider(req.ProviderID)
	if err != nil {
		return nil, err
	}

	// 4. Date range must be well-formed.
	start, end, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	// 5. Quick capacity check before taking the lock, so plainly impossible
	// requests fail without contending on the provider.
	days, err := svc.Engine.ComputeRangeAvailability(provider, req.StartDate, req.EndDate, "")
	if err != nil {
		return nil, err
	}
	if result := checkRange(days, req.ChildrenCount); !result.Available {
		return nil, CapacityConflictError{ProviderID: req.ProviderID, UnavailableDates: result.UnavailableDates}
	}

	// 6. Serialize against other writers for this provider, then re-check.
	// Two requests can both pass step 5 against the same snapshot; only one
	// passes the re-check under the lock.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	token, err := svc.Lock.Acquire(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, utils.ErrLockBusy) {
			return nil, ConcurrencyConflictError{ProviderID: req.ProviderID}
		}
		return nil, fmt.Errorf("failed to acquire booking lock for provider %s: %w", req.ProviderID, err)
	}
	defer func() {
		if err := svc.Lock.Release(context.Background(), req.ProviderID, token); err != nil {
			svc.Logger.Warn("failed to release booking lock",
				zap.String("providerID", req.ProviderID), zap.Error(err))
		}
	}()

	days, err = svc.Engine.ComputeRangeAvailability(provider, req.StartDate, req.EndDate, "")
	if err != nil {
		return nil, err
	}
	if result := checkRange(days, req.ChildrenCount); !result.Available {
		return nil, CapacityConflictError{ProviderID: req.ProviderID, UnavailableDates: result.UnavailableDates}
	}

	// 7. Build and persist the booking. TotalAmount is captured now and never
	// re-derived; later price changes do not touch existing bookings.
	status := models.StatusPending
	if req.Confirmed {
		status = models.StatusConfirmed
	}
	now := time.Now()
	booking := &models.Booking{
		ID:               uuid.New().String(),
		UserID:           req.UserID,
		ProviderID:       req.ProviderID,
		ChildrenIDs:      req.ChildrenIDs,
		ChildrenCount:    req.ChildrenCount,
		StartDate:        req.StartDate,
		EndDate:          req.EndDate,
		Status:           status,
		TotalAmount:      CalculateTotalAmount(provider, start, end, req.ChildrenCount),
		PaymentMethod:    req.PaymentMethod,
		PaymentStatus:    "pending",
		EmergencyContact: req.EmergencyContact,
		Notes:            req.Notes,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := svc.Bookings.Create(booking); err != nil {
		return nil, err
	}

	svc.Logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("providerID", booking.ProviderID),
		zap.String("status", string(booking.Status)),
		zap.Int("children", booking.ChildrenCount),
		zap.String("range", booking.StartDate+".."+booking.EndDate))
	return booking, nil
}

// GetBooking fetches a booking by id.
func (svc *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	booking, err := svc.Bookings.GetByID(id)
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, BookingNotFoundError{BookingID: id}
	}
	return booking, err
}

// ListUserBookings lists a user's bookings, optionally filtered by status.
func (svc *DefaultBookingService) ListUserBookings(userID string, status models.BookingStatus) ([]models.Booking, error) {
	return svc.Bookings.GetByUser(userID, status)
}

// ListProviderBookings lists a provider's bookings, optionally filtered by status.
func (svc *DefaultBookingService) ListProviderBookings(providerID string, status models.BookingStatus) ([]models.Booking, error) {
	return svc.Bookings.GetByProvider(providerID, status)
}

// Transition applies a lifecycle transition. The repository write pins the
// status we validated against, so a concurrent transition cannot slip through
// between the check and the update.
func (svc *DefaultBookingService) Transition(bookingID string, target models.BookingStatus) (*models.Booking, error) {
	booking, err := svc.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(booking.Status, target) {
		return nil, IllegalTransitionError{From: booking.Status, To: target}
	}

	updated, err := svc.Bookings.UpdateStatus(bookingID, booking.Status, target)
	if errors.Is(err, bookingRepo.ErrStaleStatus) {
		return nil, ConcurrencyConflictError{BookingID: bookingID}
	}
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, BookingNotFoundError{BookingID: bookingID}
	}
	if err != nil {
		return nil, err
	}

	svc.Logger.Info("booking status changed",
		zap.String("bookingID", bookingID),
		zap.String("from", string(booking.Status)),
		zap.String("to", string(target)))
	return updated, nil
}

// Cancel cancels a booking with a reason. Unlike the generic transition it
// always records the reason in the append-only notes trail, and it is the
// only path that does so.
func (svc *DefaultBookingService) Cancel(bookingID, reason string, admin bool) (*models.Booking, error) {
	booking, err := svc.GetBooking(bookingID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(booking.Status, models.StatusCancelled) {
		return nil, IllegalTransitionError{From: booking.Status, To: models.StatusCancelled}
	}

	updated, err := svc.Bookings.UpdateStatus(bookingID, booking.Status, models.StatusCancelled)
	if errors.Is(err, bookingRepo.ErrStaleStatus) {
		return nil, ConcurrencyConflictError{BookingID: bookingID}
	}
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, BookingNotFoundError{BookingID: bookingID}
	}
	if err != nil {
		return nil, err
	}

	annotated, err := svc.Bookings.UpdateNotes(bookingID, appendCancellationNote(updated.Notes, reason, admin))
	if err != nil {
		// The cancellation itself stands; a failed annotation is logged, not
		// rolled back.
		svc.Logger.Error("failed to record cancellation reason",
			zap.String("bookingID", bookingID), zap.Error(err))
		return updated, nil
	}

	svc.Logger.Info("booking cancelled",
		zap.String("bookingID", bookingID),
		zap.Bool("admin", admin))
	return annotated, nil
}
