package reservation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/domain"
	"github.com/ThomasZeryouh/gite-location-ellezelles/internal/repository"
)

const dateLayout = "2006-01-02"

// Service owns the reservation collection and its single invariant: no
// two stored stays overlap under the arrival/departure rule.
type Service struct {
	reservations Repository
	notifs       EventNotifier

	// mu serializes the check-then-act sequence (list, overlap scan,
	// write) so two concurrent requests with overlapping ranges cannot
	// both pass the scan. On postgres the exclusion constraint backs
	// this up; sqlite relies on the mutex alone.
	mu sync.Mutex
}

func NewService(reservations Repository, notifs EventNotifier) *Service {
	return &Service{
		reservations: reservations,
		notifs:       notifs,
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.List(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	r, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return r, nil
}

func (s *Service) Create(ctx context.Context, req UpsertReservationRequest) (*domain.Reservation, error) {
	in, err := validateUpsert(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.reservations.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range existing {
		if in.stay.Overlaps(existing[i].Range()) {
			return nil, ErrConflict
		}
	}

	now := time.Now().UTC()
	r := &domain.Reservation{
		ID:        uuid.NewString(),
		GuestName: in.guestName,
		Email:     in.email,
		Phone:     in.phone,
		Start:     in.stay.Start,
		End:       in.stay.End,
		Note:      in.note,
		Status:    domain.ReservationConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.reservations.Create(ctx, r); err != nil {
		if repository.IsOverlapViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyReservationCreated(ctx, r)
	}
	return r, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpsertReservationRequest) (*domain.Reservation, error) {
	in, err := validateUpsert(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	// The edited reservation must not count against itself.
	others, err := s.reservations.ListExcept(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range others {
		if in.stay.Overlaps(others[i].Range()) {
			return nil, ErrConflict
		}
	}

	updated := &domain.Reservation{
		ID:        current.ID,
		GuestName: in.guestName,
		Email:     in.email,
		Phone:     in.phone,
		Start:     in.stay.Start,
		End:       in.stay.End,
		Note:      in.note,
		Status:    domain.ReservationConfirmed,
		CreatedAt: current.CreatedAt,
		UpdatedAt: time.Now().UTC(),
	}

	if err := s.reservations.Update(ctx, updated); err != nil {
		if repository.IsOverlapViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyReservationUpdated(ctx, updated)
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	// Same critical section as Create/Update: a delete slipping between
	// an update's conflict scan and its Save would let the save
	// re-insert the removed row.
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.reservations.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyReservationDeleted(ctx, id)
	}
	return nil
}

// BusyRanges returns the occupied date ranges for the public calendar,
// optionally limited to stays intersecting [from, to].
func (s *Service) BusyRanges(ctx context.Context, from, to string) ([]BusyRange, error) {
	var fromDay, toDay time.Time
	var err error
	if from != "" {
		if fromDay, err = parseDay(from); err != nil {
			return nil, ErrValidation
		}
	}
	if to != "" {
		if toDay, err = parseDay(to); err != nil {
			return nil, ErrValidation
		}
	}

	all, err := s.reservations.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]BusyRange, 0, len(all))
	for i := range all {
		r := &all[i]
		if !fromDay.IsZero() && !r.End.After(fromDay) {
			continue
		}
		if !toDay.IsZero() && !r.Start.Before(toDay) {
			continue
		}
		out = append(out, BusyRange{
			StartDate: r.Start.Format(dateLayout),
			EndDate:   r.End.Format(dateLayout),
		})
	}
	return out, nil
}

type upsertInput struct {
	guestName string
	email     string
	phone     string
	note      string
	stay      domain.DateRange
}

func validateUpsert(req UpsertReservationRequest) (*upsertInput, error) {
	in := &upsertInput{
		guestName: strings.TrimSpace(req.GuestName),
		email:     strings.TrimSpace(req.Email),
		phone:     strings.TrimSpace(req.Phone),
		note:      strings.TrimSpace(req.Note),
	}
	if in.guestName == "" || in.email == "" || in.phone == "" {
		return nil, ErrValidation
	}

	start, err := parseDay(req.StartDate)
	if err != nil {
		return nil, ErrValidation
	}
	end, err := parseDay(req.EndDate)
	if err != nil {
		return nil, ErrValidation
	}

	// Strict ordering: a stay spans at least one night, same-day
	// bookings are rejected.
	if !start.Before(end) {
		return nil, ErrValidation
	}

	in.stay = domain.DateRange{Start: start, End: end}
	return in, nil
}

func parseDay(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return domain.NormalizeDay(t), nil
}
