package create_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamspot/GS-CabinService/internal/domain"
	bookingRepo "github.com/glamspot/GS-CabinService/internal/infra/storage/booking"
	pricingService "github.com/glamspot/GS-CabinService/internal/service/pricing"
	"github.com/glamspot/GS-CabinService/pkg/ptr"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

type fakePricingService struct {
	cabin *domain.Cabin
	err   error
}

func (f *fakePricingService) CabinSnapshot(ctx context.Context, cabinID int64, from, to time.Time) (*domain.Cabin, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.cabin, nil
}

type fakeBookingRepo struct {
	existing    []*domain.Booking
	slotCount   int
	createErr   error
	created     *domain.Booking
	nextID      int64
	createCalls int
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *booking
	created.ID = f.nextID
	created.CreatedAt = time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	f.created = &created
	return &created, nil
}

func (f *fakeBookingRepo) GetConfirmedByCabins(ctx context.Context, cabinIDs []int64, from, to time.Time) ([]*domain.Booking, error) {
	return f.existing, nil
}

func (f *fakeBookingRepo) CountConfirmedForSlot(ctx context.Context, cabinID int64, date time.Time, shift domain.Shift) (int, error) {
	return f.slotCount, nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func bookableCabin() *domain.Cabin {
	return &domain.Cabin{
		ID:         10,
		LocationID: 1,
		OwnerID:    100,
		BaseAvailability: map[domain.Shift]bool{
			domain.ShiftMorning:   true,
			domain.ShiftAfternoon: true,
			domain.ShiftEvening:   true,
		},
		Price: ptr.Ptr(150.0),
	}
}

func newTestUseCase(pricing *fakePricingService, repo *fakeBookingRepo, now time.Time) *UseCase {
	uc := NewUseCase(pricing, repo, fakeTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

func TestExecute_CreatesConfirmedBooking(t *testing.T) {
	// Понедельник
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	repo := &fakeBookingRepo{nextID: 42}
	uc := newTestUseCase(&fakePricingService{cabin: bookableCabin()}, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  7,
		CabinID: 10,
		Date:    time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		Shift:   "morning",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-06-09", resp.BookingDate)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 150.0, resp.Price)

	require.NotNil(t, repo.created)
	assert.Equal(t, int64(1), repo.created.LocationID)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
}

func TestExecute_PriceResolvedFromOverride(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	cabin := bookableCabin()
	cabin.SpecificDates = map[types.DateString]map[domain.Shift]domain.OverrideEntry{
		"2025-06-09": {
			domain.ShiftMorning: {Price: ptr.Ptr(275.0)},
		},
	}

	repo := &fakeBookingRepo{nextID: 1}
	uc := newTestUseCase(&fakePricingService{cabin: cabin}, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  7,
		CabinID: 10,
		Date:    time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC),
		Shift:   "morning",
	})
	require.NoError(t, err)
	assert.Equal(t, 275.0, resp.Price)
}

func TestExecute_Rejections(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	future := time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC)

	closedCabin := bookableCabin()
	closedCabin.SpecificDates = map[types.DateString]map[domain.Shift]domain.OverrideEntry{
		"2025-06-09": {
			domain.ShiftMorning: {Available: ptr.Ptr(false)},
		},
	}

	bookedRepo := &fakeBookingRepo{
		existing: []*domain.Booking{{
			ID:          1,
			CabinID:     10,
			BookingDate: future,
			Shift:       domain.ShiftMorning,
			Status:      domain.StatusConfirmed,
		}},
	}

	tests := []struct {
		name    string
		pricing *fakePricingService
		repo    *fakeBookingRepo
		req     *Request
		wantErr error
	}{
		{
			name:    "past date",
			pricing: &fakePricingService{cabin: bookableCabin()},
			repo:    &fakeBookingRepo{},
			req:     &Request{UserID: 7, CabinID: 10, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), Shift: "morning"},
			wantErr: ErrDateInPast,
		},
		{
			name:    "manually closed shift",
			pricing: &fakePricingService{cabin: closedCabin},
			repo:    &fakeBookingRepo{},
			req:     &Request{UserID: 7, CabinID: 10, Date: future, Shift: "morning"},
			wantErr: ErrSlotClosed,
		},
		{
			name:    "slot already booked",
			pricing: &fakePricingService{cabin: bookableCabin()},
			repo:    bookedRepo,
			req:     &Request{UserID: 7, CabinID: 10, Date: future, Shift: "morning"},
			wantErr: ErrSlotTaken,
		},
		{
			name:    "concurrent booking caught by in-tx recheck",
			pricing: &fakePricingService{cabin: bookableCabin()},
			repo:    &fakeBookingRepo{slotCount: 1},
			req:     &Request{UserID: 7, CabinID: 10, Date: future, Shift: "morning"},
			wantErr: ErrSlotTaken,
		},
		{
			name:    "concurrent booking caught by unique index",
			pricing: &fakePricingService{cabin: bookableCabin()},
			repo:    &fakeBookingRepo{createErr: bookingRepo.ErrSlotTaken},
			req:     &Request{UserID: 7, CabinID: 10, Date: future, Shift: "morning"},
			wantErr: ErrSlotTaken,
		},
		{
			name:    "unknown shift",
			pricing: &fakePricingService{cabin: bookableCabin()},
			repo:    &fakeBookingRepo{},
			req:     &Request{UserID: 7, CabinID: 10, Date: future, Shift: "night"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "cabin not found",
			pricing: &fakePricingService{err: pricingService.ErrCabinNotFound},
			repo:    &fakeBookingRepo{},
			req:     &Request{UserID: 7, CabinID: 10, Date: future, Shift: "morning"},
			wantErr: ErrCabinNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(tt.pricing, tt.repo, now)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, tt.repo.created)
		})
	}
}
