package get_cabin_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamspot/GS-CabinService/internal/domain"
	pricingService "github.com/glamspot/GS-CabinService/internal/service/pricing"
	"github.com/glamspot/GS-CabinService/pkg/ptr"
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
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetConfirmedByCabins(ctx context.Context, cabinIDs []int64, from, to time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeMetrics struct {
	resolutions map[string]int
}

func (f *fakeMetrics) RecordSlotResolution(status string) {
	if f.resolutions == nil {
		f.resolutions = make(map[string]int)
	}
	f.resolutions[status]++
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

func calendarCabin() *domain.Cabin {
	return &domain.Cabin{
		ID:         10,
		LocationID: 1,
		OwnerID:    100,
		Name:       "Cabin A",
		BaseAvailability: map[domain.Shift]bool{
			domain.ShiftMorning:   true,
			domain.ShiftAfternoon: true,
			domain.ShiftEvening:   true,
		},
		Price:     ptr.Ptr(150.0),
		CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func newTestUseCase(pricing *fakePricingService, repo *fakeBookingRepo, now time.Time) (*UseCase, *fakeMetrics) {
	metrics := &fakeMetrics{}
	uc := NewUseCase(pricing, repo, metrics, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, metrics
}

func TestExecute_WeekWindow(t *testing.T) {
	// Понедельник
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	uc, metrics := newTestUseCase(
		&fakePricingService{cabin: calendarCabin()},
		&fakeBookingRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{CabinID: 10})
	require.NoError(t, err)

	require.Len(t, resp.Days, domain.DefaultWindowDays)
	assert.Equal(t, int64(10), resp.CabinID)
	assert.Equal(t, "Cabin A", resp.CabinName)
	assert.Equal(t, "2025-06-02", resp.Days[0].Date)
	assert.Equal(t, "2025-06-08", resp.Days[6].Date)

	for _, day := range resp.Days {
		require.Len(t, day.Shifts, 3)
		for _, slot := range day.Shifts {
			assert.Equal(t, string(domain.SlotAvailable), slot.Status)
			require.NotNil(t, slot.Price)
			assert.Equal(t, 150.0, *slot.Price)
			assert.True(t, slot.Bookable)
		}
	}

	assert.Equal(t, 21, metrics.resolutions[string(domain.SlotAvailable)])
}

func TestExecute_MidWeekAnchorShowsPastDays(t *testing.T) {
	// Среда: понедельник и вторник окна уже в прошлом
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)

	uc, _ := newTestUseCase(
		&fakePricingService{cabin: calendarCabin()},
		&fakeBookingRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{CabinID: 10})
	require.NoError(t, err)
	require.Len(t, resp.Days, 7)

	assert.Equal(t, "2025-06-02", resp.Days[0].Date)
	for _, slot := range resp.Days[0].Shifts {
		assert.Equal(t, string(domain.SlotPastUnavailable), slot.Status)
		assert.False(t, slot.Bookable)
	}
	for _, slot := range resp.Days[2].Shifts {
		assert.Equal(t, string(domain.SlotAvailable), slot.Status)
	}
}

func TestExecute_SingleDay(t *testing.T) {
	now := time.Date(2025, 6, 4, 12, 0, 0, 0, time.UTC)
	anchor := time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC)

	uc, _ := newTestUseCase(
		&fakePricingService{cabin: calendarCabin()},
		&fakeBookingRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{
		CabinID: 10,
		Date:    &anchor,
		Days:    ptr.Ptr(1),
	})
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	assert.Equal(t, "2025-06-06", resp.Days[0].Date)
}

func TestExecute_BookedSlot(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	booking := &domain.Booking{
		ID:          1,
		CabinID:     10,
		BookingDate: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
		Shift:       domain.ShiftMorning,
		Status:      domain.StatusConfirmed,
	}

	uc, _ := newTestUseCase(
		&fakePricingService{cabin: calendarCabin()},
		&fakeBookingRepo{bookings: []*domain.Booking{booking}},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{CabinID: 10})
	require.NoError(t, err)

	tuesday := resp.Days[1]
	require.Equal(t, "2025-06-03", tuesday.Date)
	assert.Equal(t, string(domain.SlotBooked), tuesday.Shifts[0].Status)
	assert.False(t, tuesday.Shifts[0].Bookable)
	assert.Equal(t, string(domain.SlotAvailable), tuesday.Shifts[1].Status)
}

func TestExecute_WindowClippedByCabinCreation(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	cabin := calendarCabin()
	// Кабина создана в среду текущей недели
	cabin.CreatedAt = time.Date(2025, 6, 4, 9, 30, 0, 0, time.UTC)

	uc, _ := newTestUseCase(
		&fakePricingService{cabin: cabin},
		&fakeBookingRepo{},
		now,
	)

	resp, err := uc.Execute(context.Background(), &Request{CabinID: 10})
	require.NoError(t, err)

	require.Len(t, resp.Days, 5)
	assert.Equal(t, "2025-06-04", resp.Days[0].Date)
}

func TestExecute_Errors(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pricing *fakePricingService
		repo    *fakeBookingRepo
		req     *Request
		wantErr error
	}{
		{
			name:    "invalid cabin id",
			pricing: &fakePricingService{cabin: calendarCabin()},
			repo:    &fakeBookingRepo{},
			req:     &Request{CabinID: 0},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "window too long",
			pricing: &fakePricingService{cabin: calendarCabin()},
			repo:    &fakeBookingRepo{},
			req:     &Request{CabinID: 10, Days: ptr.Ptr(domain.MaxWindowDays + 1)},
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "cabin not found",
			pricing: &fakePricingService{err: pricingService.ErrCabinNotFound},
			repo:    &fakeBookingRepo{},
			req:     &Request{CabinID: 10},
			wantErr: ErrCabinNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newTestUseCase(tt.pricing, tt.repo, now)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
