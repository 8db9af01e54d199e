package apply_batch_pricing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamspot/GS-CabinService/internal/domain"
	pricingRepo "github.com/glamspot/GS-CabinService/internal/infra/storage/pricing"
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

type fakePricingRepo struct {
	upserted []pricingRepo.OverrideRow
	err      error
}

func (f *fakePricingRepo) UpsertOverrides(ctx context.Context, cabinID int64, rows []pricingRepo.OverrideRow) error {
	if f.err != nil {
		return f.err
	}
	f.upserted = rows
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeMetrics struct {
	counts map[string]int
}

func (f *fakeMetrics) RecordBatchOverrides(result string, count int) {
	if f.counts == nil {
		f.counts = make(map[string]int)
	}
	f.counts[result] += count
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

func batchCabin() *domain.Cabin {
	return &domain.Cabin{
		ID:      10,
		OwnerID: 100,
		BaseAvailability: map[domain.Shift]bool{
			domain.ShiftMorning:   true,
			domain.ShiftAfternoon: true,
			domain.ShiftEvening:   false,
		},
		Price: ptr.Ptr(150.0),
	}
}

func newTestUseCase(pricing *fakePricingService, repo *fakePricingRepo, now time.Time) (*UseCase, *fakeMetrics) {
	metrics := &fakeMetrics{}
	uc := NewUseCase(pricing, repo, fakeTxManager{}, metrics, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc, metrics
}

func TestExecute_ExplicitDates(t *testing.T) {
	// Понедельник
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	repo := &fakePricingRepo{}
	uc, metrics := newTestUseCase(&fakePricingService{cabin: batchCabin()}, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  100,
		CabinID: 10,
		Price:   200,
		Shifts:  []string{"morning"},
		Dates:   []string{"2025-06-01", "2025-06-09"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-06-09"}, resp.AppliedDates)
	assert.Equal(t, []string{"2025-06-01"}, resp.SkippedPastDates)

	require.Len(t, repo.upserted, 1)
	row := repo.upserted[0]
	assert.Equal(t, types.DateString("2025-06-09"), row.Date)
	assert.Equal(t, domain.ShiftMorning, row.Shift)
	require.NotNil(t, row.Price)
	assert.Equal(t, 200.0, *row.Price)
	// Новая ячейка наследует текущую расчётную доступность смены
	require.NotNil(t, row.Available)
	assert.True(t, *row.Available)

	assert.Equal(t, 1, metrics.counts["applied"])
	assert.Equal(t, 1, metrics.counts["skipped_past"])
}

func TestExecute_ClosedShiftStaysClosed(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	repo := &fakePricingRepo{}
	uc, _ := newTestUseCase(&fakePricingService{cabin: batchCabin()}, repo, now)

	_, err := uc.Execute(context.Background(), &Request{
		UserID:  100,
		CabinID: 10,
		Price:   300,
		Shifts:  []string{"evening"}, // базово закрыта
		Dates:   []string{"2025-06-09"},
	})
	require.NoError(t, err)

	require.Len(t, repo.upserted, 1)
	require.NotNil(t, repo.upserted[0].Available)
	assert.False(t, *repo.upserted[0].Available)
}

func TestExecute_MonthTarget(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	repo := &fakePricingRepo{}
	uc, _ := newTestUseCase(&fakePricingService{cabin: batchCabin()}, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:  100,
		CabinID: 10,
		Price:   200,
		Shifts:  []string{"morning"},
		Month:   ptr.Ptr("2025-06"),
	})
	require.NoError(t, err)

	// 1 июня в прошлом, со 2 по 30 применяется
	assert.Len(t, resp.AppliedDates, 29)
	assert.Equal(t, []string{"2025-06-01"}, resp.SkippedPastDates)
	assert.Len(t, repo.upserted, 29)
}

func TestExecute_WeekdayTarget(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	repo := &fakePricingRepo{}
	uc, _ := newTestUseCase(&fakePricingService{cabin: batchCabin()}, repo, now)

	resp, err := uc.Execute(context.Background(), &Request{
		UserID:   100,
		CabinID:  10,
		Price:    200,
		Shifts:   []string{"morning"},
		Weekdays: []int{1}, // понедельники июня
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-06-02", "2025-06-09", "2025-06-16", "2025-06-23", "2025-06-30"}, resp.AppliedDates)
	assert.Empty(t, resp.SkippedPastDates)
}

func TestExecute_Rejections(t *testing.T) {
	now := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		pricing *fakePricingService
		req     *Request
		wantErr error
	}{
		{
			name:    "no target mode",
			pricing: &fakePricingService{cabin: batchCabin()},
			req:     &Request{UserID: 100, CabinID: 10, Price: 200, Shifts: []string{"morning"}},
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "two target modes",
			pricing: &fakePricingService{cabin: batchCabin()},
			req: &Request{
				UserID: 100, CabinID: 10, Price: 200, Shifts: []string{"morning"},
				Dates: []string{"2025-06-09"}, Month: ptr.Ptr("2025-06"),
			},
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "malformed date",
			pricing: &fakePricingService{cabin: batchCabin()},
			req: &Request{
				UserID: 100, CabinID: 10, Price: 200, Shifts: []string{"morning"},
				Dates: []string{"06/09/2025"},
			},
			wantErr: ErrInvalidTarget,
		},
		{
			name:    "non-positive price",
			pricing: &fakePricingService{cabin: batchCabin()},
			req: &Request{
				UserID: 100, CabinID: 10, Price: 0, Shifts: []string{"morning"},
				Dates: []string{"2025-06-09"},
			},
			wantErr: ErrInvalidPrice,
		},
		{
			name:    "unknown shift",
			pricing: &fakePricingService{cabin: batchCabin()},
			req: &Request{
				UserID: 100, CabinID: 10, Price: 200, Shifts: []string{"night"},
				Dates: []string{"2025-06-09"},
			},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "all dates in the past",
			pricing: &fakePricingService{cabin: batchCabin()},
			req: &Request{
				UserID: 100, CabinID: 10, Price: 200, Shifts: []string{"morning"},
				Dates: []string{"2025-05-30", "2025-06-01"},
			},
			wantErr: ErrNoApplicableDates,
		},
		{
			name:    "not the owner",
			pricing: &fakePricingService{cabin: batchCabin()},
			req: &Request{
				UserID: 999, CabinID: 10, Price: 200, Shifts: []string{"morning"},
				Dates: []string{"2025-06-09"},
			},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "cabin not found",
			pricing: &fakePricingService{err: pricingService.ErrCabinNotFound},
			req: &Request{
				UserID: 100, CabinID: 10, Price: 200, Shifts: []string{"morning"},
				Dates: []string{"2025-06-09"},
			},
			wantErr: ErrCabinNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakePricingRepo{}
			uc, _ := newTestUseCase(tt.pricing, repo, now)

			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, repo.upserted)
		})
	}
}
