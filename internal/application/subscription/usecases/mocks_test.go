package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/kolhub/kolhub/internal/domain/brand"
	"github.com/kolhub/kolhub/internal/domain/staff"
)

var testNow = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type mockBrandRepository struct {
	mock.Mock
}

func (m *mockBrandRepository) Create(ctx context.Context, b *brand.Brand) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b.ID() == 0 {
		_ = b.SetID(1)
	}
	return args.Error(0)
}

func (m *mockBrandRepository) GetByID(ctx context.Context, id uint) (*brand.Brand, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*brand.Brand)
	return b, args.Error(1)
}

func (m *mockBrandRepository) Update(ctx context.Context, b *brand.Brand) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockBrandRepository) LockExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBrandRepository) ListReminderCandidates(ctx context.Context, now time.Time, windowDays int) ([]*brand.Brand, error) {
	args := m.Called(ctx, now, windowDays)
	list, _ := args.Get(0).([]*brand.Brand)
	return list, args.Error(1)
}

type mockStaffRepository struct {
	mock.Mock
}

func (m *mockStaffRepository) Create(ctx context.Context, s *staff.Staff) error {
	return m.Called(ctx, s).Error(0)
}

func (m *mockStaffRepository) GetByID(ctx context.Context, id uint) (*staff.Staff, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*staff.Staff)
	return s, args.Error(1)
}

func (m *mockStaffRepository) GetByEmail(ctx context.Context, email string) (*staff.Staff, error) {
	args := m.Called(ctx, email)
	s, _ := args.Get(0).(*staff.Staff)
	return s, args.Error(1)
}

func (m *mockStaffRepository) ListByBrandID(ctx context.Context, brandID uint) ([]*staff.Staff, error) {
	args := m.Called(ctx, brandID)
	list, _ := args.Get(0).([]*staff.Staff)
	return list, args.Error(1)
}

func (m *mockStaffRepository) UpdatePermissions(ctx context.Context, s *staff.Staff) error {
	return m.Called(ctx, s).Error(0)
}

type mockReminderSender struct {
	mock.Mock
}

func (m *mockReminderSender) SendExpiryReminder(ctx context.Context, msg ReminderMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type countingMetrics struct {
	locked, sent, failed int
}

func (c *countingMetrics) BrandsLocked(n int) { c.locked += n }
func (c *countingMetrics) ReminderSent()      { c.sent++ }
func (c *countingMetrics) ReminderFailed()    { c.failed++ }
