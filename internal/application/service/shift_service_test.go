package service

import (
	"context"
	"testing"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shiftFixture struct {
	svc      *ShiftService
	shifts   *fakeShiftRepo
	orders   *fakeOrderRepo
	waiterID uuid.UUID
}

func newShiftFixture(t *testing.T) *shiftFixture {
	t.Helper()
	shifts := newFakeShiftRepo()
	orders := newFakeOrderRepo()
	return &shiftFixture{
		svc:      NewShiftService(shifts, orders),
		shifts:   shifts,
		orders:   orders,
		waiterID: uuid.New(),
	}
}

func (f *shiftFixture) openShift(t *testing.T, startingBalance int64) *entity.Shift {
	t.Helper()
	shift, err := f.svc.OpenShift(context.Background(), &OpenShiftInput{
		WaiterID:        f.waiterID,
		WaiterName:      "Ana",
		StartingBalance: startingBalance,
	})
	require.NoError(t, err)
	return shift
}

func TestOpenShift(t *testing.T) {
	f := newShiftFixture(t)

	shift := f.openShift(t, 10000)

	assert.True(t, shift.IsOpen())
	assert.Equal(t, int64(10000), shift.StartingBalance)
	assert.Equal(t, int64(10000), shift.ExpectedCash)
}

func TestOpenShiftRejectsSecondOpen(t *testing.T) {
	f := newShiftFixture(t)
	f.openShift(t, 0)

	_, err := f.svc.OpenShift(context.Background(), &OpenShiftInput{
		WaiterID:   f.waiterID,
		WaiterName: "Ana",
	})
	assertAppError(t, err, 409)
}

func TestOpenShiftRejectsNegativeBalance(t *testing.T) {
	f := newShiftFixture(t)

	_, err := f.svc.OpenShift(context.Background(), &OpenShiftInput{
		WaiterID:        f.waiterID,
		WaiterName:      "Ana",
		StartingBalance: -100,
	})
	assertAppError(t, err, 422)
}

func TestShiftsAreScopedPerWaiter(t *testing.T) {
	f := newShiftFixture(t)
	f.openShift(t, 0)

	other, err := f.svc.OpenShift(context.Background(), &OpenShiftInput{
		WaiterID:   uuid.New(),
		WaiterName: "Luis",
	})
	require.NoError(t, err)
	assert.True(t, other.IsOpen())
}

func TestRecordCashMovement(t *testing.T) {
	f := newShiftFixture(t)
	f.openShift(t, 10000)
	ctx := context.Background()

	shift, err := f.svc.RecordCashMovement(ctx, &CashMovementInput{
		WaiterID:  f.waiterID,
		Direction: enum.MovementDirectionIn,
		Amount:    3000,
		Reason:    "change float",
	})
	require.NoError(t, err)

	shift, err = f.svc.RecordCashMovement(ctx, &CashMovementInput{
		WaiterID:  f.waiterID,
		Direction: enum.MovementDirectionOut,
		Amount:    1000,
		Reason:    "supplier cod",
	})
	require.NoError(t, err)

	assert.Len(t, shift.Movements, 2)
	assert.Equal(t, int64(12000), shift.ExpectedCash)
}

func TestRecordCashMovementRequiresReason(t *testing.T) {
	f := newShiftFixture(t)
	f.openShift(t, 0)

	_, err := f.svc.RecordCashMovement(context.Background(), &CashMovementInput{
		WaiterID:  f.waiterID,
		Direction: enum.MovementDirectionOut,
		Amount:    500,
		Reason:    "   ",
	})
	assertAppError(t, err, 422)
}

func TestRecordCashMovementRequiresOpenShift(t *testing.T) {
	f := newShiftFixture(t)

	_, err := f.svc.RecordCashMovement(context.Background(), &CashMovementInput{
		WaiterID:  f.waiterID,
		Direction: enum.MovementDirectionIn,
		Amount:    500,
		Reason:    "float",
	})
	assertAppError(t, err, 409)
}

func TestCloseShiftReconciliation(t *testing.T) {
	f := newShiftFixture(t)
	shift := f.openShift(t, 10000)
	ctx := context.Background()

	// 30.00 of cash sales, 10.00 paid out of the drawer
	shift.CashSales = 3000
	shift.TotalSales = 3000
	require.NoError(t, f.shifts.Update(ctx, shift))
	_, err := f.svc.RecordCashMovement(ctx, &CashMovementInput{
		WaiterID:  f.waiterID,
		Direction: enum.MovementDirectionOut,
		Amount:    1000,
		Reason:    "supplier cod",
	})
	require.NoError(t, err)

	closed, err := f.svc.CloseShift(ctx, &CloseShiftInput{
		WaiterID:   f.waiterID,
		ActorRole:  enum.RoleManager,
		ActualCash: 11800,
	})
	require.NoError(t, err)

	assert.False(t, closed.IsOpen())
	assert.Equal(t, int64(12000), closed.ExpectedCash)
	require.NotNil(t, closed.ActualCash)
	assert.Equal(t, int64(11800), *closed.ActualCash)
	require.NotNil(t, closed.Difference)
	assert.Equal(t, int64(-200), *closed.Difference) // 2.00 short
}

func TestCloseShiftBlockedByOpenOrders(t *testing.T) {
	f := newShiftFixture(t)
	f.openShift(t, 0)
	ctx := context.Background()

	order := &entity.Order{
		OrderNumber: 7,
		TableID:     3,
		WaiterID:    f.waiterID,
		WaiterName:  "Ana",
		Status:      enum.OrderStatusOpen,
	}
	require.NoError(t, f.orders.Create(ctx, order))

	_, err := f.svc.CloseShift(ctx, &CloseShiftInput{WaiterID: f.waiterID, ActorRole: enum.RoleManager})
	assertAppError(t, err, 409)

	// The error payload names the blocking orders
	appErr := apperror.GetAppError(err)
	require.NotNil(t, appErr.Data)

	// Another waiter's open order does not block
	other := uuid.New()
	otherShift, err := f.svc.OpenShift(ctx, &OpenShiftInput{WaiterID: other, WaiterName: "Luis"})
	require.NoError(t, err)
	closed, err := f.svc.CloseShift(ctx, &CloseShiftInput{WaiterID: other, ActorRole: enum.RoleManager})
	require.NoError(t, err)
	assert.Equal(t, otherShift.ID, closed.ID)
}

func TestCloseShiftRequiresManager(t *testing.T) {
	f := newShiftFixture(t)
	f.openShift(t, 0)

	_, err := f.svc.CloseShift(context.Background(), &CloseShiftInput{
		WaiterID:  f.waiterID,
		ActorRole: enum.RoleWaiter,
	})
	assertAppError(t, err, 403)
}

func TestCloseShiftRequiresOpenShift(t *testing.T) {
	f := newShiftFixture(t)

	_, err := f.svc.CloseShift(context.Background(), &CloseShiftInput{WaiterID: f.waiterID, ActorRole: enum.RoleManager})
	assertAppError(t, err, 409)
}

func TestCloseShiftIsTerminal(t *testing.T) {
	f := newShiftFixture(t)
	f.openShift(t, 0)
	ctx := context.Background()

	_, err := f.svc.CloseShift(ctx, &CloseShiftInput{WaiterID: f.waiterID, ActorRole: enum.RoleManager})
	require.NoError(t, err)

	// A second close finds no open shift
	_, err = f.svc.CloseShift(ctx, &CloseShiftInput{WaiterID: f.waiterID, ActorRole: enum.RoleManager})
	assertAppError(t, err, 409)

	_, err = f.svc.RecordCashMovement(ctx, &CashMovementInput{
		WaiterID:  f.waiterID,
		Direction: enum.MovementDirectionIn,
		Amount:    100,
		Reason:    "late float",
	})
	assertAppError(t, err, 409)
}
