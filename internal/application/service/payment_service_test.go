package service

import (
	"context"
	"testing"
	"time"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	svc       *PaymentService
	orders    *fakeOrderRepo
	shifts    *fakeShiftRepo
	customers *fakeCustomerRepo
	tx        *fakeTxManager

	waiterID uuid.UUID
	shift    *entity.Shift
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	t.Helper()
	ctx := context.Background()

	orders := newFakeOrderRepo()
	shifts := newFakeShiftRepo()
	customers := newFakeCustomerRepo()
	settings := newFakeSettingsRepo()

	walkIn := &entity.Customer{Name: "Walk-in", IsWalkIn: true}
	require.NoError(t, customers.Create(ctx, walkIn))

	waiterID := uuid.New()
	shift := &entity.Shift{
		WaiterID:        waiterID,
		WaiterName:      "Ana",
		StartTime:       time.Now(),
		StartingBalance: 10000,
		ExpectedCash:    10000,
	}
	require.NoError(t, shifts.Create(ctx, shift))

	tx := &fakeTxManager{}
	return &paymentFixture{
		svc:       NewPaymentService(orders, shifts, customers, settings, tx),
		orders:    orders,
		shifts:    shifts,
		customers: customers,
		tx:        tx,
		waiterID:  waiterID,
		shift:     shift,
	}
}

// seedOrder creates an open order with the given total, already computed
func (f *paymentFixture) seedOrder(t *testing.T, total int64) *entity.Order {
	t.Helper()
	walkIn, err := f.customers.GetWalkIn(context.Background())
	require.NoError(t, err)

	order := &entity.Order{
		OrderNumber: 1,
		TableID:     5,
		WaiterID:    f.waiterID,
		WaiterName:  "Ana",
		CustomerID:  &walkIn.ID,
		Status:      enum.OrderStatusOpen,
		SubTotal:    total,
		Total:       total,
	}
	require.NoError(t, f.orders.Create(context.Background(), order))
	return order
}

func TestReconcilePartialPaymentKeepsOrderOpen(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 2500)

	result, err := f.svc.Reconcile(context.Background(), &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCash, Amount: 1000}},
	})
	require.NoError(t, err)

	assert.False(t, result.Closed)
	assert.Equal(t, enum.OrderStatusOpen, result.Order.Status)
	assert.Equal(t, int64(1500), result.Order.Due())
}

func TestReconcileFullPaymentClosesOrder(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 2500)

	result, err := f.svc.Reconcile(context.Background(), &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders: []Tender{
			{Method: enum.PaymentMethodCash, Amount: 1000},
			{Method: enum.PaymentMethodCard, Amount: 1500},
		},
	})
	require.NoError(t, err)

	assert.True(t, result.Closed)
	assert.Equal(t, enum.OrderStatusClosed, result.Order.Status)
	assert.NotNil(t, result.Order.ClosedAt)
	assert.Equal(t, int64(0), result.Order.Due())

	// Split tenders keep their order
	require.Len(t, result.Order.Payments, 2)
	assert.Equal(t, 0, result.Order.Payments[0].Position)
	assert.Equal(t, 1, result.Order.Payments[1].Position)

	// Order, payments and shift takings were written in one scope
	assert.Equal(t, 1, f.tx.calls)
}

func TestReconcileAcrossMultipleTransactions(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 2000)
	ctx := context.Background()

	result, err := f.svc.Reconcile(ctx, &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCash, Amount: 1500}},
	})
	require.NoError(t, err)
	assert.False(t, result.Closed)

	result, err = f.svc.Reconcile(ctx, &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCash, Amount: 500}},
	})
	require.NoError(t, err)
	assert.True(t, result.Closed)

	// The order lands in the shift ledger exactly once
	assert.Equal(t, []uuid.UUID{order.ID}, f.shift.OrderIDs)
	assert.Equal(t, int64(2000), f.shift.CashSales)
}

func TestReconcileOverpaymentClosesWithChange(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 2000)

	result, err := f.svc.Reconcile(context.Background(), &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCash, Amount: 2500}},
	})
	require.NoError(t, err)

	assert.True(t, result.Closed)
	assert.Equal(t, int64(500), result.ChangeDue)
	assert.Equal(t, int64(0), result.Order.Due())
	// The change came back out of the drawer
	assert.Equal(t, int64(2000), f.shift.CashSales)
	assert.Equal(t, int64(12000), f.shift.ExpectedCash)
}

func TestReconcileRejectsChangeOnCard(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 2000)

	_, err := f.svc.Reconcile(context.Background(), &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCard, Amount: 2500}},
	})
	assertAppError(t, err, 422)
}

func TestReconcileRejectsNonPositiveTender(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 2000)

	_, err := f.svc.Reconcile(context.Background(), &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCash, Amount: 0}},
	})
	assertAppError(t, err, 422)
}

func TestReconcileRequiresOpenShift(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 2000)

	_, err := f.svc.Reconcile(context.Background(), &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: uuid.New(), // no shift
		Tenders:  []Tender{{Method: enum.PaymentMethodCash, Amount: 2000}},
	})
	assertAppError(t, err, 409)
}

func TestReconcileRejectsClosedOrder(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 2000)
	order.Status = enum.OrderStatusClosed

	_, err := f.svc.Reconcile(context.Background(), &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCash, Amount: 2000}},
	})
	assertAppError(t, err, 409)
}

func TestReconcileSplitsShiftTakingsByMethod(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 3000)
	ctx := context.Background()

	marta := &entity.Customer{Name: "Marta"}
	require.NoError(t, f.customers.Create(ctx, marta))
	order.CustomerID = &marta.ID

	_, err := f.svc.Reconcile(ctx, &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders: []Tender{
			{Method: enum.PaymentMethodCash, Amount: 1000},
			{Method: enum.PaymentMethodCard, Amount: 1500},
			{Method: enum.PaymentMethodCredit, Amount: 500},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1000), f.shift.CashSales)
	assert.Equal(t, int64(1500), f.shift.CardSales)
	assert.Equal(t, int64(500), f.shift.CreditSales)
	assert.Equal(t, int64(3000), f.shift.TotalSales)
	// Only cash moves the drawer expectation
	assert.Equal(t, int64(11000), f.shift.ExpectedCash)
}

func TestCreditTenderDebitsCustomer(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 2000)
	ctx := context.Background()

	marta := &entity.Customer{Name: "Marta", CreditBalance: 500}
	require.NoError(t, f.customers.Create(ctx, marta))
	order.CustomerID = &marta.ID

	result, err := f.svc.Reconcile(ctx, &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCredit, Amount: 2000}},
	})
	require.NoError(t, err)

	assert.True(t, result.Closed)
	assert.Equal(t, int64(2500), marta.CreditBalance)
}

func TestCreditTenderRejectsWalkIn(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 2000) // walk-in assigned by default

	_, err := f.svc.Reconcile(context.Background(), &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCredit, Amount: 2000}},
	})
	assertAppError(t, err, 422)
}

func TestZeroTotalOrderClosesWithoutTenders(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 0)

	// Fully discounted down to zero, but something was ordered
	order.Items = []entity.OrderItem{{OrderID: order.ID, Name: "Menu del dia", Price: 1200, Quantity: 1}}
	order.SubTotal = 1200
	order.DiscountAmount = 1200

	result, err := f.svc.Reconcile(context.Background(), &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
	})
	require.NoError(t, err)

	assert.True(t, result.Closed)
	assert.Empty(t, result.Order.Payments)
	assert.Equal(t, []uuid.UUID{order.ID}, f.shift.OrderIDs)
}

func TestEmptyOrderCannotClose(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 0)

	_, err := f.svc.Reconcile(context.Background(), &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
	})
	assertAppError(t, err, 409)
}

func TestCashTenderSignalsDrawerKick(t *testing.T) {
	f := newPaymentFixture(t)
	ctx := context.Background()

	cash := f.seedOrder(t, 1000)
	result, err := f.svc.Reconcile(ctx, &ReconcileInput{
		OrderID:  cash.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCash, Amount: 1000}},
	})
	require.NoError(t, err)
	assert.True(t, result.KickDrawer)

	card := f.seedOrder(t, 1000)
	card.TableID = 6
	result, err = f.svc.Reconcile(ctx, &ReconcileInput{
		OrderID:  card.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCard, Amount: 1000}},
	})
	require.NoError(t, err)
	assert.False(t, result.KickDrawer)
}

func TestDiscountCountsOnceAtClose(t *testing.T) {
	f := newPaymentFixture(t)
	order := f.seedOrder(t, 2000)
	order.DiscountAmount = 300
	ctx := context.Background()

	_, err := f.svc.Reconcile(ctx, &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCash, Amount: 1000}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(0), f.shift.TotalDiscounts)

	_, err = f.svc.Reconcile(ctx, &ReconcileInput{
		OrderID:  order.ID,
		WaiterID: f.waiterID,
		Tenders:  []Tender{{Method: enum.PaymentMethodCash, Amount: 1000}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(300), f.shift.TotalDiscounts)
}
