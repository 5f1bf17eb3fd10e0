package service

import (
	"context"
	"time"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/google/uuid"
)

// PaymentService reconciles payments against open orders and folds the
// takings into the waiter's open shift.
type PaymentService struct {
	orderRepo    repository.OrderRepository
	shiftRepo    repository.ShiftRepository
	customerRepo repository.CustomerRepository
	settingsRepo repository.SettingsRepository
	tx           repository.TxManager
}

// NewPaymentService creates a new payment service
func NewPaymentService(
	orderRepo repository.OrderRepository,
	shiftRepo repository.ShiftRepository,
	customerRepo repository.CustomerRepository,
	settingsRepo repository.SettingsRepository,
	tx repository.TxManager,
) *PaymentService {
	return &PaymentService{
		orderRepo:    orderRepo,
		shiftRepo:    shiftRepo,
		customerRepo: customerRepo,
		settingsRepo: settingsRepo,
		tx:           tx,
	}
}

// Tender is one payment leg of a checkout transaction, amount in cents
type Tender struct {
	Method enum.PaymentMethod
	Amount int64
}

// ReconcileInput represents one checkout transaction against an order
type ReconcileInput struct {
	OrderID  uuid.UUID
	WaiterID uuid.UUID
	Tenders  []Tender
}

// ReconcileResult carries the settled order plus side-channel signals for
// the till hardware. ChangeDue is the cash to hand back when the tendered
// total exceeds the amount due.
type ReconcileResult struct {
	Order      *entity.Order
	Closed     bool
	ChangeDue  int64
	KickDrawer bool
}

// Reconcile applies a set of tenders to an open order. The order closes
// exactly when nothing remains due; overpaying closes it and reports the
// change, while a short amount leaves it open as partially paid. Every
// tender lands in the waiter's open shift, and credit tenders additionally
// debit the assigned customer's balance.
func (s *PaymentService) Reconcile(ctx context.Context, input *ReconcileInput) (*ReconcileResult, error) {
	order, err := s.orderRepo.GetByID(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	if !order.IsOpen() {
		return nil, apperror.NewInvalidStateError("Order is no longer open")
	}

	shift, err := s.shiftRepo.GetOpenByWaiter(ctx, input.WaiterID)
	if err != nil {
		return nil, err
	}
	if shift == nil {
		return nil, apperror.NewInvalidStateError("No open shift; open a shift before taking payments")
	}

	due := order.Due()

	// A fully discounted order closes with an empty tender list, but only
	// when something was actually ordered
	if due == 0 && len(input.Tenders) == 0 {
		if len(order.Items) == 0 {
			return nil, apperror.NewInvalidStateError("Order has no items to settle")
		}
		if err := s.closeOrder(ctx, order, shift); err != nil {
			return nil, err
		}
		return &ReconcileResult{Order: order, Closed: true}, nil
	}

	if len(input.Tenders) == 0 {
		return nil, apperror.NewUnprocessableError("At least one payment is required")
	}

	var tendered, creditAmount, cashAmount int64
	for _, t := range input.Tenders {
		if !t.Method.Valid() {
			return nil, apperror.NewUnprocessableError("Unknown payment method")
		}
		if t.Amount <= 0 {
			return nil, apperror.NewUnprocessableError("Payment amounts must be positive")
		}
		tendered += t.Amount
		switch t.Method {
		case enum.PaymentMethodCredit:
			creditAmount += t.Amount
		case enum.PaymentMethodCash:
			cashAmount += t.Amount
		}
	}

	var changeDue int64
	if tendered > due {
		changeDue = tendered - due
		// Change is handed back from the drawer, so only a cash leg can
		// carry it
		if changeDue > cashAmount {
			return nil, apperror.NewUnprocessableError("Change can only be given on cash payments")
		}
		cashAmount -= changeDue
	}

	var customer *entity.Customer
	if creditAmount > 0 {
		customer, err = s.creditCustomer(ctx, order)
		if err != nil {
			return nil, err
		}
	}

	payments := make([]entity.Payment, 0, len(input.Tenders))
	position := len(order.Payments)
	for _, t := range input.Tenders {
		payments = append(payments, entity.Payment{
			OrderID:  order.ID,
			Method:   t.Method,
			Amount:   t.Amount,
			Position: position,
		})
		position++
	}

	order.Payments = append(order.Payments, payments...)
	order.TotalPaid += tendered - changeDue

	closed := order.Due() == 0
	if closed {
		now := time.Now()
		order.Status = enum.OrderStatusClosed
		order.ClosedAt = &now
	}

	// Payment rows, order state, customer balance and shift takings land
	// together or not at all
	err = s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.CreatePayments(ctx, payments); err != nil {
			return err
		}
		if err := s.orderRepo.Update(ctx, order); err != nil {
			return err
		}
		if customer != nil {
			customer.CreditBalance += creditAmount
			if err := s.customerRepo.Update(ctx, customer); err != nil {
				return err
			}
		}
		return s.recordSale(ctx, shift, order, input.Tenders, changeDue, closed)
	})
	if err != nil {
		return nil, err
	}

	kick := false
	if cashAmount > 0 {
		settings, err := s.settingsRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		kick = settings == nil || settings.KickDrawerOnCash
	}

	return &ReconcileResult{Order: order, Closed: closed, ChangeDue: changeDue, KickDrawer: kick}, nil
}

// creditCustomer resolves the customer a credit tender charges to. Walk-in
// traffic has no account to charge.
func (s *PaymentService) creditCustomer(ctx context.Context, order *entity.Order) (*entity.Customer, error) {
	if order.CustomerID == nil {
		return nil, apperror.NewUnprocessableError("Credit payments require a customer on the order")
	}

	customer, err := s.customerRepo.GetByID(ctx, *order.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	if customer.IsWalkIn {
		return nil, apperror.NewUnprocessableError("Credit payments require a named customer, not walk-in")
	}
	return customer, nil
}

// recordSale folds one checkout transaction into the shift accumulators.
// Change handed back reduces the cash leg, the order ID is recorded once
// no matter how many transactions settle it, and discounts count once,
// when the order closes.
func (s *PaymentService) recordSale(ctx context.Context, shift *entity.Shift, order *entity.Order, tenders []Tender, changeDue int64, closed bool) error {
	for _, t := range tenders {
		amount := t.Amount
		if t.Method == enum.PaymentMethodCash && changeDue > 0 {
			back := changeDue
			if back > amount {
				back = amount
			}
			amount -= back
			changeDue -= back
		}
		switch t.Method {
		case enum.PaymentMethodCash:
			shift.CashSales += amount
		case enum.PaymentMethodCard:
			shift.CardSales += amount
		case enum.PaymentMethodCredit:
			shift.CreditSales += amount
		}
		shift.TotalSales += amount
	}

	if closed {
		shift.TotalDiscounts += order.DiscountAmount
	}

	if !shift.ReferencesOrder(order.ID) {
		shift.OrderIDs = append(shift.OrderIDs, order.ID)
	}

	shift.ExpectedCash = shift.ComputeExpectedCash()
	return s.shiftRepo.Update(ctx, shift)
}

// closeOrder closes a zero-due order without creating payment rows
func (s *PaymentService) closeOrder(ctx context.Context, order *entity.Order, shift *entity.Shift) error {
	now := time.Now()
	order.Status = enum.OrderStatusClosed
	order.ClosedAt = &now
	return s.tx.Do(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.Update(ctx, order); err != nil {
			return err
		}
		return s.recordSale(ctx, shift, order, nil, 0, true)
	})
}
