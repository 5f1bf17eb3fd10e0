package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fogonlabs/comanda/internal/domain/billing"
	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	infraRepo "github.com/fogonlabs/comanda/internal/infrastructure/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/fogonlabs/comanda/pkg/pagination"
	"github.com/google/uuid"
)

// OrderService handles the order lifecycle from creation to the moment it
// is handed to payment reconciliation or cancelled.
type OrderService struct {
	orderRepo     repository.OrderRepository
	counterRepo   repository.CounterRepository
	customerRepo  repository.CustomerRepository
	menuRepo      repository.MenuRepository
	inventoryRepo repository.InventoryRepository
	tableRepo     repository.TableRepository
	settingsRepo  repository.SettingsRepository
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	counterRepo repository.CounterRepository,
	customerRepo repository.CustomerRepository,
	menuRepo repository.MenuRepository,
	inventoryRepo repository.InventoryRepository,
	tableRepo repository.TableRepository,
	settingsRepo repository.SettingsRepository,
) *OrderService {
	return &OrderService{
		orderRepo:     orderRepo,
		counterRepo:   counterRepo,
		customerRepo:  customerRepo,
		menuRepo:      menuRepo,
		inventoryRepo: inventoryRepo,
		tableRepo:     tableRepo,
		settingsRepo:  settingsRepo,
	}
}

// taxConfig resolves the current tax parameters from settings
func (s *OrderService) taxConfig(ctx context.Context) (billing.Config, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return billing.Config{}, err
	}
	if settings == nil {
		return billing.Config{}, apperror.NewNotFoundError("Restaurant settings")
	}
	return billing.Config{TaxRate: settings.TaxRate, TaxModel: settings.TaxModel}, nil
}

// recompute rederives the order's totals from its current items and discount
func (s *OrderService) recompute(ctx context.Context, order *entity.Order) error {
	cfg, err := s.taxConfig(ctx)
	if err != nil {
		return err
	}

	totals := billing.Compute(order.Items, order.DiscountType, order.DiscountValue, cfg)
	order.SubTotal = totals.SubTotal
	order.DiscountAmount = totals.DiscountAmount
	order.Tax = totals.Tax
	order.Total = totals.Total
	return nil
}

// CreateOrderInput represents the create order input
type CreateOrderInput struct {
	TableID    uuid.UUID
	WaiterID   uuid.UUID
	WaiterName string
}

// CreateOrder opens a new tab on a table. A table holds at most one open
// order; the order number comes from the persistent counter and the walk-in
// customer is assigned until a real one is picked.
func (s *OrderService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error) {
	table, err := s.tableRepo.GetTableByID(ctx, input.TableID)
	if err != nil {
		return nil, err
	}
	if table == nil {
		return nil, apperror.NewNotFoundError("Table")
	}

	existing, err := s.orderRepo.GetOpenByTable(ctx, table.Number)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewInvalidStateError(fmt.Sprintf("Table %d already has an open order", table.Number))
	}

	walkIn, err := s.customerRepo.GetWalkIn(ctx)
	if err != nil {
		return nil, err
	}

	number, err := s.counterRepo.NextOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		OrderNumber: number,
		TableID:     table.Number,
		WaiterID:    input.WaiterID,
		WaiterName:  input.WaiterName,
		Status:      enum.OrderStatusOpen,
	}
	if walkIn != nil {
		order.CustomerID = &walkIn.ID
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrder retrieves an order by ID with its items and payments
func (s *OrderService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, apperror.NewNotFoundError("Order")
	}
	return order, nil
}

// getOpenOrder retrieves an order and fails if it no longer accepts mutations
func (s *OrderService) getOpenOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.IsOpen() {
		return nil, apperror.NewInvalidStateError("Order is no longer open")
	}
	return order, nil
}

// ListOrders lists orders with filters and pagination
func (s *OrderService) ListOrders(ctx context.Context, params *repository.OrderFilterParams) (*pagination.PaginatedResult[entity.Order], error) {
	orders, total, err := s.orderRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(orders, pag), nil
}

// ListOpenOrders returns every open order, oldest first
func (s *OrderService) ListOpenOrders(ctx context.Context) ([]entity.Order, error) {
	return s.orderRepo.ListOpen(ctx)
}

// adjustStock moves inventory for a stock-tracked menu item. A positive
// delta consumes stock, a negative delta returns it.
func (s *OrderService) adjustStock(ctx context.Context, menuItem *entity.MenuItem, delta int) error {
	if !menuItem.IsStockTracked || menuItem.InventoryItemID == nil || delta == 0 {
		return nil
	}

	err := s.inventoryRepo.AdjustQuantity(ctx, *menuItem.InventoryItemID, -delta)
	switch {
	case errors.Is(err, infraRepo.ErrStockNotFound):
		return apperror.NewNotFoundError("Inventory item")
	case errors.Is(err, infraRepo.ErrInsufficientStock):
		return apperror.NewInvalidStateError(fmt.Sprintf("%s is out of stock", menuItem.Name))
	}
	return err
}

// AddItem adds one unit of a menu item to an open order. Repeat additions
// of the same item grow the existing line and leave a timestamped addition
// record; name and price are copied from the menu at add time.
func (s *OrderService) AddItem(ctx context.Context, orderID, menuItemID uuid.UUID) (*entity.Order, error) {
	order, err := s.getOpenOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	menuItem, err := s.menuRepo.GetItemByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}
	if menuItem == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if err := s.adjustStock(ctx, menuItem, 1); err != nil {
		return nil, err
	}

	now := time.Now()
	if line := order.FindItem(menuItemID); line != nil {
		line.Quantity++
		line.Additions = append(line.Additions, entity.Addition{AddedAt: now})
		if err := s.orderRepo.UpdateItem(ctx, line); err != nil {
			return nil, err
		}
	} else {
		item := entity.OrderItem{
			OrderID:    order.ID,
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   1,
			Additions:  []entity.Addition{{AddedAt: now}},
		}
		if err := s.orderRepo.CreateItem(ctx, &item); err != nil {
			return nil, err
		}
		order.Items = append(order.Items, item)
	}

	if err := s.recompute(ctx, order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// SetItemQuantity sets a line item's quantity directly. A quantity of zero
// or less removes the line. Stock-tracked items move inventory by the
// difference, in either direction.
func (s *OrderService) SetItemQuantity(ctx context.Context, orderID, menuItemID uuid.UUID, quantity int) (*entity.Order, error) {
	order, err := s.getOpenOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	line := order.FindItem(menuItemID)
	if line == nil {
		return nil, apperror.NewNotFoundError("Order item")
	}

	menuItem, err := s.menuRepo.GetItemByID(ctx, menuItemID)
	if err != nil {
		return nil, err
	}

	if quantity < 0 {
		quantity = 0
	}

	if menuItem != nil {
		if err := s.adjustStock(ctx, menuItem, quantity-line.Quantity); err != nil {
			return nil, err
		}
	}

	if quantity == 0 {
		if err := s.orderRepo.DeleteItem(ctx, line.ID); err != nil {
			return nil, err
		}
		items := order.Items[:0]
		for _, it := range order.Items {
			if it.MenuItemID != menuItemID {
				items = append(items, it)
			}
		}
		order.Items = items
	} else {
		if quantity > line.Quantity {
			now := time.Now()
			for i := line.Quantity; i < quantity; i++ {
				line.Additions = append(line.Additions, entity.Addition{AddedAt: now})
			}
		}
		line.Quantity = quantity
		if err := s.orderRepo.UpdateItem(ctx, line); err != nil {
			return nil, err
		}
	}

	if err := s.recompute(ctx, order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// ApplyDiscountInput represents the apply discount input
type ApplyDiscountInput struct {
	OrderID uuid.UUID
	Type    enum.DiscountType
	Value   float64
}

// ApplyDiscount sets the order's discount and rederives totals
func (s *OrderService) ApplyDiscount(ctx context.Context, input *ApplyDiscountInput) (*entity.Order, error) {
	order, err := s.getOpenOrder(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}

	if !input.Type.Valid() {
		return nil, apperror.NewUnprocessableError("Unknown discount type")
	}
	if input.Value <= 0 {
		return nil, apperror.NewUnprocessableError("Discount value must be positive")
	}
	if input.Type == enum.DiscountTypePercentage && input.Value > 100 {
		return nil, apperror.NewUnprocessableError("Percentage discount cannot exceed 100")
	}

	discountType := input.Type
	order.DiscountType = &discountType
	order.DiscountValue = input.Value

	if err := s.recompute(ctx, order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// RemoveDiscount clears the order's discount and rederives totals
func (s *OrderService) RemoveDiscount(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.getOpenOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	order.DiscountType = nil
	order.DiscountValue = 0

	if err := s.recompute(ctx, order); err != nil {
		return nil, err
	}
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// AssignCustomer links a customer to an open order. A nil customer ID
// reverts the order to the walk-in customer.
func (s *OrderService) AssignCustomer(ctx context.Context, orderID uuid.UUID, customerID *uuid.UUID) (*entity.Order, error) {
	order, err := s.getOpenOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	var customer *entity.Customer
	if customerID == nil {
		customer, err = s.customerRepo.GetWalkIn(ctx)
	} else {
		customer, err = s.customerRepo.GetByID(ctx, *customerID)
	}
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	order.CustomerID = &customer.ID
	order.Customer = customer

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// CancelOrder voids an open order. Managers only. Stock consumed by the
// order's stock-tracked items goes back to inventory.
func (s *OrderService) CancelOrder(ctx context.Context, orderID uuid.UUID, actorRole enum.Role) (*entity.Order, error) {
	if !actorRole.CanManage() {
		return nil, apperror.NewForbiddenError("Only managers can cancel orders")
	}

	order, err := s.getOpenOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	for i := range order.Items {
		menuItem, err := s.menuRepo.GetItemByID(ctx, order.Items[i].MenuItemID)
		if err != nil {
			return nil, err
		}
		if menuItem == nil {
			continue
		}
		if err := s.adjustStock(ctx, menuItem, -order.Items[i].Quantity); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	order.Status = enum.OrderStatusCancelled
	order.ClosedAt = &now

	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// KitchenTicket returns the lines added since the last print and records
// the new snapshot. Printing the same order twice with no changes in
// between is an error, not an empty ticket.
func (s *OrderService) KitchenTicket(ctx context.Context, orderID uuid.UUID) (*entity.Order, []entity.TicketLine, error) {
	order, err := s.getOpenOrder(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}

	lines := order.KitchenDelta()
	if len(lines) == 0 {
		return nil, nil, apperror.NewInvalidStateError("No new items to send to the kitchen")
	}

	order.SnapshotPrinted()
	if err := s.orderRepo.Update(ctx, order); err != nil {
		return nil, nil, err
	}

	return order, lines, nil
}
