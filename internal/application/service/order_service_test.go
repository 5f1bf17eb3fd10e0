package service

import (
	"context"
	"testing"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type orderFixture struct {
	svc       *OrderService
	orders    *fakeOrderRepo
	menu      *fakeMenuRepo
	inventory *fakeInventoryRepo
	customers *fakeCustomerRepo

	table *entity.Table
	beer  *entity.MenuItem
	steak *entity.MenuItem // stock-tracked
	stock *entity.InventoryItem
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	ctx := context.Background()

	orders := newFakeOrderRepo()
	menu := newFakeMenuRepo()
	inventory := newFakeInventoryRepo()
	customers := newFakeCustomerRepo()
	tables := newFakeTableRepo()
	settings := newFakeSettingsRepo()

	walkIn := &entity.Customer{Name: "Walk-in", IsWalkIn: true}
	require.NoError(t, customers.Create(ctx, walkIn))

	area := &entity.Area{Name: "Main"}
	require.NoError(t, tables.CreateArea(ctx, area))
	table := &entity.Table{Number: 5, AreaID: area.ID, Seats: 4}
	require.NoError(t, tables.CreateTable(ctx, table))

	category := &entity.Category{Name: "Drinks"}
	require.NoError(t, menu.CreateCategory(ctx, category))

	stock := &entity.InventoryItem{Name: "Ribeye", Quantity: 3}
	require.NoError(t, inventory.Create(ctx, stock))

	beer := &entity.MenuItem{Name: "Beer", Price: 250, CategoryID: category.ID}
	require.NoError(t, menu.CreateItem(ctx, beer))
	steak := &entity.MenuItem{
		Name:            "Steak",
		Price:           1500,
		CategoryID:      category.ID,
		IsStockTracked:  true,
		InventoryItemID: &stock.ID,
	}
	require.NoError(t, menu.CreateItem(ctx, steak))

	svc := NewOrderService(orders, newFakeCounterRepo(), customers, menu, inventory, tables, settings)

	return &orderFixture{
		svc:       svc,
		orders:    orders,
		menu:      menu,
		inventory: inventory,
		customers: customers,
		table:     table,
		beer:      beer,
		steak:     steak,
		stock:     stock,
	}
}

func (f *orderFixture) createOrder(t *testing.T) *entity.Order {
	t.Helper()
	order, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TableID:    f.table.ID,
		WaiterID:   uuid.New(),
		WaiterName: "Ana",
	})
	require.NoError(t, err)
	return order
}

func TestCreateOrderAssignsSequentialNumbers(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()

	first := f.createOrder(t)
	assert.Equal(t, int64(1), first.OrderNumber)
	assert.Equal(t, 5, first.TableID)
	assert.NotNil(t, first.CustomerID)

	// Settle the first order so the table frees up
	first.Status = enum.OrderStatusClosed
	require.NoError(t, f.orders.Update(ctx, first))

	second := f.createOrder(t)
	assert.Equal(t, int64(2), second.OrderNumber)
}

func TestCreateOrderRejectsOccupiedTable(t *testing.T) {
	f := newOrderFixture(t)

	f.createOrder(t)

	_, err := f.svc.CreateOrder(context.Background(), &CreateOrderInput{
		TableID:    f.table.ID,
		WaiterID:   uuid.New(),
		WaiterName: "Ana",
	})
	assertAppError(t, err, 409)
}

func TestAddItemMergesRepeatAdditions(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	order, err := f.svc.AddItem(ctx, order.ID, f.beer.ID)
	require.NoError(t, err)
	order, err = f.svc.AddItem(ctx, order.ID, f.beer.ID)
	require.NoError(t, err)

	require.Len(t, order.Items, 1)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Len(t, order.Items[0].Additions, 2)
	assert.Equal(t, int64(500), order.SubTotal)
}

func TestAddItemSnapshotsPrice(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	order, err := f.svc.AddItem(ctx, order.ID, f.beer.ID)
	require.NoError(t, err)

	f.beer.Price = 9900
	require.NoError(t, f.menu.UpdateItem(ctx, f.beer))

	got, err := f.svc.GetOrder(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(250), got.Items[0].Price)
}

func TestAddItemDecrementsStock(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	_, err := f.svc.AddItem(ctx, order.ID, f.steak.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, f.stock.Quantity)
}

func TestAddItemFailsWhenOutOfStock(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	f.stock.Quantity = 0

	_, err := f.svc.AddItem(ctx, order.ID, f.steak.ID)
	assertAppError(t, err, 409)
}

func TestAddItemWithDanglingStockLinkIsNotFound(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	// Stock row deleted after the menu item was linked to it
	gone := uuid.New()
	f.steak.InventoryItemID = &gone

	_, err := f.svc.AddItem(ctx, order.ID, f.steak.ID)
	assertAppError(t, err, 404)
}

func TestSetItemQuantityZeroRemovesLine(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	order, err := f.svc.AddItem(ctx, order.ID, f.beer.ID)
	require.NoError(t, err)

	order, err = f.svc.SetItemQuantity(ctx, order.ID, f.beer.ID, 0)
	require.NoError(t, err)

	assert.Empty(t, order.Items)
	assert.Equal(t, int64(0), order.Total)
}

func TestSetItemQuantityNegativeTreatedAsRemoval(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	order, err := f.svc.AddItem(ctx, order.ID, f.beer.ID)
	require.NoError(t, err)

	order, err = f.svc.SetItemQuantity(ctx, order.ID, f.beer.ID, -3)
	require.NoError(t, err)
	assert.Empty(t, order.Items)
}

func TestSetItemQuantityRestoresStockOnDecrease(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	order, err := f.svc.AddItem(ctx, order.ID, f.steak.ID)
	require.NoError(t, err)
	order, err = f.svc.SetItemQuantity(ctx, order.ID, f.steak.ID, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, f.stock.Quantity)

	_, err = f.svc.SetItemQuantity(ctx, order.ID, f.steak.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, f.stock.Quantity)
}

func TestApplyDiscountRecomputesTotals(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	order, err := f.svc.AddItem(ctx, order.ID, f.steak.ID) // 15.00
	require.NoError(t, err)

	order, err = f.svc.ApplyDiscount(ctx, &ApplyDiscountInput{
		OrderID: order.ID,
		Type:    enum.DiscountTypePercentage,
		Value:   10,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(150), order.DiscountAmount)
	assert.Equal(t, int64(284), order.Tax)    // 21% of 13.50
	assert.Equal(t, int64(1634), order.Total) // 13.50 + 2.84

	order, err = f.svc.RemoveDiscount(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), order.DiscountAmount)
	assert.Equal(t, int64(1815), order.Total)
}

func TestApplyDiscountRejectsBadValues(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	_, err := f.svc.ApplyDiscount(ctx, &ApplyDiscountInput{
		OrderID: order.ID,
		Type:    enum.DiscountTypePercentage,
		Value:   -5,
	})
	assertAppError(t, err, 422)

	_, err = f.svc.ApplyDiscount(ctx, &ApplyDiscountInput{
		OrderID: order.ID,
		Type:    enum.DiscountTypePercentage,
		Value:   150,
	})
	assertAppError(t, err, 422)
}

func TestCancelOrderRequiresManager(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	_, err := f.svc.CancelOrder(ctx, order.ID, enum.RoleWaiter)
	assertAppError(t, err, 403)

	cancelled, err := f.svc.CancelOrder(ctx, order.ID, enum.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, enum.OrderStatusCancelled, cancelled.Status)
	assert.NotNil(t, cancelled.ClosedAt)
}

func TestCancelOrderRestoresStock(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	order, err := f.svc.AddItem(ctx, order.ID, f.steak.ID)
	require.NoError(t, err)
	order, err = f.svc.AddItem(ctx, order.ID, f.steak.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, f.stock.Quantity)

	_, err = f.svc.CancelOrder(ctx, order.ID, enum.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, 3, f.stock.Quantity)
}

func TestClosedOrderRejectsMutations(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	order.Status = enum.OrderStatusClosed
	require.NoError(t, f.orders.Update(ctx, order))

	_, err := f.svc.AddItem(ctx, order.ID, f.beer.ID)
	assertAppError(t, err, 409)

	_, err = f.svc.RemoveDiscount(ctx, order.ID)
	assertAppError(t, err, 409)
}

func TestKitchenTicketPrintsOnlyTheDelta(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	for i := 0; i < 3; i++ {
		_, err := f.svc.AddItem(ctx, order.ID, f.beer.ID)
		require.NoError(t, err)
	}
	_, err := f.svc.AddItem(ctx, order.ID, f.steak.ID)
	require.NoError(t, err)

	_, lines, err := f.svc.KitchenTicket(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	byName := map[string]int{}
	for _, l := range lines {
		byName[l.Name] = l.Quantity
	}
	assert.Equal(t, 3, byName["Beer"])
	assert.Equal(t, 1, byName["Steak"])

	// Only what was added since the last print shows up next time
	_, err = f.svc.AddItem(ctx, order.ID, f.beer.ID)
	require.NoError(t, err)

	_, lines, err = f.svc.KitchenTicket(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Beer", lines[0].Name)
	assert.Equal(t, 1, lines[0].Quantity)
}

func TestKitchenTicketWithNothingNewFails(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	_, err := f.svc.AddItem(ctx, order.ID, f.beer.ID)
	require.NoError(t, err)

	_, _, err = f.svc.KitchenTicket(ctx, order.ID)
	require.NoError(t, err)

	_, _, err = f.svc.KitchenTicket(ctx, order.ID)
	assertAppError(t, err, 409)
}

func TestKitchenTicketIgnoresDecreases(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	for i := 0; i < 3; i++ {
		_, err := f.svc.AddItem(ctx, order.ID, f.beer.ID)
		require.NoError(t, err)
	}
	_, _, err := f.svc.KitchenTicket(ctx, order.ID)
	require.NoError(t, err)

	_, err = f.svc.SetItemQuantity(ctx, order.ID, f.beer.ID, 1)
	require.NoError(t, err)

	_, _, err = f.svc.KitchenTicket(ctx, order.ID)
	assertAppError(t, err, 409)
}

func TestAssignCustomer(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	regular := &entity.Customer{Name: "Marta"}
	require.NoError(t, f.customers.Create(ctx, regular))

	order, err := f.svc.AssignCustomer(ctx, order.ID, &regular.ID)
	require.NoError(t, err)
	require.NotNil(t, order.CustomerID)
	assert.Equal(t, regular.ID, *order.CustomerID)
}

func TestAssignCustomerNilRevertsToWalkIn(t *testing.T) {
	f := newOrderFixture(t)
	ctx := context.Background()
	order := f.createOrder(t)

	regular := &entity.Customer{Name: "Marta"}
	require.NoError(t, f.customers.Create(ctx, regular))
	order, err := f.svc.AssignCustomer(ctx, order.ID, &regular.ID)
	require.NoError(t, err)

	order, err = f.svc.AssignCustomer(ctx, order.ID, nil)
	require.NoError(t, err)

	walkIn, err := f.customers.GetWalkIn(ctx)
	require.NoError(t, err)
	require.NotNil(t, order.CustomerID)
	assert.Equal(t, walkIn.ID, *order.CustomerID)
}
