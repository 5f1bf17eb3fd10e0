package service

import (
	"context"
	"time"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/enum"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	infraRepo "github.com/fogonlabs/comanda/internal/infrastructure/repository"
	"github.com/google/uuid"
)

// In-memory repository fakes backing the service tests.

type fakeOrderRepo struct {
	orders map[uuid.UUID]*entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uuid.UUID]*entity.Order)}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	order.CreatedAt = time.Now()
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) GetByNumber(ctx context.Context, number int64) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.OrderNumber == number {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) GetOpenByTable(ctx context.Context, tableID int) (*entity.Order, error) {
	for _, o := range f.orders {
		if o.TableID == tableID && o.Status == enum.OrderStatusOpen {
			return o, nil
		}
	}
	return nil, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, order *entity.Order) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) List(ctx context.Context, params *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if params.Status != nil && o.Status != *params.Status {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) ListOpen(ctx context.Context) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.Status == enum.OrderStatusOpen {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) ListOpenByWaiter(ctx context.Context, waiterID uuid.UUID) ([]entity.Order, error) {
	var out []entity.Order
	for _, o := range f.orders {
		if o.Status == enum.OrderStatusOpen && o.WaiterID == waiterID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) CreateItem(ctx context.Context, item *entity.OrderItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return nil
}

func (f *fakeOrderRepo) UpdateItem(ctx context.Context, item *entity.OrderItem) error {
	return nil
}

func (f *fakeOrderRepo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakeOrderRepo) CreatePayments(ctx context.Context, payments []entity.Payment) error {
	for i := range payments {
		if payments[i].ID == uuid.Nil {
			payments[i].ID = uuid.New()
		}
	}
	return nil
}

type fakeCounterRepo struct {
	next int64
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{next: 1}
}

func (f *fakeCounterRepo) NextOrderNumber(ctx context.Context) (int64, error) {
	n := f.next
	f.next++
	return n, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) GetWalkIn(ctx context.Context) (*entity.Customer, error) {
	for _, c := range f.customers {
		if c.IsWalkIn {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, params *repository.CustomerFilterParams) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeMenuRepo struct {
	categories map[uuid.UUID]*entity.Category
	items      map[uuid.UUID]*entity.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		categories: make(map[uuid.UUID]*entity.Category),
		items:      make(map[uuid.UUID]*entity.MenuItem),
	}
}

func (f *fakeMenuRepo) CreateCategory(ctx context.Context, category *entity.Category) error {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	f.categories[category.ID] = category
	return nil
}

func (f *fakeMenuRepo) GetCategoryByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	return f.categories[id], nil
}

func (f *fakeMenuRepo) UpdateCategory(ctx context.Context, category *entity.Category) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeMenuRepo) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeMenuRepo) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var out []entity.Category
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeMenuRepo) CreateItem(ctx context.Context, item *entity.MenuItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuRepo) GetItemByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error) {
	return f.items[id], nil
}

func (f *fakeMenuRepo) UpdateItem(ctx context.Context, item *entity.MenuItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeMenuRepo) DeleteItem(ctx context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeMenuRepo) ListItems(ctx context.Context, categoryID *uuid.UUID) ([]entity.MenuItem, error) {
	var out []entity.MenuItem
	for _, i := range f.items {
		if categoryID != nil && i.CategoryID != *categoryID {
			continue
		}
		out = append(out, *i)
	}
	return out, nil
}

func (f *fakeMenuRepo) CountItemsInCategory(ctx context.Context, categoryID uuid.UUID) (int64, error) {
	var count int64
	for _, i := range f.items {
		if i.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

// fakeTxManager runs the function directly; the maps underneath have no
// transactions to speak of. It counts invocations so tests can assert a
// write sequence went through one scope.
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeInventoryRepo struct {
	items map[uuid.UUID]*entity.InventoryItem
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[uuid.UUID]*entity.InventoryItem)}
}

func (f *fakeInventoryRepo) Create(ctx context.Context, item *entity.InventoryItem) error {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeInventoryRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryItem, error) {
	return f.items[id], nil
}

func (f *fakeInventoryRepo) Update(ctx context.Context, item *entity.InventoryItem) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeInventoryRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.items, id)
	return nil
}

func (f *fakeInventoryRepo) List(ctx context.Context) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	for _, i := range f.items {
		out = append(out, *i)
	}
	return out, nil
}

func (f *fakeInventoryRepo) ListLow(ctx context.Context) ([]entity.InventoryItem, error) {
	var out []entity.InventoryItem
	for _, i := range f.items {
		if i.Quantity <= i.LowStock {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) error {
	item, ok := f.items[id]
	if !ok {
		return infraRepo.ErrStockNotFound
	}
	if item.Quantity+delta < 0 {
		return infraRepo.ErrInsufficientStock
	}
	item.Quantity += delta
	return nil
}

type fakeTableRepo struct {
	areas  map[uuid.UUID]*entity.Area
	tables map[uuid.UUID]*entity.Table
}

func newFakeTableRepo() *fakeTableRepo {
	return &fakeTableRepo{
		areas:  make(map[uuid.UUID]*entity.Area),
		tables: make(map[uuid.UUID]*entity.Table),
	}
}

func (f *fakeTableRepo) CreateArea(ctx context.Context, area *entity.Area) error {
	if area.ID == uuid.Nil {
		area.ID = uuid.New()
	}
	f.areas[area.ID] = area
	return nil
}

func (f *fakeTableRepo) GetAreaByID(ctx context.Context, id uuid.UUID) (*entity.Area, error) {
	return f.areas[id], nil
}

func (f *fakeTableRepo) UpdateArea(ctx context.Context, area *entity.Area) error {
	f.areas[area.ID] = area
	return nil
}

func (f *fakeTableRepo) DeleteArea(ctx context.Context, id uuid.UUID) error {
	delete(f.areas, id)
	return nil
}

func (f *fakeTableRepo) ListAreas(ctx context.Context) ([]entity.Area, error) {
	var out []entity.Area
	for _, a := range f.areas {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeTableRepo) CreateTable(ctx context.Context, table *entity.Table) error {
	if table.ID == uuid.Nil {
		table.ID = uuid.New()
	}
	f.tables[table.ID] = table
	return nil
}

func (f *fakeTableRepo) GetTableByID(ctx context.Context, id uuid.UUID) (*entity.Table, error) {
	return f.tables[id], nil
}

func (f *fakeTableRepo) GetTableByNumber(ctx context.Context, number int) (*entity.Table, error) {
	for _, t := range f.tables {
		if t.Number == number {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTableRepo) UpdateTable(ctx context.Context, table *entity.Table) error {
	f.tables[table.ID] = table
	return nil
}

func (f *fakeTableRepo) DeleteTable(ctx context.Context, id uuid.UUID) error {
	delete(f.tables, id)
	return nil
}

func (f *fakeTableRepo) CountTablesInArea(ctx context.Context, areaID uuid.UUID) (int64, error) {
	var count int64
	for _, t := range f.tables {
		if t.AreaID == areaID {
			count++
		}
	}
	return count, nil
}

type fakeSettingsRepo struct {
	settings *entity.RestaurantSettings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{
		settings: &entity.RestaurantSettings{
			ID:               1,
			Name:             "Test Restaurant",
			Currency:         "EUR",
			TaxRate:          0.21,
			TaxModel:         enum.TaxModelExclusive,
			KickDrawerOnCash: true,
		},
	}
}

func (f *fakeSettingsRepo) Get(ctx context.Context) (*entity.RestaurantSettings, error) {
	return f.settings, nil
}

func (f *fakeSettingsRepo) Update(ctx context.Context, settings *entity.RestaurantSettings) error {
	f.settings = settings
	return nil
}

type fakeShiftRepo struct {
	shifts map[uuid.UUID]*entity.Shift
}

func newFakeShiftRepo() *fakeShiftRepo {
	return &fakeShiftRepo{shifts: make(map[uuid.UUID]*entity.Shift)}
}

func (f *fakeShiftRepo) Create(ctx context.Context, shift *entity.Shift) error {
	if shift.ID == uuid.Nil {
		shift.ID = uuid.New()
	}
	f.shifts[shift.ID] = shift
	return nil
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	return f.shifts[id], nil
}

func (f *fakeShiftRepo) GetOpenByWaiter(ctx context.Context, waiterID uuid.UUID) (*entity.Shift, error) {
	for _, s := range f.shifts {
		if s.WaiterID == waiterID && s.EndTime == nil {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeShiftRepo) Update(ctx context.Context, shift *entity.Shift) error {
	f.shifts[shift.ID] = shift
	return nil
}

func (f *fakeShiftRepo) List(ctx context.Context, params *repository.ShiftFilterParams) ([]entity.Shift, int64, error) {
	var out []entity.Shift
	for _, s := range f.shifts {
		if params.WaiterID != nil && s.WaiterID != *params.WaiterID {
			continue
		}
		if params.OpenOnly && s.EndTime != nil {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func (f *fakeShiftRepo) CreateMovement(ctx context.Context, movement *entity.CashMovement) error {
	if movement.ID == uuid.Nil {
		movement.ID = uuid.New()
	}
	return nil
}

type fakeWaiterRepo struct {
	waiters map[uuid.UUID]*entity.Waiter
}

func newFakeWaiterRepo() *fakeWaiterRepo {
	return &fakeWaiterRepo{waiters: make(map[uuid.UUID]*entity.Waiter)}
}

func (f *fakeWaiterRepo) Create(ctx context.Context, waiter *entity.Waiter) error {
	if waiter.ID == uuid.Nil {
		waiter.ID = uuid.New()
	}
	f.waiters[waiter.ID] = waiter
	return nil
}

func (f *fakeWaiterRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Waiter, error) {
	return f.waiters[id], nil
}

func (f *fakeWaiterRepo) GetByName(ctx context.Context, name string) (*entity.Waiter, error) {
	for _, w := range f.waiters {
		if w.Name == name {
			return w, nil
		}
	}
	return nil, nil
}

func (f *fakeWaiterRepo) Update(ctx context.Context, waiter *entity.Waiter) error {
	f.waiters[waiter.ID] = waiter
	return nil
}

func (f *fakeWaiterRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.waiters, id)
	return nil
}

func (f *fakeWaiterRepo) List(ctx context.Context) ([]entity.Waiter, error) {
	var out []entity.Waiter
	for _, w := range f.waiters {
		out = append(out, *w)
	}
	return out, nil
}
