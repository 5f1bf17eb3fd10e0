package service

import (
	"context"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/fogonlabs/comanda/internal/domain/repository"
	"github.com/fogonlabs/comanda/pkg/apperror"
	"github.com/fogonlabs/comanda/pkg/pagination"
	"github.com/google/uuid"
)

// CustomerService handles the customer ledger: identity plus the running
// credit balance.
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// CreateCustomerInput represents the create customer input
type CreateCustomerInput struct {
	Name  string
	Phone *string
}

// CreateCustomer creates a new customer
func (s *CustomerService) CreateCustomer(ctx context.Context, input *CreateCustomerInput) (*entity.Customer, error) {
	customer := &entity.Customer{
		Name:  input.Name,
		Phone: input.Phone,
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// ListCustomers lists customers with search and pagination
func (s *CustomerService) ListCustomers(ctx context.Context, params *repository.CustomerFilterParams) (*pagination.PaginatedResult[entity.Customer], error) {
	customers, total, err := s.customerRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(customers, pag), nil
}

// UpdateCustomerInput represents the update customer input
type UpdateCustomerInput struct {
	ID    uuid.UUID
	Name  *string
	Phone *string
}

// UpdateCustomer updates a customer. The walk-in account is fixed.
func (s *CustomerService) UpdateCustomer(ctx context.Context, input *UpdateCustomerInput) (*entity.Customer, error) {
	customer, err := s.GetCustomer(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if customer.IsWalkIn {
		return nil, apperror.NewInvalidStateError("The walk-in customer cannot be modified")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Phone != nil {
		customer.Phone = input.Phone
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return customer, nil
}

// DeleteCustomer deletes a customer. The walk-in account and customers
// with outstanding credit cannot be deleted.
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uuid.UUID) error {
	customer, err := s.GetCustomer(ctx, id)
	if err != nil {
		return err
	}
	if customer.IsWalkIn {
		return apperror.NewInvalidStateError("The walk-in customer cannot be deleted")
	}
	if customer.CreditBalance > 0 {
		return apperror.NewInvalidStateError("Customer still owes credit and cannot be deleted")
	}

	return s.customerRepo.Delete(ctx, id)
}

// CreditPaymentResult carries the updated customer and any overpayment.
// Overpaid amounts are never banked as negative debt; the till returns
// them as change.
type CreditPaymentResult struct {
	Customer    *entity.Customer
	Applied     int64 // cents
	Overpayment int64 // cents
}

// RegisterCreditPayment settles part or all of a customer's credit balance.
// The balance floors at zero.
func (s *CustomerService) RegisterCreditPayment(ctx context.Context, customerID uuid.UUID, amount int64) (*CreditPaymentResult, error) {
	if amount <= 0 {
		return nil, apperror.NewUnprocessableError("Payment amount must be positive")
	}

	customer, err := s.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if customer.IsWalkIn {
		return nil, apperror.NewUnprocessableError("The walk-in customer has no credit account")
	}

	applied := amount
	var overpayment int64
	if applied > customer.CreditBalance {
		overpayment = applied - customer.CreditBalance
		applied = customer.CreditBalance
	}

	customer.CreditBalance -= applied
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}

	return &CreditPaymentResult{
		Customer:    customer,
		Applied:     applied,
		Overpayment: overpayment,
	}, nil
}
