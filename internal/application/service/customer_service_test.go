package service

import (
	"context"
	"testing"

	"github.com/fogonlabs/comanda/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomerFixture(t *testing.T) (*CustomerService, *fakeCustomerRepo, *entity.Customer) {
	t.Helper()
	repo := newFakeCustomerRepo()
	walkIn := &entity.Customer{Name: "Walk-in", IsWalkIn: true}
	require.NoError(t, repo.Create(context.Background(), walkIn))
	return NewCustomerService(repo), repo, walkIn
}

func TestRegisterCreditPayment(t *testing.T) {
	svc, repo, _ := newCustomerFixture(t)
	ctx := context.Background()

	marta := &entity.Customer{Name: "Marta", CreditBalance: 5000}
	require.NoError(t, repo.Create(ctx, marta))

	result, err := svc.RegisterCreditPayment(ctx, marta.ID, 3000)
	require.NoError(t, err)

	assert.Equal(t, int64(3000), result.Applied)
	assert.Equal(t, int64(0), result.Overpayment)
	assert.Equal(t, int64(2000), result.Customer.CreditBalance)
}

func TestRegisterCreditPaymentClampsAtZero(t *testing.T) {
	svc, repo, _ := newCustomerFixture(t)
	ctx := context.Background()

	marta := &entity.Customer{Name: "Marta", CreditBalance: 2000}
	require.NoError(t, repo.Create(ctx, marta))

	result, err := svc.RegisterCreditPayment(ctx, marta.ID, 5000)
	require.NoError(t, err)

	assert.Equal(t, int64(2000), result.Applied)
	assert.Equal(t, int64(3000), result.Overpayment)
	assert.Equal(t, int64(0), result.Customer.CreditBalance)
}

func TestRegisterCreditPaymentRejectsNonPositive(t *testing.T) {
	svc, repo, _ := newCustomerFixture(t)
	ctx := context.Background()

	marta := &entity.Customer{Name: "Marta", CreditBalance: 2000}
	require.NoError(t, repo.Create(ctx, marta))

	_, err := svc.RegisterCreditPayment(ctx, marta.ID, 0)
	assertAppError(t, err, 422)

	_, err = svc.RegisterCreditPayment(ctx, marta.ID, -100)
	assertAppError(t, err, 422)
}

func TestRegisterCreditPaymentRejectsWalkIn(t *testing.T) {
	svc, _, walkIn := newCustomerFixture(t)

	_, err := svc.RegisterCreditPayment(context.Background(), walkIn.ID, 100)
	assertAppError(t, err, 422)
}

func TestDeleteCustomerWithBalanceBlocked(t *testing.T) {
	svc, repo, _ := newCustomerFixture(t)
	ctx := context.Background()

	marta := &entity.Customer{Name: "Marta", CreditBalance: 100}
	require.NoError(t, repo.Create(ctx, marta))

	err := svc.DeleteCustomer(ctx, marta.ID)
	assertAppError(t, err, 409)

	marta.CreditBalance = 0
	require.NoError(t, repo.Update(ctx, marta))
	require.NoError(t, svc.DeleteCustomer(ctx, marta.ID))
}

func TestWalkInCustomerIsProtected(t *testing.T) {
	svc, _, walkIn := newCustomerFixture(t)
	ctx := context.Background()

	err := svc.DeleteCustomer(ctx, walkIn.ID)
	assertAppError(t, err, 409)

	name := "Renamed"
	_, err = svc.UpdateCustomer(ctx, &UpdateCustomerInput{ID: walkIn.ID, Name: &name})
	assertAppError(t, err, 409)
}
