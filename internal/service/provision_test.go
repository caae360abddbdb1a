package service

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shipperd-backend/internal/domain"
)

func TestLockerProvisioner_ProvisionForUser(t *testing.T) {
	ctx := context.Background()

	dubai := domain.Warehouse{ID: 1, Name: "UAE Warehouse", City: "Dubai", Country: "United Arab Emirates"}
	egypt := domain.Warehouse{ID: 2, Name: "Egypt Warehouse", Country: "Egypt"}

	customer := &domain.User{ID: 10, Username: "john_doe", Role: domain.RoleCustomer}

	t.Run("One Locker Per Warehouse", func(t *testing.T) {
		warehouseRepo := new(MockWarehouseRepo)
		lockerRepo := new(MockLockerRepo)
		p := NewLockerProvisioner(warehouseRepo, lockerRepo)

		warehouseRepo.On("List", ctx).Return([]domain.Warehouse{dubai, egypt}, nil)
		lockerRepo.On("CountByCustomerAndWarehouse", ctx, customer.ID, dubai.ID).Return(int32(0), nil)
		lockerRepo.On("CountByCustomerAndWarehouse", ctx, customer.ID, egypt.ID).Return(int32(0), nil)
		lockerRepo.On("CodeExists", ctx, "DUB-JOHN_-001").Return(false, nil)
		lockerRepo.On("CodeExists", ctx, "EGY-JOHN_-001").Return(false, nil)
		lockerRepo.On("Create", ctx, mock.AnythingOfType("*domain.Locker")).Return(nil)

		lockers, err := p.ProvisionForUser(ctx, customer)
		assert.NoError(t, err)
		assert.Len(t, lockers, 2)
		// City drives the prefix when present, the warehouse name otherwise.
		assert.Equal(t, "DUB-JOHN_-001", lockers[0].Code)
		assert.Equal(t, "EGY-JOHN_-001", lockers[1].Code)
		assert.Equal(t, customer.ID, lockers[0].CustomerID)
		assert.Equal(t, dubai.ID, lockers[0].WarehouseID)
		assert.Equal(t, "Auto-assigned locker for john_doe", lockers[0].Description)
	})

	t.Run("Sequence Continues From Existing Count", func(t *testing.T) {
		warehouseRepo := new(MockWarehouseRepo)
		lockerRepo := new(MockLockerRepo)
		p := NewLockerProvisioner(warehouseRepo, lockerRepo)

		warehouseRepo.On("List", ctx).Return([]domain.Warehouse{dubai}, nil)
		lockerRepo.On("CountByCustomerAndWarehouse", ctx, customer.ID, dubai.ID).Return(int32(2), nil)
		lockerRepo.On("CodeExists", ctx, "DUB-JOHN_-003").Return(false, nil)
		lockerRepo.On("Create", ctx, mock.AnythingOfType("*domain.Locker")).Return(nil)

		lockers, err := p.ProvisionForUser(ctx, customer)
		assert.NoError(t, err)
		assert.Len(t, lockers, 1)
		assert.Equal(t, "DUB-JOHN_-003", lockers[0].Code)
	})

	t.Run("Collision Falls Back To ALT Code", func(t *testing.T) {
		warehouseRepo := new(MockWarehouseRepo)
		lockerRepo := new(MockLockerRepo)
		p := NewLockerProvisioner(warehouseRepo, lockerRepo)

		warehouseRepo.On("List", ctx).Return([]domain.Warehouse{dubai}, nil)
		lockerRepo.On("CountByCustomerAndWarehouse", ctx, customer.ID, dubai.ID).Return(int32(0), nil)
		lockerRepo.On("CodeExists", ctx, "DUB-JOHN_-001").Return(true, nil)
		lockerRepo.On("Create", ctx, mock.AnythingOfType("*domain.Locker")).Return(nil)

		lockers, err := p.ProvisionForUser(ctx, customer)
		assert.NoError(t, err)
		assert.Len(t, lockers, 1)
		assert.Regexp(t, regexp.MustCompile(`^DUB-JOHN_-ALT\d{3}$`), lockers[0].Code)
	})

	t.Run("Non-Customer Gets Nothing", func(t *testing.T) {
		warehouseRepo := new(MockWarehouseRepo)
		lockerRepo := new(MockLockerRepo)
		p := NewLockerProvisioner(warehouseRepo, lockerRepo)

		employee := &domain.User{ID: 20, Username: "staffer", Role: domain.RoleEmployee}
		lockers, err := p.ProvisionForUser(ctx, employee)
		assert.NoError(t, err)
		assert.Nil(t, lockers)
		warehouseRepo.AssertNotCalled(t, "List", ctx)
	})

	t.Run("No Warehouses Means No Lockers", func(t *testing.T) {
		warehouseRepo := new(MockWarehouseRepo)
		lockerRepo := new(MockLockerRepo)
		p := NewLockerProvisioner(warehouseRepo, lockerRepo)

		warehouseRepo.On("List", ctx).Return([]domain.Warehouse{}, nil)

		lockers, err := p.ProvisionForUser(ctx, customer)
		assert.NoError(t, err)
		assert.Empty(t, lockers)
	})

	t.Run("Create Failure Aborts The Whole Batch", func(t *testing.T) {
		warehouseRepo := new(MockWarehouseRepo)
		lockerRepo := new(MockLockerRepo)
		p := NewLockerProvisioner(warehouseRepo, lockerRepo)

		warehouseRepo.On("List", ctx).Return([]domain.Warehouse{dubai, egypt}, nil)
		lockerRepo.On("CountByCustomerAndWarehouse", ctx, customer.ID, dubai.ID).Return(int32(0), nil)
		lockerRepo.On("CodeExists", ctx, "DUB-JOHN_-001").Return(false, nil)
		lockerRepo.On("Create", ctx, mock.AnythingOfType("*domain.Locker")).Return(assert.AnError)

		lockers, err := p.ProvisionForUser(ctx, customer)
		assert.Error(t, err)
		assert.Nil(t, lockers)
	})
}

func TestLockerCodeDerivation(t *testing.T) {
	t.Run("Spaces Stripped And Uppercased", func(t *testing.T) {
		wh := &domain.Warehouse{Name: "Egypt Warehouse"}
		assert.Equal(t, "EGY-JOHN_-001", lockerCode(wh, "john_doe", 1))
	})

	t.Run("City Preferred Over Name", func(t *testing.T) {
		wh := &domain.Warehouse{Name: "Main Facility", City: "Dubai"}
		assert.Equal(t, "DUB-JOHN_-002", lockerCode(wh, "john_doe", 2))
	})

	t.Run("Short Username Not Padded", func(t *testing.T) {
		wh := &domain.Warehouse{City: "Cairo"}
		assert.Equal(t, "CAI-ALI-001", lockerCode(wh, "ali", 1))
	})

	t.Run("Alternate Carries ALT Tag", func(t *testing.T) {
		wh := &domain.Warehouse{City: "Dubai"}
		assert.Regexp(t, regexp.MustCompile(`^DUB-JOHN_-ALT\d{3}$`), alternateLockerCode(wh, "john_doe"))
	})
}
