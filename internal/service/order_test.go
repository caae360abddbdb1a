package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

func TestOrderService_IssueLabel(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing Order", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		svc := NewOrderService(orderRepo)

		orderRepo.On("GetInternationalByID", ctx, int32(1)).Return(nil, repository.ErrNotFound)

		_, err := svc.IssueLabel(ctx, 1)
		assert.Equal(t, ErrOrderNotFound, err)
	})

	t.Run("Second Label Rejected", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		svc := NewOrderService(orderRepo)

		order := &domain.InternationalOrder{ID: 1, CustomerID: 2}
		orderRepo.On("GetInternationalByID", ctx, order.ID).Return(order, nil)
		orderRepo.On("GetLabelByOrder", ctx, order.ID).Return(&domain.ShipmentLabel{ID: 9}, nil)

		_, err := svc.IssueLabel(ctx, 1)
		assert.Equal(t, ErrLabelExists, err)
	})

	t.Run("Success Issues Barcode", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		svc := NewOrderService(orderRepo)

		order := &domain.InternationalOrder{ID: 1, CustomerID: 2}
		orderRepo.On("GetInternationalByID", ctx, order.ID).Return(order, nil)
		orderRepo.On("GetLabelByOrder", ctx, order.ID).Return(nil, repository.ErrNotFound)
		orderRepo.On("CreateLabel", ctx, mock.AnythingOfType("*domain.ShipmentLabel")).Return(nil)

		label, err := svc.IssueLabel(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, order.ID, label.InternationalOrderID)
		assert.Equal(t, order.CustomerID, label.CustomerID)
		assert.Regexp(t, `^SHP-[0-9a-f-]{36}$`, label.BarcodeNumber)
	})
}

func TestOrderService_PlaceOrders(t *testing.T) {
	ctx := context.Background()

	t.Run("International Defaults To Placed", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		svc := NewOrderService(orderRepo)

		order := &domain.InternationalOrder{CustomerID: 1, Marketplace: "amazon"}
		orderRepo.On("CreateInternational", ctx, order).Return(nil)

		assert.NoError(t, svc.PlaceInternationalOrder(ctx, order))
		assert.Equal(t, domain.OrderStatusPlaced, order.Status)
	})

	t.Run("Marketplace Required", func(t *testing.T) {
		svc := NewOrderService(new(MockOrderRepo))

		err := svc.PlaceInternationalOrder(ctx, &domain.InternationalOrder{CustomerID: 1})
		assert.Error(t, err)
	})

	t.Run("Domestic Defaults To Cart", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		svc := NewOrderService(orderRepo)

		order := &domain.DomesticOrder{CustomerID: 1, ShippingAddress: "12 Nile St, Cairo"}
		orderRepo.On("CreateDomestic", ctx, order).Return(nil)

		assert.NoError(t, svc.PlaceDomesticOrder(ctx, order))
		assert.Equal(t, domain.DomesticOrderStatusCart, order.Status)
	})

	t.Run("Domestic Status Transitions Validate The Closed Set", func(t *testing.T) {
		orderRepo := new(MockOrderRepo)
		svc := NewOrderService(orderRepo)

		assert.Equal(t, ErrInvalidStatus, svc.SetDomesticStatus(ctx, 1, "delivered"))

		orderRepo.On("UpdateDomesticStatus", ctx, int32(1), domain.DomesticOrderStatusDelivered).Return(nil)
		assert.NoError(t, svc.SetDomesticStatus(ctx, 1, domain.DomesticOrderStatusDelivered))
	})
}
