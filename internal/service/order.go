package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrLabelExists   = errors.New("a label is already issued for this order")
)

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

func (s *orderService) PlaceInternationalOrder(ctx context.Context, order *domain.InternationalOrder) error {
	if order.Marketplace == "" {
		return errors.New("marketplace is required")
	}
	if order.Status == "" {
		order.Status = domain.OrderStatusPlaced
	}
	if !order.Status.Valid() {
		return ErrInvalidStatus
	}
	return s.orderRepo.CreateInternational(ctx, order)
}

// IssueLabel creates the one-to-one shipment label for an order, with a
// UUID-derived barcode.
func (s *orderService) IssueLabel(ctx context.Context, orderID int32) (*domain.ShipmentLabel, error) {
	order, err := s.orderRepo.GetInternationalByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if _, err := s.orderRepo.GetLabelByOrder(ctx, order.ID); err == nil {
		return nil, ErrLabelExists
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("check existing label: %w", err)
	}

	label := &domain.ShipmentLabel{
		BarcodeNumber:        fmt.Sprintf("SHP-%s", uuid.NewString()),
		CustomerID:           order.CustomerID,
		InternationalOrderID: order.ID,
	}
	if err := s.orderRepo.CreateLabel(ctx, label); err != nil {
		return nil, fmt.Errorf("create shipment label: %w", err)
	}
	return label, nil
}

func (s *orderService) SetInternationalStatus(ctx context.Context, orderID int32, status domain.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.orderRepo.UpdateInternationalStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}

func (s *orderService) PlaceDomesticOrder(ctx context.Context, order *domain.DomesticOrder) error {
	if order.ShippingAddress == "" {
		return errors.New("shipping address is required")
	}
	if order.Status == "" {
		order.Status = domain.DomesticOrderStatusCart
	}
	if !order.Status.Valid() {
		return ErrInvalidStatus
	}
	return s.orderRepo.CreateDomestic(ctx, order)
}

func (s *orderService) SetDomesticStatus(ctx context.Context, orderID int32, status domain.DomesticOrderStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.orderRepo.UpdateDomesticStatus(ctx, orderID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return nil
}
