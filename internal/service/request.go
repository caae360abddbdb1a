package service

import (
	"context"
	"errors"

	"shipperd-backend/internal/domain"
	"shipperd-backend/internal/repository"
)

var ErrRequestNotFound = errors.New("request not found")

type requestService struct {
	requestRepo repository.RequestRepository
}

func NewRequestService(requestRepo repository.RequestRepository) RequestService {
	return &requestService{requestRepo: requestRepo}
}

func (s *requestService) OpenRequest(ctx context.Context, req *domain.ItemRequest) error {
	if req.Subject == "" {
		return errors.New("subject is required")
	}
	if req.Status == "" {
		req.Status = domain.RequestStatusOpen
	}
	if !req.Status.Valid() {
		return ErrInvalidStatus
	}
	return s.requestRepo.Create(ctx, req)
}

func (s *requestService) SetStatus(ctx context.Context, requestID int32, status domain.RequestStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	if err := s.requestRepo.UpdateStatus(ctx, requestID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	return nil
}

func (s *requestService) ListByCustomer(ctx context.Context, customerID int32) ([]domain.ItemRequest, error) {
	return s.requestRepo.ListByCustomer(ctx, customerID)
}
