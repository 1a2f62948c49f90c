package salary

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lumina-hr/payroll-backend-go/internal/domain/salary"
)

func (s *SalaryService) CreateItem(ctx context.Context, req salary.CreateItemRequest) (salary.ItemResponse, error) {
	if err := req.Validate(); err != nil {
		return salary.ItemResponse{}, err
	}

	_, err := s.itemRepo.GetItemByName(ctx, req.Name)
	if err == nil {
		return salary.ItemResponse{}, salary.ErrItemNameExists
	}
	if !errors.Is(err, salary.ErrItemNotFound) {
		return salary.ItemResponse{}, fmt.Errorf("failed to check item name: %w", err)
	}

	item, err := s.itemRepo.CreateItem(ctx, salary.ItemDefinition{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Kind:     salary.ItemKind(req.Kind),
		IsActive: true,
	})
	if err != nil {
		return salary.ItemResponse{}, fmt.Errorf("failed to create salary item: %w", err)
	}

	return toItemResponse(item), nil
}

func (s *SalaryService) ListItems(ctx context.Context, activeOnly bool) ([]salary.ItemResponse, error) {
	items, err := s.itemRepo.ListItems(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	result := make([]salary.ItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toItemResponse(item))
	}
	return result, nil
}

func (s *SalaryService) UpdateItem(ctx context.Context, req salary.UpdateItemRequest) (salary.ItemResponse, error) {
	item, err := s.itemRepo.GetItemByID(ctx, req.ID)
	if err != nil {
		return salary.ItemResponse{}, err
	}

	if req.Name != nil && *req.Name != item.Name {
		_, err := s.itemRepo.GetItemByName(ctx, *req.Name)
		if err == nil {
			return salary.ItemResponse{}, salary.ErrItemNameExists
		}
		if !errors.Is(err, salary.ErrItemNotFound) {
			return salary.ItemResponse{}, fmt.Errorf("failed to check item name: %w", err)
		}
	}

	if err := s.itemRepo.UpdateItem(ctx, req); err != nil {
		return salary.ItemResponse{}, fmt.Errorf("failed to update salary item: %w", err)
	}

	item, err = s.itemRepo.GetItemByID(ctx, req.ID)
	if err != nil {
		return salary.ItemResponse{}, err
	}
	return toItemResponse(item), nil
}

// DeleteItem removes an item when nothing references it; items referenced by
// historical salary lines are soft-disabled instead so old records keep
// resolving.
func (s *SalaryService) DeleteItem(ctx context.Context, id string) error {
	item, err := s.itemRepo.GetItemByID(ctx, id)
	if err != nil {
		return err
	}

	referenced, err := s.itemRepo.IsItemReferenced(ctx, item.ID)
	if err != nil {
		return fmt.Errorf("failed to check item references: %w", err)
	}

	if referenced {
		inactive := false
		return s.itemRepo.UpdateItem(ctx, salary.UpdateItemRequest{ID: item.ID, IsActive: &inactive})
	}

	return s.itemRepo.DeleteItem(ctx, item.ID)
}

func toItemResponse(item salary.ItemDefinition) salary.ItemResponse {
	return salary.ItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Kind:     string(item.Kind),
		IsActive: item.IsActive,
	}
}
