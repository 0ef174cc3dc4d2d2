package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/club-manager/internal/domain/contract"
)

type ContractService struct {
	contractRepo contract.Repository
}

func NewContractService(contractRepo contract.Repository) *ContractService {
	return &ContractService{contractRepo: contractRepo}
}

func (s *ContractService) List(ctx context.Context) ([]contract.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "ContractService", "List")
	defer span.End()

	items, err := s.contractRepo.List(ctx)
	if err != nil {
		return nil, classifyStoreError(err, "list contracts")
	}
	return items, nil
}

func (s *ContractService) Get(ctx context.Context, id int64) (contract.Detail, error) {
	ctx, span := startUsecaseSpan(ctx, "ContractService", "Get")
	defer span.End()

	if err := requireID("contract id", id); err != nil {
		return contract.Detail{}, err
	}

	item, exists, err := s.contractRepo.GetByID(ctx, id)
	if err != nil {
		return contract.Detail{}, classifyStoreError(err, "get contract")
	}
	if !exists {
		return contract.Detail{}, fmt.Errorf("%w: contract=%d", ErrNotFound, id)
	}
	return item, nil
}

func (s *ContractService) Create(ctx context.Context, input contract.Contract) (int64, error) {
	ctx, span := startUsecaseSpan(ctx, "ContractService", "Create")
	defer span.End()

	if err := input.Validate(); err != nil {
		return 0, invalidInput(err)
	}

	id, err := s.contractRepo.Create(ctx, input)
	if err != nil {
		return 0, classifyStoreError(err, "create contract")
	}
	return id, nil
}

func (s *ContractService) Update(ctx context.Context, input contract.Contract) error {
	ctx, span := startUsecaseSpan(ctx, "ContractService", "Update")
	defer span.End()

	if err := requireID("contract id", input.ID); err != nil {
		return err
	}
	if err := input.Validate(); err != nil {
		return invalidInput(err)
	}

	updated, err := s.contractRepo.Update(ctx, input)
	if err != nil {
		return classifyStoreError(err, "update contract")
	}
	if !updated {
		return fmt.Errorf("%w: contract=%d", ErrNotFound, input.ID)
	}
	return nil
}

func (s *ContractService) Delete(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "ContractService", "Delete")
	defer span.End()

	if err := requireID("contract id", id); err != nil {
		return err
	}

	deleted, err := s.contractRepo.Delete(ctx, id)
	if err != nil {
		return classifyStoreError(err, "delete contract")
	}
	if !deleted {
		return fmt.Errorf("%w: contract=%d", ErrNotFound, id)
	}
	return nil
}
