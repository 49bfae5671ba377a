package service

import (
	"context"
	"errors"

	operatorserrors "wakeline/internal/operators/errors"
	"wakeline/internal/operators/repository"
	"wakeline/internal/operators/validator"
	"wakeline/pkg/config"
	apperrors "wakeline/pkg/errors"
	"wakeline/pkg/model"
	"wakeline/pkg/sanitizer"
)

type OperatorService interface {
	Create(ctx context.Context, operator *model.Operator) (*model.Operator, error)
	List(ctx context.Context, limit int, offset int64) ([]*model.Operator, int64, error)
	GetByID(ctx context.Context, id string) (*model.Operator, error)
}

type operatorService struct {
	repo      repository.OperatorRepository
	validator *validator.OperatorValidator
	cfg       *config.Config
}

func NewOperatorService(
	repo repository.OperatorRepository,
	validator *validator.OperatorValidator,
	cfg *config.Config,
) OperatorService {
	return &operatorService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *operatorService) Create(ctx context.Context, operator *model.Operator) (*model.Operator, error) {
	if operator == nil {
		return nil, apperrors.InvalidInput("Operator cannot be empty")
	}

	operator.Name = sanitizer.NormalizeName(operator.Name)
	operator.Location = sanitizer.NormalizeLocation(operator.Location)
	operator.Description = sanitizer.TrimAndNormalize(operator.Description)

	if err := s.validator.Validate(operator); err != nil {
		s.cfg.Log.Warn("Operator validation failed", "name", operator.Name, "error", err)
		return nil, apperrors.Validation("Invalid operator", map[string]any{"error": err.Error()})
	}

	if err := s.repo.Create(ctx, operator); err != nil {
		s.cfg.Log.Error("Failed to create operator", "name", operator.Name, "error", err)
		return nil, apperrors.Internal("Failed to create operator", err)
	}

	s.cfg.Log.Info("Operator created",
		"operator_id", operator.ID,
		"name", operator.Name,
		"category", operator.Category,
		"city", operator.City,
	)

	return operator, nil
}

func (s *operatorService) List(ctx context.Context, limit int, offset int64) ([]*model.Operator, int64, error) {
	operators, err := s.repo.FindAll(ctx, limit, offset)
	if err != nil {
		s.cfg.Log.Error("Failed to list operators", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve operators", err)
	}

	total, err := s.repo.Count(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to count operators", "error", err)
		return nil, 0, apperrors.Internal("Failed to count operators", err)
	}

	return operators, total, nil
}

func (s *operatorService) GetByID(ctx context.Context, id string) (*model.Operator, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Operator ID cannot be empty")
	}

	operator, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, operatorserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Operator", id)
		}
		s.cfg.Log.Error("Failed to get operator", "operator_id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve operator", err)
	}

	return operator, nil
}
