package service

import (
	"context"

	"tutorials-be/internal/entities"
	"tutorials-be/internal/models"
	"tutorials-be/internal/repository"
)

// TutorialService defines the interface for tutorial business logic
type TutorialService interface {
	Create(ctx context.Context, req *models.CreateTutorialRequest) (*models.TutorialResponse, error)
	FindAll(ctx context.Context, title string) ([]models.TutorialResponse, error)
	FindPublished(ctx context.Context) ([]models.TutorialResponse, error)
	FindByID(ctx context.Context, id string) (*models.TutorialResponse, error)
	Update(ctx context.Context, id string, req *models.UpdateTutorialRequest) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type tutorialService struct {
	repo repository.TutorialRepository
}

// NewTutorialService creates a new tutorial service
func NewTutorialService(repo repository.TutorialRepository) TutorialService {
	return &tutorialService{repo: repo}
}

// Create stores a new tutorial. An omitted published field defaults to false.
func (s *tutorialService) Create(ctx context.Context, req *models.CreateTutorialRequest) (*models.TutorialResponse, error) {
	tutorial := &entities.Tutorial{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.Published != nil {
		tutorial.Published = *req.Published
	}

	created, err := s.repo.Create(ctx, tutorial)
	if err != nil {
		return nil, err
	}
	return toResponse(created), nil
}

func (s *tutorialService) FindAll(ctx context.Context, title string) ([]models.TutorialResponse, error) {
	tutorials, err := s.repo.FindAll(ctx, title)
	if err != nil {
		return nil, err
	}
	return toResponses(tutorials), nil
}

func (s *tutorialService) FindPublished(ctx context.Context) ([]models.TutorialResponse, error) {
	tutorials, err := s.repo.FindPublished(ctx)
	if err != nil {
		return nil, err
	}
	return toResponses(tutorials), nil
}

func (s *tutorialService) FindByID(ctx context.Context, id string) (*models.TutorialResponse, error) {
	tutorial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toResponse(tutorial), nil
}

// Update merges the supplied fields over the current record and stores the
// result. An empty request is a valid no-op update. An empty-string title is
// skipped during the merge: a persisted tutorial never has an empty title.
func (s *tutorialService) Update(ctx context.Context, id string, req *models.UpdateTutorialRequest) error {
	tutorial, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if req.Title != nil && *req.Title != "" {
		tutorial.Title = *req.Title
	}
	if req.Description != nil {
		tutorial.Description = *req.Description
	}
	if req.Published != nil {
		tutorial.Published = *req.Published
	}

	return s.repo.Update(ctx, tutorial)
}

func (s *tutorialService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *tutorialService) DeleteAll(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}

func toResponse(t *entities.Tutorial) *models.TutorialResponse {
	return &models.TutorialResponse{
		ID:          t.ID.Hex(),
		Title:       t.Title,
		Description: t.Description,
		Published:   t.Published,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toResponses(tutorials []entities.Tutorial) []models.TutorialResponse {
	responses := make([]models.TutorialResponse, 0, len(tutorials))
	for i := range tutorials {
		responses = append(responses, *toResponse(&tutorials[i]))
	}
	return responses
}
