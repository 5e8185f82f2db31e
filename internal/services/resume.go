package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-builder-backend/internal/models"
	"resume-builder-backend/internal/repositories"
)

const (
	msgSaved      = "Saved successfully"
	msgSavedNewID = "Saved with new ID"
)

type ResumeService interface {
	// Create inserts a fresh resume. An empty resumeID means the server
	// mints one; an identifier collision is retried once under a new id.
	Create(ctx context.Context, userID primitive.ObjectID, title, resumeID string) (*models.Resume, error)
	// Save normalizes rawData and upserts it at the resolved reference.
	// The returned message is msgSavedNewID when a uniqueness collision
	// forced the record under a different external id than requested.
	Save(ctx context.Context, userID primitive.ObjectID, reference string, rawData json.RawMessage) (*models.Resume, string, error)
	Get(ctx context.Context, userID primitive.ObjectID, reference string) (*models.Resume, error)
	GetPublic(ctx context.Context, reference string) (*models.Resume, error)
	Delete(ctx context.Context, userID primitive.ObjectID, reference string) error
	List(ctx context.Context, userID primitive.ObjectID) ([]models.Resume, error)
}

type resumeService struct {
	repo repositories.ResumeRepository
}

func NewResumeService(repo repositories.ResumeRepository) ResumeService {
	return &resumeService{repo: repo}
}

// Create implements ResumeService.
func (s *resumeService) Create(ctx context.Context, userID primitive.ObjectID, title, resumeID string) (*models.Resume, error) {
	if resumeID == "" {
		resumeID = NewExternalID()
	}

	resume := newDefaultResume(userID, title, resumeID)
	err := s.repo.Insert(ctx, resume)
	if err == nil {
		return resume, nil
	}
	if !errors.Is(err, repositories.ErrDuplicateKey) {
		return nil, err
	}

	// Identifier already taken; regenerate and retry exactly once.
	resume = newDefaultResume(userID, title, NewExternalID())
	if err := s.repo.Insert(ctx, resume); err != nil {
		return nil, fmt.Errorf("failed to create resume after retry: %w", err)
	}
	return resume, nil
}

// Save implements ResumeService.
func (s *resumeService) Save(ctx context.Context, userID primitive.ObjectID, reference string, rawData json.RawMessage) (*models.Resume, string, error) {
	query, err := ResolveReference(reference, userID)
	if err != nil {
		return nil, "", err
	}

	data, err := decodeResumeData(rawData)
	if err != nil {
		return nil, "", err
	}
	normalizeResumeData(data)

	resume, err := buildResume(userID, data)
	if err != nil {
		return nil, "", err
	}
	// Stamp the external id so a record created by this upsert is
	// retrievable under the same reference next time.
	if query.ExternalID != "" {
		resume.ResumeID = query.ExternalID
	}

	saved, err := s.repo.Upsert(ctx, query, resume)
	if err == nil {
		return saved, msgSaved, nil
	}
	if !errors.Is(err, repositories.ErrDuplicateKey) {
		return nil, "", err
	}

	// Uniqueness collision. Either we lost a race to a concurrent writer
	// creating the same record, or the external id belongs to a record
	// outside our query scope.
	if _, findErr := s.repo.FindOne(ctx, query); findErr == nil {
		updated, updateErr := s.repo.Update(ctx, query, resume)
		if updateErr != nil {
			return nil, "", updateErr
		}
		return updated, msgSaved, nil
	}

	resume.ResumeID = NewExternalID()
	if insertErr := s.repo.Insert(ctx, resume); insertErr != nil {
		return nil, "", insertErr
	}
	return resume, msgSavedNewID, nil
}

// Get implements ResumeService.
func (s *resumeService) Get(ctx context.Context, userID primitive.ObjectID, reference string) (*models.Resume, error) {
	query, err := ResolveReference(reference, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.FindOne(ctx, query)
}

// GetPublic implements ResumeService.
func (s *resumeService) GetPublic(ctx context.Context, reference string) (*models.Resume, error) {
	query, err := ResolvePublicReference(reference)
	if err != nil {
		return nil, err
	}
	return s.repo.FindOne(ctx, query)
}

// Delete implements ResumeService.
func (s *resumeService) Delete(ctx context.Context, userID primitive.ObjectID, reference string) error {
	query, err := ResolveReference(reference, userID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, query)
}

// List implements ResumeService.
func (s *resumeService) List(ctx context.Context, userID primitive.ObjectID) ([]models.Resume, error) {
	return s.repo.ListByUser(ctx, userID)
}

func newDefaultResume(userID primitive.ObjectID, title, resumeID string) *models.Resume {
	if title == "" {
		title = "Resume " + resumeID
	}
	return &models.Resume{
		ResumeID:       resumeID,
		UserID:         userID,
		Title:          title,
		Template:       models.DefaultTemplate,
		AccentColor:    models.DefaultAccentColor,
		Skills:         []string{},
		Experience:     []models.Experience{},
		Projects:       []models.Project{},
		LegacyProjects: []models.Project{},
		Education:      []models.Education{},
	}
}
