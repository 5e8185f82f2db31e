package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-builder-backend/internal/models"
)

// MemoryResumeRepository stores resumes in memory and is safe for concurrent
// use. It mirrors the mongo repository's semantics, including the unique
// index on resumeId, so reconciler behavior can be exercised without a
// database.
type MemoryResumeRepository struct {
	mu   sync.Mutex
	byID map[primitive.ObjectID]models.Resume
}

func NewMemoryResumeRepository() *MemoryResumeRepository {
	return &MemoryResumeRepository{
		byID: make(map[primitive.ObjectID]models.Resume),
	}
}

func (q ResumeQuery) matches(r models.Resume) bool {
	if q.PublicOnly {
		if !r.Public {
			return false
		}
	} else if r.UserID != q.UserID {
		return false
	}
	if !q.RecordID.IsZero() {
		return r.ID == q.RecordID
	}
	return r.ResumeID == q.ExternalID
}

func (m *MemoryResumeRepository) findLocked(q ResumeQuery) (primitive.ObjectID, bool) {
	for id, r := range m.byID {
		if q.matches(r) {
			return id, true
		}
	}
	return primitive.NilObjectID, false
}

// duplicateLocked reports whether any document other than self already
// holds the given resumeId.
func (m *MemoryResumeRepository) duplicateLocked(resumeID string, self primitive.ObjectID) bool {
	if resumeID == "" {
		return false
	}
	for id, r := range m.byID {
		if id != self && r.ResumeID == resumeID {
			return true
		}
	}
	return false
}

func applySet(dst *models.Resume, src *models.Resume, now time.Time) {
	dst.Title = src.Title
	dst.Public = src.Public
	dst.Template = src.Template
	dst.AccentColor = src.AccentColor
	dst.ProfessionalSummary = src.ProfessionalSummary
	dst.Skills = src.Skills
	dst.PersonalInfo = src.PersonalInfo
	dst.Experience = src.Experience
	dst.Projects = src.Projects
	dst.LegacyProjects = src.LegacyProjects
	dst.Education = src.Education
	if src.ResumeID != "" {
		dst.ResumeID = src.ResumeID
	}
	if !src.UserID.IsZero() {
		dst.UserID = src.UserID
	}
	dst.UpdatedAt = now
}

// Insert implements ResumeRepository.
func (m *MemoryResumeRepository) Insert(ctx context.Context, resume *models.Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if resume.ID.IsZero() {
		resume.ID = primitive.NewObjectID()
	}
	if _, exists := m.byID[resume.ID]; exists || m.duplicateLocked(resume.ResumeID, resume.ID) {
		return fmt.Errorf("insert resume: %w", ErrDuplicateKey)
	}

	now := time.Now().UTC()
	resume.CreatedAt = now
	resume.UpdatedAt = now
	m.byID[resume.ID] = *resume
	return nil
}

// FindOne implements ResumeRepository.
func (m *MemoryResumeRepository) FindOne(ctx context.Context, q ResumeQuery) (*models.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.findLocked(q)
	if !ok {
		return nil, ErrNotFound
	}
	found := m.byID[id]
	return &found, nil
}

// Upsert implements ResumeRepository.
func (m *MemoryResumeRepository) Upsert(ctx context.Context, q ResumeQuery, resume *models.Resume) (*models.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	if id, ok := m.findLocked(q); ok {
		existing := m.byID[id]
		applySet(&existing, resume, now)
		if m.duplicateLocked(existing.ResumeID, id) {
			return nil, fmt.Errorf("upsert resume: %w", ErrDuplicateKey)
		}
		m.byID[id] = existing
		return &existing, nil
	}

	// Create-if-absent: like mongo, the inserted document combines the
	// query's equality fields with the update's set fields.
	created := models.Resume{ID: q.RecordID}
	if created.ID.IsZero() {
		created.ID = primitive.NewObjectID()
	}
	created.UserID = q.UserID
	created.ResumeID = q.ExternalID
	applySet(&created, resume, now)
	created.CreatedAt = now

	if _, exists := m.byID[created.ID]; exists || m.duplicateLocked(created.ResumeID, created.ID) {
		return nil, fmt.Errorf("upsert resume: %w", ErrDuplicateKey)
	}
	m.byID[created.ID] = created
	return &created, nil
}

// Update implements ResumeRepository.
func (m *MemoryResumeRepository) Update(ctx context.Context, q ResumeQuery, resume *models.Resume) (*models.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.findLocked(q)
	if !ok {
		return nil, ErrNotFound
	}
	existing := m.byID[id]
	applySet(&existing, resume, time.Now().UTC())
	if m.duplicateLocked(existing.ResumeID, id) {
		return nil, fmt.Errorf("update resume: %w", ErrDuplicateKey)
	}
	m.byID[id] = existing
	return &existing, nil
}

// Delete implements ResumeRepository.
func (m *MemoryResumeRepository) Delete(ctx context.Context, q ResumeQuery) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	id, ok := m.findLocked(q)
	if !ok {
		return ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

// ListByUser implements ResumeRepository. Newest first by update time.
func (m *MemoryResumeRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	resumes := []models.Resume{}
	for _, r := range m.byID {
		if r.UserID == userID {
			resumes = append(resumes, r)
		}
	}
	sort.Slice(resumes, func(i, j int) bool {
		return resumes[i].UpdatedAt.After(resumes[j].UpdatedAt)
	})
	return resumes, nil
}
