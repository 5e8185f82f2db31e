package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"resume-builder-backend/internal/models"
)

// ResumeQuery is a resolved, ownership-scoped lookup. Exactly one of
// RecordID/ExternalID is set by the identity resolver. PublicOnly queries
// drop the owner scope and require the document to be public.
type ResumeQuery struct {
	UserID     primitive.ObjectID
	RecordID   primitive.ObjectID
	ExternalID string
	PublicOnly bool
}

type ResumeRepository interface {
	Insert(ctx context.Context, resume *models.Resume) error
	FindOne(ctx context.Context, q ResumeQuery) (*models.Resume, error)
	// Upsert sets every mutable field of resume at q, creating the document
	// if none matches, and returns the post-update document.
	Upsert(ctx context.Context, q ResumeQuery, resume *models.Resume) (*models.Resume, error)
	// Update is Upsert without the create-if-absent behavior.
	Update(ctx context.Context, q ResumeQuery, resume *models.Resume) (*models.Resume, error)
	Delete(ctx context.Context, q ResumeQuery) error
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Resume, error)
}

type resumeRepository struct {
	collection *mongo.Collection
}

func NewResumeRepository(db *mongo.Database) ResumeRepository {
	return &resumeRepository{collection: db.Collection("resumes")}
}

func (q ResumeQuery) filter() bson.M {
	f := bson.M{}
	if q.PublicOnly {
		f["public"] = true
	} else {
		f["userId"] = q.UserID
	}
	if !q.RecordID.IsZero() {
		f["_id"] = q.RecordID
	} else {
		f["resumeId"] = q.ExternalID
	}
	return f
}

// setFields lists every mutable field for a $set update. resumeId is only
// included when the reconciler stamped one, so updates addressed by the
// native _id never blank out an existing external identifier.
func setFields(resume *models.Resume, now time.Time) bson.M {
	set := bson.M{
		"title":                resume.Title,
		"public":               resume.Public,
		"template":             resume.Template,
		"accent_color":         resume.AccentColor,
		"professional_summary": resume.ProfessionalSummary,
		"skills":               resume.Skills,
		"personal_info":        resume.PersonalInfo,
		"experience":           resume.Experience,
		"projects":             resume.Projects,
		"project":              resume.LegacyProjects,
		"education":            resume.Education,
		"updatedAt":            now,
	}
	if resume.ResumeID != "" {
		set["resumeId"] = resume.ResumeID
	}
	if !resume.UserID.IsZero() {
		set["userId"] = resume.UserID
	}
	return set
}

// Insert implements ResumeRepository.
func (r *resumeRepository) Insert(ctx context.Context, resume *models.Resume) error {
	now := time.Now().UTC()
	if resume.ID.IsZero() {
		resume.ID = primitive.NewObjectID()
	}
	resume.CreatedAt = now
	resume.UpdatedAt = now

	if _, err := r.collection.InsertOne(ctx, resume); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("insert resume: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("failed to insert resume: %w", err)
	}
	return nil
}

// FindOne implements ResumeRepository.
func (r *resumeRepository) FindOne(ctx context.Context, q ResumeQuery) (*models.Resume, error) {
	var resume models.Resume
	if err := r.collection.FindOne(ctx, q.filter()).Decode(&resume); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find resume: %w", err)
	}
	return &resume, nil
}

// Upsert implements ResumeRepository.
func (r *resumeRepository) Upsert(ctx context.Context, q ResumeQuery, resume *models.Resume) (*models.Resume, error) {
	now := time.Now().UTC()
	update := bson.M{
		"$set":         setFields(resume, now),
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updated models.Resume
	if err := r.collection.FindOneAndUpdate(ctx, q.filter(), update, opts).Decode(&updated); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("upsert resume: %w", ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to upsert resume: %w", err)
	}
	return &updated, nil
}

// Update implements ResumeRepository.
func (r *resumeRepository) Update(ctx context.Context, q ResumeQuery, resume *models.Resume) (*models.Resume, error) {
	now := time.Now().UTC()
	update := bson.M{"$set": setFields(resume, now)}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Resume
	if err := r.collection.FindOneAndUpdate(ctx, q.filter(), update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("update resume: %w", ErrDuplicateKey)
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return &updated, nil
}

// Delete implements ResumeRepository.
func (r *resumeRepository) Delete(ctx context.Context, q ResumeQuery) error {
	if err := r.collection.FindOneAndDelete(ctx, q.filter()).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete resume: %w", err)
	}
	return nil
}

// ListByUser implements ResumeRepository. Newest first by update time.
func (r *resumeRepository) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Resume, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer cursor.Close(ctx)

	resumes := []models.Resume{}
	if err := cursor.All(ctx, &resumes); err != nil {
		return nil, fmt.Errorf("failed to decode resumes: %w", err)
	}
	return resumes, nil
}
