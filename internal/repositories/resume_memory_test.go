package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-builder-backend/internal/models"
)

func TestMemoryResumeRepository_InsertDuplicate(t *testing.T) {
	repo := NewMemoryResumeRepository()
	ctx := context.Background()

	first := &models.Resume{ResumeID: "dup-id", UserID: primitive.NewObjectID()}
	require.NoError(t, repo.Insert(ctx, first))

	second := &models.Resume{ResumeID: "dup-id", UserID: primitive.NewObjectID()}
	err := repo.Insert(ctx, second)
	assert.True(t, errors.Is(err, ErrDuplicateKey))
}

func TestMemoryResumeRepository_UpsertCreatesThenUpdates(t *testing.T) {
	repo := NewMemoryResumeRepository()
	ctx := context.Background()
	userID := primitive.NewObjectID()
	q := ResumeQuery{UserID: userID, ExternalID: "ext-1"}

	created, err := repo.Upsert(ctx, q, &models.Resume{ResumeID: "ext-1", UserID: userID, Title: "First"})
	require.NoError(t, err)
	assert.Equal(t, "ext-1", created.ResumeID)
	assert.Equal(t, "First", created.Title)
	assert.False(t, created.ID.IsZero())
	assert.False(t, created.CreatedAt.IsZero())

	updated, err := repo.Upsert(ctx, q, &models.Resume{ResumeID: "ext-1", UserID: userID, Title: "Second"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "upsert must update in place, not create")
	assert.Equal(t, "Second", updated.Title)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestMemoryResumeRepository_UpdateRequiresMatch(t *testing.T) {
	repo := NewMemoryResumeRepository()
	ctx := context.Background()

	q := ResumeQuery{UserID: primitive.NewObjectID(), ExternalID: "missing"}
	_, err := repo.Update(ctx, q, &models.Resume{Title: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryResumeRepository_NativeLookupPreservesExternalID(t *testing.T) {
	repo := NewMemoryResumeRepository()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	resume := &models.Resume{ResumeID: "keep-me", UserID: userID, Title: "First"}
	require.NoError(t, repo.Insert(ctx, resume))

	// An update addressed by _id with no external id stamped must not
	// blank out resumeId.
	q := ResumeQuery{UserID: userID, RecordID: resume.ID}
	updated, err := repo.Update(ctx, q, &models.Resume{UserID: userID, Title: "Second"})
	require.NoError(t, err)
	assert.Equal(t, "keep-me", updated.ResumeID)
	assert.Equal(t, "Second", updated.Title)
}

func TestMemoryResumeRepository_PublicQuery(t *testing.T) {
	repo := NewMemoryResumeRepository()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	private := &models.Resume{ResumeID: "private-1", UserID: userID}
	require.NoError(t, repo.Insert(ctx, private))
	public := &models.Resume{ResumeID: "public-1", UserID: userID, Public: true}
	require.NoError(t, repo.Insert(ctx, public))

	_, err := repo.FindOne(ctx, ResumeQuery{PublicOnly: true, ExternalID: "private-1"})
	assert.ErrorIs(t, err, ErrNotFound)

	found, err := repo.FindOne(ctx, ResumeQuery{PublicOnly: true, ExternalID: "public-1"})
	require.NoError(t, err)
	assert.Equal(t, public.ID, found.ID)
}

func TestMemoryResumeRepository_DeleteScopedToOwner(t *testing.T) {
	repo := NewMemoryResumeRepository()
	ctx := context.Background()
	owner := primitive.NewObjectID()

	resume := &models.Resume{ResumeID: "del-1", UserID: owner}
	require.NoError(t, repo.Insert(ctx, resume))

	err := repo.Delete(ctx, ResumeQuery{UserID: primitive.NewObjectID(), ExternalID: "del-1"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Delete(ctx, ResumeQuery{UserID: owner, ExternalID: "del-1"}))
	_, err = repo.FindOne(ctx, ResumeQuery{UserID: owner, ExternalID: "del-1"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryResumeRepository_ListByUserNewestFirst(t *testing.T) {
	repo := NewMemoryResumeRepository()
	ctx := context.Background()
	userID := primitive.NewObjectID()

	older := &models.Resume{ResumeID: "older", UserID: userID}
	require.NoError(t, repo.Insert(ctx, older))
	time.Sleep(5 * time.Millisecond)
	newer := &models.Resume{ResumeID: "newer", UserID: userID}
	require.NoError(t, repo.Insert(ctx, newer))

	// Unrelated owner's record must not appear.
	other := &models.Resume{ResumeID: "other", UserID: primitive.NewObjectID()}
	require.NoError(t, repo.Insert(ctx, other))

	resumes, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, resumes, 2)
	assert.Equal(t, "newer", resumes[0].ResumeID)
	assert.Equal(t, "older", resumes[1].ResumeID)
}
