package services

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-builder-backend/internal/repositories"
)

// A resume reference is either the storage-native ObjectID hex (24 hex
// characters) or an opaque client-generated identifier. The resolver
// classifies the reference and builds the ownership-scoped query; it does
// no I/O itself.
var nativeIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ResolveReference classifies ref and returns the owner-scoped query for it.
func ResolveReference(ref string, userID primitive.ObjectID) (repositories.ResumeQuery, error) {
	q := repositories.ResumeQuery{UserID: userID}
	return classify(ref, q)
}

// ResolvePublicReference builds the unauthenticated query for ref. The owner
// scope is replaced by a public-only requirement.
func ResolvePublicReference(ref string) (repositories.ResumeQuery, error) {
	q := repositories.ResumeQuery{PublicOnly: true}
	return classify(ref, q)
}

func classify(ref string, q repositories.ResumeQuery) (repositories.ResumeQuery, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return repositories.ResumeQuery{}, ErrInvalidReference
	}
	if nativeIDPattern.MatchString(ref) {
		recordID, err := primitive.ObjectIDFromHex(ref)
		if err != nil {
			return repositories.ResumeQuery{}, ErrInvalidReference
		}
		q.RecordID = recordID
		return q, nil
	}
	q.ExternalID = ref
	return q, nil
}

// NewExternalID mints a guaranteed-fresh external resume identifier:
// millisecond timestamp plus a random suffix.
func NewExternalID() string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + suffix
}
