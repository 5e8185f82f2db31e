package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func mustEncode(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestDecodeResumeData_Object(t *testing.T) {
	data, err := decodeResumeData(json.RawMessage(`{"title":"My Resume"}`))
	require.NoError(t, err)
	assert.Equal(t, "My Resume", data["title"])
}

func TestDecodeResumeData_EncodedString(t *testing.T) {
	inner := mustEncode(t, map[string]any{"title": "My Resume"})
	once := mustEncode(t, string(inner))

	data, err := decodeResumeData(once)
	require.NoError(t, err)
	assert.Equal(t, "My Resume", data["title"])
}

func TestDecodeResumeData_DoubleEncodedString(t *testing.T) {
	inner := mustEncode(t, map[string]any{"title": "My Resume"})
	once := mustEncode(t, string(inner))
	twice := mustEncode(t, string(once))

	data, err := decodeResumeData(twice)
	require.NoError(t, err)
	assert.Equal(t, "My Resume", data["title"])
}

func TestDecodeResumeData_EmptyAndNull(t *testing.T) {
	data, err := decodeResumeData(nil)
	require.NoError(t, err)
	assert.Empty(t, data)

	data, err = decodeResumeData(json.RawMessage(`null`))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestDecodeResumeData_Unusable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json at all", `{broken`},
		{"string that is not json", `"hello there"`},
		{"array", `[1,2,3]`},
		{"number", `42`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeResumeData(json.RawMessage(tt.raw))
			assert.ErrorIs(t, err, ErrInvalidPayload)
		})
	}

	// The shim unwraps at most twice; a triple-encoded payload stays a
	// string and is rejected.
	inner := mustEncode(t, map[string]any{"title": "X"})
	once := mustEncode(t, string(inner))
	twice := mustEncode(t, string(once))
	thrice := mustEncode(t, string(twice))
	_, err := decodeResumeData(thrice)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestNormalizeResumeData_ImageArray(t *testing.T) {
	data := map[string]any{
		"personal_info": map[string]any{"image": []any{"https://cdn/a.png", "https://cdn/b.png"}},
	}
	normalizeResumeData(data)

	info := data["personal_info"].(map[string]any)
	assert.Equal(t, "https://cdn/a.png", info["image"])
}

func TestNormalizeResumeData_ImageEmptyArray(t *testing.T) {
	data := map[string]any{
		"personal_info": map[string]any{"image": []any{}},
	}
	normalizeResumeData(data)

	info := data["personal_info"].(map[string]any)
	assert.Equal(t, "", info["image"])
}

func TestNormalizeResumeData_ImageNonString(t *testing.T) {
	tests := []struct {
		name  string
		image any
	}{
		{"number", float64(42)},
		{"object", map[string]any{"url": "x"}},
		{"bool", true},
		{"array of non-strings", []any{float64(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := map[string]any{
				"personal_info": map[string]any{"image": tt.image},
			}
			normalizeResumeData(data)

			info := data["personal_info"].(map[string]any)
			assert.Equal(t, "", info["image"])
		})
	}
}

func TestNormalizeResumeData_ScalarCoercion(t *testing.T) {
	data := map[string]any{
		"personal_info": map[string]any{
			"full_name": "Jane Doe",
			"phone":     float64(5551234),
			"location":  true,
		},
	}
	normalizeResumeData(data)

	info := data["personal_info"].(map[string]any)
	assert.Equal(t, "Jane Doe", info["full_name"])
	assert.Equal(t, "5551234", info["phone"])
	assert.Equal(t, "true", info["location"])
}

func TestNormalizeResumeData_ProjectsCopiedToLegacy(t *testing.T) {
	projects := []any{map[string]any{"name": "P1", "type": "web", "description": "d"}}
	data := map[string]any{"projects": projects}
	normalizeResumeData(data)

	assert.Equal(t, projects, data["project"])
	assert.Equal(t, projects, data["projects"])
}

func TestNormalizeResumeData_LegacyCopiedToProjects(t *testing.T) {
	legacy := []any{map[string]any{"name": "Old", "type": "cli", "description": "d"}}
	data := map[string]any{"project": legacy}
	normalizeResumeData(data)

	assert.Equal(t, legacy, data["projects"])
}

func TestNormalizeResumeData_ProjectsWinsOverLegacy(t *testing.T) {
	projects := []any{map[string]any{"name": "New"}}
	legacy := []any{map[string]any{"name": "Old"}}
	data := map[string]any{"projects": projects, "project": legacy}
	normalizeResumeData(data)

	assert.Equal(t, projects, data["projects"])
	assert.Equal(t, projects, data["project"])
}

func TestBuildResume(t *testing.T) {
	userID := primitive.NewObjectID()
	data := map[string]any{
		"title": "Backend Resume",
		"_id":   "507f1f77bcf86cd799439011",
		"personal_info": map[string]any{
			"full_name": "Jane Doe",
			"image":     "https://cdn/a.png",
		},
		"skills":   []any{"Go", "MongoDB"},
		"resumeId": "should-not-pass-through",
	}

	resume, err := buildResume(userID, data)
	require.NoError(t, err)

	assert.Equal(t, userID, resume.UserID)
	assert.True(t, resume.ID.IsZero(), "payload must not choose the record id")
	assert.Empty(t, resume.ResumeID, "payload must not choose the external id")
	assert.Equal(t, "Backend Resume", resume.Title)
	assert.Equal(t, "Jane Doe", resume.PersonalInfo.FullName)
	assert.Equal(t, []string{"Go", "MongoDB"}, resume.Skills)

	// Defaults and empty sections.
	assert.Equal(t, "classic", resume.Template)
	assert.Equal(t, "#382F6A", resume.AccentColor)
	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Education)
}

func TestBuildResume_BadShape(t *testing.T) {
	_, err := buildResume(primitive.NewObjectID(), map[string]any{
		"experience": "not a list",
	})
	assert.ErrorIs(t, err, ErrInvalidPayload)
}
