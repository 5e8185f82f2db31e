package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"resume-builder-backend/internal/models"
)

// personalInfoFields are the scalar fields coerced to strings during
// normalization. image is handled separately because it has its own
// array-flattening rule.
var personalInfoFields = []string{
	"full_name", "email", "phone", "location", "profession", "linkedin", "website",
}

// decodeResumeData frames a raw resumeData value into a JSON object.
// Clients have sent the payload as a plain object, a JSON-encoded string,
// and a double-encoded JSON string (a known upstream serialization bug), so
// string results are unwrapped up to twice. Anything that does not end up
// as an object is unusable and rejected.
func decodeResumeData(raw json.RawMessage) (map[string]any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{}, nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	for range 2 {
		s, ok := value.(string)
		if !ok {
			break
		}
		var inner any
		if err := json.Unmarshal([]byte(s), &inner); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}
		value = inner
	}

	if value == nil {
		return map[string]any{}, nil
	}
	data, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: expected an object, got %T", ErrInvalidPayload, value)
	}
	return data, nil
}

// normalizeResumeData repairs the known shape inconsistencies in place:
// personal_info.image collapses to a single string, the other personal_info
// scalars are coerced to strings, and the projects/project pair is kept in
// sync with projects winning when both are present.
func normalizeResumeData(data map[string]any) {
	if info, ok := data["personal_info"].(map[string]any); ok {
		switch image := info["image"].(type) {
		case string, nil:
			// already usable
		case []any:
			info["image"] = ""
			if len(image) > 0 {
				if first, ok := image[0].(string); ok {
					info["image"] = first
				}
			}
		default:
			info["image"] = ""
		}

		for _, field := range personalInfoFields {
			value, ok := info[field]
			if !ok || value == nil {
				continue
			}
			if _, isString := value.(string); !isString {
				info[field] = stringify(value)
			}
		}
	}

	if projects, ok := data["projects"].([]any); ok {
		data["project"] = projects
	} else if legacy, ok := data["project"].([]any); ok {
		if existing, present := data["projects"]; !present || existing == nil {
			data["projects"] = legacy
		}
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// buildResume decodes a normalized payload into the canonical document.
// Identity and bookkeeping fields never come from the payload: the storage
// layer owns _id and timestamps, the resolver owns resumeId, and the auth
// collaborator owns userId.
func buildResume(userID primitive.ObjectID, data map[string]any) (*models.Resume, error) {
	for _, field := range []string{"_id", "userId", "resumeId", "createdAt", "updatedAt"} {
		delete(data, field)
	}

	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	var resume models.Resume
	if err := json.Unmarshal(encoded, &resume); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	resume.UserID = userID
	if resume.Template == "" {
		resume.Template = models.DefaultTemplate
	}
	if resume.AccentColor == "" {
		resume.AccentColor = models.DefaultAccentColor
	}
	if resume.Skills == nil {
		resume.Skills = []string{}
	}
	if resume.Experience == nil {
		resume.Experience = []models.Experience{}
	}
	if resume.Projects == nil {
		resume.Projects = []models.Project{}
	}
	if resume.LegacyProjects == nil {
		resume.LegacyProjects = []models.Project{}
	}
	if resume.Education == nil {
		resume.Education = []models.Education{}
	}
	return &resume, nil
}
