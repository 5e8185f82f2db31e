package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DefaultTemplate    = "classic"
	DefaultAccentColor = "#382F6A"
)

type PersonalInfo struct {
	Image      string `json:"image" bson:"image"`
	FullName   string `json:"full_name" bson:"full_name"`
	Profession string `json:"profession" bson:"profession"`
	Email      string `json:"email" bson:"email"`
	Phone      string `json:"phone" bson:"phone"`
	Location   string `json:"location" bson:"location"`
	LinkedIn   string `json:"linkedin" bson:"linkedin"`
	Website    string `json:"website" bson:"website"`
}

type Experience struct {
	Company     string `json:"company" bson:"company"`
	Position    string `json:"position" bson:"position"`
	StartDate   string `json:"start_date" bson:"start_date"`
	EndDate     string `json:"end_date" bson:"end_date"`
	Description string `json:"description" bson:"description"`
	IsCurrent   bool   `json:"is_current" bson:"is_current"`
}

type Project struct {
	Name        string `json:"name" bson:"name"`
	Type        string `json:"type" bson:"type"`
	Description string `json:"description" bson:"description"`
}

type Education struct {
	Institution    string `json:"institution" bson:"institution"`
	Degree         string `json:"degree" bson:"degree"`
	Field          string `json:"field" bson:"field"`
	GraduationDate string `json:"graduation_date" bson:"graduation_date"`
	GPA            string `json:"gpa" bson:"gpa"`
}

// Resume is one persisted resume document. ResumeID is the client-facing
// identifier and is unique across the collection; ID is the storage-native
// ObjectID assigned at insert time. Projects is canonical; LegacyProjects
// ("project") is a schema-migration alias kept synchronized with it so old
// clients keep working.
type Resume struct {
	ID                  primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	ResumeID            string             `json:"resumeId,omitempty" bson:"resumeId,omitempty"`
	UserID              primitive.ObjectID `json:"userId,omitempty" bson:"userId,omitempty"`
	Title               string             `json:"title" bson:"title"`
	Public              bool               `json:"public" bson:"public"`
	Template            string             `json:"template" bson:"template"`
	AccentColor         string             `json:"accent_color" bson:"accent_color"`
	ProfessionalSummary string             `json:"professional_summary" bson:"professional_summary"`
	Skills              []string           `json:"skills" bson:"skills"`
	PersonalInfo        PersonalInfo       `json:"personal_info" bson:"personal_info"`
	Experience          []Experience       `json:"experience" bson:"experience"`
	Projects            []Project          `json:"projects" bson:"projects"`
	LegacyProjects      []Project          `json:"project" bson:"project"`
	Education           []Education        `json:"education" bson:"education"`
	CreatedAt           time.Time          `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt           time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
