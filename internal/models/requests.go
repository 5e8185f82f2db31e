package models

import "encoding/json"

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    *User  `json:"user"`
}

type CreateResumeRequest struct {
	Title    string `json:"title"`
	ResumeID string `json:"resumeId"`
}

// UpdateResumeRequest carries the reconciler input. ResumeData stays raw
// because clients have historically sent it as an object, a JSON string, or
// a double-encoded JSON string; the service decodes it. RemoveBackground is
// accepted for wire compatibility and ignored server-side.
type UpdateResumeRequest struct {
	ResumeID         string          `json:"resumeId"`
	ResumeData       json.RawMessage `json:"resumeData"`
	RemoveBackground bool            `json:"removeBackground"`
}

type ResumeResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message,omitempty"`
	Resume  *Resume `json:"resume,omitempty"`
}

type ResumeListResponse struct {
	Success bool     `json:"success"`
	Resumes []Resume `json:"resumes"`
}

type EnhanceRequest struct {
	UserContent string `json:"userContent" validate:"required"`
}

type EnhanceResponse struct {
	Success         bool   `json:"success"`
	EnhancedContent string `json:"enhancedContent"`
	Note            string `json:"note,omitempty"`
}
