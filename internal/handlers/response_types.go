package handlers

import (
	"github.com/quickfixlabs/receptionist/internal/domains/booking"
	"github.com/quickfixlabs/receptionist/internal/domains/persona"
)

// Response wrapper types for Swagger documentation

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error" example:"Something went wrong"`
	Details string `json:"details,omitempty" example:"Validation error details"`
}

// AskCompanyRequest represents a grounded company question
type AskCompanyRequest struct {
	Question string `json:"question" example:"How much is an emergency call-out?"`
}

// AskCompanyResponse represents a grounded answer
type AskCompanyResponse struct {
	Answer string `json:"answer" example:"Our emergency call-out is £150."`
	Source string `json:"source" example:"company_knowledge"`
}

// StartDemoRequest optionally overrides the canned complaint narrative
type StartDemoRequest struct {
	Complaint string `json:"complaint,omitempty" example:"Waited 3 hours, basement flooding"`
}

// StartDemoResponse represents a provisioned demo session
type StartDemoResponse struct {
	Room      string           `json:"room" example:"demo-1724900000000000000"`
	Token     string           `json:"token"`
	ServerURL string           `json:"server_url" example:"wss://livekit.example.com"`
	Persona   *persona.Persona `json:"persona"`
}

// BookAppointmentResponse represents a confirmed appointment
type BookAppointmentResponse struct {
	Confirmation *booking.Confirmation `json:"confirmation"`
}

// HealthResponse represents the service health report
type HealthResponse struct {
	Status     string   `json:"status" example:"ok"`
	Business   string   `json:"business" example:"QuickFix Plumbing"`
	Categories []string `json:"categories"`
}
