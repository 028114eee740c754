// Package forms serves the contact and careers form endpoints. Submissions
// are recorded in the database and relayed through the mail provider.
package forms

import (
	"errors"
	"time"
)

// Kind distinguishes the two forms.
type Kind string

const (
	KindContact     Kind = "contact"
	KindApplication Kind = "application"
)

// Status tracks delivery of a submission.
type Status string

const (
	StatusReceived  Status = "received"
	StatusDelivered Status = "delivered"
	StatusFailed    Status = "failed"
)

// ErrValidation marks a submission rejected before delivery.
var ErrValidation = errors.New("validation failed")

// ValidationError carries the message shown to the visitor.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error { return ErrValidation }

// Submission is a stored form submission.
type Submission struct {
	ID             string    `json:"id"`
	Kind           Kind      `json:"kind"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone,omitempty"`
	Company        string    `json:"company,omitempty"`
	Region         string    `json:"region,omitempty"`
	Position       string    `json:"position,omitempty"`
	Message        string    `json:"message,omitempty"`
	Source         string    `json:"source,omitempty"`
	AttachmentName string    `json:"attachment_name,omitempty"`
	ClientIP       string    `json:"client_ip,omitempty"`
	UserAgent      string    `json:"user_agent,omitempty"`
	Referrer       string    `json:"referrer,omitempty"`
	SubmittedAt    time.Time `json:"submitted_at"`
	Status         Status    `json:"status"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// ContactRequest is the JSON body of POST /api/contact.
type ContactRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Company   string `json:"company"`
	Phone     string `json:"phone"`
	Region    string `json:"region"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

// ApplicationRequest is the multipart body of POST /api/apply.
type ApplicationRequest struct {
	Name       string
	Email      string
	Phone      string
	Position   string
	Message    string
	Timestamp  string
	ResumeName string
	Resume     []byte
}

// Response is returned on success.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse is returned on any failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	msgContactRequired = "Name, email, and message are required"
	msgApplyRequired   = "Name, email, and position are required"
	msgContactOK       = "Contact form submitted successfully"
	msgApplyOK         = "Application submitted successfully"
	msgContactFailed   = "Failed to send message. Please try again."
	msgApplyFailed     = "Failed to submit application. Please try again."
	msgInvalidBody     = "Invalid request body"
	msgResumeTooLarge  = "Resume must be %dMB or smaller"
	msgResumeNotPDF    = "Resume must be a PDF"
)
