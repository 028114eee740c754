package forms

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// DefaultMaxResume is the upload limit for resumes.
const DefaultMaxResume = 5 << 20

var unsafeFilename = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// SanitizeFilename replaces every character outside [A-Za-z0-9._-] with '_'.
func SanitizeFilename(name string) string {
	return unsafeFilename.ReplaceAllString(filepath.Base(name), "_")
}

// Validate checks the required contact fields.
func (r ContactRequest) Validate() error {
	if blank(r.Name) || blank(r.Email) || blank(r.Message) {
		return &ValidationError{Message: msgContactRequired}
	}
	return nil
}

// Validate checks the required application fields.
func (r ApplicationRequest) Validate() error {
	if blank(r.Name) || blank(r.Email) || blank(r.Position) {
		return &ValidationError{Message: msgApplyRequired}
	}
	return nil
}

// checkResume enforces the size limit and PDF-only rule.
func checkResume(name string, size int64, head []byte, limit int64) error {
	if size > limit {
		return resumeTooLarge(limit)
	}
	if !strings.EqualFold(filepath.Ext(name), ".pdf") || !bytes.HasPrefix(head, []byte("%PDF-")) {
		return &ValidationError{Message: msgResumeNotPDF}
	}
	return nil
}

func resumeTooLarge(limit int64) error {
	return &ValidationError{Message: fmt.Sprintf(msgResumeTooLarge, limit>>20)}
}

// parseTimestamp reads the client-supplied submission time, falling back to now.
func parseTimestamp(s string, now time.Time) time.Time {
	if t, err := time.Parse(time.RFC3339, strings.TrimSpace(s)); err == nil {
		return t
	}
	return now
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }
