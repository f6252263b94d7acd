// Package service implements the business logic of both portals on top of the
// repository, storage and inference layers. Handlers map the sentinel errors
// below onto HTTP status codes.
package service

import (
	"encoding/json"
	"errors"
	"log"
	"time"
)

// Sentinel errors returned by services.
var (
	// ErrNotFound reports a missing or inaccessible resource.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidCredentials reports a failed login. The message is the same
	// for unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrAccountInactive reports a login against a non-active account.
	ErrAccountInactive = errors.New("account is not active")

	// ErrProfileNotFound reports a user without the role profile the
	// operation requires.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrNoModel reports a scan whose examination type and body region have
	// no classification model.
	ErrNoModel = errors.New("no model available for this examination type and body region")

	// ErrNoResults reports a scan that has not been analyzed yet.
	ErrNoResults = errors.New("no analysis results available yet")

	// ErrNoFields reports a report update with nothing to change.
	ErrNoFields = errors.New("no fields to update")

	// ErrValidation wraps request payloads that fail business validation.
	ErrValidation = errors.New("validation failed")

	// ErrNotPublished reports an unpublish attempt on a non-published report.
	ErrNotPublished = errors.New("report is not published")

	// ErrJobNotFound reports an unknown chat job id, or one expired long
	// enough ago that the store evicted it.
	ErrJobNotFound = errors.New("job not found or expired")

	// ErrJobForbidden reports a chat job owned by another user.
	ErrJobForbidden = errors.New("job belongs to another user")
)

// presignExpiry is how long minted image download links stay valid.
const presignExpiry = time.Hour

// logJSON emits one structured log line, matching the middleware's format.
func logJSON(fields map[string]any) {
	b, err := json.Marshal(fields)
	if err != nil {
		log.Printf("{\"level\":\"error\",\"msg\":\"failed to marshal log fields\"}")
		return
	}
	log.Println(string(b))
}
