// Package validation implements the request checks that run in front of
// the route handlers.
//
// A check is a small, independent predicate: it looks at one aspect of a
// value and either lets it through (nil) or returns the Failure that must
// be sent to the client. Run executes a list of checks in order and stops
// at the first Failure, so the order of the list decides which message a
// client sees when a request has several problems.
//
// The individual field rules are go-playground/validator tags evaluated
// with Var; the Portuguese messages are fixed strings chosen per check.
package validation

import (
	"net/http"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Failure is a client error: the HTTP status and the fixed message to send.
type Failure struct {
	Status  int
	Message string
}

// Error implements the error interface so a Failure can travel through
// code that only knows about errors.
func (f *Failure) Error() string { return f.Message }

// Check inspects v and returns nil to continue or a Failure to stop.
type Check[T any] func(v T) *Failure

// Run executes checks in order and returns the first Failure, or nil when
// every check passed. Checks never modify v.
func Run[T any](v T, checks ...Check[T]) *Failure {
	for _, check := range checks {
		if f := check(v); f != nil {
			return f
		}
	}
	return nil
}

func badRequest(msg string) *Failure {
	return &Failure{Status: http.StatusBadRequest, Message: msg}
}

func unauthorized(msg string) *Failure {
	return &Failure{Status: http.StatusUnauthorized, Message: msg}
}

var (
	watchedAtPattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	// https://www.w3resource.com/javascript/form/email-validation.php
	emailPattern = regexp.MustCompile(`^\w+([.-]?\w+)*@\w+([.-]?\w+)*(\.\w{2,3})+$`)
)

// validate is shared by every check. A *validator.Validate caches tag
// parsing and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// RegisterValidation only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("watchedat", func(fl validator.FieldLevel) bool {
		return watchedAtPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("loginemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})

	return v
}

// valid reports whether field satisfies the validator tag.
func valid(field any, tag string) bool {
	return validate.Var(field, tag) == nil
}
