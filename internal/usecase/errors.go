package usecase

import (
	"errors"
	"fmt"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/bowling-league/internal/domain/match"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// domainError puts a usecase sentinel in front of a domain rejection while keeping the
// rejection reachable through Unwrap, so both errors.Is and crerr.Is see their kind.
type domainError struct {
	kind  error
	cause error
}

func (e *domainError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind.Error(), e.cause.Error())
}

func (e *domainError) Unwrap() error {
	return e.cause
}

func (e *domainError) Is(target error) bool {
	return target == e.kind
}

// classifyDomainError maps a domain rejection onto the usecase sentinels.
// Failed structural lookups are not found, every other rejection is invalid input.
func classifyDomainError(err error) error {
	if err == nil {
		return nil
	}
	if crerr.Is(err, match.ErrUnknownReference) {
		return &domainError{kind: ErrNotFound, cause: err}
	}
	return &domainError{kind: ErrInvalidInput, cause: err}
}
