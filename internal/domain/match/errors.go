package match

import (
	crerr "github.com/cockroachdb/errors"
)

// Rejections of a proposed write. Callers detect them with errors.Is from cockroachdb/errors.
var (
	ErrCrossLeague      = crerr.New("reference belongs to another league")
	ErrSelfPlay         = crerr.New("team cannot play against itself")
	ErrLanesNotAdjacent = crerr.New("lanes are not next to each other")
	ErrDoubleBooked     = crerr.New("team already has a match this week")
	ErrMissingKey       = crerr.New("missing required key")
	ErrIncompletePair   = crerr.New("definition and type must be supplied together")
	ErrInvalidType      = crerr.New("invalid bowler type")
)

// ErrUnknownReference marks structural lookups that found nothing.
var ErrUnknownReference = crerr.New("unknown reference")

func errLanesNotAdjacent(l Lanes) error {
	return crerr.Mark(crerr.Newf("lanes %d and %d are not next to each other", l[0], l[1]), ErrLanesNotAdjacent)
}

func errMissingKey(format string, args ...any) error {
	return crerr.Mark(crerr.Newf(format, args...), ErrMissingKey)
}

func errUnknownReference(format string, args ...any) error {
	return crerr.Mark(crerr.Newf(format, args...), ErrUnknownReference)
}
