package service

import (
	"errors"
	"fmt"

	"github.com/vanshika/airroute/internal/domain"
	"github.com/vanshika/airroute/internal/geo"
	"github.com/vanshika/airroute/internal/pathfind"
)

// Reason classifies why a lookup did not produce a route.
type Reason string

const (
	ReasonNone               Reason = ""
	ReasonUnknownSource      Reason = "unknown_source"
	ReasonUnknownDestination Reason = "unknown_destination"
	ReasonSameAirport        Reason = "same_airport"
	ReasonNoRoute            Reason = "no_route"
)

// Outcome labels used for metrics.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

var (
	ErrUnknownAirport = errors.New("unknown airport")
	ErrSameAirport    = errors.New("same source and destination")
	ErrNoRoute        = errors.New("no route available")
)

// LookupError describes a classified lookup failure.
type LookupError struct {
	Reason Reason
	Code   string
	Err    error
}

func (e *LookupError) Error() string {
	switch e.Reason {
	case ReasonUnknownSource:
		return fmt.Sprintf("%v: source %q", e.Err, e.Code)
	case ReasonUnknownDestination:
		return fmt.Sprintf("%v: destination %q", e.Err, e.Code)
	default:
		return e.Err.Error()
	}
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

// Pair is a source and destination code to look up.
type Pair struct {
	Source      string
	Destination string
}

// Result is the outcome of a single lookup.
type Result struct {
	SourceCode      string
	DestinationCode string
	Source          *domain.Airport
	Destination     *domain.Airport
	Path            pathfind.Path
	DistanceKm      float64
	Reason          Reason
	OK              bool
}

// Rounded returns the distance rounded to three decimals.
func (r Result) Rounded() float64 {
	return geo.Round3(r.DistanceKm)
}

// Outcome returns the metrics label for the result.
func (r Result) Outcome() string {
	if r.OK {
		return OutcomeSuccess
	}
	return string(r.Reason)
}

// Failure returns nil for a successful lookup and a *LookupError otherwise.
func (r Result) Failure() error {
	switch r.Reason {
	case ReasonUnknownSource:
		return &LookupError{Reason: r.Reason, Code: r.SourceCode, Err: ErrUnknownAirport}
	case ReasonUnknownDestination:
		return &LookupError{Reason: r.Reason, Code: r.DestinationCode, Err: ErrUnknownAirport}
	case ReasonSameAirport:
		return &LookupError{Reason: r.Reason, Code: r.SourceCode, Err: ErrSameAirport}
	case ReasonNoRoute:
		return &LookupError{Reason: r.Reason, Code: r.DestinationCode, Err: ErrNoRoute}
	}
	return nil
}

// Message renders the human-readable result line.
func (r Result) Message() string {
	switch r.Reason {
	case ReasonUnknownSource:
		return fmt.Sprintf("No airport source available (%s)", r.SourceCode)
	case ReasonUnknownDestination:
		return fmt.Sprintf("No airport destination available (%s)", r.DestinationCode)
	case ReasonSameAirport:
		return "Cannot fly to same destination!"
	case ReasonNoRoute:
		return fmt.Sprintf("No flight from %s to %s available", airportLabel(r.Source, r.SourceCode), airportLabel(r.Destination, r.DestinationCode))
	}
	if !r.OK {
		return fmt.Sprintf("Lookup from %s to %s did not complete", airportLabel(r.Source, r.SourceCode), airportLabel(r.Destination, r.DestinationCode))
	}
	return fmt.Sprintf("Flight from %s to %s is %.3f km", airportLabel(r.Source, r.SourceCode), airportLabel(r.Destination, r.DestinationCode), r.DistanceKm)
}

// airportLabel prefers the resolved airport name and falls back to the code.
func airportLabel(a *domain.Airport, code string) string {
	if a == nil {
		return code
	}
	return a.Name
}
