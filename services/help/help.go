package help

import (
	"context"
	"time"

	serviceRepo "nearaid/database/repository/service"
	"nearaid/models"
	"nearaid/services/geocode"

	"go.uber.org/zap"
)

// Config carries the tunables the resolution pipeline needs. It is passed
// in explicitly so the pipeline stays testable without global state.
type Config struct {
	// DefaultRadiusKm is the cutoff applied for Medium (or unrecognized)
	// urgency.
	DefaultRadiusKm float64
	// SearchLimit caps how many candidates the nearby search returns.
	SearchLimit int64
	// GeocodeTimeout bounds the outbound place-name lookup.
	GeocodeTimeout time.Duration
}

// HelpService resolves a help request into nearby matching services.
type HelpService interface {
	Resolve(ctx context.Context, req models.HelpRequest) (*models.HelpResponse, error)
}

// DefaultHelpService is the production implementation.
type DefaultHelpService struct {
	Repo     serviceRepo.ServiceRepository
	Geocoder geocode.Geocoder
	Config   Config
	Logger   *zap.Logger
}

func (s *DefaultHelpService) logger() *zap.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return zap.L()
}

// ValidationError rejects a request missing its required fields. The
// pipeline does not run when validation fails.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }
