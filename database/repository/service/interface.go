package serviceRepo

import (
	"context"

	"nearaid/models"
)

// ListFilter carries pagination and optional type filtering for listing
// queries.
type ListFilter struct {
	Offset int64
	Limit  int64
	Type   string
}

// ServiceRepository defines methods for service directory data access.
type ServiceRepository interface {
	// Create inserts a single service record, assigning its ID and
	// GeoJSON location.
	Create(ctx context.Context, svc *models.Service) error
	// CreateMany inserts a batch of service records in a single write.
	CreateMany(ctx context.Context, svcs []models.Service) error
	// GetAll returns one page of services plus the total count for the
	// applied filter, sorted by name.
	GetAll(ctx context.Context, filter ListFilter) ([]models.Service, int64, error)
	// GetServiceTypes returns the distinct type labels currently stored.
	GetServiceTypes(ctx context.Context) ([]string, error)
	// FindNearby returns up to limit services around the given point,
	// nearest first, bounded by the repository's pre-filter radius.
	FindNearby(ctx context.Context, lat, lon float64, limit int64) ([]models.Service, error)
}
