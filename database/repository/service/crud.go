package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"nearaid/models"

	"github.com/google/uuid"
)

// Create inserts a single service record, assigning its ID and GeoJSON
// location.
func (r *MongoServiceRepo) Create(ctx context.Context, svc *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	prepareService(svc)
	if _, err := r.coll.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

// CreateMany inserts a batch of service records in a single write.
func (r *MongoServiceRepo) CreateMany(ctx context.Context, svcs []models.Service) error {
	if len(svcs) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(svcs))
	for i := range svcs {
		prepareService(&svcs[i])
		docs = append(docs, svcs[i])
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to create %d services: %w", len(svcs), err)
	}
	return nil
}

// prepareService fills in the store-assigned fields before insertion.
func prepareService(svc *models.Service) {
	if svc.ID == "" {
		svc.ID = uuid.New().String()
	}
	if svc.Available == nil {
		available := true
		svc.Available = &available
	}
	svc.LocationGeo = models.NewGeoPoint(svc.Latitude, svc.Longitude)
}
