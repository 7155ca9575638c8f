package serviceRepo

import (
	"nearaid/config"
	"nearaid/database"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// MongoServiceRepo implements ServiceRepository using MongoDB.
type MongoServiceRepo struct {
	coll        *mongo.Collection
	prefilterKm float64
}

// NewMongoServiceRepo creates a ServiceRepository backed by the services
// collection, bootstrapping its indexes.
func NewMongoServiceRepo() ServiceRepository {
	repo := &MongoServiceRepo{
		coll:        database.ServicesCollection(),
		prefilterKm: config.AppConfig.PrefilterRadiusKm,
	}
	if err := repo.ensureIndexes(); err != nil {
		zap.L().Warn("failed to ensure service indexes", zap.Error(err))
	}
	return repo
}
