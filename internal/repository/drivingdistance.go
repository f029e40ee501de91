package repository

import (
	"context"

	"gorm.io/gorm"

	"analytics_backend/internal/models"
)

// PlateDistance is one aggregation row: the summed distance for a plate.
type PlateDistance struct {
	PlateNumber   string
	TotalDistance float64
}

// DrivingDistanceRepository is the persistence boundary for driving-distance
// records.
type DrivingDistanceRepository interface {
	Find(ctx context.Context, criteria FilterCriteria) ([]models.DrivingDistance, error)
	SumByPlate(ctx context.Context, criteria FilterCriteria) ([]PlateDistance, error)
	DistinctPlates(ctx context.Context) ([]string, error)
	InsertBatch(ctx context.Context, records []*models.DrivingDistance) error
}

// GormDrivingDistanceRepo implements the repository over a GORM handle from
// the registry.
type GormDrivingDistanceRepo struct{ db *gorm.DB }

func NewGormDrivingDistanceRepo(db *gorm.DB) *GormDrivingDistanceRepo {
	return &GormDrivingDistanceRepo{db: db}
}

func (r *GormDrivingDistanceRepo) Find(ctx context.Context, criteria FilterCriteria) ([]models.DrivingDistance, error) {
	var records []models.DrivingDistance
	err := r.db.WithContext(ctx).
		Scopes(criteria.Scope()).
		Order("date ASC").
		Limit(criteria.EffectiveLimit()).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *GormDrivingDistanceRepo) SumByPlate(ctx context.Context, criteria FilterCriteria) ([]PlateDistance, error) {
	var rows []PlateDistance
	err := r.db.WithContext(ctx).
		Model(&models.DrivingDistance{}).
		Select("plate_number, COALESCE(SUM(distance), 0) AS total_distance").
		Scopes(criteria.Scope()).
		Group("plate_number").
		Order("plate_number ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *GormDrivingDistanceRepo) DistinctPlates(ctx context.Context) ([]string, error) {
	var plates []string
	err := r.db.WithContext(ctx).
		Model(&models.DrivingDistance{}).
		Where("plate_number IS NOT NULL AND plate_number <> ''").
		Distinct().
		Order("plate_number ASC").
		Pluck("plate_number", &plates).Error
	if err != nil {
		return nil, err
	}
	return plates, nil
}

// InsertBatch writes the records in a single transaction. The driver returns
// generated keys, so ids and created_at are backfilled onto the passed
// records without a re-read.
func (r *GormDrivingDistanceRepo) InsertBatch(ctx context.Context, records []*models.DrivingDistance) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&records).Error
	})
}
