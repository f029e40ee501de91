package repository

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"analytics_backend/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
		Logger:  logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.DrivingDistance{}))
	return db
}

func seedRecords(t *testing.T, db *gorm.DB) {
	t.Helper()
	records := []*models.DrivingDistance{
		{PlateNumber: "A1", TruckNumber: "T1", GPSVendor: "acme", Date: models.NewDateOnly(2025, 6, 5), Distance: 10},
		{PlateNumber: "A1", TruckNumber: "T1", GPSVendor: "acme", Date: models.NewDateOnly(2025, 6, 20), Distance: 5},
		{PlateNumber: "B2", TruckNumber: "T2", GPSVendor: "acme", Date: models.NewDateOnly(2025, 6, 5), Distance: 7},
	}
	require.NoError(t, db.Create(&records).Error)
}

func TestFindFiltersByPlateAndDateRange(t *testing.T) {
	db := setupTestDB(t)
	seedRecords(t, db)
	repo := NewGormDrivingDistanceRepo(db)

	start := models.NewDateOnly(2025, 6, 1)
	end := models.NewDateOnly(2025, 6, 15)
	records, err := repo.Find(context.Background(), FilterCriteria{
		PlateNumbers: []string{"A1"},
		StartAt:      &start,
		EndAt:        &end,
	})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "A1", records[0].PlateNumber)
	assert.Equal(t, "2025-06-05", records[0].Date.String())
	assert.Equal(t, 10.0, records[0].Distance)
}

func TestFindOpenEndedBounds(t *testing.T) {
	db := setupTestDB(t)
	seedRecords(t, db)
	repo := NewGormDrivingDistanceRepo(db)

	start := models.NewDateOnly(2025, 6, 10)
	records, err := repo.Find(context.Background(), FilterCriteria{StartAt: &start})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "2025-06-20", records[0].Date.String())

	end := models.NewDateOnly(2025, 6, 10)
	records, err = repo.Find(context.Background(), FilterCriteria{EndAt: &end})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFindEmptyCriteriaReturnsAllOrderedByDate(t *testing.T) {
	db := setupTestDB(t)
	seedRecords(t, db)
	repo := NewGormDrivingDistanceRepo(db)

	records, err := repo.Find(context.Background(), FilterCriteria{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Date.Before(records[i-1].Date.Time))
	}
}

func TestFindAppliesLimit(t *testing.T) {
	db := setupTestDB(t)
	seedRecords(t, db)
	repo := NewGormDrivingDistanceRepo(db)

	records, err := repo.Find(context.Background(), FilterCriteria{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFindNoMatchReturnsEmpty(t *testing.T) {
	db := setupTestDB(t)
	seedRecords(t, db)
	repo := NewGormDrivingDistanceRepo(db)

	records, err := repo.Find(context.Background(), FilterCriteria{PlateNumbers: []string{"ZZ"}})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestSumByPlateGroupsAndOrders(t *testing.T) {
	db := setupTestDB(t)
	seedRecords(t, db)
	repo := NewGormDrivingDistanceRepo(db)

	rows, err := repo.SumByPlate(context.Background(), FilterCriteria{})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A1", rows[0].PlateNumber)
	assert.Equal(t, 15.0, rows[0].TotalDistance)
	assert.Equal(t, "B2", rows[1].PlateNumber)
	assert.Equal(t, 7.0, rows[1].TotalDistance)
}

func TestSumByPlateHonoursFilter(t *testing.T) {
	db := setupTestDB(t)
	seedRecords(t, db)
	repo := NewGormDrivingDistanceRepo(db)

	end := models.NewDateOnly(2025, 6, 10)
	rows, err := repo.SumByPlate(context.Background(), FilterCriteria{
		PlateNumbers: []string{"A1"},
		EndAt:        &end,
	})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 10.0, rows[0].TotalDistance)
}

func TestDistinctPlates(t *testing.T) {
	db := setupTestDB(t)
	seedRecords(t, db)
	repo := NewGormDrivingDistanceRepo(db)

	plates, err := repo.DistinctPlates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, plates)
}

func TestDistinctPlatesSkipsBlankPlates(t *testing.T) {
	db := setupTestDB(t)
	seedRecords(t, db)
	blank := &models.DrivingDistance{PlateNumber: "", TruckNumber: "T9", GPSVendor: "acme",
		Date: models.NewDateOnly(2025, 6, 7), Distance: 3}
	require.NoError(t, db.Create(blank).Error)
	repo := NewGormDrivingDistanceRepo(db)

	plates, err := repo.DistinctPlates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "B2"}, plates)
}

func TestDistinctPlatesEmptyStore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDrivingDistanceRepo(db)

	plates, err := repo.DistinctPlates(context.Background())
	require.NoError(t, err)
	assert.Empty(t, plates)
}

func TestInsertBatchBackfillsKeys(t *testing.T) {
	db := setupTestDB(t)
	repo := NewGormDrivingDistanceRepo(db)

	records := []*models.DrivingDistance{
		{PlateNumber: "C3", TruckNumber: "T3", GPSVendor: "acme", Date: models.NewDateOnly(2025, 7, 1), Distance: 12.5},
		{PlateNumber: "C4", TruckNumber: "T4", GPSVendor: "acme", Date: models.NewDateOnly(2025, 7, 2), Distance: 0},
	}
	require.NoError(t, repo.InsertBatch(context.Background(), records))

	for _, record := range records {
		assert.NotZero(t, record.ID)
		assert.False(t, record.CreatedAt.IsZero())
	}

	var count int64
	require.NoError(t, db.Model(&models.DrivingDistance{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}
