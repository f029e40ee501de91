package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"analytics_backend/internal/models"
	"analytics_backend/internal/repository"
	"analytics_backend/internal/timeutil"
)

// ChunkSize bounds how many rows go into one insert transaction. Committing
// very large batches in a single transaction risks exceeding transaction log
// limits and connection timeouts, so batches are split into bounded chunks.
const ChunkSize = 2000

var (
	// ErrNoRecords signals a query that executed fine but matched nothing.
	ErrNoRecords = errors.New("no matching records found")
	// ErrEmptyBatch rejects a bulk insert carrying no rows.
	ErrEmptyBatch = errors.New("no records provided")
)

// BulkError reports a failed bulk insert together with how many rows earlier
// chunks had already committed. Those rows stay persisted; callers use the
// count to reconcile.
type BulkError struct {
	Committed int
	Err       error
}

func (e *BulkError) Error() string {
	return fmt.Sprintf("bulk insert failed after %d committed rows: %v", e.Committed, e.Err)
}

func (e *BulkError) Unwrap() error { return e.Err }

// PlateSummary is one per-plate aggregation result. The period bounds echo
// the request, even when open-ended.
type PlateSummary struct {
	PlateNumber   string           `json:"plate_number"`
	TotalDistance float64          `json:"total_distance"`
	StartAt       *models.DateOnly `json:"start_at"`
	EndAt         *models.DateOnly `json:"end_at"`
}

// DrivingDistanceService implements filtering, per-plate aggregation and
// chunked bulk ingestion over the record repository.
type DrivingDistanceService struct {
	repo repository.DrivingDistanceRepository
}

func NewDrivingDistanceService(repo repository.DrivingDistanceRepository) *DrivingDistanceService {
	return &DrivingDistanceService{repo: repo}
}

// Filter returns the records matching the criteria ordered by date ascending
// and truncated to the criteria limit, with created_at shifted to UTC+7.
func (s *DrivingDistanceService) Filter(ctx context.Context, criteria repository.FilterCriteria) ([]models.DrivingDistance, error) {
	records, err := s.repo.Find(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	for i := range records {
		records[i].CreatedAt = timeutil.ToBangkok(records[i].CreatedAt)
	}
	logrus.Infof("filter matched %d records", len(records))
	return records, nil
}

// SumDistance groups the matching records by plate and sums their distances.
// Groups come back ordered by plate number ascending.
func (s *DrivingDistanceService) SumDistance(ctx context.Context, criteria repository.FilterCriteria) ([]PlateSummary, error) {
	rows, err := s.repo.SumByPlate(ctx, criteria)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoRecords
	}

	summary := make([]PlateSummary, 0, len(rows))
	for _, row := range rows {
		summary = append(summary, PlateSummary{
			PlateNumber:   row.PlateNumber,
			TotalDistance: row.TotalDistance,
			StartAt:       criteria.StartAt,
			EndAt:         criteria.EndAt,
		})
	}
	logrus.Infof("summary generated for %d plates", len(summary))
	return summary, nil
}

// UniquePlates lists every distinct plate number in the store, ascending.
func (s *DrivingDistanceService) UniquePlates(ctx context.Context) ([]string, error) {
	plates, err := s.repo.DistinctPlates(ctx)
	if err != nil {
		return nil, err
	}
	if len(plates) == 0 {
		return nil, ErrNoRecords
	}
	return plates, nil
}

// BulkCreate persists the records in chunks of ChunkSize, committing each
// chunk before starting the next. A chunk failure aborts the rest of the
// batch; chunks committed earlier stay persisted and the returned BulkError
// carries their row count. On success all rows come back in submission order
// with created_at shifted to UTC+7.
func (s *DrivingDistanceService) BulkCreate(ctx context.Context, records []*models.DrivingDistance) ([]models.DrivingDistance, error) {
	total := len(records)
	if total == 0 {
		return nil, ErrEmptyBatch
	}
	logrus.Infof("starting bulk insert of %d records", total)

	for start := 0; start < total; start += ChunkSize {
		end := start + ChunkSize
		if end > total {
			end = total
		}
		logrus.Infof("inserting records %d to %d", start+1, end)
		if err := s.repo.InsertBatch(ctx, records[start:end]); err != nil {
			logrus.Errorf("bulk insert failed: %v", err)
			return nil, &BulkError{Committed: start, Err: err}
		}
	}

	inserted := make([]models.DrivingDistance, total)
	for i, record := range records {
		inserted[i] = *record
		inserted[i].CreatedAt = timeutil.ToBangkok(record.CreatedAt)
	}
	logrus.Infof("bulk insert completed: %d records", total)
	return inserted, nil
}
