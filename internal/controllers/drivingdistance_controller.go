package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"analytics_backend/internal/middleware"
	"analytics_backend/internal/models"
	"analytics_backend/internal/repository"
	"analytics_backend/internal/service"
)

// storeFailure logs a 5xx-level error under the request's correlation id.
func storeFailure(c *gin.Context, msg string, err error) {
	logrus.WithField("request_id", middleware.RequestIDFrom(c)).Errorf("%s: %v", msg, err)
}

// DrivingDistanceController exposes the record API over Gin.
type DrivingDistanceController struct {
	svc *service.DrivingDistanceService
}

func NewDrivingDistanceController(svc *service.DrivingDistanceService) *DrivingDistanceController {
	return &DrivingDistanceController{svc: svc}
}

type recordInput struct {
	PlateNumber string          `json:"plate_number" binding:"required"`
	TruckNumber string          `json:"truck_number" binding:"required"`
	GPSVendor   string          `json:"gps_vendor" binding:"required"`
	Date        models.DateOnly `json:"date" binding:"required"`
	// Pointer so an explicit zero distance still satisfies required.
	Distance *float64 `json:"distance" binding:"required"`
}

type filterInput struct {
	PlateNumber []string         `json:"plate_number"`
	StartAt     *models.DateOnly `json:"start_at"`
	EndAt       *models.DateOnly `json:"end_at"`
	Limit       int              `json:"limit"`
}

func (f filterInput) criteria() repository.FilterCriteria {
	return repository.FilterCriteria{
		PlateNumbers: f.PlateNumber,
		StartAt:      f.StartAt,
		EndAt:        f.EndAt,
		Limit:        f.Limit,
	}
}

// BulkCreate inserts a batch of records in chunks.
func (ctl *DrivingDistanceController) BulkCreate(c *gin.Context) {
	var payload []recordInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid bulk payload: " + err.Error()})
		return
	}

	records := make([]*models.DrivingDistance, len(payload))
	for i, in := range payload {
		records[i] = &models.DrivingDistance{
			PlateNumber: in.PlateNumber,
			TruckNumber: in.TruckNumber,
			GPSVendor:   in.GPSVendor,
			Date:        in.Date,
			Distance:    *in.Distance,
		}
	}

	inserted, err := ctl.svc.BulkCreate(c.Request.Context(), records)
	if err != nil {
		if errors.Is(err, service.ErrEmptyBatch) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No records provided."})
			return
		}
		storeFailure(c, "bulk insert failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database insert failed: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, inserted)
}

// Filter returns records matching a JSON criteria payload.
func (ctl *DrivingDistanceController) Filter(c *gin.Context) {
	var payload filterInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter payload: " + err.Error()})
		return
	}
	ctl.respondRecords(c, payload.criteria())
}

// List is the query-parameter flavour of Filter.
func (ctl *DrivingDistanceController) List(c *gin.Context) {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctl.respondRecords(c, criteria)
}

func (ctl *DrivingDistanceController) respondRecords(c *gin.Context, criteria repository.FilterCriteria) {
	records, err := ctl.svc.Filter(c.Request.Context(), criteria)
	if err != nil {
		if errors.Is(err, service.ErrNoRecords) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No matching records found"})
			return
		}
		storeFailure(c, "fetching records failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching records: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

// SumDistance aggregates total distance per plate over the criteria.
func (ctl *DrivingDistanceController) SumDistance(c *gin.Context) {
	var payload filterInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter payload: " + err.Error()})
		return
	}

	criteria := payload.criteria()
	summary, err := ctl.svc.SumDistance(c.Request.Context(), criteria)
	if err != nil {
		if errors.Is(err, service.ErrNoRecords) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No records found for summary"})
			return
		}
		storeFailure(c, "summarizing records failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error summarizing records: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"period":  periodString(criteria.StartAt, criteria.EndAt),
		"summary": summary,
	})
}

// UniquePlates lists every distinct plate number in the store.
func (ctl *DrivingDistanceController) UniquePlates(c *gin.Context) {
	plates, err := ctl.svc.UniquePlates(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoRecords) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No plate numbers found"})
			return
		}
		storeFailure(c, "retrieving plate numbers failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error retrieving plate numbers: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(plates), "plates": plates})
}

func criteriaFromQuery(c *gin.Context) (repository.FilterCriteria, error) {
	criteria := repository.FilterCriteria{PlateNumbers: c.QueryArray("plate_number")}

	if raw := c.Query("start_at"); raw != "" {
		d, err := models.ParseDateOnly(raw)
		if err != nil {
			return criteria, fmt.Errorf("invalid start_at %q: expected YYYY-MM-DD", raw)
		}
		criteria.StartAt = &d
	}
	if raw := c.Query("end_at"); raw != "" {
		d, err := models.ParseDateOnly(raw)
		if err != nil {
			return criteria, fmt.Errorf("invalid end_at %q: expected YYYY-MM-DD", raw)
		}
		criteria.EndAt = &d
	}
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return criteria, fmt.Errorf("invalid limit %q", raw)
		}
		criteria.Limit = n
	}
	return criteria, nil
}

func periodString(start, end *models.DateOnly) string {
	return fmt.Sprintf("%s → %s", dateLabel(start), dateLabel(end))
}

func dateLabel(d *models.DateOnly) string {
	if d == nil {
		return ""
	}
	return d.String()
}
