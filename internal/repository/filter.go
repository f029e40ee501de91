package repository

import (
	"gorm.io/gorm"

	"analytics_backend/internal/models"
)

// DefaultLimit caps read results when the caller does not ask for a limit.
const DefaultLimit = 500

// FilterCriteria narrows read queries. Nil or empty fields apply no
// restriction; the zero value matches everything. Never mutated after
// construction.
type FilterCriteria struct {
	PlateNumbers []string
	StartAt      *models.DateOnly
	EndAt        *models.DateOnly
	Limit        int
}

// Scope compiles the criteria into a GORM scope. Active predicates are
// combined with AND.
func (c FilterCriteria) Scope() func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(c.PlateNumbers) > 0 {
			db = db.Where("plate_number IN ?", c.PlateNumbers)
		}
		switch {
		case c.StartAt != nil && c.EndAt != nil:
			db = db.Where("date BETWEEN ? AND ?", c.StartAt, c.EndAt)
		case c.StartAt != nil:
			db = db.Where("date >= ?", c.StartAt)
		case c.EndAt != nil:
			db = db.Where("date <= ?", c.EndAt)
		}
		return db
	}
}

// EffectiveLimit returns the requested limit, or DefaultLimit when unset.
// A zero or negative limit is indistinguishable from "not provided" and
// falls back to the default; there is no way to request zero rows.
func (c FilterCriteria) EffectiveLimit() int {
	if c.Limit > 0 {
		return c.Limit
	}
	return DefaultLimit
}
