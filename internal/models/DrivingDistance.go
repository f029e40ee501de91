package models

import (
	"time"
)

// DrivingDistance is one reported driving-distance figure for a vehicle on a
// given calendar date. Rows are insert-only; nothing in the API updates or
// deletes them.
type DrivingDistance struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PlateNumber string    `json:"plate_number" gorm:"size:50;index"`
	TruckNumber string    `json:"truck_number" gorm:"size:50"`
	GPSVendor   string    `json:"gps_vendor" gorm:"size:50;column:gps_vendor"`
	Date        DateOnly  `json:"date"`
	Distance    float64   `json:"distance" gorm:"type:numeric(10,2)"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName keeps the table name the reporting pipeline already uses.
func (DrivingDistance) TableName() string {
	return "drivingdistance"
}
