package models

import (
	"time"

	"github.com/google/uuid"
)

// Test drive booking statuses. No endpoint transitions a booking out of
// pending, the values exist for externally managed records.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// TestDrive holds the structure for the test_drives collection in mongo
type TestDrive struct {
	ID            string    `json:"id"`
	CarID         string    `json:"car_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserPhone     string    `json:"user_phone"`
	PreferredDate string    `json:"preferred_date"`
	PreferredTime string    `json:"preferred_time"`
	Location      string    `json:"location"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// TestDriveCreate holds the caller-supplied fields required to book a test
// drive, the id, status and created_at are generated server side
type TestDriveCreate struct {
	CarID         string `json:"car_id" validate:"required"`
	UserName      string `json:"user_name" validate:"required"`
	UserEmail     string `json:"user_email" validate:"required,email"`
	UserPhone     string `json:"user_phone" validate:"required"`
	PreferredDate string `json:"preferred_date" validate:"required"`
	PreferredTime string `json:"preferred_time" validate:"required"`
	Location      string `json:"location" validate:"required"`
}

// NewTestDrive builds a TestDrive from the create input with a generated id,
// a pending status and the current UTC time
func NewTestDrive(in TestDriveCreate) TestDrive {
	return TestDrive{
		ID:            uuid.New().String(),
		CarID:         in.CarID,
		UserName:      in.UserName,
		UserEmail:     in.UserEmail,
		UserPhone:     in.UserPhone,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Location:      in.Location,
		Status:        StatusPending,
		CreatedAt:     time.Now().UTC(),
	}
}

// TestDriveDocument is the storage shape of a test drive, created_at is kept
// as ISO-8601 text in mongo and parsed back on read
type TestDriveDocument struct {
	ID            string `bson:"id"`
	CarID         string `bson:"car_id"`
	UserName      string `bson:"user_name"`
	UserEmail     string `bson:"user_email"`
	UserPhone     string `bson:"user_phone"`
	PreferredDate string `bson:"preferred_date"`
	PreferredTime string `bson:"preferred_time"`
	Location      string `bson:"location"`
	Status        string `bson:"status"`
	CreatedAt     string `bson:"created_at"`
}

// NewTestDriveDocument converts a TestDrive into its storage shape
func NewTestDriveDocument(td TestDrive) TestDriveDocument {
	return TestDriveDocument{
		ID:            td.ID,
		CarID:         td.CarID,
		UserName:      td.UserName,
		UserEmail:     td.UserEmail,
		UserPhone:     td.UserPhone,
		PreferredDate: td.PreferredDate,
		PreferredTime: td.PreferredTime,
		Location:      td.Location,
		Status:        td.Status,
		CreatedAt:     td.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

// TestDrive rehydrates the stored created_at text back into a timestamp
func (d TestDriveDocument) TestDrive() (TestDrive, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, d.CreatedAt)
	if err != nil {
		return TestDrive{}, err
	}
	return TestDrive{
		ID:            d.ID,
		CarID:         d.CarID,
		UserName:      d.UserName,
		UserEmail:     d.UserEmail,
		UserPhone:     d.UserPhone,
		PreferredDate: d.PreferredDate,
		PreferredTime: d.PreferredTime,
		Location:      d.Location,
		Status:        d.Status,
		CreatedAt:     createdAt,
	}, nil
}
