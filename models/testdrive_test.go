package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/drivescout/car-compare-api/models"
)

func TestNewTestDriveDefaults(t *testing.T) {
	in := models.TestDriveCreate{
		CarID:         "car-1",
		UserName:      "Jamie Doe",
		UserEmail:     "jamie@example.com",
		UserPhone:     "+1 (555) 000-1111",
		PreferredDate: "2024-06-01",
		PreferredTime: "10:00",
		Location:      "Downtown Showroom",
	}

	before := time.Now().UTC()
	td := models.NewTestDrive(in)
	after := time.Now().UTC()

	assert.NotEmpty(t, td.ID)
	assert.Equal(t, "car-1", td.CarID)
	assert.Equal(t, models.StatusPending, td.Status)
	assert.False(t, td.CreatedAt.Before(before))
	assert.False(t, td.CreatedAt.After(after))
	assert.Equal(t, time.UTC, td.CreatedAt.Location())
}

func TestTestDriveDocumentRoundTrip(t *testing.T) {
	td := models.TestDrive{
		ID:            "td-1",
		CarID:         "car-1",
		UserName:      "Jamie Doe",
		UserEmail:     "jamie@example.com",
		UserPhone:     "+1 (555) 000-1111",
		PreferredDate: "2024-06-01",
		PreferredTime: "10:00",
		Location:      "Downtown Showroom",
		Status:        models.StatusPending,
		CreatedAt:     time.Date(2024, 5, 1, 10, 30, 0, 123456789, time.UTC),
	}

	doc := models.NewTestDriveDocument(td)
	assert.Equal(t, "2024-05-01T10:30:00.123456789Z", doc.CreatedAt)

	got, err := doc.TestDrive()
	assert.NoError(t, err)
	assert.Equal(t, td, got)
}

func TestTestDriveDocumentBadCreatedAt(t *testing.T) {
	doc := models.TestDriveDocument{CreatedAt: "yesterday"}

	_, err := doc.TestDrive()
	assert.Error(t, err)
}

func TestLocationsFixedSet(t *testing.T) {
	locations := models.Locations()

	assert.Len(t, locations, 4)
	for i, loc := range locations {
		assert.Equal(t, []string{"loc1", "loc2", "loc3", "loc4"}[i], loc.ID)
		assert.NotEmpty(t, loc.Name)
		assert.NotEmpty(t, loc.Address)
		assert.NotEmpty(t, loc.City)
		assert.NotEmpty(t, loc.Phone)
	}

	// regenerated identically on every read
	assert.Equal(t, locations, models.Locations())
}
