package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drivescout/car-compare-api/models"
)

func TestNewCarCopiesInputAndGeneratesID(t *testing.T) {
	in := models.CarCreate{
		Make:        "Tesla",
		Model:       "Model S",
		Year:        2024,
		Price:       74990,
		Type:        "Sedan",
		Image:       "https://example.com/model-s.jpg",
		Specs:       map[string]string{"engine": "electric", "horsepower": "1020"},
		Features:    []string{"Autopilot", "Glass roof"},
		Description: "Flagship sedan",
	}

	car := models.NewCar(in)

	assert.NotEmpty(t, car.ID)
	assert.Equal(t, in.Make, car.Make)
	assert.Equal(t, in.Model, car.Model)
	assert.Equal(t, in.Year, car.Year)
	assert.Equal(t, in.Price, car.Price)
	assert.Equal(t, in.Type, car.Type)
	assert.Equal(t, in.Image, car.Image)
	assert.Equal(t, in.Specs, car.Specs)
	assert.Equal(t, in.Features, car.Features)
	assert.Equal(t, in.Description, car.Description)
}

func TestNewCarGeneratesUniqueIDs(t *testing.T) {
	a := models.NewCar(models.CarCreate{})
	b := models.NewCar(models.CarCreate{})

	assert.NotEqual(t, a.ID, b.ID)
}

func TestCarCreateIgnoresUnknownFields(t *testing.T) {
	body := `{"make":"Tesla","model":"Model S","bogus":"dropped"}`

	var in models.CarCreate
	err := json.Unmarshal([]byte(body), &in)

	assert.NoError(t, err)
	assert.Equal(t, "Tesla", in.Make)
	assert.Equal(t, "Model S", in.Model)
}
