package models

import "github.com/google/uuid"

// Car holds the structure for the car collection in mongo. The
// storage-internal _id is intentionally absent so it never leaks
// into responses.
type Car struct {
	ID          string            `json:"id" bson:"id"`
	Make        string            `json:"make" bson:"make"`
	Model       string            `json:"model" bson:"model"`
	Year        int               `json:"year" bson:"year"`
	Price       float64           `json:"price" bson:"price"`
	Type        string            `json:"type" bson:"type"`
	Image       string            `json:"image" bson:"image"`
	Specs       map[string]string `json:"specs" bson:"specs"`
	Features    []string          `json:"features" bson:"features"`
	Description string            `json:"description" bson:"description"`
}

// CarCreate holds the caller-supplied fields required to create a car,
// the id is generated server side
type CarCreate struct {
	Make        string            `json:"make" validate:"required"`
	Model       string            `json:"model" validate:"required"`
	Year        int               `json:"year" validate:"required"`
	Price       float64           `json:"price" validate:"required"`
	Type        string            `json:"type" validate:"required"`
	Image       string            `json:"image" validate:"required"`
	Specs       map[string]string `json:"specs" validate:"required"`
	Features    []string          `json:"features" validate:"required"`
	Description string            `json:"description" validate:"required"`
}

// NewCar builds a Car from the create input with a freshly generated id
func NewCar(in CarCreate) Car {
	return Car{
		ID:          uuid.New().String(),
		Make:        in.Make,
		Model:       in.Model,
		Year:        in.Year,
		Price:       in.Price,
		Type:        in.Type,
		Image:       in.Image,
		Specs:       in.Specs,
		Features:    in.Features,
		Description: in.Description,
	}
}
