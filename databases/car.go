package databases

//go generate: mockery --name CarDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drivescout/car-compare-api/models"
)

const carName = "cars"

// CarDatabase contains the methods to use with the car database
type CarDatabase interface {
	FindOne(context.Context, interface{}, ...*options.FindOneOptions) (*models.Car, error)
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.Car, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	Distinct(context.Context, string, interface{}, ...*options.DistinctOptions) ([]string, error)
}

type carDatabase struct {
	db DatabaseHelper
}

// NewCarDatabase initializes a new instance of car database with the provided db connection
func NewCarDatabase(db DatabaseHelper) CarDatabase {
	return &carDatabase{
		db: db,
	}
}

func (c *carDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Car, error) {
	car := &models.Car{}
	err := c.db.Collection(carName).FindOne(ctx, filter, opts...).Decode(&car)
	if err != nil {
		return nil, err
	}
	return car, nil
}

func (c *carDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.Car, error) {
	var cars []models.Car
	cur, err := c.db.Collection(carName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&cars)
	if err != nil {
		return nil, err
	}
	return cars, nil
}

func (c *carDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := c.db.Collection(carName).InsertOne(ctx, document, opts...)
	return res, err
}

func (c *carDatabase) Distinct(ctx context.Context, fieldName string, filter interface{}, opts ...*options.DistinctOptions) ([]string, error) {
	raw, err := c.db.Collection(carName).Distinct(ctx, fieldName, filter, opts...)
	if err != nil {
		return nil, err
	}
	values := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			values = append(values, s)
		}
	}
	return values, nil
}
