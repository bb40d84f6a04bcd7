package databases

//go generate: mockery --name TestDriveDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drivescout/car-compare-api/models"
)

const testDriveName = "test_drives"

// TestDriveDatabase contains the methods to use with the test drive database
type TestDriveDatabase interface {
	Find(context.Context, interface{}, ...*options.FindOptions) ([]models.TestDrive, error)
	InsertOne(context.Context, models.TestDrive, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
}

type testDriveDatabase struct {
	db DatabaseHelper
}

// NewTestDriveDatabase initializes a new instance of test drive database with the provided db connection
func NewTestDriveDatabase(db DatabaseHelper) TestDriveDatabase {
	return &testDriveDatabase{
		db: db,
	}
}

// Find decodes the stored documents and rehydrates the ISO-8601 created_at
// text back into timestamps
func (c *testDriveDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.TestDrive, error) {
	var docs []models.TestDriveDocument
	cur, err := c.db.Collection(testDriveName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&docs)
	if err != nil {
		return nil, err
	}
	testDrives := make([]models.TestDrive, 0, len(docs))
	for _, doc := range docs {
		td, err := doc.TestDrive()
		if err != nil {
			return nil, err
		}
		testDrives = append(testDrives, td)
	}
	return testDrives, nil
}

func (c *testDriveDatabase) InsertOne(ctx context.Context, testDrive models.TestDrive, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := c.db.Collection(testDriveName).InsertOne(ctx, models.NewTestDriveDocument(testDrive), opts...)
	return res, err
}
