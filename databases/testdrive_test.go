package databases_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/drivescout/car-compare-api/databases"
	"github.com/drivescout/car-compare-api/databases/mocks"
	"github.com/drivescout/car-compare-api/models"
)

func TestTestDriveDatabase_FindRehydratesCreatedAt(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.TestDriveDocument)
		*arg = []models.TestDriveDocument{{
			ID:        "mocked-test-drive",
			CarID:     "mocked-car",
			Status:    models.StatusPending,
			CreatedAt: "2024-05-01T10:30:00Z",
		}}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.D{}).
		Return(cursorHelper, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "test_drives").Return(collectionHelper)

	testDriveDB := databases.NewTestDriveDatabase(dbHelper)

	testDrives, err := testDriveDB.Find(context.Background(), bson.D{})
	assert.NoError(t, err)
	assert.Len(t, testDrives, 1)
	assert.Equal(t, "mocked-test-drive", testDrives[0].ID)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC), testDrives[0].CreatedAt)
}

func TestTestDriveDatabase_FindBadCreatedAt(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var cursorHelper databases.CursorHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	cursorHelper = &mocks.CursorHelper{}

	cursorHelper.(*mocks.CursorHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(*[]models.TestDriveDocument)
		*arg = []models.TestDriveDocument{{CreatedAt: "not-a-timestamp"}}
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.D{}).
		Return(cursorHelper, nil)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "test_drives").Return(collectionHelper)

	testDriveDB := databases.NewTestDriveDatabase(dbHelper)

	testDrives, err := testDriveDB.Find(context.Background(), bson.D{})
	assert.Nil(t, testDrives)
	assert.Error(t, err)
}

func TestTestDriveDatabase_FindError(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("Find", context.Background(), bson.D{}).
		Return(nil, errors.New("mocked-error"))

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "test_drives").Return(collectionHelper)

	testDriveDB := databases.NewTestDriveDatabase(dbHelper)

	testDrives, err := testDriveDB.Find(context.Background(), bson.D{})
	assert.Nil(t, testDrives)
	assert.EqualError(t, err, "mocked-error")
}

func TestTestDriveDatabase_InsertOneStoresDocument(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var iorHelper databases.InsertOneResultHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	iorHelper = &mocks.InsertOneResultHelper{}

	testDrive := models.TestDrive{
		ID:        "mocked-test-drive",
		CarID:     "mocked-car",
		Status:    models.StatusPending,
		CreatedAt: time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC),
	}

	var inserted interface{}
	collectionHelper.(*mocks.CollectionHelper).
		On("InsertOne", context.Background(), mock.Anything).
		Return(iorHelper, nil).Run(func(args mock.Arguments) {
		inserted = args.Get(1)
	})

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "test_drives").Return(collectionHelper)

	testDriveDB := databases.NewTestDriveDatabase(dbHelper)

	res, err := testDriveDB.InsertOne(context.Background(), testDrive)
	assert.NoError(t, err)
	assert.Equal(t, iorHelper, res)

	// created_at is stored as ISO-8601 text
	doc, ok := inserted.(models.TestDriveDocument)
	assert.True(t, ok)
	assert.Equal(t, "2024-05-01T10:30:00Z", doc.CreatedAt)
}
