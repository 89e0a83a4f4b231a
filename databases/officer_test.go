package databases_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/crimtrack/criminal-records-api/config"
	"github.com/crimtrack/criminal-records-api/databases"
	"github.com/crimtrack/criminal-records-api/databases/mocks"
	"github.com/crimtrack/criminal-records-api/models"
)

func TestNewOfficerDatabase(t *testing.T) {
	os.Setenv("MONGODB_URI", "mongodb://127.0.0.1:27017")
	os.Setenv("DB_NAME", "test")
	conf := config.New()

	dbClient, err := databases.NewClient(conf)
	assert.NoError(t, err)

	db := databases.NewDatabase(conf, dbClient)

	officerDB := databases.NewOfficerDatabase(db)

	assert.NotEmpty(t, officerDB)
}

func TestOfficerDatabase_FindOne(t *testing.T) {

	// define variables for interfaces
	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper
	var srHelperErr databases.SingleResultHelper
	var srHelperCorrect databases.SingleResultHelper

	// set interfaces implementation to mocked structures
	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}
	srHelperErr = &mocks.SingleResultHelper{}
	srHelperCorrect = &mocks.SingleResultHelper{}

	srHelperErr.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(errors.New("mocked-error"))

	srHelperCorrect.(*mocks.SingleResultHelper).
		On("Decode", mock.Anything).
		Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(0).(**models.Officer)
		(*arg).PoliceID = "mocked-officer"
	})

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": true}).
		Return(srHelperErr)

	collectionHelper.(*mocks.CollectionHelper).
		On("FindOne", context.Background(), bson.M{"error": false}).
		Return(srHelperCorrect)

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "police").Return(collectionHelper)

	// Create new database with mocked Database interface
	officerDba := databases.NewOfficerDatabase(dbHelper)

	// Call method with defined filter, that in our mocked function returns
	// mocked-error
	officer, err := officerDba.FindOne(context.Background(), bson.M{"error": true})

	assert.Empty(t, officer)
	assert.EqualError(t, err, "mocked-error")

	// Now call the same function with a different filter for the correct
	// result
	officer, err = officerDba.FindOne(context.Background(), bson.M{"error": false})

	assert.Equal(t, &models.Officer{PoliceID: "mocked-officer"}, officer)
	assert.NoError(t, err)
}

func TestOfficerDatabase_CountDocuments(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), bson.M{"policeId": "P1"}).
		Return(int64(1), nil)

	collectionHelper.(*mocks.CollectionHelper).
		On("CountDocuments", context.Background(), bson.M{"policeId": "P2"}).
		Return(int64(0), errors.New("mocked-error"))

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "police").Return(collectionHelper)

	officerDba := databases.NewOfficerDatabase(dbHelper)

	count, err := officerDba.CountDocuments(context.Background(), bson.M{"policeId": "P1"})

	assert.Equal(t, int64(1), count)
	assert.NoError(t, err)

	count, err = officerDba.CountDocuments(context.Background(), bson.M{"policeId": "P2"})

	assert.Equal(t, int64(0), count)
	assert.EqualError(t, err, "mocked-error")
}

func TestOfficerDatabase_InsertOne(t *testing.T) {

	var dbHelper databases.DatabaseHelper
	var collectionHelper databases.CollectionHelper

	dbHelper = &mocks.DatabaseHelper{}
	collectionHelper = &mocks.CollectionHelper{}

	officer := models.Officer{PoliceID: "P1", PoliceName: "Alice"}

	collectionHelper.(*mocks.CollectionHelper).
		On("InsertOne", context.Background(), officer).
		Return(nil, errors.New("mocked-error"))

	dbHelper.(*mocks.DatabaseHelper).
		On("Collection", "police").Return(collectionHelper)

	officerDba := databases.NewOfficerDatabase(dbHelper)

	res, err := officerDba.InsertOne(context.Background(), officer)

	assert.Nil(t, res)
	assert.EqualError(t, err, "mocked-error")
}
