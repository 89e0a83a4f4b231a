package databases

// go generate: mockery --name OfficerDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/crimtrack/criminal-records-api/models"
)

const officerName = "police"

// OfficerDatabase contains the methods to use with the police collection.
// Note that registration enforces policeId uniqueness with a count-then-insert
// check rather than a storage-level constraint, and login is keyed on
// policeName which carries no uniqueness guarantee at all.
type OfficerDatabase interface {
	FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Officer, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	CountDocuments(context.Context, interface{}, ...*options.CountOptions) (int64, error)
}

type officerDatabase struct {
	db DatabaseHelper
}

// NewOfficerDatabase initializes a new instance of officer database with the provided db connection
func NewOfficerDatabase(db DatabaseHelper) OfficerDatabase {
	return &officerDatabase{
		db: db,
	}
}

func (o *officerDatabase) FindOne(ctx context.Context, filter interface{}, opts ...*options.FindOneOptions) (*models.Officer, error) {
	officer := &models.Officer{}
	err := o.db.Collection(officerName).FindOne(ctx, filter, opts...).Decode(&officer)
	if err != nil {
		return nil, err
	}
	return officer, nil
}

func (o *officerDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := o.db.Collection(officerName).InsertOne(ctx, document, opts...)
	return res, err
}

func (o *officerDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	return o.db.Collection(officerName).CountDocuments(ctx, filter, opts...)
}
