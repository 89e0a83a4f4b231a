package databases

// go generate: mockery --name RecordDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const recordName = "criminal_record"

// RecordDatabase contains the methods to use with the criminal record
// collection. Records are free-form documents keyed logically by c_id, so
// results decode into bson.M to keep extended types (object ids, dates)
// intact for serialization.
type RecordDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]bson.M, error)
	InsertOne(context.Context, interface{}, ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	UpdateOne(context.Context, interface{}, interface{}, ...*options.UpdateOptions) (*mongo.UpdateResult, error)
	DeleteOne(context.Context, interface{}, ...*options.DeleteOptions) (int64, error)
}

type recordDatabase struct {
	db DatabaseHelper
}

// NewRecordDatabase initializes a new instance of record database with the provided db connection
func NewRecordDatabase(db DatabaseHelper) RecordDatabase {
	return &recordDatabase{
		db: db,
	}
}

func (c *recordDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]bson.M, error) {
	var records []bson.M
	cur, err := c.db.Collection(recordName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.All(ctx, &records)
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (c *recordDatabase) InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	res, err := c.db.Collection(recordName).InsertOne(ctx, document, opts...)
	return res, err
}

func (c *recordDatabase) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts ...*options.UpdateOptions) (*mongo.UpdateResult, error) {
	return c.db.Collection(recordName).UpdateOne(ctx, filter, update, opts...)
}

func (c *recordDatabase) DeleteOne(ctx context.Context, filter interface{}, opts ...*options.DeleteOptions) (int64, error) {
	return c.db.Collection(recordName).DeleteOne(ctx, filter, opts...)
}
