package handlers_test

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crimtrack/criminal-records-api/api/handlers"
	"github.com/crimtrack/criminal-records-api/databases"
	mocksdb "github.com/crimtrack/criminal-records-api/databases/mocks"
)

func newRecordHandler(conn databases.CollectionHelper) handlers.Record {
	db := &mocksdb.DatabaseHelper{}
	db.On("Collection", "criminal_record").Return(conn)
	return handlers.Record{DB: databases.NewRecordDatabase(db)}
}

func findCursor(records []bson.M) *mocksdb.CursorHelper {
	cursor := &mocksdb.CursorHelper{}
	cursor.On("All", mock.Anything, mock.Anything).Return(nil).Run(func(args mock.Arguments) {
		arg := args.Get(1).(*[]bson.M)
		(*arg) = records
	})
	return cursor
}

func TestRecord_RecordsHandlerNoQueryReturnsAll(t *testing.T) {
	req, err := http.NewRequest("GET", "/getRecords", nil)
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	conn.On("Find", mock.Anything, bson.M{}).
		Return(findCursor([]bson.M{{"c_id": "AB-1", "name": "John Doe"}, {"c_id": "XY-9"}}), nil)

	rec := newRecordHandler(conn)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.RecordsHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data": [{"c_id": "AB-1", "name": "John Doe"}, {"c_id": "XY-9"}]}`, rr.Body.String())
}

func TestRecord_RecordsHandlerLiteralNullQueryReturnsAll(t *testing.T) {
	req, err := http.NewRequest("GET", "/getRecords?query=null", nil)
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	conn.On("Find", mock.Anything, bson.M{}).Return(findCursor(nil), nil)

	rec := newRecordHandler(conn)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.RecordsHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data": []}`, rr.Body.String())
}

func TestRecord_RecordsHandlerPrefixQuery(t *testing.T) {
	req, err := http.NewRequest("GET", "/getRecords?query=AB", nil)
	if err != nil {
		t.Fatal(err)
	}

	// the filter must anchor at the start of c_id, so "AB" matches "AB-1"
	// but not "XAB-1"
	conn := &mocksdb.CollectionHelper{}
	conn.On("Find", mock.Anything, bson.M{"c_id": primitive.Regex{Pattern: "^AB"}}).
		Return(findCursor([]bson.M{{"c_id": "AB-1"}}), nil)

	rec := newRecordHandler(conn)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.RecordsHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"data": [{"c_id": "AB-1"}]}`, rr.Body.String())
	conn.AssertExpectations(t)
}

func TestRecord_RecordsHandlerEscapesRegexMetacharacters(t *testing.T) {
	req, err := http.NewRequest("GET", "/getRecords?query=AB.1", nil)
	if err != nil {
		t.Fatal(err)
	}

	// the dot is a literal character of the prefix, not a wildcard
	conn := &mocksdb.CollectionHelper{}
	conn.On("Find", mock.Anything, bson.M{"c_id": primitive.Regex{Pattern: `^AB\.1`}}).
		Return(findCursor(nil), nil)

	rec := newRecordHandler(conn)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.RecordsHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	conn.AssertExpectations(t)
}

func TestRecord_RecordsHandlerExtendedJSONDates(t *testing.T) {
	req, err := http.NewRequest("GET", "/getRecords", nil)
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	conn.On("Find", mock.Anything, bson.M{}).
		Return(findCursor([]bson.M{{"c_id": "AB-1", "createdAt": primitive.DateTime(0)}}), nil)

	rec := newRecordHandler(conn)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.RecordsHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	// store-native dates survive as extended JSON rather than collapsing to
	// plain primitives
	assert.Contains(t, rr.Body.String(), `"$date"`)
}

func TestRecord_RecordsHandlerStoreError(t *testing.T) {
	req, err := http.NewRequest("GET", "/getRecords", nil)
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	conn.On("Find", mock.Anything, bson.M{}).Return(nil, errors.New("mocked-error"))

	rec := newRecordHandler(conn)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.RecordsHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rr.Body.String())
}

func TestRecord_AddRecordHandlerCreate(t *testing.T) {
	body := []byte(`{"create": true, "data": {"c_id": "AB-1", "name": "John Doe"}}`)
	req, err := http.NewRequest("POST", "/addRecord", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	conn.On("InsertOne", mock.Anything, map[string]interface{}{"c_id": "AB-1", "name": "John Doe"}).
		Return(nil, nil)

	rec := newRecordHandler(conn)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.AddRecordHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": 200}`, rr.Body.String())
	conn.AssertExpectations(t)
}

func TestRecord_AddRecordHandlerUpdateMergesFields(t *testing.T) {
	body := []byte(`{"create": false, "data": {"c_id": "AB-1", "status": "closed"}}`)
	req, err := http.NewRequest("POST", "/addRecord", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	// $set only touches the supplied fields, the rest of the document is
	// left alone
	conn := &mocksdb.CollectionHelper{}
	conn.On("UpdateOne", mock.Anything,
		bson.M{"c_id": "AB-1"},
		bson.M{"$set": map[string]interface{}{"c_id": "AB-1", "status": "closed"}}).
		Return(&mongo.UpdateResult{MatchedCount: 1}, nil)

	rec := newRecordHandler(conn)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.AddRecordHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": 200}`, rr.Body.String())
	conn.AssertExpectations(t)
}

func TestRecord_AddRecordHandlerUpdateMissingKey(t *testing.T) {
	body := []byte(`{"create": false, "data": {"status": "closed"}}`)
	req, err := http.NewRequest("POST", "/addRecord", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}

	rec := newRecordHandler(&mocksdb.CollectionHelper{})

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.AddRecordHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rr.Body.String())
}

func TestRecord_DeleteRecordHandlerMissingKey(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/deleteRecord", nil)
	if err != nil {
		t.Fatal(err)
	}

	rec := newRecordHandler(&mocksdb.CollectionHelper{})

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.DeleteRecordHandler)

	handler.ServeHTTP(rr, req)

	// missing c_id reports as a server error, kept for API compatibility
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error": "Internal server error"}`, rr.Body.String())
}

func TestRecord_DeleteRecordHandlerDeletesByKey(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/deleteRecord?c_id=AB-1", nil)
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	conn.On("DeleteOne", mock.Anything, bson.M{"c_id": "AB-1"}).Return(int64(1), nil)

	rec := newRecordHandler(conn)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.DeleteRecordHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": 200}`, rr.Body.String())
	conn.AssertExpectations(t)
}

func TestRecord_DeleteRecordHandlerNonexistentKeyStillSucceeds(t *testing.T) {
	req, err := http.NewRequest("DELETE", "/deleteRecord?c_id=nope", nil)
	if err != nil {
		t.Fatal(err)
	}

	conn := &mocksdb.CollectionHelper{}
	conn.On("DeleteOne", mock.Anything, bson.M{"c_id": "nope"}).Return(int64(0), nil)

	rec := newRecordHandler(conn)

	rr := httptest.NewRecorder()
	handler := http.HandlerFunc(rec.DeleteRecordHandler)

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status": 200}`, rr.Body.String())
}
