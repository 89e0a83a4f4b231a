package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/crimtrack/criminal-records-api/config"
	"github.com/crimtrack/criminal-records-api/databases"
	"github.com/crimtrack/criminal-records-api/models"
)

// Record exported for testing purposes
type Record struct {
	DB databases.RecordDatabase
}

// RecordsHandler returns all criminal records, optionally narrowed to those
// whose c_id starts with the query parameter. The parameter is treated as a
// literal prefix: metacharacters are escaped before being anchored into the
// regex filter. The response body is Mongo extended JSON so object ids and
// dates survive the round trip.
func (rec Record) RecordsHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	filter := bson.M{}
	if query != "" && query != "null" {
		filter = bson.M{"c_id": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(query)}}
	}

	dbResp, err := rec.DB.Find(context.Background(), filter)
	if err != nil {
		config.ErrorStatus("Internal server error", http.StatusInternalServerError, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []bson.M{}
	}

	b, err := bson.MarshalExtJSON(bson.M{"data": dbResp}, false, false)
	if err != nil {
		config.ErrorStatus("Internal server error", http.StatusInternalServerError, w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

// AddRecordHandler inserts a new record when create is true, otherwise
// applies the supplied fields as a $set update matched on data.c_id. The
// update merges: fields absent from data are left untouched.
func (rec Record) AddRecordHandler(w http.ResponseWriter, r *http.Request) {
	var req models.AddRecordRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		config.ErrorStatus("Internal server error", http.StatusInternalServerError, w, err)
		return
	}

	if req.Create {
		_, err = rec.DB.InsertOne(context.Background(), req.Data)
	} else {
		cID, ok := req.Data["c_id"]
		if !ok {
			config.ErrorStatus("Internal server error", http.StatusInternalServerError, w, fmt.Errorf("data is missing c_id"))
			return
		}
		_, err = rec.DB.UpdateOne(context.Background(), bson.M{"c_id": cID}, bson.M{"$set": req.Data})
	}
	if err != nil {
		config.ErrorStatus("Internal server error", http.StatusInternalServerError, w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.StatusResponse{Status: http.StatusOK})
	_, _ = w.Write(b)
}

// DeleteRecordHandler removes the first record matching c_id; deleting a key
// that does not exist still succeeds. A missing c_id reports 500, matching
// the original API's contract even though it is really a client error.
func (rec Record) DeleteRecordHandler(w http.ResponseWriter, r *http.Request) {
	cID := r.URL.Query().Get("c_id")
	if cID == "" {
		config.ErrorStatus("Internal server error", http.StatusInternalServerError, w, fmt.Errorf("query param c_id is required"))
		return
	}

	deleted, err := rec.DB.DeleteOne(context.Background(), bson.M{"c_id": cID})
	if err != nil {
		config.ErrorStatus("Internal server error", http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Debugw("record delete", "c_id", cID, "deleted", deleted)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.StatusResponse{Status: http.StatusOK})
	_, _ = w.Write(b)
}
