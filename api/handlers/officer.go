package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/crimtrack/criminal-records-api/config"
	"github.com/crimtrack/criminal-records-api/databases"
	"github.com/crimtrack/criminal-records-api/models"
)

// Officer exported for testing purposes
type Officer struct {
	DB databases.OfficerDatabase
}

// RegisterHandler creates an officer account. The policeId uniqueness check
// is count-then-insert, so two concurrent registrations for the same id can
// race; the collection carries no unique index to close that window.
func (o Officer) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		config.ErrorStatus(fmt.Sprintf("Internal server error: %v", err), http.StatusInternalServerError, w, err)
		return
	}

	if req.PoliceID == "" || req.PoliceName == "" || req.Department == "" ||
		req.PoliceAddress == "" || req.Designation == "" || req.Password == "" {
		config.ErrorStatus("All fields are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	count, err := o.DB.CountDocuments(context.Background(), bson.M{"policeId": req.PoliceID})
	if err != nil {
		config.ErrorStatus(fmt.Sprintf("Internal server error: %v", err), http.StatusInternalServerError, w, err)
		return
	}
	if count > 0 {
		config.ErrorStatus("Police ID already exists", http.StatusBadRequest, w, fmt.Errorf("duplicate policeId %v", req.PoliceID))
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus(fmt.Sprintf("Internal server error: %v", err), http.StatusInternalServerError, w, err)
		return
	}

	officer := models.Officer{
		PoliceID:      req.PoliceID,
		PoliceName:    req.PoliceName,
		Department:    req.Department,
		PoliceAddress: req.PoliceAddress,
		Designation:   req.Designation,
		Password:      hashedPassword,
		CreatedAt:     primitive.NewDateTimeFromTime(time.Now().UTC()),
	}
	_, err = o.DB.InsertOne(context.Background(), officer)
	if err != nil {
		config.ErrorStatus(fmt.Sprintf("Internal server error: %v", err), http.StatusInternalServerError, w, err)
		return
	}
	zap.S().Infow("officer registered", "policeId", req.PoliceID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	b, _ := json.Marshal(models.MessageResponse{Message: "Registration successful"})
	_, _ = w.Write(b)
}

// LoginHandler verifies a policeName/password pair. Lookup is keyed on
// policeName, which is not unique; duplicates resolve to the store's first
// match. The 401 body is identical for an unknown name and a wrong password
// so callers cannot tell which check failed.
func (o Officer) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		config.ErrorStatus("Internal server error", http.StatusInternalServerError, w, err)
		return
	}

	if req.PoliceName == "" || req.Password == "" {
		config.ErrorStatus("Police Name and Password are required", http.StatusBadRequest, w, fmt.Errorf("missing required fields"))
		return
	}

	officer, err := o.DB.FindOne(context.Background(), bson.M{"policeName": req.PoliceName})
	if err != nil {
		if err == mongo.ErrNoDocuments {
			config.ErrorStatus("Invalid Police Name or Password", http.StatusUnauthorized, w, err)
			return
		}
		config.ErrorStatus("Internal server error", http.StatusInternalServerError, w, err)
		return
	}

	// bcrypt compares in constant time and reports malformed stored hashes
	// as a mismatch rather than a fault
	if err := bcrypt.CompareHashAndPassword(officer.Password, []byte(req.Password)); err != nil {
		config.ErrorStatus("Invalid Police Name or Password", http.StatusUnauthorized, w, err)
		return
	}
	zap.S().Infow("officer logged in", "policeId", officer.PoliceID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.LoginResponse{Message: "Login successful", PoliceID: officer.PoliceID})
	_, _ = w.Write(b)
}
