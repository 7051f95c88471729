package controllers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/mux"
	"github.com/lifedrop/backend/config"
	"github.com/lifedrop/backend/models"
	"github.com/lifedrop/backend/store"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListRequests returns a page of donation requests filtered by requester
// email and/or status, with the total page count for the filter.
func ListRequests(s *store.Store, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := buildRequestFilter(query)
		p := parsePagination(query, cfg.DefaultPageSize, cfg.MaxPageSize)

		total, err := s.Requests().CountDocuments(r.Context(), filter)
		if err != nil {
			logrus.Errorf("Error counting requests: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		findOptions := options.Find().SetSkip(p.Skip()).SetLimit(p.Limit)
		cursor, err := s.Requests().Find(r.Context(), filter, findOptions)
		if err != nil {
			logrus.Errorf("Error fetching requests: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(r.Context())

		requests := []models.DonationRequest{}
		if err := cursor.All(r.Context(), &requests); err != nil {
			logrus.Errorf("Error decoding requests: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, models.RequestListResponse{
			Requests:      requests,
			TotalPages:    p.TotalPages(total),
			TotalRequests: total,
		})
	}
}

func buildRequestFilter(query url.Values) bson.M {
	filter := bson.M{}
	if email := strings.TrimSpace(query.Get("email")); email != "" {
		filter["requesterEmail"] = email
	}
	if status := strings.TrimSpace(query.Get("status")); status != "" {
		filter["status"] = status
	}
	return filter
}

// PatchRequestStatus applies a partial update restricted to the status and
// donor identity fields. Transition legality is not checked; the prior
// status is simply overwritten.
func PatchRequestStatus(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, http.StatusNotFound, "Request not found")
			return
		}

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		patch := bson.M{}
		for _, field := range []string{"status", "donorName", "donorEmail"} {
			if value, ok := body[field]; ok {
				patch[field] = value
			}
		}

		if len(patch) == 0 {
			writeError(w, http.StatusBadRequest, "No updatable fields in body")
			return
		}

		res, err := s.Requests().UpdateOne(r.Context(), bson.M{"_id": objID}, bson.M{"$set": patch})
		if err != nil {
			logrus.Errorf("Error updating request %s: %v", objID.Hex(), err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if res.MatchedCount == 0 {
			writeError(w, http.StatusNotFound, "Request not found")
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "Request updated",
		})
	}
}

func CountRequests(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := s.Requests().CountDocuments(r.Context(), bson.M{})
		if err != nil {
			logrus.Errorf("Error counting requests: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"totalRequests": total})
	}
}
