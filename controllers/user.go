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
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetUserByEmail answers the registration duplicate check and the profile
// fetch: {exists:false} when unknown, the sanitized profile otherwise.
func GetUserByEmail(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)["email"]

		var user models.User
		err := s.Users().FindOne(r.Context(), bson.M{"email": email}).Decode(&user)
		if err == mongo.ErrNoDocuments {
			writeJSON(w, http.StatusOK, models.UserLookupResponse{Exists: false})
			return
		}
		if err != nil {
			logrus.Errorf("Error fetching user %s: %v", email, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		user.Sanitize()
		writeJSON(w, http.StatusOK, models.UserLookupResponse{Exists: true, User: &user})
	}
}

// ListUsers serves both the paginated admin directory (page/limit/status)
// and the donor search (district/upazila/bloodGroup).
func ListUsers(s *store.Store, cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := buildUserFilter(query)
		p := parsePagination(query, cfg.DefaultPageSize, cfg.MaxPageSize)

		total, err := s.Users().CountDocuments(r.Context(), filter)
		if err != nil {
			logrus.Errorf("Error counting users: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		findOptions := options.Find().SetSkip(p.Skip()).SetLimit(p.Limit)
		cursor, err := s.Users().Find(r.Context(), filter, findOptions)
		if err != nil {
			logrus.Errorf("Error fetching users: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(r.Context())

		users := []models.User{}
		if err := cursor.All(r.Context(), &users); err != nil {
			logrus.Errorf("Error decoding users: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		for i := range users {
			users[i].Sanitize()
		}

		writeJSON(w, http.StatusOK, models.UserListResponse{
			Users:      users,
			TotalPages: p.TotalPages(total),
			TotalUsers: total,
		})
	}
}

func buildUserFilter(query url.Values) bson.M {
	filter := bson.M{}
	for _, field := range []string{"status", "role", "district", "upazila", "bloodGroup"} {
		if value := strings.TrimSpace(query.Get(field)); value != "" {
			filter[field] = value
		}
	}
	return filter
}

// UpdateUserStatus flips a user between active and blocked.
func UpdateUserStatus(s *store.Store) http.HandlerFunc {
	return updateUserField(s, "status")
}

// UpdateUserRole reassigns the user's role.
func UpdateUserRole(s *store.Store) http.HandlerFunc {
	return updateUserField(s, "role")
}

func updateUserField(s *store.Store, field string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		value := strings.TrimSpace(body[field])
		if value == "" {
			writeError(w, http.StatusBadRequest, field+" is required")
			return
		}

		res, err := s.Users().UpdateOne(r.Context(), bson.M{"_id": objID}, bson.M{"$set": bson.M{field: value}})
		if err != nil {
			logrus.Errorf("Error updating user %s %s: %v", objID.Hex(), field, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		if res.MatchedCount == 0 {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}

		writeJSON(w, http.StatusOK, models.APIResponse{
			Success: true,
			Message: "User " + field + " updated",
		})
	}
}

func CountUsers(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		total, err := s.Users().CountDocuments(r.Context(), bson.M{})
		if err != nil {
			logrus.Errorf("Error counting users: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]int64{"totalUsers": total})
	}
}
