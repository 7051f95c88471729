package controllers

import (
	"net/http"
	"strings"

	"github.com/lifedrop/backend/models"
	"github.com/lifedrop/backend/store"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// ListBlogs returns blogs, optionally filtered by draft/published status.
func ListBlogs(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := bson.M{}
		if status := strings.TrimSpace(r.URL.Query().Get("status")); status != "" {
			filter["status"] = status
		}

		cursor, err := s.Blogs().Find(r.Context(), filter)
		if err != nil {
			logrus.Errorf("Error fetching blogs: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(r.Context())

		blogs := []models.Blog{}
		if err := cursor.All(r.Context(), &blogs); err != nil {
			logrus.Errorf("Error decoding blogs: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, blogs)
	}
}
