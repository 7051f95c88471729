package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lifedrop/backend/models"
	"github.com/lifedrop/backend/store"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ListDistricts(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		findOptions := options.Find().SetSort(bson.M{"name": 1})
		cursor, err := s.Districts().Find(r.Context(), bson.M{}, findOptions)
		if err != nil {
			logrus.Errorf("Error fetching districts: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(r.Context())

		districts := []models.District{}
		if err := cursor.All(r.Context(), &districts); err != nil {
			logrus.Errorf("Error decoding districts: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, districts)
	}
}

// ListUpazilas returns the upazilas belonging to one district, matched on
// the district's dataset code rather than its Mongo id.
func ListUpazilas(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		districtID := mux.Vars(r)["districtId"]

		findOptions := options.Find().SetSort(bson.M{"name": 1})
		cursor, err := s.Upazilas().Find(r.Context(), bson.M{"district_id": districtID}, findOptions)
		if err != nil {
			logrus.Errorf("Error fetching upazilas for district %s: %v", districtID, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(r.Context())

		upazilas := []models.Upazila{}
		if err := cursor.All(r.Context(), &upazilas); err != nil {
			logrus.Errorf("Error decoding upazilas: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, upazilas)
	}
}
