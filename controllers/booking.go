package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/lifedrop/backend/models"
	"github.com/lifedrop/backend/store"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CreateBooking validates the payload, looks up the referenced property and
// snapshots its title, image and price into the new booking document.
func CreateBooking(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.BookingInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Warnf("Invalid booking payload: %v", err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		if err := validate.Struct(input); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		propertyID, err := primitive.ObjectIDFromHex(input.PropertyID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid property ID")
			return
		}

		var property models.Property
		err = s.Properties().FindOne(r.Context(), bson.M{"_id": propertyID}).Decode(&property)
		if err == mongo.ErrNoDocuments {
			writeError(w, http.StatusNotFound, "Property not found")
			return
		}
		if err != nil {
			logrus.Errorf("Error fetching property %s: %v", input.PropertyID, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		booking := models.Booking{
			PropertyID:    propertyID,
			UserEmail:     input.UserEmail,
			PropertyTitle: property.Title,
			PropertyImage: property.Image,
			PropertyPrice: property.Price,
			BookingDate:   input.BookingDate,
			CreatedAt:     time.Now(),
		}

		res, err := s.Bookings().InsertOne(r.Context(), booking)
		if err != nil {
			logrus.Errorf("Error inserting booking: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			booking.ID = oid
		}

		writeJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: "Property booked successfully",
			Data:    booking,
		})
	}
}

func GetUserBookings(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		email := mux.Vars(r)["email"]

		cursor, err := s.Bookings().Find(r.Context(), bson.M{"userEmail": email})
		if err != nil {
			logrus.Errorf("Error fetching bookings for %s: %v", email, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(r.Context())

		bookings := []models.Booking{}
		if err := cursor.All(r.Context(), &bookings); err != nil {
			logrus.Errorf("Error decoding bookings: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, bookings)
	}
}
