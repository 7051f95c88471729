package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/lifedrop/backend/models"
	"github.com/lifedrop/backend/store"
	"github.com/lifedrop/backend/utils"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func RegisterUser(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.RegisterInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Warnf("Error decoding registration payload: %v", err)
			writeError(w, http.StatusBadRequest, "Invalid request payload")
			return
		}

		if err := validate.Struct(input); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		err := s.Users().FindOne(r.Context(), bson.M{"email": input.Email}).Err()
		if err == nil {
			logrus.Warnf("Email already registered: %s", input.Email)
			writeError(w, http.StatusConflict, "Email already exists")
			return
		}
		if err != mongo.ErrNoDocuments {
			logrus.Errorf("Error checking existing email: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		hashedPwd, err := utils.HashPassword(input.Password)
		if err != nil {
			logrus.Errorf("Error hashing password: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to hash password")
			return
		}

		user := models.User{
			Name:       input.Name,
			Email:      input.Email,
			Password:   hashedPwd,
			Image:      input.Image,
			BloodGroup: input.BloodGroup,
			District:   input.District,
			Upazila:    input.Upazila,
			Role:       "donor",
			Status:     "active",
			CreatedAt:  time.Now(),
		}

		if _, err := s.Users().InsertOne(r.Context(), user); err != nil {
			logrus.Errorf("Error inserting user: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to create user")
			return
		}

		writeJSON(w, http.StatusCreated, models.APIResponse{
			Success: true,
			Message: "User registered successfully",
		})
	}
}

func LoginUser(s *store.Store, jwtKey []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.LoginInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Warnf("Error decoding login payload: %v", err)
			writeError(w, http.StatusBadRequest, "Invalid payload")
			return
		}

		if err := validate.Struct(input); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		var dbUser models.User
		err := s.Users().FindOne(r.Context(), bson.M{"email": input.Email}).Decode(&dbUser)
		if err != nil {
			logrus.Warnf("Login for unknown user: %s", input.Email)
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		if !utils.CheckPasswordHash(input.Password, dbUser.Password) {
			logrus.Warnf("Invalid credentials for user: %s", input.Email)
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}

		token, err := utils.GenerateJWT(dbUser.ID.Hex(), dbUser.Email, jwtKey)
		if err != nil {
			logrus.Errorf("Error generating JWT token: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to generate token")
			return
		}

		dbUser.Sanitize()

		writeJSON(w, http.StatusOK, models.LoginResponse{
			Message: "Login successful",
			Token:   token,
			User:    dbUser,
		})
	}
}
