package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lifedrop/backend/models"
	"github.com/lifedrop/backend/store"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// The generic router serves the closed collection set uniformly: any JSON
// object is accepted on insert, updates merge fields, reads return the raw
// documents. Writes to the properties collection invalidate the search cache.

func resolveCollection(s *store.Store, w http.ResponseWriter, r *http.Request) (*mongo.Collection, string, bool) {
	name := mux.Vars(r)["collection"]
	col, ok := s.Collection(name)
	if !ok {
		logrus.Warnf("Unknown collection requested: %s", name)
		writeError(w, http.StatusNotFound, "Unknown collection: "+name)
		return nil, name, false
	}
	return col, name, true
}

func InsertDocument(s *store.Store, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, name, ok := resolveCollection(s, w, r)
		if !ok {
			return
		}

		var doc bson.M
		if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
			logrus.Warnf("Invalid request body for %s insert: %v", name, err)
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		delete(doc, "_id")

		res, err := col.InsertOne(r.Context(), doc)
		if err != nil {
			logrus.Errorf("Insert into %s failed: %v", name, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if name == store.Properties {
			go deletePropertyCache(redisClient)
		}

		id := ""
		if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
			id = oid.Hex()
		}

		writeJSON(w, http.StatusCreated, models.InsertResponse{Success: true, ID: id})
	}
}

func ListDocuments(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, name, ok := resolveCollection(s, w, r)
		if !ok {
			return
		}

		cursor, err := col.Find(r.Context(), bson.M{})
		if err != nil {
			logrus.Errorf("Error fetching %s: %v", name, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(r.Context())

		docs := []bson.M{}
		if err := cursor.All(r.Context(), &docs); err != nil {
			logrus.Errorf("Error decoding %s: %v", name, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if name == store.Users {
			redactPasswords(docs)
		}

		writeJSON(w, http.StatusOK, docs)
	}
}

func GetDocument(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, name, ok := resolveCollection(s, w, r)
		if !ok {
			return
		}

		objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, http.StatusNotFound, "Document not found")
			return
		}

		var doc bson.M
		if err := col.FindOne(r.Context(), bson.M{"_id": objID}).Decode(&doc); err != nil {
			if err == mongo.ErrNoDocuments {
				writeError(w, http.StatusNotFound, "Document not found")
				return
			}
			logrus.Errorf("Error fetching %s/%s: %v", name, objID.Hex(), err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if name == store.Users {
			delete(doc, "password")
		}

		writeJSON(w, http.StatusOK, doc)
	}
}

func UpdateDocument(s *store.Store, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, name, ok := resolveCollection(s, w, r)
		if !ok {
			return
		}

		objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, http.StatusNotFound, "Document not found")
			return
		}

		var patch bson.M
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			logrus.Warnf("Invalid update body for %s/%s: %v", name, objID.Hex(), err)
			writeError(w, http.StatusBadRequest, "Invalid update data")
			return
		}
		delete(patch, "_id")

		if len(patch) == 0 {
			writeError(w, http.StatusBadRequest, "Empty update")
			return
		}

		res, err := col.UpdateOne(r.Context(), bson.M{"_id": objID}, bson.M{"$set": patch})
		if err != nil {
			logrus.Errorf("Update of %s/%s failed: %v", name, objID.Hex(), err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if res.MatchedCount == 0 {
			writeError(w, http.StatusNotFound, "Document not found")
			return
		}

		if name == store.Properties {
			go deletePropertyCache(redisClient)
		}

		writeJSON(w, http.StatusOK, models.UpdateResponse{
			Success:       true,
			MatchedCount:  res.MatchedCount,
			ModifiedCount: res.ModifiedCount,
		})
	}
}

func DeleteDocument(s *store.Store, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		col, name, ok := resolveCollection(s, w, r)
		if !ok {
			return
		}

		objID, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
		if err != nil {
			writeError(w, http.StatusNotFound, "Document not found")
			return
		}

		res, err := col.DeleteOne(r.Context(), bson.M{"_id": objID})
		if err != nil {
			logrus.Errorf("Delete of %s/%s failed: %v", name, objID.Hex(), err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		if res.DeletedCount == 0 {
			writeError(w, http.StatusNotFound, "Document not found")
			return
		}

		if name == store.Properties {
			go deletePropertyCache(redisClient)
		}

		writeJSON(w, http.StatusOK, models.DeleteResponse{Success: true, DeletedCount: res.DeletedCount})
	}
}

// The stored hash never leaves the process, even through the generic reads.
func redactPasswords(docs []bson.M) {
	for _, doc := range docs {
		delete(doc, "password")
	}
}
