package controllers

import (
	"net/http"

	"github.com/lifedrop/backend/store"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetFundsTotal sums the amount field across all fund documents.
func GetFundsTotal(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pipeline := mongo.Pipeline{
			{
				{Key: "$group", Value: bson.M{
					"_id":        nil,
					"totalFunds": bson.M{"$sum": "$amount"},
				}},
			},
		}

		cursor, err := s.Funds().Aggregate(r.Context(), pipeline)
		if err != nil {
			logrus.Errorf("Error aggregating funds: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(r.Context())

		var results []struct {
			TotalFunds float64 `bson:"totalFunds"`
		}
		if err := cursor.All(r.Context(), &results); err != nil {
			logrus.Errorf("Error decoding funds aggregation: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		total := 0.0
		if len(results) > 0 {
			total = results[0].TotalFunds
		}

		writeJSON(w, http.StatusOK, map[string]float64{"totalFunds": total})
	}
}
