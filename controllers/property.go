package controllers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lifedrop/backend/models"
	"github.com/lifedrop/backend/store"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const searchCacheTTL = 10 * time.Minute

// SearchProperties filters on four optional query parameters: title (each
// word matched independently, case-insensitive), location substring,
// category equality and a price upper bound. Absent parameters impose no
// constraint. Results are cached in Redis keyed by the query string.
func SearchProperties(s *store.Store, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		cacheKey := searchCacheKey(query)

		cachedData, err := redisClient.Get(r.Context(), cacheKey).Result()
		if err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(cachedData))
			return
		}
		if err != redis.Nil {
			logrus.Warnf("Redis GET error for key %s: %v", cacheKey, err)
		}

		filter := buildPropertySearchFilter(query)

		cursor, err := s.Properties().Find(r.Context(), filter)
		if err != nil {
			logrus.Errorf("Error searching properties with filter %+v: %v", filter, err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		defer cursor.Close(r.Context())

		properties := []models.Property{}
		if err := cursor.All(r.Context(), &properties); err != nil {
			logrus.Errorf("Error decoding properties: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		resultBytes, err := json.Marshal(properties)
		if err != nil {
			logrus.Errorf("Failed to serialize properties: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to encode response")
			return
		}

		if err := redisClient.Set(r.Context(), cacheKey, resultBytes, searchCacheTTL).Err(); err != nil {
			logrus.Warnf("Failed to cache response for key %s: %v", cacheKey, err)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(resultBytes)
	}
}

func buildPropertySearchFilter(query url.Values) bson.M {
	var andConditions []bson.M

	if title := strings.TrimSpace(query.Get("title")); title != "" {
		var orClauses bson.A
		for _, word := range strings.Fields(title) {
			orClauses = append(orClauses, bson.M{"title": bson.M{
				"$regex": primitive.Regex{Pattern: word, Options: "i"},
			}})
		}
		if len(orClauses) > 0 {
			andConditions = append(andConditions, bson.M{"$or": orClauses})
		}
	}

	if location := strings.TrimSpace(query.Get("location")); location != "" {
		andConditions = append(andConditions, bson.M{"location": bson.M{
			"$regex": primitive.Regex{Pattern: location, Options: "i"},
		}})
	}

	if category := strings.TrimSpace(query.Get("category")); category != "" {
		andConditions = append(andConditions, bson.M{"category": category})
	}

	if rawPrice := strings.TrimSpace(query.Get("maxPrice")); rawPrice != "" {
		maxPrice, err := strconv.ParseFloat(rawPrice, 64)
		if err != nil {
			logrus.Warnf("Invalid maxPrice value: %s", rawPrice)
		} else {
			andConditions = append(andConditions, bson.M{"price": bson.M{"$lte": maxPrice}})
		}
	}

	if len(andConditions) == 0 {
		return bson.M{}
	}
	return bson.M{"$and": andConditions}
}

// searchCacheKey is stable under query parameter reordering.
func searchCacheKey(queryParams url.Values) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		values := queryParams[key]
		sort.Strings(values)
		for _, val := range values {
			sb.WriteString(key)
			sb.WriteString("=")
			sb.WriteString(val)
			sb.WriteString("&")
		}
	}
	rawKey := strings.TrimSuffix(sb.String(), "&")

	sum := sha256.Sum256([]byte(rawKey))
	return "propsearch:" + hex.EncodeToString(sum[:])
}

func deletePropertyCache(redisClient *redis.Client) {
	ctx := context.Background()
	const scanPattern = "propsearch:*"
	const scanCount = 100

	var keysToDelete []string
	var cursor uint64
	var err error

	for {
		var currentKeys []string
		currentKeys, cursor, err = redisClient.Scan(ctx, cursor, scanPattern, scanCount).Result()
		if err != nil {
			logrus.Errorf("Error during Redis SCAN for pattern '%s': %v", scanPattern, err)
			return
		}
		keysToDelete = append(keysToDelete, currentKeys...)
		if cursor == 0 {
			break
		}
	}

	if len(keysToDelete) == 0 {
		return
	}

	pipe := redisClient.Pipeline()
	for _, key := range keysToDelete {
		pipe.Del(ctx, key)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		logrus.Errorf("Error deleting %d property cache keys: %v", len(keysToDelete), err)
		return
	}
	logrus.Infof("Property cache invalidated, deleted %d keys", len(keysToDelete))
}
