package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/lifedrop/backend/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

// The unknown-collection path never reaches Mongo, so a lazy client with no
// running server is enough to exercise it.
func genericRouter(t *testing.T) *mux.Router {
	t.Helper()
	client, err := mongo.Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	s := store.FromClient(client, "lifedrop_test")

	router := mux.NewRouter()
	router.HandleFunc("/api/{collection}", InsertDocument(s, nil)).Methods("POST")
	router.HandleFunc("/api/{collection}", ListDocuments(s)).Methods("GET")
	router.HandleFunc("/api/{collection}/{id}", GetDocument(s)).Methods("GET")
	router.HandleFunc("/api/{collection}/{id}", UpdateDocument(s, nil)).Methods("PUT")
	router.HandleFunc("/api/{collection}/{id}", DeleteDocument(s, nil)).Methods("DELETE")
	return router
}

func TestGenericVerbsUnknownCollection(t *testing.T) {
	router := genericRouter(t)

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodPost, "/api/sessions", `{"a":1}`},
		{http.MethodGet, "/api/sessions", ""},
		{http.MethodGet, "/api/sessions/64f0c5e2a1b2c3d4e5f60718", ""},
		{http.MethodPut, "/api/sessions/64f0c5e2a1b2c3d4e5f60718", `{"a":2}`},
		{http.MethodDelete, "/api/sessions/64f0c5e2a1b2c3d4e5f60718", ""},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
		assert.Contains(t, rec.Body.String(), "Unknown collection")
	}
}
