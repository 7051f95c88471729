package routes_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/lifedrop/backend/config"
	"github.com/lifedrop/backend/routes"
	"github.com/lifedrop/backend/store"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

func testRouter(t *testing.T) *mux.Router {
	t.Helper()
	client, err := mongo.Connect(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	cfg := &config.Config{
		JWTKey:          "test-key",
		DefaultPageSize: 10,
		MaxPageSize:     100,
	}

	router := mux.NewRouter()
	routes.Routes(router, store.FromClient(client, "lifedrop_test"), redis.NewClient(&redis.Options{}), cfg)
	return router
}

// Domain routes shadow the generic collection routes where the paths
// collide; this pins the resolution order without executing handlers.
func TestRoutePrecedence(t *testing.T) {
	router := testRouter(t)

	cases := []struct {
		method   string
		path     string
		template string
	}{
		{http.MethodGet, "/api/users/count", "/api/users/count"},
		{http.MethodGet, "/api/users/a@x.com", "/api/users/{email}"},
		{http.MethodGet, "/api/users/64f0c5e2a1b2c3d4e5f60718", "/api/users/{email}"},
		{http.MethodGet, "/api/users", "/api/users"},
		{http.MethodGet, "/api/properties/search", "/api/properties/search"},
		{http.MethodGet, "/api/properties/64f0c5e2a1b2c3d4e5f60718", "/api/{collection}/{id}"},
		{http.MethodGet, "/api/upazilas/12", "/api/upazilas/{districtId}"},
		{http.MethodGet, "/api/requests", "/api/requests"},
		{http.MethodPatch, "/api/requests/64f0c5e2a1b2c3d4e5f60718", "/api/requests/{id}"},
		{http.MethodGet, "/api/blogs/64f0c5e2a1b2c3d4e5f60718", "/api/{collection}/{id}"},
		{http.MethodPost, "/api/bookings", "/api/bookings"},
		{http.MethodPost, "/api/payments", "/api/{collection}"},
		{http.MethodPut, "/api/users/64f0c5e2a1b2c3d4e5f60718", "/api/{collection}/{id}"},
		{http.MethodPut, "/api/users/64f0c5e2a1b2c3d4e5f60718/status", "/api/users/{id}/status"},
	}

	for _, tc := range cases {
		var m mux.RouteMatch
		req := httptest.NewRequest(tc.method, tc.path, nil)
		require.True(t, router.Match(req, &m), "%s %s should match a route", tc.method, tc.path)

		template, err := m.Route.GetPathTemplate()
		require.NoError(t, err)
		assert.Equal(t, tc.template, template, "%s %s", tc.method, tc.path)
	}
}
