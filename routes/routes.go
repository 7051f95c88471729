package routes

import (
	"github.com/gorilla/mux"
	"github.com/lifedrop/backend/config"
	"github.com/lifedrop/backend/controllers"
	"github.com/lifedrop/backend/middleware"
	"github.com/lifedrop/backend/store"
	"github.com/redis/go-redis/v9"
)

// Routes wires the route table. Domain routes are registered before the
// generic collection routes so mux resolves the specific paths first.
func Routes(router *mux.Router, s *store.Store, redisClient *redis.Client, cfg *config.Config) {
	// Auth routes
	router.HandleFunc("/api/register", controllers.RegisterUser(s)).Methods("POST")
	router.HandleFunc("/api/login", controllers.LoginUser(s, []byte(cfg.JWTKey))).Methods("POST")

	// User directory
	router.HandleFunc("/api/users/count", controllers.CountUsers(s)).Methods("GET")
	router.HandleFunc("/api/users/{email}", controllers.GetUserByEmail(s)).Methods("GET")
	router.HandleFunc("/api/users", controllers.ListUsers(s, cfg)).Methods("GET")

	// Admin-only user mutations
	admin := router.PathPrefix("/api/users").Subrouter()
	admin.Use(middleware.Auth([]byte(cfg.JWTKey)))
	admin.HandleFunc("/{id}/status", controllers.UpdateUserStatus(s)).Methods("PUT")
	admin.HandleFunc("/{id}/role", controllers.UpdateUserRole(s)).Methods("PUT")

	// Properties
	router.HandleFunc("/api/properties/search", controllers.SearchProperties(s, redisClient)).Methods("GET")

	// Bookings
	router.HandleFunc("/api/bookings/user/{email}", controllers.GetUserBookings(s)).Methods("GET")
	router.HandleFunc("/api/bookings", controllers.CreateBooking(s)).Methods("POST")

	// Donation requests
	router.HandleFunc("/api/requests/count", controllers.CountRequests(s)).Methods("GET")
	router.HandleFunc("/api/requests", controllers.ListRequests(s, cfg)).Methods("GET")
	router.HandleFunc("/api/requests/{id}", controllers.PatchRequestStatus(s)).Methods("PATCH")

	// Blogs
	router.HandleFunc("/api/blogs", controllers.ListBlogs(s)).Methods("GET")

	// Geo data
	router.HandleFunc("/api/districts", controllers.ListDistricts(s)).Methods("GET")
	router.HandleFunc("/api/upazilas/{districtId}", controllers.ListUpazilas(s)).Methods("GET")

	// Stats
	router.HandleFunc("/api/funds", controllers.GetFundsTotal(s)).Methods("GET")

	// Generic collection routes
	router.HandleFunc("/api/{collection}", controllers.InsertDocument(s, redisClient)).Methods("POST")
	router.HandleFunc("/api/{collection}", controllers.ListDocuments(s)).Methods("GET")
	router.HandleFunc("/api/{collection}/{id}", controllers.GetDocument(s)).Methods("GET")
	router.HandleFunc("/api/{collection}/{id}", controllers.UpdateDocument(s, redisClient)).Methods("PUT")
	router.HandleFunc("/api/{collection}/{id}", controllers.DeleteDocument(s, redisClient)).Methods("DELETE")
}
