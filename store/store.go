package store

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names served by the API. The generic router dispatches only
// against this closed set; unknown names are rejected.
const (
	Users      = "users"
	Properties = "properties"
	Bookings   = "bookings"
	Payments   = "payments"
	Categories = "categories"
	Media      = "media"
	Requests   = "requests"
	Blogs      = "blogs"
	Districts  = "districts"
	Upazilas   = "upazilas"
	Funds      = "funds"
	Contacts   = "contacts"
)

var collectionNames = []string{
	Users, Properties, Bookings, Payments, Categories, Media,
	Requests, Blogs, Districts, Upazilas, Funds, Contacts,
}

// Store owns the Mongo client and the named collection handles. It is
// constructed once at startup and passed to the handlers that need it.
type Store struct {
	client      *mongo.Client
	db          *mongo.Database
	collections map[string]*mongo.Collection
}

func Open(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("MongoDB ping failed: %w", err)
	}

	logrus.Info("Connected to MongoDB")

	return FromClient(client, dbName), nil
}

// FromClient builds a Store over an already connected client.
func FromClient(client *mongo.Client, dbName string) *Store {
	db := client.Database(dbName)
	collections := make(map[string]*mongo.Collection, len(collectionNames))
	for _, name := range collectionNames {
		collections[name] = db.Collection(name)
	}

	return &Store{
		client:      client,
		db:          db,
		collections: collections,
	}
}

// Collection returns the handle for a named collection, or false when the
// name is not part of the served set.
func (s *Store) Collection(name string) (*mongo.Collection, bool) {
	col, ok := s.collections[name]
	return col, ok
}

func (s *Store) Users() *mongo.Collection      { return s.collections[Users] }
func (s *Store) Properties() *mongo.Collection { return s.collections[Properties] }
func (s *Store) Bookings() *mongo.Collection   { return s.collections[Bookings] }
func (s *Store) Requests() *mongo.Collection   { return s.collections[Requests] }
func (s *Store) Blogs() *mongo.Collection      { return s.collections[Blogs] }
func (s *Store) Districts() *mongo.Collection  { return s.collections[Districts] }
func (s *Store) Upazilas() *mongo.Collection   { return s.collections[Upazilas] }
func (s *Store) Funds() *mongo.Collection      { return s.collections[Funds] }

func (s *Store) Close(ctx context.Context) error {
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("error closing database connection: %w", err)
	}
	logrus.Info("MongoDB connection closed")
	return nil
}
