package store

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const connectTimeout = 5 * time.Second

// Store owns the single shared MongoDB client. The connection is
// established lazily on first use; when no URI is configured, or the
// server is unreachable, Collection returns nil and callers degrade to
// empty results.
type Store struct {
	uri    string
	dbName string

	mu     sync.Mutex
	client *mongo.Client
}

// New builds a Store. It does not touch the network; the first
// Collection call does.
func New(uri, dbName string) *Store {
	return &Store{uri: uri, dbName: dbName}
}

// Collection returns a handle for the named collection, or nil when the
// store is unconfigured or unreachable. The client is cached only after
// a successful ping, so a failed attempt is retried on the next call.
func (s *Store) Collection(name string) *mongo.Collection {
	if s.uri == "" {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		log.Println("Attempting to connect to MongoDB...")
		client, err := mongo.Connect(ctx, options.Client().
			ApplyURI(s.uri).
			SetServerSelectionTimeout(connectTimeout))
		if err != nil {
			log.Printf("Mongo connection error: %v", err)
			return nil
		}
		if err := client.Ping(ctx, nil); err != nil {
			log.Printf("Mongo connection error: %v", err)
			_ = client.Disconnect(context.Background())
			return nil
		}
		log.Println("MongoDB connected successfully!")
		s.client = client
	}

	return s.client.Database(s.dbName).Collection(name)
}

// Ping reports whether the store is configured and the server answers.
func (s *Store) Ping(ctx context.Context) error {
	s.mu.Lock()
	client := s.client
	s.mu.Unlock()

	if client == nil {
		return mongo.ErrClientDisconnected
	}
	return client.Ping(ctx, nil)
}

// Close disconnects the client if one was ever established.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	return err
}
