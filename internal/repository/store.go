package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-kivik/kivik/v4"
)

// ErrNotFound is returned by Load when a key has never been written. For the
// two collection keys the caller treats this as first-run bootstrap, not as
// a failure.
var ErrNotFound = errors.New("store: key not found")

// Store is a keyed whole-blob store. Every mutation reads an entire
// collection, modifies it in memory and writes the entire collection back;
// there are no partial updates and no optimistic concurrency. Two writers on
// the same key race with last-write-wins, undetected (known limitation,
// carried over deliberately).
type Store interface {
	Load(ctx context.Context, key string, v interface{}) error
	Save(ctx context.Context, key string, v interface{}) error
}

// Keys of the three persisted records.
const (
	KeyDocuments   = "documents"
	KeyProjects    = "projects"
	KeyCurrentUser = "current_user"
)

type couchStore struct {
	client *kivik.Client
	dbName string
}

func NewCouchStore(client *kivik.Client, dbName string) Store {
	return &couchStore{
		client: client,
		dbName: dbName,
	}
}

// Each key maps to a single CouchDB document whose "data" field carries the
// whole collection blob.
type storeEnvelope struct {
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func docID(key string) string {
	return fmt.Sprintf("collection:%s", key)
}

func (s *couchStore) Load(ctx context.Context, key string, v interface{}) error {
	db := s.client.DB(s.dbName)

	row := db.Get(ctx, docID(key))

	var env storeEnvelope
	if err := row.ScanDoc(&env); err != nil {
		if kivik.HTTPStatus(err) == http.StatusNotFound {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load %s: %w", key, err)
	}

	if err := json.Unmarshal(env.Data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}

	return nil
}

func (s *couchStore) Save(ctx context.Context, key string, v interface{}) error {
	db := s.client.DB(s.dbName)

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	doc := map[string]interface{}{
		"data":       json.RawMessage(data),
		"updated_at": time.Now(),
	}

	// CouchDB rejects writes without the current revision, so fetch it first.
	var existing map[string]interface{}
	row := db.Get(ctx, docID(key))
	if err := row.ScanDoc(&existing); err == nil {
		doc["_rev"] = existing["_rev"]
	} else if kivik.HTTPStatus(err) != http.StatusNotFound {
		return fmt.Errorf("failed to fetch revision for %s: %w", key, err)
	}

	if _, err := db.Put(ctx, docID(key), doc); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}

	return nil
}
