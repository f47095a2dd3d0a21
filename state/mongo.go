package state

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/mindsgn-studio/page-watcher/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	pageStateColl  = "page_state"
	connectTimeout = 30 * time.Second
)

type pageStateDoc struct {
	URL       string    `bson:"url"`
	Snapshot  string    `bson:"snapshot"`
	CheckedAt time.Time `bson:"checked_at"`
}

type mongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// OpenMongo connects to the cluster at uri and uses the page_state
// collection of dbName, keyed by URL.
func OpenMongo(parentCtx context.Context, uri, dbName string) (Store, error) {
	ctx, cancel := context.WithTimeout(parentCtx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &mongoStore{
		client: client,
		coll:   client.Database(dbName).Collection(pageStateColl),
	}, nil
}

func (s *mongoStore) Get(ctx context.Context, url string) (*model.Snapshot, error) {
	var doc pageStateDoc
	err := s.coll.FindOne(ctx, bson.M{"url": url}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	return decodeSnapshot(doc.Snapshot), nil
}

func (s *mongoStore) Put(ctx context.Context, url string, snap model.Snapshot) error {
	payload, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	doc := pageStateDoc{
		URL:       url,
		Snapshot:  string(payload),
		CheckedAt: time.Now().UTC(),
	}
	_, err = s.coll.ReplaceOne(ctx, bson.M{"url": url}, doc,
		options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

func (s *mongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
