// Package store provides the persistent per-guild document store on MongoDB.
// Guild records live in the "guilds" collection keyed by guildId, with
// verification settings nested under the "verification" sub-object.
package store

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/echostudios/echobot/internal/verify"
)

// ErrUnavailable wraps any underlying driver failure. Callers surface it as a
// generic message and let the user reissue the command; nothing is retried
// internally.
var ErrUnavailable = errors.New("guild store unavailable")

const opTimeout = 5 * time.Second

// Collection names, mirrored by Stats.
const (
	colGuilds   = "guilds"
	colUsers    = "users"
	colLogs     = "logs"
	colWarnings = "warnings"
)

var collections = []string{colGuilds, colUsers, colLogs, colWarnings}

// Store wraps the Mongo client. Single-patch atomicity comes from the server;
// the application adds no locking on top.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens the client and verifies the deployment with a ping.
func Connect(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Println("[INFO] ✅ Connected to MongoDB database")
	return &Store{client: client, db: client.Database(database)}, nil
}

// Disconnect closes the client. Called on shutdown after the gateway session
// is gone.
func (s *Store) Disconnect(ctx context.Context) error {
	log.Println("[INFO] Disconnecting from MongoDB database...")
	return s.client.Disconnect(ctx)
}

// Ping verifies the store is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	if err := s.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Stats returns the document count per collection.
func (s *Store) Stats(ctx context.Context) (map[string]int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	stats := make(map[string]int64, len(collections))
	for _, name := range collections {
		n, err := s.db.Collection(name).CountDocuments(ctx, bson.M{})
		if err != nil {
			return nil, fmt.Errorf("%w: counting %s: %v", ErrUnavailable, name, err)
		}
		stats[name] = n
	}
	return stats, nil
}

type guildRecord struct {
	GuildID      string         `bson:"guildId"`
	Verification *verify.Config `bson:"verification"`
}

// GuildVerification returns a guild's verification config. A guild with no
// stored document gets the defaults synthesized and persisted on this first
// read; subsequent reads are pure.
func (s *Store) GuildVerification(ctx context.Context, guildID string) (*verify.Config, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	var record guildRecord
	err := s.db.Collection(colGuilds).FindOne(ctx, bson.M{"guildId": guildID}).Decode(&record)
	switch {
	case err == nil && record.Verification != nil:
		return record.Verification, nil
	case err != nil && !errors.Is(err, mongo.ErrNoDocuments):
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	cfg := verify.DefaultConfig()
	_, err = s.db.Collection(colGuilds).UpdateOne(ctx,
		bson.M{"guildId": guildID},
		bson.M{"$set": bson.M{
			"guildId":      guildID,
			"verification": cfg,
			"updatedAt":    time.Now(),
		}},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	log.Printf("[INFO] Created default verification config for guild %s", guildID)
	return cfg, nil
}

// PatchGuildVerification validates the patch, then merges only the provided
// fields at their verification.* paths. Concurrent patches to disjoint fields
// never clobber each other; same-field writes are last-write-wins.
func (s *Store) PatchGuildVerification(ctx context.Context, guildID string, patch *verify.Patch) error {
	if err := patch.Validate(); err != nil {
		return err
	}

	set := bson.M{
		"guildId":   guildID,
		"updatedAt": time.Now(),
	}
	for field, value := range patch.Fields() {
		set["verification."+field] = value
	}

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	_, err := s.db.Collection(colGuilds).UpdateOne(ctx,
		bson.M{"guildId": guildID},
		bson.M{"$set": set},
		options.UpdateOne().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
