package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	writeTimeout = time.Second
	readTimeout  = 2 * time.Second
)

// ChallengeRepo stores challenges in MongoDB.
type ChallengeRepo struct {
	collection *mongo.Collection
}

// NewChallengeRepo creates a ChallengeRepo on dbName.collectionName.
func NewChallengeRepo(client *mongo.Client, dbName, collectionName string) *ChallengeRepo {
	return &ChallengeRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// EnsureIndexes creates the author lookup index.
func (r *ChallengeRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "authorId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save upserts a challenge by ID.
func (r *ChallengeRepo) Save(ctx context.Context, c *domain.Challenge) error {
	ctx, cancel := context.WithTimeout(ctx, writeTimeout)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"_id": c.ID}, c, opts); err != nil {
		return fmt.Errorf("saving challenge %s: %w", c.ID, err)
	}
	return nil
}

// ByID returns the challenge with id or domain.ErrChallengeNotFound.
func (r *ChallengeRepo) ByID(ctx context.Context, id uuid.UUID) (*domain.Challenge, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	var c domain.Challenge
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, fmt.Errorf("loading challenge %s: %w", id, err)
	}
	return &c, nil
}

// ByAuthor lists an author's challenges, newest first.
func (r *ChallengeRepo) ByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Challenge, error) {
	ctx, cancel := context.WithTimeout(ctx, readTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"authorId": authorID}, opts)
	if err != nil {
		return nil, fmt.Errorf("listing challenges of %s: %w", authorID, err)
	}
	defer cursor.Close(ctx)

	var challenges []*domain.Challenge
	if err := cursor.All(ctx, &challenges); err != nil {
		return nil, fmt.Errorf("decoding challenges of %s: %w", authorID, err)
	}
	return challenges, nil
}
