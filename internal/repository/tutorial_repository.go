package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tutorials-be/internal/entities"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when no tutorial matches the given id.
	ErrNotFound = errors.New("tutorial not found")
	// ErrInvalidID is returned when an id cannot be parsed into an ObjectID.
	ErrInvalidID = errors.New("invalid tutorial id")
)

// TutorialRepository defines the interface for tutorial persistence
type TutorialRepository interface {
	Create(ctx context.Context, tutorial *entities.Tutorial) (*entities.Tutorial, error)
	FindAll(ctx context.Context, title string) ([]entities.Tutorial, error)
	FindPublished(ctx context.Context) ([]entities.Tutorial, error)
	FindByID(ctx context.Context, id string) (*entities.Tutorial, error)
	Update(ctx context.Context, tutorial *entities.Tutorial) error
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type tutorialRepository struct {
	coll *mongo.Collection
}

// NewTutorialRepository creates a new tutorial repository backed by the
// "tutorials" collection of the given database
func NewTutorialRepository(db *mongo.Database) TutorialRepository {
	return &tutorialRepository{coll: db.Collection("tutorials")}
}

// Create inserts the tutorial and fills in its id and timestamps
func (r *tutorialRepository) Create(ctx context.Context, tutorial *entities.Tutorial) (*entities.Tutorial, error) {
	now := time.Now().UTC()
	tutorial.CreatedAt = now
	tutorial.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, tutorial)
	if err != nil {
		return nil, fmt.Errorf("failed to insert tutorial: %w", err)
	}
	tutorial.ID = res.InsertedID.(primitive.ObjectID)
	return tutorial, nil
}

// FindAll returns every tutorial, or the ones whose title contains the
// given text as a case-insensitive partial match when title is non-empty.
// The text is interpreted as a regex pattern, matching the original API.
func (r *tutorialRepository) FindAll(ctx context.Context, title string) ([]entities.Tutorial, error) {
	filter := bson.M{}
	if title != "" {
		filter["title"] = bson.M{"$regex": primitive.Regex{Pattern: title, Options: "i"}}
	}
	return r.find(ctx, filter)
}

// FindPublished returns every tutorial with published == true
func (r *tutorialRepository) FindPublished(ctx context.Context) ([]entities.Tutorial, error) {
	return r.find(ctx, bson.M{"published": true})
}

func (r *tutorialRepository) find(ctx context.Context, filter bson.M) ([]entities.Tutorial, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query tutorials: %w", err)
	}
	tutorials := []entities.Tutorial{}
	if err := cursor.All(ctx, &tutorials); err != nil {
		return nil, fmt.Errorf("failed to decode tutorials: %w", err)
	}
	return tutorials, nil
}

func (r *tutorialRepository) FindByID(ctx context.Context, id string) (*entities.Tutorial, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var tutorial entities.Tutorial
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&tutorial); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find tutorial: %w", err)
	}
	return &tutorial, nil
}

// Update replaces the stored fields of the tutorial identified by its id
// and refreshes updatedAt. createdAt is never touched.
func (r *tutorialRepository) Update(ctx context.Context, tutorial *entities.Tutorial) error {
	tutorial.UpdatedAt = time.Now().UTC()

	update := bson.M{"$set": bson.M{
		"title":       tutorial.Title,
		"description": tutorial.Description,
		"published":   tutorial.Published,
		"updatedAt":   tutorial.UpdatedAt,
	}}
	res, err := r.coll.UpdateByID(ctx, tutorial.ID, update)
	if err != nil {
		return fmt.Errorf("failed to update tutorial: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tutorialRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete tutorial: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteAll removes every tutorial and returns how many were deleted
func (r *tutorialRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to delete tutorials: %w", err)
	}
	return res.DeletedCount, nil
}
