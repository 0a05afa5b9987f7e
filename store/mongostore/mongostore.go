// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/store"
)

// DefaultDatabase is used when the connection string names no database.
const DefaultDatabase = "exercise-tracker"

const (
	usersCollection     = "users"
	exercisesCollection = "exercises"
)

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
}

type exerciseDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	UserID      primitive.ObjectID `bson:"userId"`
	Description string             `bson:"description"`
	Duration    float64            `bson:"duration"`
	Date        time.Time          `bson:"date"`
}

// Store implements store.Store on two MongoDB collections.
type Store struct {
	client    *mongo.Client
	users     *mongo.Collection
	exercises *mongo.Collection
}

var _ store.Store = (*Store)(nil)

// Open connects to uri, verifies the primary is reachable and ensures indexes.
func Open(ctx context.Context, uri string) (*Store, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("parse mongo uri: %w", err)
	}
	dbName := cs.Database
	if dbName == "" {
		dbName = DefaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	db := client.Database(dbName)
	s := &Store{
		client:    client,
		users:     db.Collection(usersCollection),
		exercises: db.Collection(exercisesCollection),
	}

	if err := s.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return s, nil
}

// ensureIndexes is safe to call repeatedly; CreateOne is a no-op for an identical index.
func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.users.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create username index: %w", err)
	}

	_, err = s.exercises.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userId", Value: 1}, {Key: "date", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("failed to create exercise index: %w", err)
	}

	return nil
}

func (s *Store) FindUserByID(ctx context.Context, id string) (models.User, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.User{}, err
	}

	var doc userDoc
	err = s.users.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("user %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return doc.toModel(), nil
}

func (s *Store) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	var doc userDoc
	err := s.users.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("username %q: %w", username, store.ErrNotFound)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return doc.toModel(), nil
}

func (s *Store) CreateUser(ctx context.Context, username string) (models.User, error) {
	doc := userDoc{ID: primitive.NewObjectID(), Username: username}

	_, err := s.users.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return models.User{}, fmt.Errorf("username %q: %w", username, store.ErrDuplicate)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return doc.toModel(), nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	cur, err := s.users.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer cur.Close(ctx)

	users := []models.User{}
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode user: %w", err)
		}
		users = append(users, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Store) CreateExercise(ctx context.Context, e models.Exercise) (models.Exercise, error) {
	userID, err := parseID(e.UserID)
	if err != nil {
		return models.Exercise{}, err
	}

	doc := exerciseDoc{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Description: e.Description,
		Duration:    e.Duration,
		// BSON dates carry millisecond precision
		Date: e.Date.UTC().Truncate(time.Millisecond),
	}

	if _, err := s.exercises.InsertOne(ctx, doc); err != nil {
		return models.Exercise{}, fmt.Errorf("failed to insert exercise: %w", err)
	}

	return doc.toModel(), nil
}

func (s *Store) FindExerciseByID(ctx context.Context, id string) (models.Exercise, error) {
	oid, err := parseID(id)
	if err != nil {
		return models.Exercise{}, err
	}

	var doc exerciseDoc
	err = s.exercises.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Exercise{}, fmt.Errorf("exercise %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return models.Exercise{}, fmt.Errorf("failed to query exercise: %w", err)
	}

	return doc.toModel(), nil
}

func (s *Store) FindExercises(ctx context.Context, f models.ExerciseFilter) ([]models.Exercise, error) {
	userID, err := parseID(f.UserID)
	if err != nil {
		return nil, err
	}

	cur, err := s.exercises.Find(ctx, exerciseFilter(userID, f), findOptions(f))
	if err != nil {
		return nil, fmt.Errorf("failed to select exercises: %w", err)
	}
	defer cur.Close(ctx)

	exercises := []models.Exercise{}
	for cur.Next(ctx) {
		var doc exerciseDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode exercise: %w", err)
		}
		exercises = append(exercises, doc.toModel())
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}

	return exercises, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}

// exerciseFilter attaches the date clause only when at least one bound is set.
func exerciseFilter(userID primitive.ObjectID, f models.ExerciseFilter) bson.M {
	filter := bson.M{"userId": userID}
	if !f.HasDateRange() {
		return filter
	}

	date := bson.M{}
	if f.From != nil {
		date["$gte"] = f.From.UTC()
	}
	if f.To != nil {
		date["$lte"] = f.To.UTC()
	}
	filter["date"] = date
	return filter
}

func findOptions(f models.ExerciseFilter) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if f.Limit > 0 {
		opts.SetLimit(int64(f.Limit))
	}
	return opts
}

func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%q: %w", id, store.ErrInvalidID)
	}
	return oid, nil
}

func (d userDoc) toModel() models.User {
	return models.User{ID: d.ID.Hex(), Username: d.Username}
}

func (d exerciseDoc) toModel() models.Exercise {
	return models.Exercise{
		ID:          d.ID.Hex(),
		UserID:      d.UserID.Hex(),
		Description: d.Description,
		Duration:    d.Duration,
		Date:        d.Date.UTC(),
	}
}
