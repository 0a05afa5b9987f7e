// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mongostore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/danielhkuo/exercise-tracker/models"
	"github.com/danielhkuo/exercise-tracker/store"
)

func TestExerciseFilter_NoDateClauseWithoutBounds(t *testing.T) {
	oid := primitive.NewObjectID()

	filter := exerciseFilter(oid, models.ExerciseFilter{UserID: oid.Hex()})

	assert.Equal(t, bson.M{"userId": oid}, filter)
	_, hasDate := filter["date"]
	assert.False(t, hasDate)
}

func TestExerciseFilter_Bounds(t *testing.T) {
	oid := primitive.NewObjectID()
	from := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		filter models.ExerciseFilter
		want   bson.M
	}{
		{"from only", models.ExerciseFilter{From: &from}, bson.M{"$gte": from}},
		{"to only", models.ExerciseFilter{To: &to}, bson.M{"$lte": to}},
		{"both", models.ExerciseFilter{From: &from, To: &to}, bson.M{"$gte": from, "$lte": to}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := exerciseFilter(oid, tc.filter)
			assert.Equal(t, oid, got["userId"])
			assert.Equal(t, tc.want, got["date"])
		})
	}
}

func TestFindOptions_Limit(t *testing.T) {
	opts := findOptions(models.ExerciseFilter{})
	assert.Nil(t, opts.Limit)
	assert.Equal(t, bson.D{{Key: "_id", Value: 1}}, opts.Sort)

	opts = findOptions(models.ExerciseFilter{Limit: 1})
	require.NotNil(t, opts.Limit)
	assert.Equal(t, int64(1), *opts.Limit)
}

func TestParseID(t *testing.T) {
	oid := primitive.NewObjectID()

	got, err := parseID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	_, err = parseID("not-an-object-id")
	assert.ErrorIs(t, err, store.ErrInvalidID)
}

func TestDocToModel(t *testing.T) {
	uid := primitive.NewObjectID()
	doc := exerciseDoc{
		ID:          primitive.NewObjectID(),
		UserID:      uid,
		Description: "swim",
		Duration:    45,
		Date:        time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	e := doc.toModel()
	assert.Equal(t, doc.ID.Hex(), e.ID)
	assert.Equal(t, uid.Hex(), e.UserID)
	assert.Equal(t, "swim", e.Description)
	assert.Equal(t, 45.0, e.Duration)
	assert.True(t, e.Date.Equal(doc.Date))
}
