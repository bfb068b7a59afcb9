package store

import (
	"context"
	"fmt"
	"time"

	"github.com/outfitly/outfit-planner/config"
	"github.com/outfitly/outfit-planner/models"
	"github.com/outfitly/outfit-planner/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPreferences implements PreferencesStore on the "preferences"
// collection, one document per user.
type MongoPreferences struct{}

func NewMongoPreferences() *MongoPreferences { return &MongoPreferences{} }

func (s *MongoPreferences) coll() *mongo.Collection {
	return utils.GetCollection(config.DBName, "preferences")
}

func (s *MongoPreferences) Get(ctx context.Context, userID string) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := s.coll().FindOne(ctx, bson.M{"userId": userID}).Decode(&prefs)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preferences: %w", err)
	}
	return &prefs, nil
}

// Save upserts keyed by userId: provided fields go into $set, identity and
// creation time into $setOnInsert, so the first save creates the record and
// later saves merge into it.
func (s *MongoPreferences) Save(ctx context.Context, userID string, prefs models.UserPreferences) error {
	set, err := prefsToSet(prefs)
	if err != nil {
		return err
	}
	set["updatedAt"] = time.Now()

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"userId":    userID,
			"createdAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := s.coll().UpdateOne(ctx, bson.M{"userId": userID}, update, opts); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// prefsToSet marshals the preferences through bson so omitempty decides
// which fields are part of the merge, then strips the keys owned by the
// upsert itself.
func prefsToSet(prefs models.UserPreferences) (bson.M, error) {
	raw, err := bson.Marshal(prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preferences: %w", err)
	}
	var set bson.M
	if err := bson.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	delete(set, "userId")
	delete(set, "createdAt")
	delete(set, "updatedAt")
	return set, nil
}
