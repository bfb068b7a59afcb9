package store

import (
	"context"
	"fmt"
	"time"

	"github.com/outfitly/outfit-planner/config"
	"github.com/outfitly/outfit-planner/models"
	"github.com/outfitly/outfit-planner/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoOutfits implements OutfitStore on the "saved_outfits" collection.
type MongoOutfits struct{}

func NewMongoOutfits() *MongoOutfits { return &MongoOutfits{} }

func (s *MongoOutfits) coll() *mongo.Collection {
	return utils.GetCollection(config.DBName, "saved_outfits")
}

// Save always inserts. There is no dedup by content: the user saving the
// "same" outfit twice gets two records with distinct ids.
func (s *MongoOutfits) Save(ctx context.Context, userID string, outfit models.SavedOutfit) (models.SavedOutfit, error) {
	if userID == "" {
		return models.SavedOutfit{}, fmt.Errorf("userId is required")
	}
	if outfit.Rating < 0 || outfit.Rating > 5 {
		return models.SavedOutfit{}, fmt.Errorf("rating must be between 0 and 5")
	}

	outfit.ID = primitive.NewObjectID()
	outfit.UserID = userID
	outfit.TimesWorn = 0
	outfit.LastWorn = nil
	outfit.CreatedAt = time.Now()

	if _, err := s.coll().InsertOne(ctx, outfit); err != nil {
		return models.SavedOutfit{}, fmt.Errorf("failed to save outfit: %w", err)
	}
	return outfit, nil
}

func (s *MongoOutfits) List(ctx context.Context, userID string) ([]models.SavedOutfit, error) {
	cursor, err := s.coll().Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to list saved outfits: %w", err)
	}
	defer cursor.Close(ctx)

	var outfits []models.SavedOutfit
	if err := cursor.All(ctx, &outfits); err != nil {
		return nil, fmt.Errorf("failed to decode saved outfits: %w", err)
	}
	if outfits == nil {
		outfits = []models.SavedOutfit{}
	}
	return outfits, nil
}

// IncrementWorn bumps timesWorn by exactly 1 and stamps lastWorn in a
// single atomic update. A zero match count is reported as ErrNotFound,
// never as a silent success. The userId filter means another user's
// outfit looks missing, it is never touched.
func (s *MongoOutfits) IncrementWorn(ctx context.Context, userID, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{
		"$inc": bson.M{"timesWorn": 1},
		"$set": bson.M{"lastWorn": time.Now()},
	}
	res, err := s.coll().UpdateOne(ctx, bson.M{"_id": objID, "userId": userID}, update)
	if err != nil {
		return fmt.Errorf("failed to increment worn count: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoOutfits) Delete(ctx context.Context, userID, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := s.coll().DeleteOne(ctx, bson.M{"_id": objID, "userId": userID}); err != nil {
		return fmt.Errorf("failed to delete saved outfit: %w", err)
	}
	return nil
}

var _ OutfitStore = (*MongoOutfits)(nil)
var _ WardrobeStore = (*MongoWardrobe)(nil)
var _ PreferencesStore = (*MongoPreferences)(nil)
