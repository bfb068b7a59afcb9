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

// MongoWardrobe implements WardrobeStore on the "wardrobe" collection.
type MongoWardrobe struct{}

func NewMongoWardrobe() *MongoWardrobe { return &MongoWardrobe{} }

func (s *MongoWardrobe) coll() *mongo.Collection {
	return utils.GetCollection(config.DBName, "wardrobe")
}

func (s *MongoWardrobe) Add(ctx context.Context, item models.WardrobeItem) (models.WardrobeItem, error) {
	if item.UserID == "" {
		return models.WardrobeItem{}, fmt.Errorf("userId is required")
	}
	if err := item.Validate(); err != nil {
		return models.WardrobeItem{}, err
	}

	now := time.Now()
	item.ID = primitive.NewObjectID()
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := s.coll().InsertOne(ctx, item); err != nil {
		return models.WardrobeItem{}, fmt.Errorf("failed to insert wardrobe item: %w", err)
	}
	return item, nil
}

func (s *MongoWardrobe) Get(ctx context.Context, id string) (*models.WardrobeItem, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var item models.WardrobeItem
	err = s.coll().FindOne(ctx, bson.M{"_id": objID}).Decode(&item)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch wardrobe item: %w", err)
	}
	return &item, nil
}

func (s *MongoWardrobe) List(ctx context.Context, userID string, filter models.WardrobeFilter) ([]models.WardrobeItem, error) {
	query := bson.M{"userId": userID}
	if filter.Category != "" {
		query["category"] = filter.Category
	}
	if filter.Color != "" {
		query["color"] = filter.Color
	}
	if filter.Season != "" {
		query["season"] = filter.Season
	}
	if filter.IsFavorite != nil {
		query["isFavorite"] = *filter.IsFavorite
	}

	cursor, err := s.coll().Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list wardrobe items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.WardrobeItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode wardrobe items: %w", err)
	}
	if items == nil {
		items = []models.WardrobeItem{}
	}
	return items, nil
}

func (s *MongoWardrobe) Update(ctx context.Context, id string, patch models.WardrobeItemPatch) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	if err := patch.Validate(); err != nil {
		return err
	}

	set := patchToSet(patch)
	set["updatedAt"] = time.Now()

	res, err := s.coll().UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return fmt.Errorf("failed to update wardrobe item: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoWardrobe) SetImage(ctx context.Context, id string, imageKey string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	update := bson.M{"$set": bson.M{"image_key": imageKey, "updatedAt": time.Now()}}
	res, err := s.coll().UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return fmt.Errorf("failed to set wardrobe image: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *MongoWardrobe) Delete(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Matches the delete-by-filter semantics: an unknown id simply
		// matches zero documents.
		return nil
	}

	if _, err := s.coll().DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return fmt.Errorf("failed to delete wardrobe item: %w", err)
	}
	return nil
}

// patchToSet builds the $set document from the non-nil patch fields.
// UserID never appears here; it is immutable after creation.
func patchToSet(patch models.WardrobeItemPatch) bson.M {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Color != nil {
		set["color"] = *patch.Color
	}
	if patch.Brand != nil {
		set["brand"] = *patch.Brand
	}
	if patch.Size != nil {
		set["size"] = *patch.Size
	}
	if patch.Season != nil {
		set["season"] = *patch.Season
	}
	if patch.Tags != nil {
		set["tags"] = *patch.Tags
	}
	if patch.IsFavorite != nil {
		set["isFavorite"] = *patch.IsFavorite
	}
	return set
}
