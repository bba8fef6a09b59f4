package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const searchHistoryCollection = "search_history"

type SearchHistoryRepo interface {
	Push(ctx context.Context, userID uint64, query string, limit int) ([]string, error)
	List(ctx context.Context, userID uint64) ([]string, error)
	Clear(ctx context.Context, userID uint64) error
}

type searchHistoryRepoImpl struct {
	col *mongo.Collection
}

func NewSearchHistoryRepo(db *mongo.Database) SearchHistoryRepo {
	return &searchHistoryRepoImpl{
		col: db.Collection(searchHistoryCollection),
	}
}

// Push 原子地置顶、去重并截断
func (s *searchHistoryRepoImpl) Push(ctx context.Context, userID uint64, query string, limit int) ([]string, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"updated_at": time.Now(),
			"queries": bson.M{"$slice": bson.A{
				bson.M{"$concatArrays": bson.A{
					bson.A{query},
					bson.M{"$filter": bson.M{
						"input": bson.M{"$ifNull": bson.A{"$queries", bson.A{}}},
						"cond":  bson.M{"$ne": bson.A{"$$this", query}},
					}},
				}},
				limit,
			}},
		}}},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc SearchHistoryModel
	if err := s.col.FindOneAndUpdate(ctx, bson.M{"_id": userID}, pipeline, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Queries, nil
}

// List 读取历史，无记录时返回空
func (s *searchHistoryRepoImpl) List(ctx context.Context, userID uint64) ([]string, error) {
	var doc SearchHistoryModel
	err := s.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.Queries, nil
}

// Clear 清空历史
func (s *searchHistoryRepoImpl) Clear(ctx context.Context, userID uint64) error {
	_, err := s.col.DeleteOne(ctx, bson.M{"_id": userID})
	return err
}

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(searchHistoryCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "updated_at", Value: -1}},
	})
	return err
}
