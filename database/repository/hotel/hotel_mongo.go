package hotelRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotelify/database"
	"hotelify/models"
	"hotelify/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// hotelCacheTTL bounds how stale a cached catalog may get.
const hotelCacheTTL = 10 * time.Minute

// MongoHotelRepo implements HotelRepository using MongoDB with a Redis
// read-through cache. Catalogs are read on every invoice creation and change
// rarely, so cache hits skip the database entirely.
type MongoHotelRepo struct {
	coll  *mongo.Collection
	cache *redis.Client
}

// NewMongoHotelRepo creates a new instance of HotelRepository using MongoDB.
func NewMongoHotelRepo() HotelRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("hotels")
	return &MongoHotelRepo{coll: coll, cache: utils.GetCacheClient()}
}

func hotelCacheKey(id string) string {
	return "hotel:" + id
}

// GetByID retrieves a hotel by its unique ID, preferring the cache.
func (r *MongoHotelRepo) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if cached, err := r.cache.Get(ctx, hotelCacheKey(id)).Result(); err == nil {
		var hotel models.Hotel
		if err := json.Unmarshal([]byte(cached), &hotel); err == nil {
			return &hotel, nil
		}
		// Corrupt cache entry; fall through to the database.
		r.cache.Del(ctx, hotelCacheKey(id))
	}

	var hotel models.Hotel
	if err := r.coll.FindOne(ctx, bson.M{"hotel_id": id}).Decode(&hotel); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch hotel with id %s: %w", id, err)
	}

	if data, err := json.Marshal(&hotel); err == nil {
		r.cache.Set(ctx, hotelCacheKey(id), data, hotelCacheTTL)
	}
	return &hotel, nil
}
