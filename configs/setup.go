package configs

import (
	"context"
	"log"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
)

func ConnectDB() *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := mongo.Connect(ctx, options.Client().ApplyURI(EnvMongoURI()))
	if err != nil {
		log.Fatal(err)
	}

	if err := c.Ping(ctx, nil); err != nil {
		log.Fatal(err)
	}

	log.Println("Connected to MongoDB")
	return c
}

// DB returns the shared client, connecting on first use.
func DB() *mongo.Client {
	clientOnce.Do(func() {
		client = ConnectDB()
	})
	return client
}

func GetCollection(collectionName string) *mongo.Collection {
	return DB().Database("wardrobe").Collection(collectionName)
}
