package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	client     *mongo.Client
	once       sync.Once
	connectErr error

	CourseCollection       *mongo.Collection
	LeadCollection         *mongo.Collection
	ApplicantCollection    *mongo.Collection
	NotificationCollection *mongo.Collection
	AdminCollection        *mongo.Collection
)

const dbName = "AlgoForgeDB"

// ConnectMongoDB connects once and binds the collections used across the app.
func ConnectMongoDB() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		CourseCollection = client.Database(dbName).Collection("courses")
		LeadCollection = client.Database(dbName).Collection("leads")
		ApplicantCollection = client.Database(dbName).Collection("applicants")
		NotificationCollection = client.Database(dbName).Collection("notifications")
		AdminCollection = client.Database(dbName).Collection("admins")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// IsConnected reports whether the client currently answers a ping.
func IsConnected() bool {
	if client == nil {
		return false
	}
	return client.Ping(context.TODO(), readpref.Primary()) == nil
}

// GetCollection fetches a collection by name from the app database.
func GetCollection(collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
