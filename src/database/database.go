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

const DBName = "ConvoFormDB"

var (
	client     *mongo.Client
	once       sync.Once // ConnectMongoDB must only run once per process
	connectErr error

	FormCollection         *mongo.Collection
	FormFieldCollection    *mongo.Collection
	ConversationCollection *mongo.Collection
	OrganizationCollection *mongo.Collection
	WorkspaceCollection    *mongo.Collection
	UserCollection         *mongo.Collection
)

// ConnectMongoDB connects to MongoDB exactly once and initializes the shared collections.
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

		FormCollection = GetCollection(DBName, "forms")
		FormFieldCollection = GetCollection(DBName, "form_fields")
		ConversationCollection = GetCollection(DBName, "conversations")
		OrganizationCollection = GetCollection(DBName, "organizations")
		WorkspaceCollection = GetCollection(DBName, "workspaces")
		UserCollection = GetCollection(DBName, "users")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
