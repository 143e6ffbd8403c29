package admins

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	DB "github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/database"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// Login verifies admin credentials and returns a signed token.
func Login(req models.LoginRequest) (*models.LoginResponse, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var admin models.Admin
	err := DB.AdminCollection.FindOne(ctx, bson.M{"email": req.Email}).Decode(&admin)
	if err != nil {
		// Same error for unknown email and wrong password.
		return nil, errors.New("invalid email or password")
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		return nil, errors.New("invalid email or password")
	}

	token, err := utils.GenerateJWT(admin.ID.Hex(), admin.Email)
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, Email: admin.Email}, nil
}

// EnsureDefaultAdmin seeds one admin account from ADMIN_EMAIL/ADMIN_PASSWORD
// when the collection is empty, so a fresh deployment can log in.
func EnsureDefaultAdmin() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := DB.AdminCollection.CountDocuments(ctx, bson.M{})
	if err != nil || count > 0 {
		return
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("⚠️ ADMIN_EMAIL/ADMIN_PASSWORD not set. No admin account seeded.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("❌ Failed to hash default admin password:", err)
		return
	}

	_, err = DB.AdminCollection.InsertOne(ctx, models.Admin{
		ID:       primitive.NewObjectID(),
		Email:    email,
		Password: string(hash),
		Name:     "Administrator",
	})
	if err != nil {
		log.Println("❌ Failed to seed default admin:", err)
		return
	}
	log.Println("✅ Default admin seeded:", email)
}
