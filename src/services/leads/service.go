package leads

import (
	"context"
	"log"
	"time"

	DB "github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/database"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/jobs"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// ValidateLead checks required fields and the formType discriminator.
func ValidateLead(lead *models.Lead) error {
	return validate.Struct(lead)
}

// CreateLead inserts a new lead and queues the admin notification. A lead is
// written once and never mutated afterwards.
func CreateLead(lead *models.Lead) (*models.Lead, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ValidateLead(lead); err != nil {
		return nil, err
	}

	lead.ID = primitive.NewObjectID()
	lead.CreatedAt = time.Now().UTC()

	_, err := DB.LeadCollection.InsertOne(ctx, lead)
	if err != nil {
		return nil, err
	}

	if DB.AsynqClient != nil {
		task, err := jobs.NewNotifyLeadTask(lead.ID.Hex())
		if err == nil {
			_, err = DB.AsynqClient.Enqueue(task)
		}
		if err != nil {
			// Notification is best effort - the lead itself is already saved.
			log.Println("❌ Failed to enqueue lead notification:", err)
		}
	}

	return lead, nil
}

// GetAllLeads returns leads newest first, optionally limited.
func GetAllLeads(params models.ListParams) ([]models.Lead, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params.Clamp(0)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if params.Skip > 0 {
		opts.SetSkip(params.Skip)
	}
	if params.Limit > 0 {
		opts.SetLimit(params.Limit)
	}

	cursor, err := DB.LeadCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var leads []models.Lead
	if err = cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}
