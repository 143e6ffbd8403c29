package jobs

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/database"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// HandleNotifyLeadTask records an admin notification for a freshly captured
// lead. If the lead was deleted before the task ran, the task completes
// without retry.
func HandleNotifyLeadTask(ctx context.Context, t *asynq.Task) error {
	var payload LeadPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	id, err := primitive.ObjectIDFromHex(payload.LeadID)
	if err != nil {
		return err
	}

	var lead models.Lead
	err = database.LeadCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&lead)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			log.Println("⚠️ Lead not found. Possibly deleted. Skipping notification:", id.Hex())
			return nil
		}
		log.Println("❌ Failed to find lead:", err)
		return err
	}

	notification := models.Notification{
		ID:        primitive.NewObjectID(),
		LeadID:    lead.ID,
		FormType:  lead.FormType,
		Name:      lead.Name,
		Message:   "New " + lead.FormType + " enquiry from " + lead.Name,
		Read:      false,
		CreatedAt: time.Now().UTC(),
	}

	_, err = database.NotificationCollection.InsertOne(ctx, notification)
	if err != nil {
		log.Println("❌ Failed to insert notification:", err)
		return err
	}

	log.Println("✅ Lead notification recorded:", lead.ID.Hex())
	return nil
}
