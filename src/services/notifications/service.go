package notifications

import (
	"context"
	"time"

	DB "github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/database"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetAllNotifications returns admin notifications newest first.
func GetAllNotifications(params models.ListParams) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	params.Clamp(200)
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if params.Limit > 0 {
		opts.SetLimit(params.Limit)
	}

	cursor, err := DB.NotificationCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var items []models.Notification
	if err = cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkRead flags one notification as read.
func MarkRead(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := DB.NotificationCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"read": true},
	})
	return err
}
