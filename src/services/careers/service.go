package careers

import (
	"context"
	"errors"
	"time"

	DB "github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/database"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

var validStatuses = []string{
	models.StatusPending,
	models.StatusReviewing,
	models.StatusShortlisted,
	models.StatusRejected,
	models.StatusHired,
}

// IsValidStatus reports whether s is one of the five applicant status labels.
// Any label may follow any other - there is no transition graph.
func IsValidStatus(s string) bool {
	for _, v := range validStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// CreateApplicant inserts a new application. Status always starts at pending,
// whatever the request carried.
func CreateApplicant(applicant *models.Applicant) (*models.Applicant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := validate.Struct(applicant); err != nil {
		return nil, err
	}

	applicant.ID = primitive.NewObjectID()
	applicant.Status = models.StatusPending
	applicant.CreatedAt = time.Now().UTC()

	_, err := DB.ApplicantCollection.InsertOne(ctx, applicant)
	if err != nil {
		return nil, err
	}
	return applicant, nil
}

// GetAllApplicants returns applications newest first.
func GetAllApplicants() ([]models.Applicant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := DB.ApplicantCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var applicants []models.Applicant
	if err = cursor.All(ctx, &applicants); err != nil {
		return nil, err
	}
	return applicants, nil
}

// UpdateApplicantStatus sets the status label on one application.
func UpdateApplicantStatus(id primitive.ObjectID, status string) (*models.Applicant, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if !IsValidStatus(status) {
		return nil, errors.New("invalid status: " + status)
	}

	_, err := DB.ApplicantCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"status": status},
	})
	if err != nil {
		return nil, err
	}

	var applicant models.Applicant
	err = DB.ApplicantCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&applicant)
	if err != nil {
		return nil, err
	}
	return &applicant, nil
}
