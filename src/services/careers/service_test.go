package careers

import (
	"testing"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStatus(t *testing.T) {
	for _, status := range []string{
		models.StatusPending,
		models.StatusReviewing,
		models.StatusShortlisted,
		models.StatusRejected,
		models.StatusHired,
	} {
		assert.True(t, IsValidStatus(status), status)
	}

	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("archived"))
	assert.False(t, IsValidStatus("Pending")) // labels are lowercase
}

func TestValidateApplicant(t *testing.T) {
	applicant := models.Applicant{
		Name:     "Rahul K",
		Email:    "rahul@example.com",
		Position: "ai-engineer",
	}
	assert.NoError(t, validate.Struct(&applicant))

	applicant.Position = "astronaut"
	assert.Error(t, validate.Struct(&applicant))

	applicant.Position = "ai-engineer"
	applicant.Email = "nope"
	assert.Error(t, validate.Struct(&applicant))
}
