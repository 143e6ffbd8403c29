package leads

import (
	"testing"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"

	"github.com/stretchr/testify/assert"
)

func validLead() models.Lead {
	return models.Lead{
		Name:     "Priya N",
		Email:    "priya@example.com",
		FormType: models.FormScheduleCall,
	}
}

func TestValidateLeadAccepts(t *testing.T) {
	for _, formType := range []string{
		models.FormScheduleCall,
		models.FormJoinProjects,
		models.FormRecommendation,
		models.FormEnterpriseSolutions,
		models.FormEnterpriseDemo,
	} {
		lead := validLead()
		lead.FormType = formType
		assert.NoError(t, ValidateLead(&lead), formType)
	}
}

func TestValidateLeadRejects(t *testing.T) {
	lead := validLead()
	lead.Name = ""
	assert.Error(t, ValidateLead(&lead))

	lead = validLead()
	lead.Email = "not-an-email"
	assert.Error(t, ValidateLead(&lead))

	lead = validLead()
	lead.FormType = "Newsletter" // unknown discriminator
	assert.Error(t, ValidateLead(&lead))

	lead = validLead()
	lead.FormType = ""
	assert.Error(t, ValidateLead(&lead))
}
