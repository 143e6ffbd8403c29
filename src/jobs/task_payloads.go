package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeNotifyLead = "lead:notify"

type LeadPayload struct {
	LeadID string `json:"lead_id"`
}

func NewNotifyLeadTask(leadID string) (*asynq.Task, error) {
	payload, err := json.Marshal(LeadPayload{LeadID: leadID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeNotifyLead, payload), nil
}
