package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityCall    ActivityType = "call"
	ActivityEmail   ActivityType = "email"
	ActivityMeeting ActivityType = "meeting"
	ActivityViewing ActivityType = "viewing"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivityCall, ActivityEmail, ActivityMeeting, ActivityViewing:
		return true
	}
	return false
}

// Activity is a timestamped interaction record linked to a lead.
type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Date        time.Time    `json:"date"`
	LeadID      string       `json:"lead_id"`
	Description string       `json:"description"`
}

func NewActivity(leadID string, activityType ActivityType, description string) (*Activity, error) {
	if leadID == "" {
		return nil, errors.New("lead_id is required")
	}
	if !activityType.Valid() {
		return nil, errors.New("invalid activity type")
	}

	return &Activity{
		ID:          uuid.New().String(),
		Type:        activityType,
		Date:        time.Now(),
		LeadID:      leadID,
		Description: description,
	}, nil
}
