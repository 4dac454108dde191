package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrLeadNotFound = errors.New("lead not found")

type LeadStatus string

const (
	StatusProspect      LeadStatus = "Prospect"
	StatusQualified     LeadStatus = "Qualified"
	StatusSiteVisit     LeadStatus = "Site Visit"
	StatusNegotiation   LeadStatus = "Negotiation"
	StatusUnderContract LeadStatus = "Under Contract"
	StatusClosed        LeadStatus = "Closed"
	StatusLost          LeadStatus = "Lost"
)

// PipelineStages is the ordered funnel a mandate is promoted through.
// Closed and Lost are absorbing states and are intentionally not listed here.
var PipelineStages = []LeadStatus{
	StatusProspect,
	StatusQualified,
	StatusSiteVisit,
	StatusNegotiation,
	StatusUnderContract,
}

var allStatuses = map[LeadStatus]bool{
	StatusProspect:      true,
	StatusQualified:     true,
	StatusSiteVisit:     true,
	StatusNegotiation:   true,
	StatusUnderContract: true,
	StatusClosed:        true,
	StatusLost:          true,
}

func (s LeadStatus) Valid() bool {
	return allStatuses[s]
}

// Terminal reports whether the status is absorbing (no further promotion).
func (s LeadStatus) Terminal() bool {
	return s == StatusClosed || s == StatusLost
}

// NextStage returns the stage a promotion moves the lead to. Anywhere before
// the last listed pipeline stage advances one step; everything else (Under
// Contract, Closed, Lost, or an unknown status) resolves to Closed, which
// makes repeated promotion idempotent once a deal is done.
func (s LeadStatus) NextStage() LeadStatus {
	for i, stage := range PipelineStages {
		if stage == s && i < len(PipelineStages)-1 {
			return PipelineStages[i+1]
		}
	}
	return StatusClosed
}

// Lead represents a prospective or active HNI client mandate.
type Lead struct {
	ID                     string     `json:"id"`
	Name                   string     `json:"name"`
	Email                  string     `json:"email"`
	Phone                  string     `json:"phone"`
	Location               string     `json:"location"`
	Citizenship            string     `json:"citizenship"`
	NetWorth               string     `json:"net_worth"`
	InvestmentBudget       string     `json:"investment_budget"`
	Status                 LeadStatus `json:"status"`
	PreferredPropertyTypes []string   `json:"preferred_property_types"`
	LastInteraction        string     `json:"last_interaction"`
	Notes                  string     `json:"notes"`

	DealValue          *float64 `json:"deal_value,omitempty"`  // actual or estimated, USD
	Probability        *int     `json:"probability,omitempty"` // 0-100
	AssignedPropertyID string   `json:"assigned_property_id,omitempty"`
	AIInsights         string   `json:"ai_insights,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewLead(name, email, phone, location, citizenship string) (*Lead, error) {
	lead := &Lead{
		ID:          uuid.New().String(),
		Name:        name,
		Email:       email,
		Phone:       phone,
		Location:    location,
		Citizenship: citizenship,
		Status:      StatusProspect,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

func (l *Lead) Validate() error {
	if l.Name == "" {
		return errors.New("name is required")
	}
	if l.Email == "" {
		return errors.New("email is required")
	}
	if !l.Status.Valid() {
		return fmt.Errorf("invalid status %q", l.Status)
	}
	if l.Probability != nil && (*l.Probability < 0 || *l.Probability > 100) {
		return errors.New("probability must be between 0 and 100")
	}
	if l.DealValue != nil && *l.DealValue < 0 {
		return errors.New("deal value must not be negative")
	}
	return nil
}

// DealValueOrZero treats a missing deal value as 0 at aggregation sites.
func (l *Lead) DealValueOrZero() float64 {
	if l.DealValue == nil {
		return 0
	}
	return *l.DealValue
}

// ProbabilityOrZero treats a missing probability as 0 at aggregation sites.
func (l *Lead) ProbabilityOrZero() int {
	if l.Probability == nil {
		return 0
	}
	return *l.Probability
}
