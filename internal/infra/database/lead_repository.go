package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/lib/pq"

	"github.com/elysianestates/crm-api/internal/entity"
)

var ErrEmailAlreadyExists = errors.New("a lead with this email already exists")

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (
			id, name, email, phone, location, citizenship, net_worth,
			investment_budget, status, preferred_property_types,
			last_interaction, notes, deal_value, probability,
			assigned_property_id, ai_insights, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
	`

	_, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Location,
		lead.Citizenship,
		lead.NetWorth,
		lead.InvestmentBudget,
		string(lead.Status),
		pq.Array(lead.PreferredPropertyTypes),
		lead.LastInteraction,
		lead.Notes,
		lead.DealValue,
		lead.Probability,
		nullString(lead.AssignedPropertyID),
		nullString(lead.AIInsights),
		lead.CreatedAt,
		lead.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrEmailAlreadyExists
		}
		log.Printf("lead insert failed: %v", err)
		return err
	}

	return nil
}

func (r *LeadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	query := `
		UPDATE leads SET
			name = $2, email = $3, phone = $4, location = $5, citizenship = $6,
			net_worth = $7, investment_budget = $8, status = $9,
			preferred_property_types = $10, last_interaction = $11, notes = $12,
			deal_value = $13, probability = $14, assigned_property_id = $15,
			ai_insights = $16, updated_at = $17
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Location,
		lead.Citizenship,
		lead.NetWorth,
		lead.InvestmentBudget,
		string(lead.Status),
		pq.Array(lead.PreferredPropertyTypes),
		lead.LastInteraction,
		lead.Notes,
		lead.DealValue,
		lead.Probability,
		nullString(lead.AssignedPropertyID),
		nullString(lead.AIInsights),
		lead.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, leadSelect+` WHERE id = $1`, id)

	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

func (r *LeadRepository) FindAll(ctx context.Context) ([]*entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, leadSelect+` ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

const leadSelect = `
	SELECT id, name, email, phone, location, citizenship, net_worth,
	       investment_budget, status, preferred_property_types,
	       last_interaction, notes, deal_value, probability,
	       assigned_property_id, ai_insights, created_at, updated_at
	FROM leads`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var (
		lead               entity.Lead
		status             string
		dealValue          sql.NullFloat64
		probability        sql.NullInt64
		assignedPropertyID sql.NullString
		aiInsights         sql.NullString
	)

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&lead.Phone,
		&lead.Location,
		&lead.Citizenship,
		&lead.NetWorth,
		&lead.InvestmentBudget,
		&status,
		pq.Array(&lead.PreferredPropertyTypes),
		&lead.LastInteraction,
		&lead.Notes,
		&dealValue,
		&probability,
		&assignedPropertyID,
		&aiInsights,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Status = entity.LeadStatus(status)
	if dealValue.Valid {
		lead.DealValue = &dealValue.Float64
	}
	if probability.Valid {
		p := int(probability.Int64)
		lead.Probability = &p
	}
	lead.AssignedPropertyID = assignedPropertyID.String
	lead.AIInsights = aiInsights.String

	return &lead, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
