package database

import (
	"context"
	"database/sql"

	"github.com/elysianestates/crm-api/internal/entity"
)

type ActivityRepository struct {
	DB *sql.DB
}

func NewActivityRepository(db *sql.DB) *ActivityRepository {
	return &ActivityRepository{DB: db}
}

func (r *ActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	query := `
		INSERT INTO activities (id, type, date, lead_id, description)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.DB.ExecContext(ctx, query,
		activity.ID,
		string(activity.Type),
		activity.Date,
		activity.LeadID,
		activity.Description,
	)
	return err
}

func (r *ActivityRepository) FindByLeadID(ctx context.Context, leadID string) ([]*entity.Activity, error) {
	query := `
		SELECT id, type, date, lead_id, description
		FROM activities
		WHERE lead_id = $1
		ORDER BY date DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := []*entity.Activity{}
	for rows.Next() {
		var (
			activity     entity.Activity
			activityType string
		)
		if err := rows.Scan(&activity.ID, &activityType, &activity.Date, &activity.LeadID, &activity.Description); err != nil {
			return nil, err
		}
		activity.Type = entity.ActivityType(activityType)
		activities = append(activities, &activity)
	}
	return activities, rows.Err()
}
