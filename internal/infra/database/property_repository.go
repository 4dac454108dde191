package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/elysianestates/crm-api/internal/entity"
)

type PropertyRepository struct {
	DB *sql.DB
}

func NewPropertyRepository(db *sql.DB) *PropertyRepository {
	return &PropertyRepository{DB: db}
}

const propertySelect = `
	SELECT id, title, location, price, numeric_price, sqft, beds, baths,
	       image, amenities, description
	FROM properties`

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*entity.Property, error) {
	row := r.DB.QueryRowContext(ctx, propertySelect+` WHERE id = $1`, id)

	property, err := scanProperty(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrPropertyNotFound
	}
	return property, err
}

func (r *PropertyRepository) FindAll(ctx context.Context) ([]*entity.Property, error) {
	rows, err := r.DB.QueryContext(ctx, propertySelect+` ORDER BY numeric_price DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*entity.Property
	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return properties, rows.Err()
}

func scanProperty(row rowScanner) (*entity.Property, error) {
	var property entity.Property

	err := row.Scan(
		&property.ID,
		&property.Title,
		&property.Location,
		&property.Price,
		&property.NumericPrice,
		&property.Sqft,
		&property.Beds,
		&property.Baths,
		&property.Image,
		pq.Array(&property.Amenities),
		&property.Description,
	)
	if err != nil {
		return nil, err
	}
	return &property, nil
}
