package entity

import "errors"

var ErrPropertyNotFound = errors.New("property not found")

// Property represents a listable asset. Properties are loaded at startup and
// are immutable for the remainder of the session.
type Property struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Location     string   `json:"location"`
	Price        string   `json:"price"` // display string, e.g. "$18.5M"
	NumericPrice float64  `json:"numeric_price"`
	Sqft         int      `json:"sqft"`
	Beds         int      `json:"beds"`
	Baths        int      `json:"baths"`
	Image        string   `json:"image"`
	Amenities    []string `json:"amenities"`
	Description  string   `json:"description"`
}

func (p *Property) Validate() error {
	if p.Title == "" {
		return errors.New("title is required")
	}
	if p.NumericPrice < 0 {
		return errors.New("numeric price must not be negative")
	}
	if p.Sqft < 0 || p.Beds < 0 || p.Baths < 0 {
		return errors.New("sqft, beds and baths must not be negative")
	}
	return nil
}
