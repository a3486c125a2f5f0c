package model

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type PropertyType string

const (
	PropertyType1BHK PropertyType = "1BHK"
	PropertyType2BHK PropertyType = "2BHK"
	PropertyType1Bed PropertyType = "1Bed"
	PropertyType2Bed PropertyType = "2Bed"
	PropertyType3Bed PropertyType = "3Bed"
)

// PropertyTypes lists all accepted property types.
var PropertyTypes = []PropertyType{
	PropertyType1BHK,
	PropertyType2BHK,
	PropertyType1Bed,
	PropertyType2Bed,
	PropertyType3Bed,
}

// IsValid checks if the property type is one of the accepted values
func (p PropertyType) IsValid() bool {
	for _, t := range PropertyTypes {
		if p == t {
			return true
		}
	}
	return false
}

type TenantPreference string

const (
	TenantPreferenceBachelor TenantPreference = "Bachelor"
	TenantPreferenceFamily   TenantPreference = "Family"
	TenantPreferenceGirls    TenantPreference = "Girls"
	TenantPreferenceWorking  TenantPreference = "Working"
)

// TenantPreferences lists all accepted tenant preferences.
var TenantPreferences = []TenantPreference{
	TenantPreferenceBachelor,
	TenantPreferenceFamily,
	TenantPreferenceGirls,
	TenantPreferenceWorking,
}

// IsValid checks if the tenant preference is one of the accepted values
func (t TenantPreference) IsValid() bool {
	for _, p := range TenantPreferences {
		if t == p {
			return true
		}
	}
	return false
}

// Room is a single rental listing. Images keep their upload order; the
// first entry is the cover image used in summary views.
type Room struct {
	ID               int64            `db:"id" json:"id"`
	OwnerID          string           `db:"owner_id" json:"owner_id"`
	Title            string           `db:"title" json:"title"`
	Description      sql.NullString   `db:"description" json:"description,omitempty"`
	Location         string           `db:"location" json:"location"`
	City             string           `db:"city" json:"city"`
	RentPrice        int              `db:"rent_price" json:"rent_price"`
	PropertyType     PropertyType     `db:"property_type" json:"property_type"`
	TenantPreference TenantPreference `db:"tenant_preference" json:"tenant_preference"`
	ContactNumber    string           `db:"contact_number" json:"contact_number"`
	Images           pq.StringArray   `db:"images" json:"images"`
	CreatedAt        time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at" json:"updated_at"`
}

// GetDescription returns description or empty string
func (r *Room) GetDescription() string {
	if r.Description.Valid {
		return r.Description.String
	}
	return ""
}

// Gallery returns a carousel over the room's images, positioned on the
// first one.
func (r *Room) Gallery() *Gallery {
	return NewGallery(r.Images)
}

// CoverImage returns the first image URL or empty string
func (r *Room) CoverImage() string {
	img, ok := r.Gallery().Current()
	if !ok {
		return ""
	}
	return img
}

// IsOwnedBy checks if the room belongs to the given user
func (r *Room) IsOwnedBy(userID string) bool {
	return r.OwnerID == userID
}
