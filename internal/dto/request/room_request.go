package request

// CreateRoomRequest represents a room listing creation request
type CreateRoomRequest struct {
	Title            string   `json:"title" binding:"required,min=2,max=150"`
	Description      string   `json:"description,omitempty" binding:"omitempty,max=2000"`
	Location         string   `json:"location" binding:"required,max=150"`
	City             string   `json:"city" binding:"required,max=100"`
	RentPrice        int      `json:"rent_price" binding:"min=0"`
	PropertyType     string   `json:"property_type" binding:"required,oneof=1BHK 2BHK 1Bed 2Bed 3Bed"`
	TenantPreference string   `json:"tenant_preference" binding:"required,oneof=Bachelor Family Girls Working"`
	ContactNumber    string   `json:"contact_number" binding:"required"`
	Images           []string `json:"images" binding:"required,min=1"`
}

// RoomFilterRequest carries the search filters as they arrive from the
// query string. Prices stay strings here so a bad value can be rejected
// with a field-level message before any query is compiled.
type RoomFilterRequest struct {
	Location         string `form:"location"`
	MinPrice         string `form:"min_price"`
	MaxPrice         string `form:"max_price"`
	PropertyType     string `form:"property_type"`
	TenantPreference string `form:"tenant_preference"`
}

// DeleteRoomRequest represents a room deletion request
type DeleteRoomRequest struct {
	Confirm bool `json:"confirm"`
}
