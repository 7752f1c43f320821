package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact represents a contact record for data transfer between layers.
// The surrogate ID is the identity; FullName is a display field that the
// reviewer may edit freely.
type Contact struct {
	ID            uuid.UUID `json:"id"`
	FullName      string    `json:"full_name"`
	Organization  string    `json:"organization"`
	JobTitle      string    `json:"job_title"`
	ContactNumber string    `json:"contact_number"`
	BusinessEmail string    `json:"business_email"`
	BusinessURL   string    `json:"business_url"`
	StreetAddress string    `json:"street_address"`
	LocationCity  string    `json:"location_city"`
	LocationState string    `json:"location_state"`
	PostalCode    string    `json:"postal_code"`
	RawText       string    `json:"raw_text,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
