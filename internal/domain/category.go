package domain

import "time"

// Category is a top-level navigation grouping.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SubCategory is a second-level grouping under a Category. A SubCategory
// whose Category reference does not resolve is not rejected; it simply never
// appears in an assembled navigation tree.
type SubCategory struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  Ref       `json:"category"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
