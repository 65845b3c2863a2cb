package model

// Lead is a free-trial / consultation signup.
type Lead struct {
	ID        int64  `json:"id,omitempty"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at,omitempty"`
}
