package domain

import "time"

// Company is the business-side actor profile. It owns the jobs it posts,
// the blogs published under its name, and the reviews written about it.
// Companies are never deleted through the API; ownership links are stable.
type Company struct {
	ID          string    `json:"company_id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Industry    string    `json:"industry,omitempty" bson:"industry,omitempty"`
	Email       string    `json:"email" bson:"email"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	LogoURL     string    `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
