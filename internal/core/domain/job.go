package domain

import "time"

// Job is a posting owned by exactly one company. CompanyID is set at
// creation and never changes.
type Job struct {
	ID          string    `json:"job_id" bson:"_id"`
	CompanyID   string    `json:"company_id" bson:"company_id"`
	Title       string    `json:"title" bson:"title"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Location    string    `json:"location,omitempty" bson:"location,omitempty"`
	SalaryMin   float64   `json:"salary_min,omitempty" bson:"salary_min,omitempty"`
	SalaryMax   float64   `json:"salary_max,omitempty" bson:"salary_max,omitempty"`
	PostedAt    time.Time `json:"posted_at" bson:"posted_at"`
}
