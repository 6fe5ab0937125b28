package domain

import "time"

// Review is an employee's rating of a company. Both sides must exist when
// the review is created.
type Review struct {
	ID         string    `json:"review_id" bson:"_id"`
	CompanyID  string    `json:"company_id" bson:"company_id"`
	EmployeeID string    `json:"employee_id" bson:"employee_id"`
	Rating     int       `json:"rating" bson:"rating"`
	Comment    string    `json:"comment,omitempty" bson:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
}
