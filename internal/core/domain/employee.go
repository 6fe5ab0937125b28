package domain

import "time"

// Employee is the candidate-side actor profile.
type Employee struct {
	ID        string    `json:"employee_id" bson:"_id"`
	FullName  string    `json:"full_name" bson:"full_name"`
	Email     string    `json:"email" bson:"email"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
