package domain

import "time"

// Application binds one employee to one job together with the CV document
// submitted for it. An Application never exists without a readable stored
// document; the application workflow enforces this with a compensating
// delete when the record insert fails after the file write.
type Application struct {
	ID           string    `json:"application_id" bson:"_id"`
	EmployeeID   string    `json:"employee_id" bson:"employee_id"`
	JobID        string    `json:"job_id" bson:"job_id"`
	DocumentPath string    `json:"-" bson:"document_path"`
	DocumentName string    `json:"document_name" bson:"document_name"`
	DocumentSize int64     `json:"document_size" bson:"document_size"`
	AppliedAt    time.Time `json:"applied_at" bson:"applied_at"`
}
