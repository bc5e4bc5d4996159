package model

import "time"

// Hospital is owned by the hospital-management subsystem. The registry only reads it.
type Hospital struct {
	ID                       uint      `gorm:"primaryKey" json:"id"`
	Name                     string    `gorm:"size:255;not null" json:"name"`
	NursingInstitutionNumber string    `gorm:"size:64;uniqueIndex" json:"nursing_institution_number"`
	DirectorName             string    `gorm:"size:255" json:"director_name"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

func (Hospital) TableName() string {
	return "hospitals"
}
