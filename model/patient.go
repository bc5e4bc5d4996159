package model

import "time"

// Patient references its hospital by id only; the hospital record is resolved
// through a lookup when needed.
type Patient struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	HospitalID         uint      `gorm:"not null;uniqueIndex:idx_patient_hospital_regno,priority:1" json:"hospital_id"`
	Name               string    `gorm:"size:45;not null" json:"name"`
	GenderCode         string    `gorm:"size:10;not null" json:"gender_code"`
	DateBirth          string    `gorm:"size:10" json:"date_birth"`
	RegistrationNumber string    `gorm:"size:13;not null;uniqueIndex:idx_patient_hospital_regno,priority:2" json:"registration_number"`
	MobilePhoneNumber  string    `gorm:"size:20" json:"mobile_phone_number"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}

// CreatePatientRequest carries every field of a new patient except the ones
// assigned by the registry (id and registration number).
type CreatePatientRequest struct {
	HospitalID        uint   `json:"hospital_id" binding:"required" example:"1"`
	Name              string `json:"name" binding:"required,max=45" example:"오지웅"`
	GenderCode        string `json:"gender_code" binding:"required,gendercode" example:"M"`
	DateBirth         string `json:"date_birth" binding:"required,datebirth" example:"1994-04-12"`
	MobilePhoneNumber string `json:"mobile_phone_number" binding:"required,mobilephone" example:"010-1234-1234"`
}

// PatientPatch lists the updatable fields. A nil field is left untouched.
type PatientPatch struct {
	Name              *string `json:"name" binding:"omitempty,min=1,max=45" example:"권혜원"`
	GenderCode        *string `json:"gender_code" binding:"omitempty,gendercode" example:"F"`
	DateBirth         *string `json:"date_birth" binding:"omitempty,datebirth" example:"1993-04-16"`
	MobilePhoneNumber *string `json:"mobile_phone_number" binding:"omitempty,mobilephone" example:"010-4321-4321"`
}

// ReplacePatientRequest is the PUT body: the same fields as a patch, all required.
type ReplacePatientRequest struct {
	Name              string `json:"name" binding:"required,max=45"`
	GenderCode        string `json:"gender_code" binding:"required,gendercode"`
	DateBirth         string `json:"date_birth" binding:"required,datebirth"`
	MobilePhoneNumber string `json:"mobile_phone_number" binding:"required,mobilephone"`
}

// Patch turns a full replacement into a patch that sets every field.
func (r ReplacePatientRequest) Patch() PatientPatch {
	return PatientPatch{
		Name:              &r.Name,
		GenderCode:        &r.GenderCode,
		DateBirth:         &r.DateBirth,
		MobilePhoneNumber: &r.MobilePhoneNumber,
	}
}

// PatientFilter narrows a patient listing to one hospital.
type PatientFilter struct {
	HospitalID uint
	Keyword    string
	Limit      int
	Offset     int
}
