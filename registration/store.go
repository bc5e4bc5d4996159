package registration

import (
	"context"

	"github.com/ariebrainware/tiny-erm/model"
)

// HospitalLookup resolves hospitals owned by the hospital-management subsystem.
// FindByID returns ErrHospitalNotFound when no hospital has the id.
type HospitalLookup interface {
	FindByID(ctx context.Context, id uint) (*model.Hospital, error)
}

// MaxRegistrationNumberReader reports the highest registration number issued
// for a hospital, or "" when none has been issued yet.
type MaxRegistrationNumberReader interface {
	GetMaxRegistrationNumber(ctx context.Context, hospitalID uint) (string, error)
}

// PatientStore persists patients.
//
// FindByID returns ErrPatientNotFound for an unknown id. Save inserts when the
// patient has no id and replaces otherwise; an insert that collides with an
// existing registration number of the same hospital returns ErrAllocationRace.
type PatientStore interface {
	MaxRegistrationNumberReader
	FindByID(ctx context.Context, id uint) (*model.Patient, error)
	Save(ctx context.Context, patient *model.Patient) (*model.Patient, error)
	List(ctx context.Context, filter model.PatientFilter) ([]model.Patient, int64, error)
}
