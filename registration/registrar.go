package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ariebrainware/tiny-erm/metrics"
	"github.com/ariebrainware/tiny-erm/model"
)

const defaultMaxAttempts = 3

// RegistrarConfig holds optional collaborators of the Registrar.
type RegistrarConfig struct {
	// MaxAttempts bounds allocate+save rounds when a save hits ErrAllocationRace.
	MaxAttempts int
	Logger      *zerolog.Logger
	Metrics     *metrics.Metrics
}

// Registrar creates and updates patients. Creation resolves the hospital,
// allocates the next registration number and saves, holding a per-hospital
// lock so two registrations of one hospital never compute the same number.
type Registrar struct {
	hospitals   HospitalLookup
	patients    PatientStore
	allocator   *Allocator
	locks       hospitalLocks
	maxAttempts int
	logger      *zerolog.Logger
	metrics     *metrics.Metrics
}

func NewRegistrar(hospitals HospitalLookup, patients PatientStore, allocator *Allocator, cfg RegistrarConfig) *Registrar {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.Logger == nil {
		cfg.Logger = &log.Logger
	}
	return &Registrar{
		hospitals:   hospitals,
		patients:    patients,
		allocator:   allocator,
		maxAttempts: cfg.MaxAttempts,
		logger:      cfg.Logger,
		metrics:     cfg.Metrics,
	}
}

// CreatePatient registers a new patient in req.HospitalID.
func (r *Registrar) CreatePatient(ctx context.Context, req model.CreatePatientRequest) (*model.Patient, error) {
	hospital, err := r.hospitals.FindByID(ctx, req.HospitalID)
	if err != nil {
		r.metrics.ObservePatientOperation("create", outcomeOf(err))
		return nil, fmt.Errorf("create patient: %w", err)
	}

	unlock := r.locks.lock(hospital.ID)
	defer unlock()

	var lastErr error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		number, err := r.allocator.Next(ctx, hospital.ID)
		if err != nil {
			r.metrics.ObservePatientOperation("create", outcomeOf(err))
			return nil, fmt.Errorf("create patient: %w", err)
		}

		saved, err := r.patients.Save(ctx, &model.Patient{
			HospitalID:         hospital.ID,
			Name:               req.Name,
			GenderCode:         req.GenderCode,
			DateBirth:          req.DateBirth,
			RegistrationNumber: number,
			MobilePhoneNumber:  req.MobilePhoneNumber,
		})
		if err == nil {
			r.metrics.ObservePatientOperation("create", metrics.OutcomeSuccess)
			r.logger.Info().
				Uint("patient_id", saved.ID).
				Uint("hospital_id", hospital.ID).
				Str("registration_number", saved.RegistrationNumber).
				Msg("patient registered")
			return saved, nil
		}
		if !errors.Is(err, ErrAllocationRace) {
			r.metrics.ObservePatientOperation("create", outcomeOf(err))
			return nil, fmt.Errorf("create patient: save: %w", err)
		}

		lastErr = err
		r.metrics.ObserveAllocationRetry()
		r.logger.Warn().
			Uint("hospital_id", hospital.ID).
			Str("registration_number", number).
			Int("attempt", attempt).
			Msg("registration number collided, allocating again")
	}

	r.metrics.ObservePatientOperation("create", metrics.OutcomeConflict)
	return nil, fmt.Errorf("create patient in hospital %d after %d attempts: %w", hospital.ID, r.maxAttempts, lastErr)
}

// UpdatePatient overwrites the fields present in patch. The patient's id,
// hospital and registration number stay as they are.
func (r *Registrar) UpdatePatient(ctx context.Context, id uint, patch model.PatientPatch) (*model.Patient, error) {
	existing, err := r.patients.FindByID(ctx, id)
	if err != nil {
		r.metrics.ObservePatientOperation("update", outcomeOf(err))
		return nil, fmt.Errorf("update patient %d: %w", id, err)
	}

	updated := ApplyPatch(*existing, patch)
	saved, err := r.patients.Save(ctx, &updated)
	if err != nil {
		r.metrics.ObservePatientOperation("update", outcomeOf(err))
		return nil, fmt.Errorf("update patient %d: save: %w", id, err)
	}

	r.metrics.ObservePatientOperation("update", metrics.OutcomeSuccess)
	r.logger.Info().Uint("patient_id", saved.ID).Msg("patient updated")
	return saved, nil
}

func (r *Registrar) GetPatient(ctx context.Context, id uint) (*model.Patient, error) {
	patient, err := r.patients.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get patient %d: %w", id, err)
	}
	return patient, nil
}

// ListPatients returns one page of a hospital's patients and the total count.
func (r *Registrar) ListPatients(ctx context.Context, filter model.PatientFilter) ([]model.Patient, int64, error) {
	if _, err := r.hospitals.FindByID(ctx, filter.HospitalID); err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}
	patients, total, err := r.patients.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("list patients of hospital %d: %w", filter.HospitalID, err)
	}
	return patients, total, nil
}

func (r *Registrar) GetHospital(ctx context.Context, id uint) (*model.Hospital, error) {
	return r.hospitals.FindByID(ctx, id)
}

// PeekRegistrationNumber reports the number the next patient of the hospital
// would get, without reserving it.
func (r *Registrar) PeekRegistrationNumber(ctx context.Context, hospitalID uint) (string, error) {
	if _, err := r.hospitals.FindByID(ctx, hospitalID); err != nil {
		return "", err
	}
	return r.allocator.Next(ctx, hospitalID)
}

func outcomeOf(err error) string {
	switch {
	case errors.Is(err, ErrHospitalNotFound):
		return metrics.OutcomeHospitalNotFound
	case errors.Is(err, ErrPatientNotFound):
		return metrics.OutcomePatientNotFound
	case errors.Is(err, ErrAllocationRace):
		return metrics.OutcomeConflict
	default:
		return metrics.OutcomeError
	}
}
