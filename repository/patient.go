package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ariebrainware/tiny-erm/model"
	"github.com/ariebrainware/tiny-erm/registration"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// GetMaxRegistrationNumber relies on the fixed width of registration numbers:
// the lexicographic maximum is the numeric maximum.
func (r *PatientRepository) GetMaxRegistrationNumber(ctx context.Context, hospitalID uint) (string, error) {
	var max string
	err := r.db.WithContext(ctx).
		Model(&model.Patient{}).
		Where("hospital_id = ?", hospitalID).
		Select("COALESCE(MAX(registration_number), '')").
		Scan(&max).Error
	if err != nil {
		return "", fmt.Errorf("query max registration number: %w", err)
	}
	return max, nil
}

func (r *PatientRepository) FindByID(ctx context.Context, id uint) (*model.Patient, error) {
	var patient model.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("patient %d: %w", id, registration.ErrPatientNotFound)
		}
		return nil, fmt.Errorf("find patient %d: %w", id, err)
	}
	return &patient, nil
}

// Save inserts a patient without an id and replaces one that has an id.
func (r *PatientRepository) Save(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	saved := *patient
	tx := r.db.WithContext(ctx)

	var err error
	if saved.ID == 0 {
		err = tx.Create(&saved).Error
	} else {
		err = tx.Save(&saved).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("hospital %d number %s: %w", saved.HospitalID, saved.RegistrationNumber, registration.ErrAllocationRace)
		}
		return nil, fmt.Errorf("save patient: %w", err)
	}
	return &saved, nil
}

// List returns one page of a hospital's patients ordered by registration number.
func (r *PatientRepository) List(ctx context.Context, filter model.PatientFilter) ([]model.Patient, int64, error) {
	scoped := func() *gorm.DB {
		query := r.db.WithContext(ctx).Model(&model.Patient{}).Where("hospital_id = ?", filter.HospitalID)
		if filter.Keyword != "" {
			kw := "%" + filter.Keyword + "%"
			query = query.Where("name LIKE ? OR mobile_phone_number LIKE ? OR registration_number LIKE ?", kw, kw, kw)
		}
		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count patients: %w", err)
	}

	page := scoped().Order("registration_number ASC")
	if filter.Limit > 0 {
		page = page.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		page = page.Offset(filter.Offset)
	}

	var patients []model.Patient
	if err := page.Find(&patients).Error; err != nil {
		return nil, 0, fmt.Errorf("list patients: %w", err)
	}
	return patients, total, nil
}
