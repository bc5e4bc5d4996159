package repository

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/ariebrainware/tiny-erm/model"
	"github.com/ariebrainware/tiny-erm/registration"
)

var (
	_ registration.PatientStore   = (*PatientRepository)(nil)
	_ registration.HospitalLookup = (*HospitalRepository)(nil)
	_ registration.HospitalLookup = (*CachedHospitalLookup)(nil)
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repo_%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&model.Hospital{}, &model.Patient{}); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}
	return db
}

func seedHospital(t *testing.T, db *gorm.DB, h model.Hospital) model.Hospital {
	t.Helper()
	if err := db.Create(&h).Error; err != nil {
		t.Fatalf("seed hospital: %v", err)
	}
	return h
}

func seedPatient(t *testing.T, db *gorm.DB, p model.Patient) model.Patient {
	t.Helper()
	if err := db.Create(&p).Error; err != nil {
		t.Fatalf("seed patient: %v", err)
	}
	return p
}
