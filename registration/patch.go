package registration

import "github.com/ariebrainware/tiny-erm/model"

// ApplyPatch returns existing with every provided patch field overwritten.
// ID, HospitalID and RegistrationNumber are never changed.
func ApplyPatch(existing model.Patient, patch model.PatientPatch) model.Patient {
	updated := existing
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.GenderCode != nil {
		updated.GenderCode = *patch.GenderCode
	}
	if patch.DateBirth != nil {
		updated.DateBirth = *patch.DateBirth
	}
	if patch.MobilePhoneNumber != nil {
		updated.MobilePhoneNumber = *patch.MobilePhoneNumber
	}
	return updated
}
