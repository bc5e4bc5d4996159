package util

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const dateBirthLayout = "2006-01-02"

var (
	mobilePhonePattern = regexp.MustCompile(`^\d{2,3}-\d{3,4}-\d{4}$`)
	genderCodes        = map[string]struct{}{"M": {}, "F": {}}

	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators adds the patient binding tags (gendercode, datebirth,
// mobilephone) to gin's validator engine. Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
			return
		}
		for tag, fn := range map[string]validator.Func{
			"gendercode":  validateGenderCode,
			"datebirth":   validateDateBirth,
			"mobilephone": validateMobilePhone,
		} {
			if err := v.RegisterValidation(tag, fn); err != nil {
				registerErr = fmt.Errorf("register %s validation: %w", tag, err)
				return
			}
		}
	})
	return registerErr
}

func validateGenderCode(fl validator.FieldLevel) bool {
	_, ok := genderCodes[fl.Field().String()]
	return ok
}

func validateDateBirth(fl validator.FieldLevel) bool {
	_, err := time.Parse(dateBirthLayout, fl.Field().String())
	return err == nil
}

func validateMobilePhone(fl validator.FieldLevel) bool {
	return mobilePhonePattern.MatchString(fl.Field().String())
}
