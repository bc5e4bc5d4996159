package endpoint

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ariebrainware/tiny-erm/middleware"
	"github.com/ariebrainware/tiny-erm/registration"
	"github.com/ariebrainware/tiny-erm/util"
	"github.com/gin-gonic/gin"
)

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	if raw == "" {
		return 0, fmt.Errorf("%s is required", name)
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s %q", name, raw)
	}
	return uint(id), nil
}

// getRegistrar fetches the registrar from the context, answering 500 when it
// is missing.
func getRegistrar(c *gin.Context) (*registration.Registrar, bool) {
	reg := middleware.GetRegistrar(c)
	if reg == nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Registrar not available",
			Err: fmt.Errorf("registrar is nil"),
		})
		return nil, false
	}
	return reg, true
}

// callRegistrationError maps registry errors to the response envelope.
func callRegistrationError(c *gin.Context, msg string, err error) {
	params := util.APIErrorParams{Msg: msg, Err: err}
	switch {
	case errors.Is(err, registration.ErrHospitalNotFound):
		params.Msg = "Hospital not found"
		util.CallErrorNotFound(c, params)
	case errors.Is(err, registration.ErrPatientNotFound):
		params.Msg = "Patient not found"
		util.CallErrorNotFound(c, params)
	case errors.Is(err, registration.ErrAllocationRace):
		params.Msg = "Registration number was taken concurrently, please retry"
		util.CallConflict(c, params)
	default:
		util.CallServerError(c, params)
	}
}
