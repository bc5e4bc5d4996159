package endpoint

import (
	"fmt"
	"strconv"

	"github.com/ariebrainware/tiny-erm/model"
	"github.com/ariebrainware/tiny-erm/util"
	"github.com/gin-gonic/gin"
)

func parsePatientFilter(c *gin.Context) (model.PatientFilter, error) {
	hospitalID, err := strconv.ParseUint(c.Query("hospital_id"), 10, 0)
	if err != nil || hospitalID == 0 {
		return model.PatientFilter{}, fmt.Errorf("hospital_id query parameter is required")
	}
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	if limit < 0 {
		limit = 0
	}
	if offset < 0 {
		offset = 0
	}
	return model.PatientFilter{
		HospitalID: uint(hospitalID),
		Keyword:    c.Query("keyword"),
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// ListPatients godoc
// @Summary      List the patients of a hospital
// @Description  Get a paginated list of a hospital's patients ordered by registration number
// @Tags         Patient
// @Produce      json
// @Param        hospital_id query int true "Hospital ID"
// @Param        limit query int false "Limit number of results"
// @Param        offset query int false "Offset for pagination"
// @Param        keyword query string false "Search keyword for patient name or phone"
// @Success      200 {object} util.APIResponse{data=object} "Patients retrieved"
// @Failure      400 {object} util.APIResponse "Missing hospital_id"
// @Failure      404 {object} util.APIResponse "Hospital not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [get]
func ListPatients(c *gin.Context) {
	filter, err := parsePatientFilter(c)
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid query parameters",
			Err: err,
		})
		return
	}

	reg, ok := getRegistrar(c)
	if !ok {
		return
	}

	patients, total, err := reg.ListPatients(c.Request.Context(), filter)
	if err != nil {
		callRegistrationError(c, "Failed to retrieve patients", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patients retrieved",
		Data: map[string]interface{}{"total": total, "total_fetched": len(patients), "patients": patients},
	})
}

// CreatePatient godoc
// @Summary      Register a new patient
// @Description  Register a patient in a hospital; the registry assigns the id and registration number
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body model.CreatePatientRequest true "Patient information"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient created"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Hospital not found"
// @Failure      409 {object} util.APIResponse "Registration number conflict, retry"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient [post]
func CreatePatient(c *gin.Context) {
	req := model.CreatePatientRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}

	req.Name = util.NormalizeName(req.Name)
	if req.Name == "" {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Patient payload is empty or missing required fields",
			Err: fmt.Errorf("name is blank"),
		})
		return
	}

	reg, ok := getRegistrar(c)
	if !ok {
		return
	}

	patient, err := reg.CreatePatient(c.Request.Context(), req)
	if err != nil {
		callRegistrationError(c, "Failed to create patient", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient created",
		Data: patient,
	})
}

// GetPatient godoc
// @Summary      Get a patient
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient retrieved"
// @Failure      400 {object} util.APIResponse "Invalid patient ID"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /patient/{id} [get]
func GetPatient(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid patient ID",
			Err: err,
		})
		return
	}

	reg, ok := getRegistrar(c)
	if !ok {
		return
	}

	patient, err := reg.GetPatient(c.Request.Context(), id)
	if err != nil {
		callRegistrationError(c, "Failed to retrieve patient", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient retrieved",
		Data: patient,
	})
}

// UpdatePatient godoc
// @Summary      Update patient information
// @Description  Overwrite the provided fields; id, hospital and registration number never change
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path int true "Patient ID"
// @Param        request body model.PatientPatch true "Fields to update"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient/{id} [patch]
func UpdatePatient(c *gin.Context) {
	patch := model.PatientPatch{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}
	applyPatch(c, patch)
}

// ReplacePatient godoc
// @Summary      Replace patient information
// @Description  Same as PATCH with every updatable field required
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path int true "Patient ID"
// @Param        request body model.ReplacePatientRequest true "Patient information"
// @Success      200 {object} util.APIResponse{data=model.Patient} "Patient updated"
// @Failure      400 {object} util.APIResponse "Invalid request"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /patient/{id} [put]
func ReplacePatient(c *gin.Context) {
	req := model.ReplacePatientRequest{}
	if err := c.ShouldBindJSON(&req); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid request body",
			Err: err,
		})
		return
	}
	applyPatch(c, req.Patch())
}

func applyPatch(c *gin.Context, patch model.PatientPatch) {
	id, err := parseID(c, "id")
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid patient ID",
			Err: err,
		})
		return
	}

	if patch.Name != nil {
		name := util.NormalizeName(*patch.Name)
		if name == "" {
			util.CallUserError(c, util.APIErrorParams{
				Msg: "Invalid request body",
				Err: fmt.Errorf("name is blank"),
			})
			return
		}
		patch.Name = &name
	}

	reg, ok := getRegistrar(c)
	if !ok {
		return
	}

	patient, err := reg.UpdatePatient(c.Request.Context(), id, patch)
	if err != nil {
		callRegistrationError(c, "Failed to update patient", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient updated",
		Data: patient,
	})
}
