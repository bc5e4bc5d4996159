package endpoint

import (
	"github.com/ariebrainware/tiny-erm/util"
	"github.com/gin-gonic/gin"
)

// GetHospital godoc
// @Summary      Get a hospital
// @Tags         Hospital
// @Produce      json
// @Param        id path int true "Hospital ID"
// @Success      200 {object} util.APIResponse{data=model.Hospital} "Hospital retrieved"
// @Failure      400 {object} util.APIResponse "Invalid hospital ID"
// @Failure      404 {object} util.APIResponse "Hospital not found"
// @Router       /hospital/{id} [get]
func GetHospital(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg: "Invalid hospital ID",
			Err: err,
		})
		return
	}

	reg, ok := getRegistrar(c)
	if !ok {
		return
	}

	hospital, err := reg.GetHospital(c.Request.Context(), id)
	if err != nil {
		callRegistrationError(c, "Failed to retrieve hospital", err)
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Hospital retrieved",
		Data: hospital,
	})
}
