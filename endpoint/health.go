package endpoint

import (
	"context"
	"time"

	"github.com/ariebrainware/tiny-erm/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Health reports whether the database answers a ping within two seconds.
func Health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{
				Msg: "Database unavailable",
				Err: err,
			})
			return
		}

		util.CallSuccessOK(c, util.APISuccessParams{
			Msg:  "OK",
			Data: map[string]interface{}{"database": "up"},
		})
	}
}
