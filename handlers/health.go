package handlers

import (
	"github.com/gin-gonic/gin"

	"atelier/utils"
)

// Health returns the latest dependency health snapshot.
func Health(c *gin.Context) {
	utils.JSONData(c, utils.GetHealthStatus())
}
