package controllers

import (
	"net/http"

	"github.com/ycz425/VertTracker-API/services"
	"github.com/ycz425/VertTracker-API/utils"

	"github.com/gin-gonic/gin"
)

type SummaryController struct {
	Svc *services.SummaryService
}

func NewSummaryController(svc *services.SummaryService) *SummaryController {
	return &SummaryController{Svc: svc}
}

func (h *SummaryController) GetSummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return
	}

	heightUnit := c.DefaultQuery("height-unit", "m")
	factor, ok := utils.HeightFactor(heightUnit)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "height-unit must be either 'm', 'cm', or 'in'"})
		return
	}

	out, err := h.Svc.Summary(userID, factor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}
