package controllers

import (
	"bytes"
	"net/http"
	"strconv"
	"time"

	"github.com/ycz425/VertTracker-API/models"
	"github.com/ycz425/VertTracker-API/services"
	"github.com/ycz425/VertTracker-API/utils"

	"github.com/gin-gonic/gin"
)

type PlotController struct {
	Svc *services.JumpService
}

func NewPlotController(svc *services.JumpService) *PlotController {
	return &PlotController{Svc: svc}
}

// GetPlot renders the user's aggregated jump heights over a trailing window
// of whole years as a PNG time series.
func (h *PlotController) GetPlot(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return
	}

	years := c.DefaultQuery("years", "1")
	utcOffset := c.DefaultQuery("utc-offset", "0")
	variant := c.DefaultQuery("variant", models.VariantMax)
	aggregation := c.DefaultQuery("aggregation", "max")
	heightUnit := c.DefaultQuery("height-unit", "m")

	if msg := utils.ValidateQueryParams(variant, aggregation, heightUnit, "kg", utcOffset, "date", years); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msg})
		return
	}

	samples, err := h.Svc.Query(services.JumpQuery{
		UserID:  userID,
		Variant: variant,
		Agg:     services.ParseAggregation(aggregation),
		OrderBy: services.OrderDate,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	numYears, _ := strconv.Atoi(years)
	offset, _ := strconv.Atoi(utcOffset)
	heightFactor, _ := utils.HeightFactor(heightUnit)

	cutoff := time.Now().UTC().AddDate(-numYears, 0, 0)
	var dates []time.Time
	var heights []float64
	for _, smp := range samples {
		if !smp.Timestamp.After(cutoff) {
			continue
		}
		dates = append(dates, utils.ApplyUTCOffset(smp.Timestamp, offset))
		heights = append(heights, smp.Height*heightFactor)
	}

	if len(dates) < 3 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"msg": "not enough data to generate a plot"})
		return
	}

	var buf bytes.Buffer
	if err := utils.RenderProgressPlot(&buf, dates, heights, heightUnit, numYears); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
