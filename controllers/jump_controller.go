package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ycz425/VertTracker-API/services"
	"github.com/ycz425/VertTracker-API/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type JumpController struct {
	Svc *services.JumpService
}

func NewJumpController(svc *services.JumpService) *JumpController {
	return &JumpController{Svc: svc}
}

type RecordJumpInput struct {
	Variant    any `json:"variant"`
	HangTime   any `json:"hang-time"`
	BodyWeight any `json:"body-weight"`
	Note       any `json:"note"`
}

func (h *JumpController) RecordJump(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return
	}

	var input RecordJumpInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "request body must be valid JSON"})
		return
	}

	if msg := utils.ValidateRecordJump(input.Variant, input.HangTime, input.BodyWeight, input.Note); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msg})
		return
	}

	var note *string
	if input.Note != nil {
		n := input.Note.(string)
		note = &n
	}

	err := h.Svc.RecordJump(
		userID,
		input.Variant.(string),
		input.HangTime.(float64),
		input.BodyWeight.(float64),
		note,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "jump recorded successfully"})
}

type JumpView struct {
	Date    string   `json:"date"`
	Height  float64  `json:"height"`
	Variant string   `json:"variant"`
	Weight  *float64 `json:"weight"`
	Note    *string  `json:"note"`
}

func (h *JumpController) GetJumps(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "unauthorized"})
		return
	}

	variant := c.Query("variant")
	aggregation := c.Query("aggregation")
	heightUnit := c.DefaultQuery("height-unit", "m")
	weightUnit := c.DefaultQuery("weight-unit", "kg")
	utcOffset := c.DefaultQuery("utc-offset", "0")
	orderBy := c.DefaultQuery("order-by", "date")

	if msg := utils.ValidateQueryParams(variant, aggregation, heightUnit, weightUnit, utcOffset, orderBy, ""); msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": msg})
		return
	}

	samples, err := h.Svc.Query(services.JumpQuery{
		UserID:  userID,
		Variant: variant,
		Agg:     services.ParseAggregation(aggregation),
		OrderBy: orderBy,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"msg": err.Error()})
		return
	}

	heightFactor, _ := utils.HeightFactor(heightUnit)
	weightFactor, _ := utils.WeightFactor(weightUnit)
	offset, _ := strconv.Atoi(utcOffset)

	out := make([]JumpView, 0, len(samples))
	for _, smp := range samples {
		view := JumpView{
			Date:    utils.ApplyUTCOffset(smp.Timestamp, offset).Format("Mon 02 Jan 2006"),
			Height:  smp.Height * heightFactor,
			Variant: smp.Variant,
			Note:    smp.Note,
		}
		if smp.Weight != nil {
			w := *smp.Weight * weightFactor
			view.Weight = &w
		}
		out = append(out, view)
	}

	c.JSON(http.StatusOK, out)
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
