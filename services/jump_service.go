package services

import (
	"time"

	"github.com/ycz425/VertTracker-API/models"
	"github.com/ycz425/VertTracker-API/utils"

	"gorm.io/gorm"
)

type JumpService struct {
	db *gorm.DB
}

func NewJumpService(db *gorm.DB) *JumpService { return &JumpService{db: db} }

// RecordJump computes the jump height from the hang-time reading and the
// owner's tip-toe offset and stores the record. Returns
// gorm.ErrRecordNotFound when the token's user no longer exists.
func (s *JumpService) RecordJump(userID uint, variant string, hangTime, bodyWeight float64, note *string) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return err
	}

	record := models.JumpRecord{
		Height:    utils.JumpHeight(hangTime, user.TipToeHeight),
		Timestamp: time.Now().UTC(),
		Variant:   variant,
		Weight:    &bodyWeight,
		Note:      note,
		UserID:    userID,
	}
	return s.db.Create(&record).Error
}

// Query executes a JumpQuery: one scoped fetch from storage, then the pure
// aggregate/order pipeline. Results only ever contain the querying user's
// records.
func (s *JumpService) Query(q JumpQuery) ([]JumpSample, error) {
	tx := s.db.Where("user_id = ?", q.UserID)
	if q.Variant != "" {
		tx = tx.Where("variant = ?", q.Variant)
	}

	var records []models.JumpRecord
	if err := tx.Order("timestamp ASC, id ASC").Find(&records).Error; err != nil {
		return nil, err
	}

	samples := aggregate(records, q.Agg)
	orderSamples(samples, q.OrderBy)
	return samples, nil
}
