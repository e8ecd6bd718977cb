package services

import (
	"fmt"
	"testing"

	"github.com/ycz425/VertTracker-API/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var testDBSeq int

// newTestDB opens a fresh in-memory SQLite database and migrates the
// schema. Each call gets its own named database so tests stay isolated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDBSeq++
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.JumpRecord{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}
