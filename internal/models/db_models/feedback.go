package db_models

import "time"

// Feedback is a single rating event submitted by a user. The comment is
// nullable; rows are never updated or deleted once written.
type Feedback struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;index"`
	Rating    int       `gorm:"type:int;not null;check:rating >= 1 AND rating <= 5"`
	Comment   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
