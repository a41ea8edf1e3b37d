package db_models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an identity record. Username and email carry unique indexes so
// the database is the authority on duplicates even when two signups race.
type User struct {
	ID             uint      `gorm:"primaryKey"`
	Username       string    `gorm:"uniqueIndex;not null"`
	Email          string    `gorm:"uniqueIndex;not null"`
	HashedPassword string    `gorm:"not null"`
	Role           string    `gorm:"not null;default:user"`
	IsActive       bool      `gorm:"not null;default:true"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

// ValidRole reports whether role is one of the recognized roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}
