package model

import (
	"time"
)

// User represents the database model for authentication identities
type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"uniqueIndex;not null;size:150"`
	PasswordHash string    `gorm:"not null;size:255"`
	Role         string    `gorm:"not null;size:50;default:employee"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// SchemaVersion tracks the applied database schema version
type SchemaVersion struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	Version   string    `gorm:"not null;size:20"`
	AppliedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for SchemaVersion
func (SchemaVersion) TableName() string {
	return "schema_versions"
}
