package models

import "gorm.io/gorm"

const AdminRoleDefault = "admin"

type AdminUser struct {
	gorm.Model
	Email        string `gorm:"not null;unique;index"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:admin"`
}

// AdminKey records the SHA-256 digest of a provisioned admin API key.
// The plaintext key is never persisted.
type AdminKey struct {
	gorm.Model
	KeyDigest string `gorm:"not null;unique"`
	Label     string
}
