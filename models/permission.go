package models

import "time"

type Permission struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"type:varchar(150);not null;uniqueIndex"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

// RolePermission grants a permission to a role. The composite unique index
// makes a duplicate (role, permission) pair a storage-level conflict.
type RolePermission struct {
	ID           uint      `gorm:"primaryKey"`
	RoleID       uint      `gorm:"not null;uniqueIndex:idx_role_perm"`
	PermissionID uint      `gorm:"not null;uniqueIndex:idx_role_perm"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// UserRole assigns a role to a user, unique per (user, role) pair.
type UserRole struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_user_role"`
	RoleID     uint      `gorm:"not null;uniqueIndex:idx_user_role"`
	AssignedAt time.Time `gorm:"not null"`
}
