package models

import (
	"strings"
	"time"
)

type RoleStatus string

const (
	RoleActive   RoleStatus = "active"
	RoleInactive RoleStatus = "inactive"
)

func ParseRoleStatus(raw string) (RoleStatus, bool) {
	switch RoleStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleActive:
		return RoleActive, true
	case RoleInactive:
		return RoleInactive, true
	}
	return "", false
}

type Role struct {
	ID              uint             `gorm:"primaryKey"`
	BusinessID      uint             `gorm:"not null;index"`
	Title           string           `gorm:"type:varchar(150);not null"`
	Description     *string          `gorm:"type:text"`
	CreatedAt       time.Time        `gorm:"not null"`
	UpdatedAt       time.Time        `gorm:"not null"`
	Status          RoleStatus       `gorm:"type:varchar(20);not null;default:'active'"`
	RolePermissions []RolePermission `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	UserRoles       []UserRole       `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
