package models

import (
	"strings"
	"time"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
	ReservationCompleted ReservationStatus = "completed"
)

// ParseReservationStatus maps a raw status text to its enum member,
// case-insensitively. Unknown text reports false and the caller drops the
// value instead of erroring.
func ParseReservationStatus(raw string) (ReservationStatus, bool) {
	switch ReservationStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case ReservationPending:
		return ReservationPending, true
	case ReservationConfirmed:
		return ReservationConfirmed, true
	case ReservationCancelled:
		return ReservationCancelled, true
	case ReservationCompleted:
		return ReservationCompleted, true
	}
	return "", false
}

type Reservation struct {
	ID               uint              `gorm:"primaryKey"`
	BusinessID       uint              `gorm:"not null;index"`
	CustomerName     *string           `gorm:"type:varchar(255)"`
	CustomerPhone    *string           `gorm:"type:varchar(50)"`
	CustomerNote     *string           `gorm:"type:text"`
	AppointmentTime  time.Time         `gorm:"not null;index"`
	CreatedAt        time.Time         `gorm:"not null"`
	CreatedBy        uint              `gorm:"not null;index"`
	AssignedEmployee *uint             `gorm:"index"`
	GuestNumber      int               `gorm:"not null;default:0"`
	TableID          *uint             `gorm:"index"`
	Status           ReservationStatus `gorm:"type:varchar(20);not null;default:'pending'"`
	Items            []ReservationItem `gorm:"foreignKey:ReservationID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

type ReservationItem struct {
	ID            uint `gorm:"primaryKey"`
	ReservationID uint `gorm:"not null;index"`
	ItemID        uint `gorm:"not null"`
	Quantity      int  `gorm:"not null;default:1"`
	DiscountID    *uint
	Notes         *string `gorm:"type:text"`
}
