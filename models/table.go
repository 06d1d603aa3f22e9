package models

import "strings"

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

// ParseTableStatus follows the same parse-or-ignore rule as
// ParseReservationStatus.
func ParseTableStatus(raw string) (TableStatus, bool) {
	switch TableStatus(strings.ToLower(strings.TrimSpace(raw))) {
	case TableAvailable:
		return TableAvailable, true
	case TableOccupied:
		return TableOccupied, true
	case TableReserved:
		return TableReserved, true
	}
	return "", false
}

type Table struct {
	ID         uint        `gorm:"primaryKey"`
	BusinessID uint        `gorm:"not null;index"`
	Name       string      `gorm:"type:varchar(100);not null"`
	Capacity   int         `gorm:"not null"`
	Status     TableStatus `gorm:"type:varchar(20);not null;default:'available'"`
}
