package dto

import (
	"time"

	"github.com/centralsales/sales-api/models"
)

type ReservationCreate struct {
	BusinessID       uint      `json:"businessId" binding:"required"`
	CustomerName     *string   `json:"customerName"`
	CustomerPhone    *string   `json:"customerPhone"`
	CustomerNote     *string   `json:"customerNote"`
	AppointmentTime  time.Time `json:"appointmentTime" binding:"required"`
	CreatedBy        uint      `json:"createdBy" binding:"required"`
	AssignedEmployee *uint     `json:"assignedEmployee"`
	GuestNumber      int       `json:"guestNumber"`
	TableID          *uint     `json:"tableId"`
	Status           string    `json:"status"`
}

// ToModel builds a new reservation. CreatedAt is server-assigned here and
// never touched again. An unparseable status text leaves the default.
func (p ReservationCreate) ToModel() models.Reservation {
	r := models.Reservation{
		BusinessID:       p.BusinessID,
		CustomerName:     p.CustomerName,
		CustomerPhone:    p.CustomerPhone,
		CustomerNote:     p.CustomerNote,
		AppointmentTime:  p.AppointmentTime,
		CreatedAt:        time.Now().UTC(),
		CreatedBy:        p.CreatedBy,
		AssignedEmployee: p.AssignedEmployee,
		GuestNumber:      p.GuestNumber,
		TableID:          p.TableID,
		Status:           models.ReservationPending,
	}
	if s, ok := models.ParseReservationStatus(p.Status); ok {
		r.Status = s
	}
	return r
}

type ReservationPatch struct {
	BusinessID       Optional[uint]      `json:"businessId"`
	CustomerName     Optional[string]    `json:"customerName"`
	CustomerPhone    Optional[string]    `json:"customerPhone"`
	CustomerNote     Optional[string]    `json:"customerNote"`
	AppointmentTime  Optional[time.Time] `json:"appointmentTime"`
	CreatedBy        Optional[uint]      `json:"createdBy"`
	AssignedEmployee Optional[uint]      `json:"assignedEmployee"`
	GuestNumber      Optional[int]       `json:"guestNumber"`
	TableID          Optional[uint]      `json:"tableId"`
	Status           Optional[string]    `json:"status"`
}

// ApplyTo merges the patch onto an existing reservation. Absent fields stay
// untouched. Text fields change only on a non-blank value. The nullable
// references (assignedEmployee, tableId) are the one place an explicit JSON
// null clears the field. Reports whether anything was applied.
func (p ReservationPatch) ApplyTo(r *models.Reservation) bool {
	changed := false
	if p.BusinessID.HasValue() {
		r.BusinessID = p.BusinessID.Value
		changed = true
	}
	if v, ok := textValue(p.CustomerName); ok {
		r.CustomerName = &v
		changed = true
	}
	if v, ok := textValue(p.CustomerPhone); ok {
		r.CustomerPhone = &v
		changed = true
	}
	if v, ok := textValue(p.CustomerNote); ok {
		r.CustomerNote = &v
		changed = true
	}
	if p.AppointmentTime.HasValue() {
		r.AppointmentTime = p.AppointmentTime.Value
		changed = true
	}
	if p.CreatedBy.HasValue() {
		r.CreatedBy = p.CreatedBy.Value
		changed = true
	}
	if p.AssignedEmployee.Present {
		r.AssignedEmployee = nullableUint(p.AssignedEmployee)
		changed = true
	}
	if p.GuestNumber.HasValue() {
		r.GuestNumber = p.GuestNumber.Value
		changed = true
	}
	if p.TableID.Present {
		r.TableID = nullableUint(p.TableID)
		changed = true
	}
	if v, ok := textValue(p.Status); ok {
		if s, parsed := models.ParseReservationStatus(v); parsed {
			r.Status = s
			changed = true
		}
	}
	return changed
}

func nullableUint(o Optional[uint]) *uint {
	if o.Null {
		return nil
	}
	v := o.Value
	return &v
}

type ReservationItemResponse struct {
	ID         uint    `json:"id"`
	ItemID     uint    `json:"itemId"`
	Quantity   int     `json:"quantity"`
	DiscountID *uint   `json:"discountId"`
	Notes      *string `json:"notes"`
}

type ReservationResponse struct {
	ID               uint                      `json:"id"`
	BusinessID       uint                      `json:"businessId"`
	CustomerName     *string                   `json:"customerName"`
	CustomerPhone    *string                   `json:"customerPhone"`
	CustomerNote     *string                   `json:"customerNote"`
	AppointmentTime  time.Time                 `json:"appointmentTime"`
	CreatedAt        time.Time                 `json:"createdAt"`
	CreatedBy        uint                      `json:"createdBy"`
	Status           string                    `json:"status"`
	Items            []ReservationItemResponse `json:"items"`
	AssignedEmployee *uint                     `json:"assignedEmployee"`
	GuestNumber      int                       `json:"guestNumber"`
	TableID          *uint                     `json:"tableId"`
}

// NewReservationResponse is the single projection used by list, get, create
// and patch, so every path emits the identical shape for the same entity.
func NewReservationResponse(r models.Reservation) ReservationResponse {
	items := make([]ReservationItemResponse, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, ReservationItemResponse{
			ID:         it.ID,
			ItemID:     it.ItemID,
			Quantity:   it.Quantity,
			DiscountID: it.DiscountID,
			Notes:      it.Notes,
		})
	}
	return ReservationResponse{
		ID:               r.ID,
		BusinessID:       r.BusinessID,
		CustomerName:     r.CustomerName,
		CustomerPhone:    r.CustomerPhone,
		CustomerNote:     r.CustomerNote,
		AppointmentTime:  r.AppointmentTime,
		CreatedAt:        r.CreatedAt,
		CreatedBy:        r.CreatedBy,
		Status:           string(r.Status),
		Items:            items,
		AssignedEmployee: r.AssignedEmployee,
		GuestNumber:      r.GuestNumber,
		TableID:          r.TableID,
	}
}
