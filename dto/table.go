package dto

import "github.com/centralsales/sales-api/models"

type TableCreate struct {
	BusinessID uint   `json:"businessId" binding:"required"`
	Name       string `json:"name" binding:"required"`
	Capacity   int    `json:"capacity" binding:"required,gt=0"`
	Status     string `json:"status"`
}

func (p TableCreate) ToModel() models.Table {
	t := models.Table{
		BusinessID: p.BusinessID,
		Name:       p.Name,
		Capacity:   p.Capacity,
		Status:     models.TableAvailable,
	}
	if s, ok := models.ParseTableStatus(p.Status); ok {
		t.Status = s
	}
	return t
}

type TablePatch struct {
	BusinessID Optional[uint]   `json:"businessId"`
	Name       Optional[string] `json:"name"`
	Capacity   Optional[int]    `json:"capacity"`
	Status     Optional[string] `json:"status"`
}

func (p TablePatch) ApplyTo(t *models.Table) bool {
	changed := false
	if p.BusinessID.HasValue() {
		t.BusinessID = p.BusinessID.Value
		changed = true
	}
	if v, ok := textValue(p.Name); ok {
		t.Name = v
		changed = true
	}
	if p.Capacity.HasValue() && p.Capacity.Value > 0 {
		t.Capacity = p.Capacity.Value
		changed = true
	}
	if v, ok := textValue(p.Status); ok {
		if s, parsed := models.ParseTableStatus(v); parsed {
			t.Status = s
			changed = true
		}
	}
	return changed
}

type TableResponse struct {
	ID         uint   `json:"id"`
	BusinessID uint   `json:"businessId"`
	Name       string `json:"name"`
	Capacity   int    `json:"capacity"`
	Status     string `json:"status"`
}

func NewTableResponse(t models.Table) TableResponse {
	return TableResponse{
		ID:         t.ID,
		BusinessID: t.BusinessID,
		Name:       t.Name,
		Capacity:   t.Capacity,
		Status:     string(t.Status),
	}
}
