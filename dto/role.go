package dto

import (
	"time"

	"github.com/centralsales/sales-api/models"
)

type RoleCreate struct {
	BusinessID  uint    `json:"businessId" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}

func (p RoleCreate) ToModel() models.Role {
	now := time.Now().UTC()
	r := models.Role{
		BusinessID:  p.BusinessID,
		Title:       p.Title,
		Description: p.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		Status:      models.RoleActive,
	}
	if s, ok := models.ParseRoleStatus(p.Status); ok {
		r.Status = s
	}
	return r
}

type RolePatch struct {
	BusinessID  Optional[uint]   `json:"businessId"`
	Title       Optional[string] `json:"title"`
	Description Optional[string] `json:"description"`
	Status      Optional[string] `json:"status"`
}

func (p RolePatch) ApplyTo(r *models.Role) bool {
	changed := false
	if p.BusinessID.HasValue() {
		r.BusinessID = p.BusinessID.Value
		changed = true
	}
	if v, ok := textValue(p.Title); ok {
		r.Title = v
		changed = true
	}
	if v, ok := textValue(p.Description); ok {
		r.Description = &v
		changed = true
	}
	if v, ok := textValue(p.Status); ok {
		if s, parsed := models.ParseRoleStatus(v); parsed {
			r.Status = s
			changed = true
		}
	}
	return changed
}

type RoleResponse struct {
	ID          uint      `json:"id"`
	BusinessID  uint      `json:"businessId"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Status      string    `json:"status"`
}

func NewRoleResponse(r models.Role) RoleResponse {
	return RoleResponse{
		ID:          r.ID,
		BusinessID:  r.BusinessID,
		Title:       r.Title,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		Status:      string(r.Status),
	}
}

type RolePermissionResponse struct {
	ID           uint      `json:"id"`
	RoleID       uint      `json:"roleId"`
	PermissionID uint      `json:"permissionId"`
	CreatedAt    time.Time `json:"createdAt"`
}

func NewRolePermissionResponse(rp models.RolePermission) RolePermissionResponse {
	return RolePermissionResponse{
		ID:           rp.ID,
		RoleID:       rp.RoleID,
		PermissionID: rp.PermissionID,
		CreatedAt:    rp.CreatedAt,
	}
}

type UserRoleResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"userId"`
	RoleID     uint      `json:"roleId"`
	AssignedAt time.Time `json:"assignedAt"`
}

func NewUserRoleResponse(ur models.UserRole) UserRoleResponse {
	return UserRoleResponse{
		ID:         ur.ID,
		UserID:     ur.UserID,
		RoleID:     ur.RoleID,
		AssignedAt: ur.AssignedAt,
	}
}

type PermissionCreate struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func (p PermissionCreate) ToModel() models.Permission {
	now := time.Now().UTC()
	return models.Permission{
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type PermissionResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

func NewPermissionResponse(p models.Permission) PermissionResponse {
	return PermissionResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}
