package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/centralsales/sales-api/dto"
	"github.com/centralsales/sales-api/models"
	"github.com/centralsales/sales-api/query"
	"github.com/centralsales/sales-api/utils"
)

type RoleController struct {
	DB *gorm.DB
}

func NewRoleController(db *gorm.DB) *RoleController {
	return &RoleController{DB: db}
}

var roleSort = query.SortSpec{
	Default: "created_at",
	Keys: map[string]string{
		"title":     "title",
		"createdat": "created_at",
		"status":    "status",
	},
}

// GetAllRoles -> the same list pipeline, third entity type
func (rc *RoleController) GetAllRoles(c *gin.Context) {
	params := query.FromRequest(c, "createdAt", "desc")
	status, statusOK := models.ParseRoleStatus(c.Query("filterByStatus"))

	result, err := query.Paginate[models.Role](rc.DB, params, roleSort, nil,
		query.TextContains("title", c.Query("filterByTitle")),
		query.EnumEquals("status", string(status), statusOK),
		query.EqualsUint("business_id", query.UintParam(c, "filterByBusinessId")),
	)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(result, dto.NewRoleResponse))
}

func (rc *RoleController) CreateRole(c *gin.Context) {
	var payload dto.RoleCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	role := payload.ToModel()
	if err := rc.DB.Create(&role).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Role %d created (title=%s)", role.ID, role.Title)

	c.Header("Location", fmt.Sprintf("/roles/%d", role.ID))
	c.JSON(http.StatusCreated, dto.NewRoleResponse(role))
}

func (rc *RoleController) GetRoleByID(c *gin.Context) {
	id, ok := parseID(c.Param("role_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var role models.Role
	if err := rc.DB.First(&role, id).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.NewRoleResponse(role))
}

func (rc *RoleController) PatchRole(c *gin.Context) {
	id, ok := parseID(c.Param("role_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var payload dto.RolePatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var role models.Role
	if err := rc.DB.First(&role, id).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if payload.ApplyTo(&role) {
		role.UpdatedAt = time.Now().UTC()
		if err := rc.DB.Omit(clause.Associations).Save(&role).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Role %d updated", role.ID)
	}

	c.JSON(http.StatusOK, dto.NewRoleResponse(role))
}

func (rc *RoleController) DeleteRole(c *gin.Context) {
	id, ok := parseID(c.Param("role_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var role models.Role
	if err := rc.DB.First(&role, id).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := rc.DB.Select(clause.Associations).Delete(&role).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Role %d deleted", role.ID)
	c.Status(http.StatusOK)
}

// AssignPermission grants a permission to a role. Duplicate grants are a
// conflict, backed by the composite unique index on role_permissions.
func (rc *RoleController) AssignPermission(c *gin.Context) {
	roleID, ok := parseID(c.Param("role_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var payload struct {
		PermissionID uint `json:"permissionId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var role models.Role
	if err := rc.DB.First(&role, roleID).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	var permission models.Permission
	if err := rc.DB.First(&permission, payload.PermissionID).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var count int64
	rc.DB.Model(&models.RolePermission{}).
		Where("role_id = ? AND permission_id = ?", role.ID, permission.ID).
		Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("permission already assigned to role"))
		return
	}

	now := time.Now().UTC()
	grant := models.RolePermission{
		RoleID:       role.ID,
		PermissionID: permission.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := rc.DB.Create(&grant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Permission %d assigned to role %d", permission.ID, role.ID)
	c.JSON(http.StatusCreated, dto.NewRolePermissionResponse(grant))
}

func (rc *RoleController) RemovePermission(c *gin.Context) {
	roleID, ok := parseID(c.Param("role_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	permissionID, ok := parseID(c.Param("permission_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var grant models.RolePermission
	if err := rc.DB.Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		First(&grant).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := rc.DB.Delete(&grant).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusOK)
}

// AssignUser puts a user into a role, unique per (user, role) pair.
func (rc *RoleController) AssignUser(c *gin.Context) {
	roleID, ok := parseID(c.Param("role_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var payload struct {
		UserID uint `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var role models.Role
	if err := rc.DB.First(&role, roleID).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	var user models.User
	if err := rc.DB.First(&user, payload.UserID).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	var count int64
	rc.DB.Model(&models.UserRole{}).
		Where("user_id = ? AND role_id = ?", user.ID, role.ID).
		Count(&count)
	if count > 0 {
		utils.RespondError(c, http.StatusConflict, errors.New("role already assigned to user"))
		return
	}

	assignment := models.UserRole{
		UserID:     user.ID,
		RoleID:     role.ID,
		AssignedAt: time.Now().UTC(),
	}
	if err := rc.DB.Create(&assignment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("User %d assigned to role %d", user.ID, role.ID)
	c.JSON(http.StatusCreated, dto.NewUserRoleResponse(assignment))
}

func (rc *RoleController) RemoveUser(c *gin.Context) {
	roleID, ok := parseID(c.Param("role_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	userID, ok := parseID(c.Param("user_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var assignment models.UserRole
	if err := rc.DB.Where("user_id = ? AND role_id = ?", userID, roleID).
		First(&assignment).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := rc.DB.Delete(&assignment).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusOK)
}
