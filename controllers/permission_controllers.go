package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/centralsales/sales-api/dto"
	"github.com/centralsales/sales-api/models"
	"github.com/centralsales/sales-api/query"
	"github.com/centralsales/sales-api/utils"
)

type PermissionController struct {
	DB *gorm.DB
}

func NewPermissionController(db *gorm.DB) *PermissionController {
	return &PermissionController{DB: db}
}

var permissionSort = query.SortSpec{
	Default: "name",
	Keys: map[string]string{
		"name":      "name",
		"createdat": "created_at",
	},
}

func (pc *PermissionController) GetAllPermissions(c *gin.Context) {
	params := query.FromRequest(c, "name", "asc")

	result, err := query.Paginate[models.Permission](pc.DB, params, permissionSort, nil,
		query.TextContains("name", c.Query("filterByName")),
	)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(result, dto.NewPermissionResponse))
}

func (pc *PermissionController) CreatePermission(c *gin.Context) {
	var payload dto.PermissionCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	permission := payload.ToModel()
	if err := pc.DB.Create(&permission).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Permission %d created (name=%s)", permission.ID, permission.Name)

	c.Header("Location", fmt.Sprintf("/permissions/%d", permission.ID))
	c.JSON(http.StatusCreated, dto.NewPermissionResponse(permission))
}

func (pc *PermissionController) DeletePermission(c *gin.Context) {
	id, ok := parseID(c.Param("permission_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var permission models.Permission
	if err := pc.DB.First(&permission, id).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := pc.DB.Delete(&permission).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	c.Status(http.StatusOK)
}
