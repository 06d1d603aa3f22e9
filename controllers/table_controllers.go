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

type TableController struct {
	DB *gorm.DB
}

func NewTableController(db *gorm.DB) *TableController {
	return &TableController{DB: db}
}

var tableSort = query.SortSpec{
	Default: "name",
	Keys: map[string]string{
		"name":     "name",
		"capacity": "capacity",
		"status":   "status",
	},
}

// GetAllTables -> same pipeline as reservations, table filter set
func (tc *TableController) GetAllTables(c *gin.Context) {
	params := query.FromRequest(c, "name", "asc")
	status, statusOK := models.ParseTableStatus(c.Query("filterByStatus"))

	result, err := query.Paginate[models.Table](tc.DB, params, tableSort, nil,
		query.TextContains("name", c.Query("filterByName")),
		query.EnumEquals("status", string(status), statusOK),
		query.EqualsInt("capacity", query.IntParam(c, "filterByCapacity")),
		query.EqualsUint("business_id", query.UintParam(c, "filterByBusinessId")),
	)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(result, dto.NewTableResponse))
}

func (tc *TableController) CreateTable(c *gin.Context) {
	var payload dto.TableCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	table := payload.ToModel()
	if err := tc.DB.Create(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d created (name=%s, status=%s)", table.ID, table.Name, table.Status)

	c.Header("Location", fmt.Sprintf("/tables/%d", table.ID))
	c.JSON(http.StatusCreated, dto.NewTableResponse(table))
}

func (tc *TableController) GetTableByID(c *gin.Context) {
	id, ok := parseID(c.Param("table_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.NewTableResponse(table))
}

func (tc *TableController) PatchTable(c *gin.Context) {
	id, ok := parseID(c.Param("table_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var payload dto.TablePatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if payload.ApplyTo(&table) {
		if err := tc.DB.Save(&table).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Table %d updated (status=%s)", table.ID, table.Status)
	}

	c.JSON(http.StatusOK, dto.NewTableResponse(table))
}

func (tc *TableController) DeleteTable(c *gin.Context) {
	id, ok := parseID(c.Param("table_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var table models.Table
	if err := tc.DB.First(&table, id).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := tc.DB.Delete(&table).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Table %d deleted", table.ID)
	c.Status(http.StatusOK)
}
