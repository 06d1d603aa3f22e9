package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/centralsales/sales-api/dto"
	"github.com/centralsales/sales-api/models"
	"github.com/centralsales/sales-api/query"
	"github.com/centralsales/sales-api/utils"
)

type ReservationController struct {
	DB *gorm.DB
}

func NewReservationController(db *gorm.DB) *ReservationController {
	return &ReservationController{DB: db}
}

var reservationSort = query.SortSpec{
	Default: "created_at",
	Keys: map[string]string{
		"customername":    "customer_name",
		"appointmenttime": "appointment_time",
		"createdat":       "created_at",
		"createdby":       "created_by",
		"status":          "status",
		"guestnumber":     "guest_number",
	},
}

// GetAllReservations -> paginated, filtered, sorted list
func (rc *ReservationController) GetAllReservations(c *gin.Context) {
	params := query.FromRequest(c, "createdAt", "desc")
	status, statusOK := models.ParseReservationStatus(c.Query("filterByStatus"))

	result, err := query.Paginate[models.Reservation](rc.DB, params, reservationSort,
		[]string{"Items"},
		query.TextContains("customer_name", c.Query("filterByName")),
		query.TextContains("customer_phone", c.Query("filterByPhone")),
		query.EqualsTime("appointment_time", query.TimeParam(c, "filterByAppointmentTime")),
		query.EqualsTime("created_at", query.TimeParam(c, "filterByCreationTime")),
		query.EnumEquals("status", string(status), statusOK),
		query.EqualsUint("business_id", query.UintParam(c, "filterByBusinessId")),
		query.EqualsUint("created_by", query.UintParam(c, "filterByUserId")),
		query.EqualsUint("table_id", query.UintParam(c, "filterByTableId")),
	)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewListResponse(result, dto.NewReservationResponse))
}

// CreateReservation -> new reservation, server-assigned id and creation time
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var payload dto.ReservationCreate
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	reservation := payload.ToModel()
	if err := rc.DB.Create(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d created (business=%d, status=%s)",
		reservation.ID, reservation.BusinessID, reservation.Status)

	c.Header("Location", fmt.Sprintf("/reservations/%d", reservation.ID))
	c.JSON(http.StatusCreated, dto.NewReservationResponse(reservation))
}

func (rc *ReservationController) GetReservationByID(c *gin.Context) {
	id, ok := parseID(c.Param("reservation_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.Preload("Items").First(&reservation, id).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	c.JSON(http.StatusOK, dto.NewReservationResponse(reservation))
}

// PatchReservation -> sparse update; absent fields stay as they are
func (rc *ReservationController) PatchReservation(c *gin.Context) {
	id, ok := parseID(c.Param("reservation_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var payload dto.ReservationPatch
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.Preload("Items").First(&reservation, id).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if payload.ApplyTo(&reservation) {
		if err := rc.DB.Omit(clause.Associations).Save(&reservation).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		utils.InfoLogger.Printf("Reservation %d updated", reservation.ID)
	}

	c.JSON(http.StatusOK, dto.NewReservationResponse(reservation))
}

func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseID(c.Param("reservation_id"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}

	var reservation models.Reservation
	if err := rc.DB.First(&reservation, id).Error; err != nil {
		c.Status(http.StatusNotFound)
		return
	}

	if err := rc.DB.Select(clause.Associations).Delete(&reservation).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Reservation %d deleted", reservation.ID)
	c.Status(http.StatusOK)
}
