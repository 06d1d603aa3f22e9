package controllers_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/centralsales/sales-api/models"
)

func seedTables(db *gorm.DB) {
	db.Create(&models.Table{BusinessID: 1, Name: "Alpha", Capacity: 2, Status: models.TableAvailable})
	db.Create(&models.Table{BusinessID: 1, Name: "Beta", Capacity: 4, Status: models.TableOccupied})
	db.Create(&models.Table{BusinessID: 2, Name: "Gamma", Capacity: 4, Status: models.TableReserved})
}

func TestTableLifecycle(t *testing.T) {
	db := setupTestDB(t)
	r := setupResourceRouter(db)

	// create: 201, default status, positive id, Location header
	w := doJSON(t, r, "POST", "/tables", map[string]interface{}{
		"businessId": 1, "name": "T1", "capacity": 4,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	created := decodeBody(t, w)
	assert.Equal(t, "available", created["status"])
	assert.Equal(t, "T1", created["name"])
	id := created["id"].(float64)
	assert.Greater(t, id, float64(0))
	assert.Equal(t, fmt.Sprintf("/tables/%.0f", id), w.Header().Get("Location"))

	// patch capacity: name unchanged
	w = doJSON(t, r, "PATCH", fmt.Sprintf("/tables/%.0f", id), map[string]interface{}{"capacity": 6})
	assert.Equal(t, http.StatusOK, w.Code)
	patched := decodeBody(t, w)
	assert.Equal(t, float64(6), patched["capacity"])
	assert.Equal(t, "T1", patched["name"])

	// delete, then the id is gone
	w = doJSON(t, r, "DELETE", fmt.Sprintf("/tables/%.0f", id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, "GET", fmt.Sprintf("/tables/%.0f", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTableCreateRejectsBadPayload(t *testing.T) {
	db := setupTestDB(t)
	r := setupResourceRouter(db)

	w := doJSON(t, r, "POST", "/tables", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/tables", map[string]interface{}{"businessId": 1, "capacity": 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "POST", "/tables", map[string]interface{}{"businessId": 1, "name": "T1", "capacity": 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTableListEnvelopeAndFilters(t *testing.T) {
	db := setupTestDB(t)
	seedTables(db)
	r := setupResourceRouter(db)

	w := doJSON(t, r, "GET", "/tables", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["total"])
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(20), body["limit"])
	assert.Equal(t, float64(1), body["totalPages"])
	data := body["data"].([]interface{})
	assert.Len(t, data, 3)
	// default sort: name ascending
	first := data[0].(map[string]interface{})
	assert.Equal(t, "Alpha", first["name"])

	// capacity filter
	w = doJSON(t, r, "GET", "/tables?filterByCapacity=4", nil)
	body = decodeBody(t, w)
	assert.Equal(t, float64(2), body["total"])

	// filters AND-compose
	w = doJSON(t, r, "GET", "/tables?filterByCapacity=4&filterByBusinessId=2", nil)
	body = decodeBody(t, w)
	assert.Equal(t, float64(1), body["total"])

	// name substring
	w = doJSON(t, r, "GET", "/tables?filterByName=amm", nil)
	body = decodeBody(t, w)
	assert.Equal(t, float64(1), body["total"])

	// status filter applied when parseable
	w = doJSON(t, r, "GET", "/tables?filterByStatus=OCCUPIED", nil)
	body = decodeBody(t, w)
	assert.Equal(t, float64(1), body["total"])
}

func TestTableListLenientInputs(t *testing.T) {
	db := setupTestDB(t)
	seedTables(db)
	r := setupResourceRouter(db)

	// page=0&limit=0 behaves as page=1&limit=20
	w := doJSON(t, r, "GET", "/tables?page=0&limit=0", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(1), body["page"])
	assert.Equal(t, float64(20), body["limit"])
	assert.Equal(t, float64(3), body["total"])

	// unparseable status is ignored, not an error
	w = doJSON(t, r, "GET", "/tables?filterByStatus=bogus", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, float64(3), body["total"])

	// unparseable capacity is ignored
	w = doJSON(t, r, "GET", "/tables?filterByCapacity=four", nil)
	body = decodeBody(t, w)
	assert.Equal(t, float64(3), body["total"])

	// unknown sort key falls back to the default ordering
	w = doJSON(t, r, "GET", "/tables?sortBy=nosuchcolumn&sortDirection=asc", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	first := body["data"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "Alpha", first["name"])
}

func TestTablePagination(t *testing.T) {
	db := setupTestDB(t)
	for i := 0; i < 7; i++ {
		db.Create(&models.Table{BusinessID: 1, Name: fmt.Sprintf("T%d", i), Capacity: 2})
	}
	r := setupResourceRouter(db)

	w := doJSON(t, r, "GET", "/tables?page=2&limit=3", nil)
	body := decodeBody(t, w)
	assert.Equal(t, float64(7), body["total"])
	assert.Equal(t, float64(3), body["totalPages"])
	assert.Len(t, body["data"].([]interface{}), 3)

	w = doJSON(t, r, "GET", "/tables?page=3&limit=3", nil)
	body = decodeBody(t, w)
	assert.Len(t, body["data"].([]interface{}), 1)
}

func TestTablePatchLeniency(t *testing.T) {
	db := setupTestDB(t)
	table := models.Table{BusinessID: 1, Name: "T1", Capacity: 4, Status: models.TableAvailable}
	db.Create(&table)
	r := setupResourceRouter(db)

	// bogus status leaves the current status alone
	w := doJSON(t, r, "PATCH", fmt.Sprintf("/tables/%d", table.ID), map[string]interface{}{"status": "bogus"})
	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "available", body["status"])

	// empty patch returns the unchanged representation
	w = doJSON(t, r, "PATCH", fmt.Sprintf("/tables/%d", table.ID), map[string]interface{}{})
	assert.Equal(t, http.StatusOK, w.Code)
	body = decodeBody(t, w)
	assert.Equal(t, "T1", body["name"])
	assert.Equal(t, float64(4), body["capacity"])

	// missing payload is a bad request
	w = doJSON(t, r, "PATCH", fmt.Sprintf("/tables/%d", table.ID), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// unknown id
	w = doJSON(t, r, "PATCH", "/tables/99999", map[string]interface{}{"capacity": 2})
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = doJSON(t, r, "DELETE", "/tables/99999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
