package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type AllocationController struct {
	Service *services.AllocationService
}

func NewAllocationController(service *services.AllocationService) *AllocationController {
	return &AllocationController{Service: service}
}

type createAllocationPayload struct {
	StudentID uint   `json:"studentId" binding:"required"`
	RoomID    uint   `json:"roomId" binding:"required"`
	Remarks   string `json:"remarks"`
}

type bulkAllocationPayload struct {
	Allocations []services.AllocationPair `json:"allocations" binding:"required,min=1,dive"`
	Remarks     string                    `json:"remarks"`
}

// CreateAllocation handles POST /api/allocations.
func (ctl *AllocationController) CreateAllocation(c *gin.Context) {
	var payload createAllocationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "studentId and roomId are required")
		return
	}

	allocation, err := ctl.Service.CreateAllocation(
		middleware.TenantID(c), payload.StudentID, payload.RoomID, payload.Remarks)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, allocation)
}

// UpdateAllocation handles PUT /api/allocations/:id (room move, checkout,
// remarks).
func (ctl *AllocationController) UpdateAllocation(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.UpdateAllocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	allocation, err := ctl.Service.UpdateAllocation(middleware.TenantID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, allocation)
}

// Deallocate handles DELETE /api/allocations/:id and returns the checked-out
// ledger record.
func (ctl *AllocationController) Deallocate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	allocation, err := ctl.Service.DeallocateStudent(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, allocation)
}

// BulkAllocate handles POST /api/allocations/bulk. Partial success is the
// documented behavior; the response always carries both lists.
func (ctl *AllocationController) BulkAllocate(c *gin.Context) {
	var payload bulkAllocationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "allocations must be a non-empty list of {studentId, roomId}")
		return
	}

	result := ctl.Service.BulkAllocate(middleware.TenantID(c), payload.Allocations, payload.Remarks)
	utils.JSONSuccess(c, http.StatusCreated, result)
}

// History handles GET /api/students/:id/allocations.
func (ctl *AllocationController) History(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	entries, err := ctl.Service.StudentAllocationHistory(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, entries)
}
