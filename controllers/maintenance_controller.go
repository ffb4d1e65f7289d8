package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type MaintenanceController struct {
	Service *services.MaintenanceService
}

func NewMaintenanceController(service *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{Service: service}
}

type maintenanceStatusPayload struct {
	Status string   `json:"status" binding:"required"`
	Cost   *float64 `json:"cost,omitempty"`
}

func (ctl *MaintenanceController) Open(c *gin.Context) {
	var input services.MaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "roomId and description are required")
		return
	}

	request, err := ctl.Service.OpenRequest(middleware.TenantID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, request)
}

func (ctl *MaintenanceController) List(c *gin.Context) {
	requests, err := ctl.Service.ListRequests(
		middleware.TenantID(c), c.Query("status"), queryUint(c, "roomId"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, requests)
}

// Transition handles PATCH /api/maintenance/:id/status.
func (ctl *MaintenanceController) Transition(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload maintenanceStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	request, err := ctl.Service.TransitionRequest(
		middleware.TenantID(c), id, payload.Status, payload.Cost)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, request)
}
