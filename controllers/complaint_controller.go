package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type ComplaintController struct {
	Service *services.ComplaintService
}

func NewComplaintController(service *services.ComplaintService) *ComplaintController {
	return &ComplaintController{Service: service}
}

type complaintStatusPayload struct {
	Status          string `json:"status" binding:"required"`
	ResolutionNotes string `json:"resolutionNotes"`
}

func (ctl *ComplaintController) File(c *gin.Context) {
	var input services.ComplaintInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "studentId and title are required")
		return
	}

	complaint, err := ctl.Service.FileComplaint(middleware.TenantID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, complaint)
}

func (ctl *ComplaintController) List(c *gin.Context) {
	complaints, err := ctl.Service.ListComplaints(
		middleware.TenantID(c),
		c.Query("status"),
		c.Query("priority"),
		queryUint(c, "studentId"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, complaints)
}

func (ctl *ComplaintController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	complaint, err := ctl.Service.GetComplaint(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, complaint)
}

// Transition handles PATCH /api/complaints/:id/status.
func (ctl *ComplaintController) Transition(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload complaintStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	complaint, err := ctl.Service.TransitionComplaint(
		middleware.TenantID(c), id, payload.Status, payload.ResolutionNotes)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, complaint)
}
