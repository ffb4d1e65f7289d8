package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type VisitorController struct {
	Service *services.VisitorService
}

func NewVisitorController(service *services.VisitorService) *VisitorController {
	return &VisitorController{Service: service}
}

func (ctl *VisitorController) CheckIn(c *gin.Context) {
	var input services.VisitorCheckInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "studentId and visitorName are required")
		return
	}

	visit, err := ctl.Service.CheckIn(middleware.TenantID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, visit)
}

// CheckOut handles PATCH /api/visitors/:id/checkout.
func (ctl *VisitorController) CheckOut(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	visit, err := ctl.Service.CheckOut(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, visit)
}

func (ctl *VisitorController) List(c *gin.Context) {
	visits, err := ctl.Service.ListVisits(
		middleware.TenantID(c), c.Query("status"), queryUint(c, "studentId"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, visits)
}
