package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type FloorController struct {
	Service *services.StructureService
}

func NewFloorController(service *services.StructureService) *FloorController {
	return &FloorController{Service: service}
}

func (ctl *FloorController) Create(c *gin.Context) {
	var input services.FloorInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "buildingId and a valid floor status are required")
		return
	}

	floor, err := ctl.Service.CreateFloor(middleware.TenantID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, floor)
}

func (ctl *FloorController) List(c *gin.Context) {
	floors, err := ctl.Service.ListFloors(middleware.TenantID(c), queryUint(c, "buildingId"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, floors)
}

func (ctl *FloorController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	floor, err := ctl.Service.GetFloor(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, floor)
}

func (ctl *FloorController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var input services.FloorUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	floor, err := ctl.Service.UpdateFloor(middleware.TenantID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, floor)
}

func (ctl *FloorController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.DeleteFloor(middleware.TenantID(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Floor deleted"})
}
