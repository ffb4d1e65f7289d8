package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type BuildingController struct {
	Service *services.StructureService
}

func NewBuildingController(service *services.StructureService) *BuildingController {
	return &BuildingController{Service: service}
}

func (ctl *BuildingController) Create(c *gin.Context) {
	var input services.BuildingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "buildingName and buildingCode are required")
		return
	}

	building, err := ctl.Service.CreateBuilding(middleware.TenantID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, building)
}

func (ctl *BuildingController) List(c *gin.Context) {
	buildings, err := ctl.Service.ListBuildings(middleware.TenantID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, buildings)
}

func (ctl *BuildingController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	building, err := ctl.Service.GetBuilding(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, building)
}

func (ctl *BuildingController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input services.BuildingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	building, err := ctl.Service.UpdateBuilding(middleware.TenantID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, building)
}

func (ctl *BuildingController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.DeleteBuilding(middleware.TenantID(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Building deleted"})
}
