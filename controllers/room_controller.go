package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	Service *services.StructureService
}

func NewRoomController(service *services.StructureService) *RoomController {
	return &RoomController{Service: service}
}

type roomStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (ctl *RoomController) Create(c *gin.Context) {
	var input services.RoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "buildingId, floorId, roomNumber, a valid roomType and capacity are required")
		return
	}

	room, err := ctl.Service.CreateRoom(middleware.TenantID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctl *RoomController) List(c *gin.Context) {
	rooms, err := ctl.Service.ListRooms(
		middleware.TenantID(c),
		queryUint(c, "buildingId"),
		queryUint(c, "floorId"),
		c.Query("status"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

func (ctl *RoomController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	room, err := ctl.Service.GetRoom(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctl *RoomController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input services.RoomUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	room, err := ctl.Service.UpdateRoom(middleware.TenantID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// SetStatus applies an administrative status override
// (PATCH /api/rooms/:id/status).
func (ctl *RoomController) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var payload roomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "status is required")
		return
	}
	room, err := ctl.Service.SetRoomStatus(middleware.TenantID(c), id, payload.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

func (ctl *RoomController) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.DeleteRoom(middleware.TenantID(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Room deleted"})
}
