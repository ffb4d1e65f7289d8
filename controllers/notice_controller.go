package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type NoticeController struct {
	Service *services.NoticeService
}

func NewNoticeController(service *services.NoticeService) *NoticeController {
	return &NoticeController{Service: service}
}

func (ctl *NoticeController) PublishAnnouncement(c *gin.Context) {
	var input services.AnnouncementInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "title is required")
		return
	}

	var createdBy *uint
	if adminID := middleware.AdminID(c); adminID != 0 {
		createdBy = &adminID
	}

	announcement, err := ctl.Service.PublishAnnouncement(middleware.TenantID(c), createdBy, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, announcement)
}

func (ctl *NoticeController) ListAnnouncements(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	announcements, err := ctl.Service.ListAnnouncements(middleware.TenantID(c), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, announcements)
}

func (ctl *NoticeController) DeleteAnnouncement(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.DeleteAnnouncement(middleware.TenantID(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Announcement deleted"})
}

func (ctl *NoticeController) CreateEvent(c *gin.Context) {
	var input services.EventInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "title, startsAt and endsAt are required")
		return
	}

	event, err := ctl.Service.CreateEvent(middleware.TenantID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, event)
}

func (ctl *NoticeController) ListEvents(c *gin.Context) {
	upcomingOnly := c.Query("upcoming") == "true"
	events, err := ctl.Service.ListEvents(middleware.TenantID(c), upcomingOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, events)
}

func (ctl *NoticeController) GetEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	event, err := ctl.Service.GetEvent(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, event)
}

func (ctl *NoticeController) DeleteEvent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := ctl.Service.DeleteEvent(middleware.TenantID(c), id); err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Event deleted"})
}
