package services

import (
	"errors"
	"strings"
	"time"

	"hostel-backend/models"

	"gorm.io/gorm"
)

type MaintenanceService struct {
	DB *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{DB: db}
}

type MaintenanceInput struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	ReportedByID *uint  `json:"reportedById,omitempty"`
	IssueType    string `json:"issueType"`
	Description  string `json:"description" binding:"required"`
	Priority     string `json:"priority"`
}

var maintenanceTransitions = map[string][]string{
	models.MaintenanceStatusPending:    {models.MaintenanceStatusInProgress, models.MaintenanceStatusCancelled},
	models.MaintenanceStatusInProgress: {models.MaintenanceStatusCompleted, models.MaintenanceStatusCancelled},
}

func (s *MaintenanceService) OpenRequest(tenantID uint, input MaintenanceInput) (models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest

	var room models.Room
	if err := s.DB.Where("id = ? AND tenant_id = ?", input.RoomID, tenantID).
		First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return request, NotFoundf("Room not found")
		}
		return request, err
	}

	priority := strings.ToUpper(strings.TrimSpace(input.Priority))
	if priority == "" {
		priority = "MEDIUM"
	}

	request = models.MaintenanceRequest{
		TenantID:     tenantID,
		RoomID:       room.ID,
		ReportedByID: input.ReportedByID,
		IssueType:    strings.TrimSpace(input.IssueType),
		Description:  input.Description,
		Priority:     priority,
		Status:       models.MaintenanceStatusPending,
	}
	err := s.DB.Create(&request).Error
	return request, err
}

func (s *MaintenanceService) ListRequests(tenantID uint, status string, roomID uint) ([]models.MaintenanceRequest, error) {
	var requests []models.MaintenanceRequest
	q := s.DB.Preload("Room").Where("tenant_id = ?", tenantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if roomID != 0 {
		q = q.Where("room_id = ?", roomID)
	}
	err := q.Order("created_at DESC").Find(&requests).Error
	return requests, err
}

// TransitionRequest moves a request along its lifecycle. Starting work on a
// vacant room flips the room to MAINTENANCE; completing or cancelling while
// no other request is in progress re-derives the room status from occupancy.
// The room status change commits in the same transaction as the request.
func (s *MaintenanceService) TransitionRequest(tenantID, requestID uint, status string, cost *float64) (models.MaintenanceRequest, error) {
	var request models.MaintenanceRequest

	status = strings.ToUpper(strings.TrimSpace(status))

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND tenant_id = ?", requestID, tenantID).
			First(&request).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Maintenance request not found")
			}
			return err
		}

		allowed := false
		for _, next := range maintenanceTransitions[request.Status] {
			if next == status {
				allowed = true
				break
			}
		}
		if !allowed {
			return Conflictf("Maintenance request cannot move from %s to %s", request.Status, status)
		}

		var room models.Room
		if err := tx.Where("id = ?", request.RoomID).First(&room).Error; err != nil {
			return err
		}

		updates := map[string]interface{}{"status": status}
		if status == models.MaintenanceStatusCompleted {
			now := time.Now().UTC()
			updates["completed_at"] = now
			request.CompletedAt = &now
			if cost != nil {
				updates["cost"] = *cost
				request.Cost = cost
			}
		}
		if err := tx.Model(&request).Updates(updates).Error; err != nil {
			return err
		}
		request.Status = status

		switch status {
		case models.MaintenanceStatusInProgress:
			if room.Occupied == 0 {
				if err := tx.Model(&room).Update("status", models.RoomStatusMaintenance).Error; err != nil {
					return err
				}
			}
		case models.MaintenanceStatusCompleted, models.MaintenanceStatusCancelled:
			if room.Status == models.RoomStatusMaintenance {
				var inProgress int64
				if err := tx.Model(&models.MaintenanceRequest{}).
					Where("room_id = ? AND status = ? AND id <> ?",
						room.ID, models.MaintenanceStatusInProgress, request.ID).
					Count(&inProgress).Error; err != nil {
					return err
				}
				if inProgress == 0 {
					derived := deriveRoomStatus(models.RoomStatusAvailable, room.Occupied, room.Capacity)
					if err := tx.Model(&room).Update("status", derived).Error; err != nil {
						return err
					}
				}
			}
		}
		return nil
	})

	return request, err
}
