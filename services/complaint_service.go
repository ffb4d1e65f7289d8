package services

import (
	"errors"
	"strings"
	"time"

	"hostel-backend/models"

	"gorm.io/gorm"
)

type ComplaintService struct {
	DB *gorm.DB
}

func NewComplaintService(db *gorm.DB) *ComplaintService {
	return &ComplaintService{DB: db}
}

type ComplaintInput struct {
	StudentID   uint   `json:"studentId" binding:"required"`
	RoomID      *uint  `json:"roomId,omitempty"`
	Category    string `json:"category"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
}

// complaintTransitions lists the allowed status moves.
var complaintTransitions = map[string][]string{
	models.ComplaintStatusOpen:       {models.ComplaintStatusInProgress, models.ComplaintStatusClosed},
	models.ComplaintStatusInProgress: {models.ComplaintStatusResolved, models.ComplaintStatusClosed},
	models.ComplaintStatusResolved:   {models.ComplaintStatusClosed},
}

func (s *ComplaintService) FileComplaint(tenantID uint, input ComplaintInput) (models.Complaint, error) {
	var complaint models.Complaint

	var student models.Student
	if err := s.DB.Where("id = ? AND tenant_id = ?", input.StudentID, tenantID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return complaint, NotFoundf("Student not found")
		}
		return complaint, err
	}

	if input.RoomID != nil {
		var room models.Room
		if err := s.DB.Where("id = ? AND tenant_id = ?", *input.RoomID, tenantID).
			First(&room).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return complaint, NotFoundf("Room not found")
			}
			return complaint, err
		}
	}

	priority := strings.ToUpper(strings.TrimSpace(input.Priority))
	if priority == "" {
		priority = "MEDIUM"
	}

	complaint = models.Complaint{
		TenantID:    tenantID,
		StudentID:   student.ID,
		RoomID:      input.RoomID,
		Category:    strings.TrimSpace(input.Category),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Priority:    priority,
		Status:      models.ComplaintStatusOpen,
	}
	err := s.DB.Create(&complaint).Error
	return complaint, err
}

func (s *ComplaintService) ListComplaints(tenantID uint, status, priority string, studentID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	q := s.DB.Preload("Student").Where("tenant_id = ?", tenantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if priority != "" {
		q = q.Where("priority = ?", priority)
	}
	if studentID != 0 {
		q = q.Where("student_id = ?", studentID)
	}
	err := q.Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

func (s *ComplaintService) GetComplaint(tenantID, complaintID uint) (models.Complaint, error) {
	var complaint models.Complaint
	err := s.DB.Preload("Student").
		Where("id = ? AND tenant_id = ?", complaintID, tenantID).
		First(&complaint).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return complaint, NotFoundf("Complaint not found")
	}
	return complaint, err
}

// TransitionComplaint moves a complaint along OPEN → IN_PROGRESS → RESOLVED
// → CLOSED (closing is allowed from any non-closed state). Resolution notes
// are recorded and RESOLVED stamps ResolvedAt.
func (s *ComplaintService) TransitionComplaint(tenantID, complaintID uint, status, notes string) (models.Complaint, error) {
	complaint, err := s.GetComplaint(tenantID, complaintID)
	if err != nil {
		return complaint, err
	}

	status = strings.ToUpper(strings.TrimSpace(status))
	allowed := false
	for _, next := range complaintTransitions[complaint.Status] {
		if next == status {
			allowed = true
			break
		}
	}
	if !allowed {
		return complaint, Conflictf("Complaint cannot move from %s to %s", complaint.Status, status)
	}

	updates := map[string]interface{}{"status": status}
	if notes != "" {
		updates["resolution_notes"] = notes
	}
	if status == models.ComplaintStatusResolved {
		now := time.Now().UTC()
		updates["resolved_at"] = now
		complaint.ResolvedAt = &now
	}

	if err := s.DB.Model(&complaint).Updates(updates).Error; err != nil {
		return complaint, err
	}
	complaint.Status = status
	if notes != "" {
		complaint.ResolutionNotes = notes
	}
	return complaint, nil
}
