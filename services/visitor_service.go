package services

import (
	"errors"
	"strings"
	"time"

	"hostel-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type VisitorService struct {
	DB *gorm.DB
}

func NewVisitorService(db *gorm.DB) *VisitorService {
	return &VisitorService{DB: db}
}

type VisitorCheckInInput struct {
	StudentID   uint           `json:"studentId" binding:"required"`
	VisitorName string         `json:"visitorName" binding:"required"`
	Relation    string         `json:"relation"`
	Phone       string         `json:"phone"`
	IDProof     datatypes.JSON `json:"idProof,omitempty"`
	Purpose     string         `json:"purpose"`
}

func (s *VisitorService) CheckIn(tenantID uint, input VisitorCheckInInput) (models.VisitorLog, error) {
	var visit models.VisitorLog

	var student models.Student
	if err := s.DB.Where("id = ? AND tenant_id = ?", input.StudentID, tenantID).
		First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return visit, NotFoundf("Student not found")
		}
		return visit, err
	}

	visit = models.VisitorLog{
		TenantID:    tenantID,
		StudentID:   student.ID,
		VisitorName: strings.TrimSpace(input.VisitorName),
		Relation:    strings.TrimSpace(input.Relation),
		Phone:       strings.TrimSpace(input.Phone),
		IDProof:     input.IDProof,
		Purpose:     strings.TrimSpace(input.Purpose),
		CheckInTime: time.Now().UTC(),
		Status:      models.VisitStatusIn,
	}
	err := s.DB.Create(&visit).Error
	return visit, err
}

func (s *VisitorService) CheckOut(tenantID, visitID uint) (models.VisitorLog, error) {
	var visit models.VisitorLog
	if err := s.DB.Where("id = ? AND tenant_id = ?", visitID, tenantID).
		First(&visit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return visit, NotFoundf("Visitor log not found")
		}
		return visit, err
	}
	if visit.Status == models.VisitStatusOut {
		return visit, Conflictf("Visitor %s is already checked out", visit.VisitorName)
	}

	now := time.Now().UTC()
	if err := s.DB.Model(&visit).Updates(map[string]interface{}{
		"status":         models.VisitStatusOut,
		"check_out_time": now,
	}).Error; err != nil {
		return visit, err
	}
	visit.Status = models.VisitStatusOut
	visit.CheckOutTime = &now
	return visit, nil
}

func (s *VisitorService) ListVisits(tenantID uint, status string, studentID uint) ([]models.VisitorLog, error) {
	var visits []models.VisitorLog
	q := s.DB.Preload("Student").Where("tenant_id = ?", tenantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if studentID != 0 {
		q = q.Where("student_id = ?", studentID)
	}
	err := q.Order("check_in_time DESC").Find(&visits).Error
	return visits, err
}
