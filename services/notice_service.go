package services

import (
	"errors"
	"strings"
	"time"

	"hostel-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// NoticeService covers announcements and events.
type NoticeService struct {
	DB *gorm.DB
}

func NewNoticeService(db *gorm.DB) *NoticeService {
	return &NoticeService{DB: db}
}

type AnnouncementInput struct {
	Title       string         `json:"title" binding:"required"`
	Content     string         `json:"content"`
	Audience    datatypes.JSON `json:"audience,omitempty"`
	PublishedAt *time.Time     `json:"publishedAt,omitempty"`
	ExpiresAt   *time.Time     `json:"expiresAt,omitempty"`
}

type EventInput struct {
	Title       string         `json:"title" binding:"required"`
	Description string         `json:"description"`
	Venue       string         `json:"venue"`
	StartsAt    time.Time      `json:"startsAt" binding:"required"`
	EndsAt      time.Time      `json:"endsAt" binding:"required"`
	Metadata    datatypes.JSON `json:"metadata,omitempty"`
}

func (s *NoticeService) PublishAnnouncement(tenantID uint, createdBy *uint, input AnnouncementInput) (models.Announcement, error) {
	publishedAt := time.Now().UTC()
	if input.PublishedAt != nil {
		publishedAt = input.PublishedAt.UTC()
	}
	if input.ExpiresAt != nil && input.ExpiresAt.Before(publishedAt) {
		return models.Announcement{}, Invalidf("Announcement expiry precedes its publish time")
	}

	announcement := models.Announcement{
		TenantID:    tenantID,
		Title:       strings.TrimSpace(input.Title),
		Content:     input.Content,
		Audience:    input.Audience,
		PublishedAt: publishedAt,
		ExpiresAt:   input.ExpiresAt,
		CreatedByID: createdBy,
	}
	err := s.DB.Create(&announcement).Error
	return announcement, err
}

// ListAnnouncements returns announcements for the tenant; activeOnly keeps
// those inside their publish/expiry window.
func (s *NoticeService) ListAnnouncements(tenantID uint, activeOnly bool) ([]models.Announcement, error) {
	var announcements []models.Announcement
	q := s.DB.Where("tenant_id = ?", tenantID)
	if activeOnly {
		now := time.Now().UTC()
		q = q.Where("published_at <= ? AND (expires_at IS NULL OR expires_at > ?)", now, now)
	}
	err := q.Order("published_at DESC").Find(&announcements).Error
	return announcements, err
}

func (s *NoticeService) DeleteAnnouncement(tenantID, announcementID uint) error {
	result := s.DB.Where("id = ? AND tenant_id = ?", announcementID, tenantID).
		Delete(&models.Announcement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NotFoundf("Announcement not found")
	}
	return nil
}

func (s *NoticeService) CreateEvent(tenantID uint, input EventInput) (models.Event, error) {
	if !input.EndsAt.After(input.StartsAt) {
		return models.Event{}, Invalidf("Event must end after it starts")
	}
	event := models.Event{
		TenantID:    tenantID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Venue:       strings.TrimSpace(input.Venue),
		StartsAt:    input.StartsAt.UTC(),
		EndsAt:      input.EndsAt.UTC(),
		Metadata:    input.Metadata,
	}
	err := s.DB.Create(&event).Error
	return event, err
}

func (s *NoticeService) ListEvents(tenantID uint, upcomingOnly bool) ([]models.Event, error) {
	var events []models.Event
	q := s.DB.Where("tenant_id = ?", tenantID)
	if upcomingOnly {
		q = q.Where("ends_at > ?", time.Now().UTC())
	}
	err := q.Order("starts_at").Find(&events).Error
	return events, err
}

func (s *NoticeService) GetEvent(tenantID, eventID uint) (models.Event, error) {
	var event models.Event
	err := s.DB.Where("id = ? AND tenant_id = ?", eventID, tenantID).First(&event).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return event, NotFoundf("Event not found")
	}
	return event, err
}

func (s *NoticeService) DeleteEvent(tenantID, eventID uint) error {
	result := s.DB.Where("id = ? AND tenant_id = ?", eventID, tenantID).Delete(&models.Event{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NotFoundf("Event not found")
	}
	return nil
}
