package services

import (
	"errors"
	"strings"

	"hostel-backend/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type StudentService struct {
	DB *gorm.DB
}

func NewStudentService(db *gorm.DB) *StudentService {
	return &StudentService{DB: db}
}

type StudentInput struct {
	FullName      string `json:"fullName" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Phone         string `json:"phone" binding:"phone"`
	RollNumber    string `json:"rollNumber"`
	GuardianName  string `json:"guardianName"`
	GuardianPhone string `json:"guardianPhone" binding:"phone"`
	Password      string `json:"password"`
}

type StudentUpdateInput struct {
	FullName      *string `json:"fullName,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	RollNumber    *string `json:"rollNumber,omitempty"`
	GuardianName  *string `json:"guardianName,omitempty"`
	GuardianPhone *string `json:"guardianPhone,omitempty"`
}

func (s *StudentService) CreateStudent(tenantID uint, input StudentInput) (models.Student, error) {
	student := models.Student{
		TenantID:      tenantID,
		FullName:      strings.TrimSpace(input.FullName),
		Email:         strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:         strings.TrimSpace(input.Phone),
		RollNumber:    strings.TrimSpace(input.RollNumber),
		GuardianName:  strings.TrimSpace(input.GuardianName),
		GuardianPhone: strings.TrimSpace(input.GuardianPhone),
		Role:          models.RoleStudent,
		Status:        models.StudentStatusActive,
	}

	var existing int64
	if err := s.DB.Model(&models.Student{}).
		Where("tenant_id = ? AND email = ?", tenantID, student.Email).
		Count(&existing).Error; err != nil {
		return student, err
	}
	if existing > 0 {
		return student, Conflictf("A student with email %s already exists", student.Email)
	}

	if input.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return student, err
		}
		student.Password = string(hash)
	}

	err := s.DB.Create(&student).Error
	return student, err
}

func (s *StudentService) ListStudents(tenantID uint, status, search string) ([]models.Student, error) {
	var students []models.Student
	q := s.DB.Where("tenant_id = ?", tenantID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if search != "" {
		like := "%" + strings.ToLower(strings.TrimSpace(search)) + "%"
		q = q.Where("LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(roll_number) LIKE ?", like, like, like)
	}
	err := q.Order("full_name").Find(&students).Error
	return students, err
}

func (s *StudentService) GetStudent(tenantID, studentID uint) (models.Student, error) {
	var student models.Student
	err := s.DB.Where("id = ? AND tenant_id = ?", studentID, tenantID).First(&student).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return student, NotFoundf("Student not found")
	}
	return student, err
}

func (s *StudentService) UpdateStudent(tenantID, studentID uint, input StudentUpdateInput) (models.Student, error) {
	student, err := s.GetStudent(tenantID, studentID)
	if err != nil {
		return student, err
	}

	updates := map[string]interface{}{}
	if input.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*input.FullName)
	}
	if input.Phone != nil {
		updates["phone"] = strings.TrimSpace(*input.Phone)
	}
	if input.RollNumber != nil {
		updates["roll_number"] = strings.TrimSpace(*input.RollNumber)
	}
	if input.GuardianName != nil {
		updates["guardian_name"] = strings.TrimSpace(*input.GuardianName)
	}
	if input.GuardianPhone != nil {
		updates["guardian_phone"] = strings.TrimSpace(*input.GuardianPhone)
	}
	if len(updates) == 0 {
		return student, nil
	}

	if err := s.DB.Model(&student).Updates(updates).Error; err != nil {
		return student, err
	}
	return student, nil
}

// DeactivateStudent marks a student INACTIVE. Refused while the student
// still holds an active room allocation; deallocate first.
func (s *StudentService) DeactivateStudent(tenantID, studentID uint) (models.Student, error) {
	var student models.Student

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND tenant_id = ?", studentID, tenantID).
			First(&student).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return NotFoundf("Student not found")
			}
			return err
		}

		var active int64
		if err := tx.Model(&models.RoomAllocation{}).
			Where("student_id = ? AND status = ?", student.ID, models.AllocationStatusActive).
			Count(&active).Error; err != nil {
			return err
		}
		if active > 0 {
			return Conflictf("Student %s has an active room allocation; deallocate before deactivating", student.FullName)
		}

		if err := tx.Model(&student).Update("status", models.StudentStatusInactive).Error; err != nil {
			return err
		}
		student.Status = models.StudentStatusInactive
		return nil
	})

	return student, err
}
