package controllers

import (
	"net/http"

	"hostel-backend/middleware"
	"hostel-backend/services"
	"hostel-backend/utils"

	"github.com/gin-gonic/gin"
)

type StudentController struct {
	Service *services.StudentService
}

func NewStudentController(service *services.StudentService) *StudentController {
	return &StudentController{Service: service}
}

func (ctl *StudentController) Create(c *gin.Context) {
	var input services.StudentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "fullName and a valid email are required")
		return
	}

	student, err := ctl.Service.CreateStudent(middleware.TenantID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, student)
}

func (ctl *StudentController) List(c *gin.Context) {
	students, err := ctl.Service.ListStudents(
		middleware.TenantID(c), c.Query("status"), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, students)
}

func (ctl *StudentController) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	student, err := ctl.Service.GetStudent(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, student)
}

func (ctl *StudentController) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var input services.StudentUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}
	student, err := ctl.Service.UpdateStudent(middleware.TenantID(c), id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, student)
}

// Deactivate handles DELETE /api/students/:id. Students are never hard
// deleted; their ledger history must survive.
func (ctl *StudentController) Deactivate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	student, err := ctl.Service.DeactivateStudent(middleware.TenantID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, student)
}
