package utils

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"hostel-backend/models"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// RegisterValidators installs the custom binding validators on Gin's
// validator engine. Call once at startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("roomtype", func(fl validator.FieldLevel) bool {
		return models.ValidRoomType(fl.Field().String())
	})
	_ = v.RegisterValidation("floorstatus", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "", models.FloorStatusActive, models.FloorStatusInactive, models.FloorStatusUnderMaintenance:
			return true
		}
		return false
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		return phonePattern.MatchString(s)
	})
}
