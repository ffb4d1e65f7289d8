package utils

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

type phoneProbe struct {
	Phone string `binding:"phone"`
}

type roomTypeProbe struct {
	RoomType string `binding:"roomtype"`
}

func bindingEngine(t *testing.T) *validator.Validate {
	t.Helper()
	RegisterValidators()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v
}

func TestPhoneValidator(t *testing.T) {
	v := bindingEngine(t)

	for _, valid := range []string{"", "+919876543210", "0201234567"} {
		require.NoError(t, v.Struct(phoneProbe{Phone: valid}), "phone %q", valid)
	}
	for _, invalid := range []string{"abc", "12345", "+91 98765 43210", "123456789012345678"} {
		require.Error(t, v.Struct(phoneProbe{Phone: invalid}), "phone %q", invalid)
	}
}

func TestRoomTypeValidator(t *testing.T) {
	v := bindingEngine(t)

	for _, valid := range []string{"SINGLE", "DOUBLE", "TRIPLE", "DORMITORY"} {
		require.NoError(t, v.Struct(roomTypeProbe{RoomType: valid}), "room type %q", valid)
	}
	require.Error(t, v.Struct(roomTypeProbe{RoomType: "PENTHOUSE"}))
}

func TestGenerateSecureToken(t *testing.T) {
	token, err := GenerateSecureToken(32)
	require.NoError(t, err)
	require.Len(t, token, 64)

	other, err := GenerateSecureToken(32)
	require.NoError(t, err)
	require.NotEqual(t, token, other)

	_, err = GenerateSecureToken(0)
	require.Error(t, err)
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("HOSTEL_TEST_KEY", "set-value")
	require.Equal(t, "set-value", EnvOrDefault("HOSTEL_TEST_KEY", "fallback"))

	t.Setenv("HOSTEL_TEST_KEY", "  ")
	require.Equal(t, "fallback", EnvOrDefault("HOSTEL_TEST_KEY", "fallback"))
}
