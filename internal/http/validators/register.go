package validators

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	dto "taskforce.app/taskforce/internal/data_models"
)

func ValidateRegisterRequest(r *dto.RegisterRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		return echo.NewHTTPError(http.StatusBadRequest, "a valid email is required")
	}
	if len(r.Password) < 6 {
		return echo.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}
	return nil
}

func ValidateLoginRequest(r *dto.LoginRequest) error {
	if r.Email == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "email is required")
	}
	if r.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "password is required")
	}
	return nil
}
