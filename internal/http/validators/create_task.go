package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskforce.app/taskforce/internal/data_models"
)

func ValidateCreateTaskRequest(r *dto.CreateTaskRequest) error {
	if r.Title == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "title is required")
	}
	if r.Description == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "description is required")
	}
	if r.Price < 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must not be negative")
	}
	return nil
}
