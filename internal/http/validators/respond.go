package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "taskforce.app/taskforce/internal/data_models"
)

func ValidateRespondRequest(r *dto.RespondRequest) error {
	if r.Price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be positive")
	}
	return nil
}

func ValidateCompleteRequest(r *dto.CompleteRequest) error {
	if r.Value < 1 || r.Value > 5 {
		return echo.NewHTTPError(http.StatusBadRequest, "value must be between 1 and 5")
	}
	return nil
}
