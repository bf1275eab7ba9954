package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"taskforce.app/taskforce/internal/constants"
	dto "taskforce.app/taskforce/internal/data_models"
	apperrors "taskforce.app/taskforce/internal/errors"
	middleware "taskforce.app/taskforce/internal/http/middlewares"
	"taskforce.app/taskforce/internal/http/validators"
	model "taskforce.app/taskforce/internal/models"
	repository "taskforce.app/taskforce/internal/repositories"
	"taskforce.app/taskforce/internal/services"
)

type Handler struct {
	auth      *services.AuthService
	tasks     *services.TaskService
	lifecycle *services.LifecycleService
	users     *services.UserService
}

func NewHandler(
	auth *services.AuthService,
	tasks *services.TaskService,
	lifecycle *services.LifecycleService,
	users *services.UserService,
) *Handler {
	return &Handler{
		auth:      auth,
		tasks:     tasks,
		lifecycle: lifecycle,
		users:     users,
	}
}

func (h *Handler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateRegisterRequest(&req); err != nil {
		return err
	}

	_, token, err := h.auth.Register(c.Request().Context(), req.Name, req.Email, req.Password, req.IsExecutor)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return httpError(apperrors.ErrEmailTaken)
		}
		return httpError(apperrors.ErrSaveFailed)
	}

	return c.JSON(http.StatusCreated, dto.TokenResponse{Token: token})
}

func (h *Handler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateLoginRequest(&req); err != nil {
		return err
	}

	token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return httpError(apperrors.ErrInvalidCredentials)
		}
		return httpError(apperrors.ErrSaveFailed)
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	task, err := h.tasks.CreateTask(c.Request().Context(), userID(c), req.Title, req.Description, req.Price)
	if err != nil {
		return httpError(apperrors.ErrSaveFailed)
	}

	return c.JSON(http.StatusCreated, task)
}

func (h *Handler) ListTasks(c echo.Context) error {
	status := constants.TaskStatus(c.QueryParam("status"))
	if status != "" && !constants.ValidTaskStatus(status) {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown task status")
	}

	tasks, err := h.tasks.ListTasks(c.Request().Context(), status)
	if err != nil {
		return httpError(apperrors.ErrSaveFailed)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"count": len(tasks),
		"tasks": tasks,
	})
}

func (h *Handler) GetTask(c echo.Context) error {
	task, err := h.loadTaskDetail(c)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, task)
}

func (h *Handler) GetAction(c echo.Context) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}

	action, err := h.lifecycle.AvailableAction(c.Request().Context(), task, userID(c))
	if err != nil {
		return httpError(apperrors.ErrSaveFailed)
	}

	return c.JSON(http.StatusOK, dto.ActionResponse{Action: action})
}

func (h *Handler) CreateRespond(c echo.Context) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}

	var req dto.RespondRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateRespondRequest(&req); err != nil {
		return err
	}

	respond, ok, err := h.lifecycle.Respond(c.Request().Context(), task, userID(c), req.Price, req.Comment)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateRespond) {
			return httpError(apperrors.ErrDuplicateRespond)
		}
		return httpError(apperrors.ErrSaveFailed)
	}
	if !ok {
		return httpError(apperrors.ErrNotAllowed)
	}

	return c.JSON(http.StatusCreated, respond)
}

func (h *Handler) AdmitRespond(c echo.Context) error {
	task, respond, err := h.loadTaskAndRespond(c)
	if err != nil {
		return err
	}

	ok, err := h.lifecycle.AdmitRespond(c.Request().Context(), task, userID(c), respond)
	if err != nil {
		return transitionError(err)
	}
	if !ok {
		return httpError(apperrors.ErrNotAllowed)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "respond admitted"})
}

func (h *Handler) RefuseRespond(c echo.Context) error {
	task, respond, err := h.loadTaskAndRespond(c)
	if err != nil {
		return err
	}

	ok, err := h.lifecycle.RefuseRespond(c.Request().Context(), task, userID(c), respond)
	if err != nil {
		return transitionError(err)
	}
	if !ok {
		return httpError(apperrors.ErrNotAllowed)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "respond refused"})
}

func (h *Handler) RefuseTask(c echo.Context) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}

	ok, err := h.lifecycle.Refuse(c.Request().Context(), task, userID(c))
	if err != nil {
		return transitionError(err)
	}
	if !ok {
		return httpError(apperrors.ErrNotAllowed)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "task refused"})
}

func (h *Handler) CancelTask(c echo.Context) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}

	ok, err := h.lifecycle.CancelTask(c.Request().Context(), task, userID(c))
	if err != nil {
		return transitionError(err)
	}
	if !ok {
		return httpError(apperrors.ErrNotAllowed)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "task cancelled"})
}

func (h *Handler) CompleteTask(c echo.Context) error {
	task, err := h.loadTask(c)
	if err != nil {
		return err
	}

	var req dto.CompleteRequest
	if err := c.Bind(&req); err != nil {
		return httpError(apperrors.ErrInvalidJSON)
	}
	if err := validators.ValidateCompleteRequest(&req); err != nil {
		return err
	}

	ok, err := h.lifecycle.Complete(c.Request().Context(), task, userID(c), services.ReviewData{
		Value:   req.Value,
		Comment: req.Comment,
		Accept:  req.Accept,
	})
	if err != nil {
		return transitionError(err)
	}
	if !ok {
		return httpError(apperrors.ErrNotAllowed)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "task completed"})
}

func (h *Handler) GetProfile(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "user id is required")
	}

	profile, err := h.users.GetProfile(c.Request().Context(), id, userID(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return httpError(apperrors.ErrUserNotFound)
		}
		return httpError(apperrors.ErrSaveFailed)
	}

	return c.JSON(http.StatusOK, dto.ProfileResponse{
		User:          profile.User,
		Reviews:       profile.Reviews,
		AverageRating: profile.AverageRating,
	})
}

func (h *Handler) loadTask(c echo.Context) (*model.Task, error) {
	id := c.Param("id")
	if id == "" {
		return nil, httpError(apperrors.ErrTaskIDRequired)
	}

	task, err := h.tasks.FindTask(c.Request().Context(), id)
	if err != nil {
		return nil, httpError(apperrors.ErrTaskNotFound)
	}
	return task, nil
}

func (h *Handler) loadTaskDetail(c echo.Context) (*model.Task, error) {
	id := c.Param("id")
	if id == "" {
		return nil, httpError(apperrors.ErrTaskIDRequired)
	}

	task, err := h.tasks.GetTask(c.Request().Context(), id)
	if err != nil {
		return nil, httpError(apperrors.ErrTaskNotFound)
	}
	return task, nil
}

func (h *Handler) loadTaskAndRespond(c echo.Context) (*model.Task, *model.Respond, error) {
	task, err := h.loadTask(c)
	if err != nil {
		return nil, nil, err
	}

	respond, err := h.tasks.GetRespond(c.Request().Context(), c.Param("respond_id"))
	if err != nil || respond.TaskID != task.ID {
		return nil, nil, httpError(apperrors.ErrRespondNotFound)
	}

	return task, respond, nil
}

func userID(c echo.Context) string {
	id, _ := c.Get(middleware.UserIDKey).(string)
	return id
}

func httpError(e *apperrors.Exception) error {
	return echo.NewHTTPError(apperrors.StatusCode(e), e.Message)
}

// transitionError maps lifecycle persistence failures onto responses: a lost
// compare-and-set is a 409, anything else a generic save failure.
func transitionError(err error) error {
	if errors.Is(err, repository.ErrStatusConflict) {
		return httpError(apperrors.ErrStatusConflict)
	}
	return httpError(apperrors.ErrSaveFailed)
}
