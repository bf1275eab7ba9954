package services

import (
	"context"

	"taskforce.app/taskforce/internal/constants"
	model "taskforce.app/taskforce/internal/models"
	repository "taskforce.app/taskforce/internal/repositories"
)

type TaskService struct {
	tasks    *repository.TaskRepository
	responds *repository.RespondRepository
}

func NewTaskService(tasks *repository.TaskRepository, responds *repository.RespondRepository) *TaskService {
	return &TaskService{tasks: tasks, responds: responds}
}

func (s *TaskService) CreateTask(ctx context.Context, authorID, title, description string, price int64) (*model.Task, error) {
	return s.tasks.Create(ctx, authorID, title, description, price)
}

// GetTask loads a task with its responds and review for the detail view.
func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	return s.tasks.FindWithResponds(ctx, id)
}

// FindTask loads the bare task row, enough for lifecycle decisions.
func (s *TaskService) FindTask(ctx context.Context, id string) (*model.Task, error) {
	return s.tasks.FindByID(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context, status constants.TaskStatus) ([]model.Task, error) {
	return s.tasks.List(ctx, status)
}

func (s *TaskService) GetRespond(ctx context.Context, id string) (*model.Respond, error) {
	return s.responds.FindByID(ctx, id)
}
