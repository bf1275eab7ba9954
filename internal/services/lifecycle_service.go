package services

import (
	"context"

	"gorm.io/gorm"

	"taskforce.app/taskforce/internal/constants"
	"taskforce.app/taskforce/internal/logging"
	model "taskforce.app/taskforce/internal/models"
	repository "taskforce.app/taskforce/internal/repositories"
)

// LifecycleService is the role/state engine over a task. Every mutation
// re-derives the caller's role from the persisted task instead of trusting a
// role claim, returns ok=false for a role refusal, and reserves the error for
// persistence failures. Multi-record transitions run in one transaction so
// task status, respond status and reputation counters never diverge.
type LifecycleService struct {
	db       *gorm.DB
	tasks    *repository.TaskRepository
	responds *repository.RespondRepository
	reviews  *repository.ReviewRepository
	users    *repository.UserRepository
}

func NewLifecycleService(
	db *gorm.DB,
	tasks *repository.TaskRepository,
	responds *repository.RespondRepository,
	reviews *repository.ReviewRepository,
	users *repository.UserRepository,
) *LifecycleService {
	return &LifecycleService{
		db:       db,
		tasks:    tasks,
		responds: responds,
		reviews:  reviews,
		users:    users,
	}
}

// RoleOf resolves the acting user's relationship to the task. Pure, no
// caching: the task row is the single source of truth.
func (s *LifecycleService) RoleOf(task *model.Task, userID string) constants.Role {
	if userID == task.AuthorID {
		return constants.RoleCustomer
	}
	if task.ExecutorID != nil && userID == *task.ExecutorID {
		return constants.RoleExecutor
	}
	return constants.RoleVisitor
}

// AvailableAction is the read-only projection driving UI affordances:
//
//	in_progress + executor -> refuse
//	in_progress + customer -> complete
//	new + executor-capable visitor without a prior bid -> respond
//	new + customer -> cancel
func (s *LifecycleService) AvailableAction(ctx context.Context, task *model.Task, userID string) (constants.Action, error) {
	role := s.RoleOf(task, userID)

	switch task.Status {
	case constants.StatusInProgress:
		if role == constants.RoleExecutor {
			return constants.ActionRefuse, nil
		}
		if role == constants.RoleCustomer {
			return constants.ActionComplete, nil
		}

	case constants.StatusNew:
		if role == constants.RoleCustomer {
			return constants.ActionCancel, nil
		}
		if role == constants.RoleVisitor {
			ok, err := s.canRespond(ctx, task, userID)
			if err != nil {
				return constants.ActionNone, err
			}
			if ok {
				return constants.ActionRespond, nil
			}
		}
	}

	return constants.ActionNone, nil
}

func (s *LifecycleService) canRespond(ctx context.Context, task *model.Task, userID string) (bool, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return false, err
	}
	if !user.IsExecutor {
		return false, nil
	}

	exists, err := s.responds.ExistsForTaskAndAuthor(ctx, task.ID, userID)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// Respond creates a bid on a new task. The no-prior-bid rule is enforced here
// as a hard invariant, not only in AvailableAction: a bypassed UI check still
// ends on the (task_id, author_id) unique index.
func (s *LifecycleService) Respond(ctx context.Context, task *model.Task, userID string, price int64, comment string) (*model.Respond, bool, error) {
	if s.RoleOf(task, userID) != constants.RoleVisitor || task.Status != constants.StatusNew {
		return nil, false, nil
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, false, err
	}
	if !user.IsExecutor {
		return nil, false, nil
	}

	respond, err := s.responds.Create(ctx, task.ID, userID, price, comment)
	if err != nil {
		return nil, true, err
	}

	logging.Logger.WithFields(map[string]interface{}{
		"task":   task.ID,
		"author": userID,
	}).Info("respond created")

	return respond, true, nil
}

// AdmitRespond approves one bid: the respond moves to in_progress, the bid
// author wins an order, and the task is assigned to them. All four writes
// commit or roll back together. The compare-and-set on the task row makes
// sure only one respond is ever admitted.
func (s *LifecycleService) AdmitRespond(ctx context.Context, task *model.Task, userID string, respond *model.Respond) (bool, error) {
	if s.RoleOf(task, userID) != constants.RoleCustomer {
		return false, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.responds.WithTx(tx).UpdateStatus(ctx, respond.ID, constants.RespondInProgress); err != nil {
			return err
		}
		if err := s.users.WithTx(tx).IncrementOrders(ctx, respond.AuthorID); err != nil {
			return err
		}
		return s.tasks.WithTx(tx).AssignExecutor(
			ctx, task.ID, respond.AuthorID,
			constants.StatusNew, constants.StatusInProgress,
		)
	})
	if err != nil {
		logging.Logger.WithField("task", task.ID).WithError(err).Error("admit respond failed")
		return true, err
	}

	return true, nil
}

// RefuseRespond rejects a single bid. Task state is untouched.
func (s *LifecycleService) RefuseRespond(ctx context.Context, task *model.Task, userID string, respond *model.Respond) (bool, error) {
	if s.RoleOf(task, userID) != constants.RoleCustomer {
		return false, nil
	}

	if err := s.responds.UpdateStatus(ctx, respond.ID, constants.RespondCancel); err != nil {
		return true, err
	}
	return true, nil
}

// Refuse is the executor withdrawing from an assigned task: the task fails
// and the executor's failure counter grows.
func (s *LifecycleService) Refuse(ctx context.Context, task *model.Task, userID string) (bool, error) {
	if s.RoleOf(task, userID) != constants.RoleExecutor {
		return false, nil
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.tasks.WithTx(tx).UpdateStatus(ctx, task.ID, constants.StatusInProgress, constants.StatusFail); err != nil {
			return err
		}
		return s.users.WithTx(tx).IncrementFailures(ctx, userID)
	})
	if err != nil {
		logging.Logger.WithField("task", task.ID).WithError(err).Error("refuse failed")
		return true, err
	}

	return true, nil
}

// CancelTask withdraws an unassigned task. Only the customer may cancel, and
// only while the task is still new; anything else is a benign no-op.
func (s *LifecycleService) CancelTask(ctx context.Context, task *model.Task, userID string) (bool, error) {
	if s.RoleOf(task, userID) != constants.RoleCustomer || task.Status != constants.StatusNew {
		return false, nil
	}

	if err := s.tasks.UpdateStatus(ctx, task.ID, constants.StatusNew, constants.StatusCancel); err != nil {
		return true, err
	}
	return true, nil
}

// ReviewData is the customer's closing verdict on an in_progress task.
type ReviewData struct {
	Value   int
	Comment string
	Accept  bool
}

// Complete closes an assigned task. The review row, the task's terminal
// status and (on rejection) the executor's failure counter are one atomic
// unit.
func (s *LifecycleService) Complete(ctx context.Context, task *model.Task, userID string, data ReviewData) (bool, error) {
	if s.RoleOf(task, userID) != constants.RoleCustomer {
		return false, nil
	}
	if task.Status != constants.StatusInProgress || task.ExecutorID == nil {
		return false, nil
	}
	executorID := *task.ExecutorID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.reviews.WithTx(tx).Create(ctx, task.ID, executorID, data.Value, data.Comment); err != nil {
			return err
		}

		if data.Accept {
			return s.tasks.WithTx(tx).UpdateStatus(ctx, task.ID, constants.StatusInProgress, constants.StatusCompleted)
		}

		if err := s.tasks.WithTx(tx).UpdateStatus(ctx, task.ID, constants.StatusInProgress, constants.StatusFail); err != nil {
			return err
		}
		return s.users.WithTx(tx).IncrementFailures(ctx, executorID)
	})
	if err != nil {
		logging.Logger.WithField("task", task.ID).WithError(err).Error("complete failed")
		return true, err
	}

	return true, nil
}
