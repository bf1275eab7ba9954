package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"taskforce.app/taskforce/internal/constants"
	model "taskforce.app/taskforce/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Task{}, &model.Respond{}, &model.Review{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

func createUser(t *testing.T, users *UserRepository, name string) *model.User {
	email := name + "-" + uuid.NewString() + "@example.com"
	user, err := users.Create(context.Background(), name, email, "hash", true)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return user
}

func TestRespondRepository_UniquePerTaskAndAuthor(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)
	responds := NewRespondRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	author := createUser(t, users, "author")
	bidder := createUser(t, users, "bidder")
	task, err := tasks.Create(ctx, author.ID, "Title", "Desc", 50)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if _, err := responds.Create(ctx, task.ID, bidder.ID, 40, "first"); err != nil {
		t.Fatalf("first respond failed: %v", err)
	}

	// The unique index is the last line of defence: the insert itself must be
	// rejected even when every service-level check was bypassed.
	_, err = responds.Create(ctx, task.ID, bidder.ID, 30, "second")
	if !errors.Is(err, ErrDuplicateRespond) {
		t.Fatalf("expected duplicate respond error, got %v", err)
	}
}

func TestTaskRepository_UpdateStatusCompareAndSet(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	author := createUser(t, users, "author")
	task, err := tasks.Create(ctx, author.ID, "Title", "Desc", 50)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	if err := tasks.UpdateStatus(ctx, task.ID, constants.StatusNew, constants.StatusCancel); err != nil {
		t.Fatalf("first transition failed: %v", err)
	}

	err = tasks.UpdateStatus(ctx, task.ID, constants.StatusNew, constants.StatusInProgress)
	if !errors.Is(err, ErrStatusConflict) {
		t.Fatalf("expected status conflict, got %v", err)
	}

	got, _ := tasks.FindByID(ctx, task.ID)
	if got.Status != constants.StatusCancel {
		t.Errorf("losing transition must not apply, got %s", got.Status)
	}
}

func TestTaskRepository_AssignExecutor(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	author := createUser(t, users, "author")
	doer := createUser(t, users, "doer")
	task, err := tasks.Create(ctx, author.ID, "Title", "Desc", 50)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	err = tasks.AssignExecutor(ctx, task.ID, doer.ID, constants.StatusNew, constants.StatusInProgress)
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}

	got, _ := tasks.FindByID(ctx, task.ID)
	if got.Status != constants.StatusInProgress {
		t.Errorf("expected in_progress, got %s", got.Status)
	}
	if got.ExecutorID == nil || *got.ExecutorID != doer.ID {
		t.Errorf("expected executor %s, got %v", doer.ID, got.ExecutorID)
	}
}

func TestUserRepository_Counters(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, users, "counted")

	if err := users.IncrementOrders(ctx, user.ID); err != nil {
		t.Fatalf("increment orders failed: %v", err)
	}
	if err := users.IncrementFailures(ctx, user.ID); err != nil {
		t.Fatalf("increment failures failed: %v", err)
	}
	if err := users.IncrementPopularity(ctx, user.ID); err != nil {
		t.Fatalf("increment popularity failed: %v", err)
	}
	if err := users.IncrementOrders(ctx, user.ID); err != nil {
		t.Fatalf("increment orders failed: %v", err)
	}

	got, err := users.FindByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to reload user: %v", err)
	}
	if got.Orders != 2 || got.Failures != 1 || got.Popularity != 1 {
		t.Errorf("unexpected counters: orders=%d failures=%d popularity=%d",
			got.Orders, got.Failures, got.Popularity)
	}

	if err := users.IncrementOrders(ctx, "missing-id"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected record not found for unknown user, got %v", err)
	}
}

func TestReviewRepository_Average(t *testing.T) {
	db := setupTestDB(t)
	tasks := NewTaskRepository(db)
	reviews := NewReviewRepository(db)
	users := NewUserRepository(db)
	ctx := context.Background()

	author := createUser(t, users, "author")
	doer := createUser(t, users, "doer")

	task1, _ := tasks.Create(ctx, author.ID, "One", "Desc", 10)
	task2, _ := tasks.Create(ctx, author.ID, "Two", "Desc", 20)

	if _, err := reviews.Create(ctx, task1.ID, doer.ID, 5, "great"); err != nil {
		t.Fatalf("review 1 failed: %v", err)
	}
	if _, err := reviews.Create(ctx, task2.ID, doer.ID, 3, "fine"); err != nil {
		t.Fatalf("review 2 failed: %v", err)
	}

	avg, err := reviews.AverageForUser(ctx, doer.ID)
	if err != nil {
		t.Fatalf("average failed: %v", err)
	}
	if avg != 4 {
		t.Errorf("expected average 4, got %f", avg)
	}

	none, err := reviews.AverageForUser(ctx, author.ID)
	if err != nil {
		t.Fatalf("average for unreviewed user failed: %v", err)
	}
	if none != 0 {
		t.Errorf("expected 0 for unreviewed user, got %f", none)
	}
}
