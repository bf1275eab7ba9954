package services

import (
	"context"

	model "taskforce.app/taskforce/internal/models"
	repository "taskforce.app/taskforce/internal/repositories"
)

type UserService struct {
	users   *repository.UserRepository
	reviews *repository.ReviewRepository
}

func NewUserService(users *repository.UserRepository, reviews *repository.ReviewRepository) *UserService {
	return &UserService{users: users, reviews: reviews}
}

type Profile struct {
	User          *model.User
	Reviews       []model.Review
	AverageRating float64
}

// GetProfile loads a user together with received reviews and their average
// mark. A view by anyone other than the owner bumps the popularity counter.
func (s *UserService) GetProfile(ctx context.Context, id, viewerID string) (*Profile, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewerID != "" && viewerID != id {
		if err := s.users.IncrementPopularity(ctx, id); err != nil {
			return nil, err
		}
	}

	reviews, err := s.reviews.ListForUser(ctx, id)
	if err != nil {
		return nil, err
	}

	avg, err := s.reviews.AverageForUser(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Profile{
		User:          user,
		Reviews:       reviews,
		AverageRating: avg,
	}, nil
}
