package dto

import (
	"taskforce.app/taskforce/internal/constants"
	model "taskforce.app/taskforce/internal/models"
)

type TokenResponse struct {
	Token string `json:"token"`
}

type ActionResponse struct {
	Action constants.Action `json:"action"`
}

type ProfileResponse struct {
	User          *model.User    `json:"user"`
	Reviews       []model.Review `json:"reviews"`
	AverageRating float64        `json:"average_rating"`
}
