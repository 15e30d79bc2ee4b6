package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
	"github.com/sbilibin2017/gw-eco-challenge/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestProgressService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	users := services.NewMockUserGetter(ctrl)
	badges := services.NewMockBadgeLister(ctrl)
	daily := services.NewMockDailyPointsReader(ctrl)
	svc := services.NewProgressService(users, badges, daily)

	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Username: "ana", Points: 50}, nil)
	badges.EXPECT().ListByUser(ctx, userID).Return([]models.BadgeDB{{UserID: userID, Badge: "Novice Activist"}}, nil)

	got, err := svc.Dashboard(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, &models.Dashboard{Username: "ana", Points: 50, Badges: []string{"Novice Activist"}}, got)

	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Username: "ana"}, nil)
	badges.EXPECT().ListByUser(ctx, userID).Return(nil, nil)

	got, err = svc.Dashboard(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, []string{}, got.Badges)

	users.EXPECT().GetByID(ctx, userID).Return(nil, nil)
	_, err = svc.Dashboard(ctx, userID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)

	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID}, nil)
	badges.EXPECT().ListByUser(ctx, userID).Return(nil, errors.New("db down"))
	_, err = svc.Dashboard(ctx, userID)
	assert.EqualError(t, err, "db down")
}

func TestProgressService_Points(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	users := services.NewMockUserGetter(ctrl)
	svc := services.NewProgressService(users, nil, nil)

	users.EXPECT().GetByID(ctx, userID).Return(&models.UserDB{UserID: userID, Points: 30}, nil)
	points, err := svc.Points(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, int64(30), points)

	users.EXPECT().GetByID(ctx, userID).Return(nil, nil)
	_, err = svc.Points(ctx, userID)
	assert.ErrorIs(t, err, services.ErrUserNotFound)
}

func TestProgressService_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	userID := uuid.New()

	daily := services.NewMockDailyPointsReader(ctrl)
	svc := services.NewProgressService(nil, nil, daily)

	daily.EXPECT().DailyPointsByUser(ctx, userID).Return([]models.DailyPoints{
		{Day: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), Points: 20},
		{Day: time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), Points: 10},
	}, nil)

	got, err := svc.Stats(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, &models.Stats{
		Labels: []string{"2024-05-01", "2024-05-03"},
		Values: []int64{20, 10},
	}, got)

	daily.EXPECT().DailyPointsByUser(ctx, userID).Return(nil, nil)
	got, err = svc.Stats(ctx, userID)
	assert.NoError(t, err)
	assert.Empty(t, got.Labels)
	assert.Empty(t, got.Values)

	daily.EXPECT().DailyPointsByUser(ctx, userID).Return(nil, errors.New("db down"))
	_, err = svc.Stats(ctx, userID)
	assert.Error(t, err)
}
