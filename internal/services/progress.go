package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-eco-challenge/internal/logger"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
)

// BadgeLister lists a user's badges.
type BadgeLister interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.BadgeDB, error)
}

// DailyPointsReader aggregates the completion ledger per day.
type DailyPointsReader interface {
	DailyPointsByUser(ctx context.Context, userID uuid.UUID) ([]models.DailyPoints, error)
}

// ProgressService builds the dashboard and progress chart.
type ProgressService struct {
	users  UserGetter
	badges BadgeLister
	daily  DailyPointsReader
}

func NewProgressService(users UserGetter, badges BadgeLister, daily DailyPointsReader) *ProgressService {
	return &ProgressService{users: users, badges: badges, daily: daily}
}

// Points returns the user's current total.
func (s *ProgressService) Points(ctx context.Context, userID uuid.UUID) (int64, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return 0, err
	}
	if user == nil {
		return 0, ErrUserNotFound
	}
	return user.Points, nil
}

// Dashboard returns points and badge names.
func (s *ProgressService) Dashboard(ctx context.Context, userID uuid.UUID) (*models.Dashboard, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "user_id", userID, "error", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	badges, err := s.badges.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list badges", "user_id", userID, "error", err)
		return nil, err
	}

	names := make([]string, 0, len(badges))
	for _, b := range badges {
		names = append(names, b.Badge)
	}

	return &models.Dashboard{
		Username: user.Username,
		Points:   user.Points,
		Badges:   names,
	}, nil
}

// Stats returns points per day, oldest first.
func (s *ProgressService) Stats(ctx context.Context, userID uuid.UUID) (*models.Stats, error) {
	days, err := s.daily.DailyPointsByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to aggregate daily points", "user_id", userID, "error", err)
		return nil, err
	}

	stats := &models.Stats{
		Labels: make([]string, 0, len(days)),
		Values: make([]int64, 0, len(days)),
	}
	for _, d := range days {
		stats.Labels = append(stats.Labels, d.Day.Format("2006-01-02"))
		stats.Values = append(stats.Values, d.Points)
	}
	return stats, nil
}
