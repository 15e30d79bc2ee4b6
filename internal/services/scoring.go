package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-eco-challenge/internal/logger"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
	"github.com/sbilibin2017/gw-eco-challenge/internal/repositories"
	"github.com/segmentio/kafka-go"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrStorageUnavailable wraps unexpected storage failures. Nothing was written when it is returned.
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// Transactor runs fn in a single serializable transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserGetter loads users by id.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// PointsWriter maintains the running point total.
type PointsWriter interface {
	AddPoints(ctx context.Context, userID uuid.UUID, points int64) (int64, error)
}

// ChallengeGetter loads challenges by id.
type ChallengeGetter interface {
	GetByID(ctx context.Context, challengeID int64) (*models.ChallengeDB, error)
}

// CompletionReader reads the completion ledger.
type CompletionReader interface {
	ExistsForDay(ctx context.Context, userID uuid.UUID, challengeID int64, day time.Time) (bool, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

// CompletionWriter appends to the completion ledger.
type CompletionWriter interface {
	Save(ctx context.Context, userID uuid.UUID, challengeID, points int64, day time.Time) error
}

// BadgeWriter awards badges at most once per user.
type BadgeWriter interface {
	Award(ctx context.Context, userID uuid.UUID, badge string) (bool, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ScoringRules are the tunable constants of the scoring engine.
type ScoringRules struct {
	RewardPoints   int64  // Points awarded per completion
	BadgeThreshold int64  // Completions needed for the badge
	BadgeName      string // Badge awarded at the threshold
}

// DefaultScoringRules returns the rules the catalog was designed around.
func DefaultScoringRules() ScoringRules {
	return ScoringRules{
		RewardPoints:   10,
		BadgeThreshold: 5,
		BadgeName:      "Novice Activist",
	}
}

// ScoringService records challenge completions, awards points and badges.
type ScoringService struct {
	tx               Transactor
	users            UserGetter
	points           PointsWriter
	challenges       ChallengeGetter
	completionReader CompletionReader
	completionWriter CompletionWriter
	badges           BadgeWriter
	kafkaWriter      KafkaWriter
	rules            ScoringRules
}

// NewScoringService creates a new ScoringService. kafkaWriter may be nil.
func NewScoringService(
	tx Transactor,
	users UserGetter,
	points PointsWriter,
	challenges ChallengeGetter,
	completionReader CompletionReader,
	completionWriter CompletionWriter,
	badges BadgeWriter,
	kafkaWriter KafkaWriter,
	rules ScoringRules,
) *ScoringService {
	return &ScoringService{
		tx:               tx,
		users:            users,
		points:           points,
		challenges:       challenges,
		completionReader: completionReader,
		completionWriter: completionWriter,
		badges:           badges,
		kafkaWriter:      kafkaWriter,
		rules:            rules,
	}
}

// CompleteChallenge credits the user for the challenge once per calendar day of today.
//
// The dedup check, the award and the badge evaluation run in one transaction:
// either all writes happen or none do. A repeated completion on the same day is
// reported through CompletionResult.AlreadyCompletedToday, not as an error.
func (s *ScoringService) CompleteChallenge(ctx context.Context, userID uuid.UUID, challengeID int64, today time.Time) (*models.CompletionResult, error) {
	day := calendarDay(today)

	var result models.CompletionResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		result = models.CompletionResult{}

		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			return err
		}
		if user == nil {
			return ErrUserNotFound
		}

		challenge, err := s.challenges.GetByID(ctx, challengeID)
		if err != nil {
			return err
		}
		if challenge == nil {
			return ErrChallengeNotFound
		}

		done, err := s.completionReader.ExistsForDay(ctx, userID, challengeID, day)
		if err != nil {
			return err
		}
		if done {
			result.AlreadyCompletedToday = true
			result.Points = user.Points
			return nil
		}

		if err := s.completionWriter.Save(ctx, userID, challengeID, s.rules.RewardPoints, day); err != nil {
			return err
		}
		total, err := s.points.AddPoints(ctx, userID, s.rules.RewardPoints)
		if err != nil {
			return err
		}
		result.Completed = true
		result.Points = total

		count, err := s.completionReader.CountByUser(ctx, userID)
		if err != nil {
			return err
		}
		if count >= s.rules.BadgeThreshold {
			awarded, err := s.badges.Award(ctx, userID, s.rules.BadgeName)
			if err != nil {
				return err
			}
			if awarded {
				result.BadgeAwarded = s.rules.BadgeName
			}
		}
		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, repositories.ErrCompletionExists):
		return s.alreadyCompleted(ctx, userID, challengeID)
	case errors.Is(err, ErrUserNotFound), errors.Is(err, ErrChallengeNotFound):
		logger.Log.Infow("cannot complete challenge", "user_id", userID, "challenge_id", challengeID, "reason", err)
		return nil, err
	default:
		logger.Log.Errorw("failed to complete challenge", "user_id", userID, "challenge_id", challengeID, "error", err)
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	if result.AlreadyCompletedToday {
		logger.Log.Infow("challenge already completed today", "user_id", userID, "challenge_id", challengeID)
		return &result, nil
	}

	logger.Log.Infow("challenge completed",
		"user_id", userID,
		"challenge_id", challengeID,
		"points", result.Points,
		"badge", result.BadgeAwarded,
	)
	s.publishCompletion(ctx, userID, challengeID, &result)

	return &result, nil
}

// alreadyCompleted builds the outcome for a completion that lost a race on the
// unique constraint. The transaction was rolled back so the total is re-read.
func (s *ScoringService) alreadyCompleted(ctx context.Context, userID uuid.UUID, challengeID int64) (*models.CompletionResult, error) {
	logger.Log.Infow("challenge already completed today", "user_id", userID, "challenge_id", challengeID)

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return &models.CompletionResult{AlreadyCompletedToday: true, Points: user.Points}, nil
}

// publishCompletion publishes a committed completion to Kafka.
func (s *ScoringService) publishCompletion(ctx context.Context, userID uuid.UUID, challengeID int64, result *models.CompletionResult) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "user_id", userID)
		return
	}

	event := models.CompletionEvent{
		EventID:      uuid.NewString(),
		Timestamp:    time.Now().Unix(),
		UserID:       userID.String(),
		ChallengeID:  challengeID,
		Points:       s.rules.RewardPoints,
		TotalPoints:  result.Points,
		BadgeAwarded: result.BadgeAwarded,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal completion event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
		Headers: []kafka.Header{
			{Key: "challenge_id", Value: []byte(strconv.FormatInt(challengeID, 10))},
		},
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish completion event", "event_id", event.EventID, "error", err)
		return
	}
	logger.Log.Infow("completion event published", "event_id", event.EventID, "user_id", event.UserID)
}

// calendarDay keeps the date of t as seen in t's location and drops the clock.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
