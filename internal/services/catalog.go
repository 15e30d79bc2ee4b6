package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sbilibin2017/gw-eco-challenge/internal/logger"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
)

// ErrInvalidChallenge is returned for an empty description or an unknown difficulty.
var ErrInvalidChallenge = errors.New("invalid challenge")

// ChallengeLister lists the catalog.
type ChallengeLister interface {
	List(ctx context.Context) ([]models.ChallengeDB, error)
}

// ChallengeSaver stores new challenges.
type ChallengeSaver interface {
	Save(ctx context.Context, description string, difficulty models.Difficulty, createdBy string) (*models.ChallengeDB, error)
}

// ChallengeCache caches the catalog.
type ChallengeCache interface {
	Get(ctx context.Context) ([]models.ChallengeDB, error)
	Set(ctx context.Context, challenges []models.ChallengeDB) error
	Invalidate(ctx context.Context) error
}

// CatalogService serves and extends the challenge catalog.
type CatalogService struct {
	reader ChallengeLister
	writer ChallengeSaver
	cache  ChallengeCache
}

// NewCatalogService creates a new CatalogService. cache may be nil.
func NewCatalogService(reader ChallengeLister, writer ChallengeSaver, cache ChallengeCache) *CatalogService {
	return &CatalogService{
		reader: reader,
		writer: writer,
		cache:  cache,
	}
}

// ListChallenges returns the catalog newest first, from cache when possible.
func (s *CatalogService) ListChallenges(ctx context.Context) ([]models.ChallengeDB, error) {
	if s.cache != nil {
		challenges, err := s.cache.Get(ctx)
		if err == nil {
			return challenges, nil
		}
		logger.Log.Debugw("catalog cache unavailable, reading database", "error", err)
	}

	challenges, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list challenges", "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, challenges); err != nil {
			logger.Log.Warnw("failed to cache catalog", "error", err)
		}
	}
	return challenges, nil
}

// SubmitChallenge adds a user-authored challenge. An empty difficulty defaults to Medium.
func (s *CatalogService) SubmitChallenge(ctx context.Context, username, description string, difficulty models.Difficulty) (*models.ChallengeDB, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrInvalidChallenge
	}
	if difficulty == "" {
		difficulty = models.DifficultyMedium
	}
	if !difficulty.Valid() {
		return nil, ErrInvalidChallenge
	}

	challenge, err := s.writer.Save(ctx, description, difficulty, username)
	if err != nil {
		logger.Log.Errorw("failed to save challenge", "username", username, "error", err)
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			logger.Log.Warnw("failed to invalidate catalog cache", "error", err)
		}
	}

	logger.Log.Infow("challenge submitted", "challenge_id", challenge.ChallengeID, "username", username)
	return challenge, nil
}
