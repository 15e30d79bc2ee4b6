package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-eco-challenge/internal/jwt"
	"github.com/sbilibin2017/gw-eco-challenge/internal/models"
	"github.com/sbilibin2017/gw-eco-challenge/internal/repositories"
	"github.com/sbilibin2017/gw-eco-challenge/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	require.NoError(t, repositories.Migrate(dsn))

	db, err := sqlx.Connect("pgx", dsn)
	require.NoError(t, err)
	db.SetMaxOpenConns(20)

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

type scoringStack struct {
	db      *sqlx.DB
	auth    *services.AuthService
	scoring *services.ScoringService
	users   *repositories.UserReadRepository
}

func newScoringStack(db *sqlx.DB) *scoringStack {
	userReader := repositories.NewUserReadRepository(db)
	userWriter := repositories.NewUserWriteRepository(db)
	completionReader := repositories.NewCompletionReadRepository(db)

	return &scoringStack{
		db:    db,
		users: userReader,
		auth: services.NewAuthService(
			userReader,
			userWriter,
			jwt.New(jwt.WithSecretKey("test-secret")),
			nil,
		),
		scoring: services.NewScoringService(
			repositories.NewTransactor(db, 20),
			userReader,
			userWriter,
			repositories.NewChallengeReadRepository(db),
			completionReader,
			repositories.NewCompletionWriteRepository(db),
			repositories.NewBadgeWriteRepository(db),
			nil,
			services.DefaultScoringRules(),
		),
	}
}

func (s *scoringStack) register(t *testing.T, username string) uuid.UUID {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, s.auth.Register(ctx, username, "password"))
	user, err := s.users.GetByUsername(ctx, username)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user.UserID
}

func (s *scoringStack) count(t *testing.T, query string, args ...any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Get(&n, query, args...))
	return n
}

func seededChallengeIDs(t *testing.T, db *sqlx.DB) []int64 {
	t.Helper()
	var ids []int64
	require.NoError(t, db.Select(&ids, "SELECT id FROM challenges ORDER BY id"))
	require.Len(t, ids, 5)
	return ids
}

func TestScoring_Integration(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()

	stack := newScoringStack(db)
	ctx := context.Background()
	challenges := seededChallengeIDs(t, db)
	day1 := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)

	t.Run("duplicate registration", func(t *testing.T) {
		stack.register(t, "dup")
		err := stack.auth.Register(ctx, "dup", "other")
		assert.ErrorIs(t, err, services.ErrUsernameTaken)
		assert.Equal(t, int64(1), stack.count(t, "SELECT COUNT(*) FROM users WHERE username = $1", "dup"))
	})

	t.Run("login after registration", func(t *testing.T) {
		stack.register(t, "login-user")

		token, err := stack.auth.Login(ctx, "login-user", "password")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		_, err = stack.auth.Login(ctx, "login-user", "wrong")
		assert.ErrorIs(t, err, services.ErrInvalidCredentials)
	})

	t.Run("ana earns points and the badge", func(t *testing.T) {
		ana := stack.register(t, "ana")

		var last *models.CompletionResult
		for i, id := range challenges {
			res, err := stack.scoring.CompleteChallenge(ctx, ana, id, day1)
			require.NoError(t, err)
			assert.True(t, res.Completed)
			assert.Equal(t, int64(10*(i+1)), res.Points)
			last = res
		}
		assert.Equal(t, "Novice Activist", last.BadgeAwarded)

		again, err := stack.scoring.CompleteChallenge(ctx, ana, challenges[0], day1)
		require.NoError(t, err)
		assert.True(t, again.AlreadyCompletedToday)
		assert.False(t, again.Completed)
		assert.Equal(t, int64(50), again.Points)

		next, err := stack.scoring.CompleteChallenge(ctx, ana, challenges[0], day2)
		require.NoError(t, err)
		assert.True(t, next.Completed)
		assert.Equal(t, int64(60), next.Points)
		assert.Empty(t, next.BadgeAwarded, "badge is awarded only once")

		assert.Equal(t, int64(6), stack.count(t, "SELECT COUNT(*) FROM completions WHERE user_id = $1", ana))
		assert.Equal(t, int64(1), stack.count(t, "SELECT COUNT(*) FROM badges WHERE user_id = $1", ana))
		assert.Equal(t, int64(60), stack.count(t, "SELECT COALESCE(SUM(points), 0) FROM completions WHERE user_id = $1", ana))
	})

	t.Run("unknown challenge and user", func(t *testing.T) {
		user := stack.register(t, "lost")

		_, err := stack.scoring.CompleteChallenge(ctx, user, 999999, day1)
		assert.ErrorIs(t, err, services.ErrChallengeNotFound)

		_, err = stack.scoring.CompleteChallenge(ctx, uuid.New(), challenges[0], day1)
		assert.ErrorIs(t, err, services.ErrUserNotFound)

		assert.Equal(t, int64(0), stack.count(t, "SELECT COUNT(*) FROM completions WHERE user_id = $1", user))
	})

	t.Run("concurrent completions of the same challenge succeed once", func(t *testing.T) {
		user := stack.register(t, "racer")
		const workers = 8

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			completed int
			already   int
			failures  []error
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := stack.scoring.CompleteChallenge(ctx, user, challenges[1], day1)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err != nil:
					failures = append(failures, err)
				case res.Completed:
					completed++
				case res.AlreadyCompletedToday:
					already++
				}
			}()
		}
		wg.Wait()

		assert.Empty(t, failures)
		assert.Equal(t, 1, completed)
		assert.Equal(t, workers-1, already)
		assert.Equal(t, int64(1), stack.count(t, "SELECT COUNT(*) FROM completions WHERE user_id = $1", user))

		stored, err := stack.users.GetByID(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(10), stored.Points)
	})

	t.Run("concurrent threshold crossings award one badge", func(t *testing.T) {
		user := stack.register(t, "sprinter")

		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			awarded  int
			failures []error
		)
		for _, id := range challenges {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				res, err := stack.scoring.CompleteChallenge(ctx, user, id, day1)
				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					failures = append(failures, err)
					return
				}
				if res.BadgeAwarded != "" {
					awarded++
				}
			}(id)
		}
		wg.Wait()

		assert.Empty(t, failures)
		assert.Equal(t, 1, awarded)
		assert.Equal(t, int64(1), stack.count(t, "SELECT COUNT(*) FROM badges WHERE user_id = $1", user))

		stored, err := stack.users.GetByID(ctx, user)
		require.NoError(t, err)
		assert.Equal(t, int64(50), stored.Points)
		assert.Equal(t, stored.Points, stack.count(t, "SELECT COALESCE(SUM(points), 0) FROM completions WHERE user_id = $1", user))
	})
}
