package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/moundworks/diceball/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) waitingSession() *models.Session {
	return &models.Session{
		ID:       "test-session-id",
		JoinCode: "ABC234",
		HomePlayer: &models.PlayerSlot{
			UserID:     "home-user-id",
			RosterID:   "home-roster-id",
			RosterName: "Mound City Mashers",
			Connected:  true,
		},
		Status:    models.SessionStatusWaiting,
		State:     models.NewGameState(),
		Moves:     []*models.Move{},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	sess := s.waitingSession()

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{
		Session: sess,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("test-session-id", retrieved.ID)
	s.Equal("ABC234", retrieved.JoinCode)
	s.Equal(models.SessionStatusWaiting, retrieved.Status)
	s.Equal("home-user-id", retrieved.HomePlayer.UserID)
	s.Nil(retrieved.AwayPlayer)
	s.Equal(1, retrieved.State.Inning)
	s.Equal(models.HalfTop, retrieved.State.Half)
	s.Equal(s.testNow.Unix(), retrieved.CreatedAt.Unix())
}

func (s *RedisRepositoryTestSuite) TestGetSession_NotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing-session-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetSessionByJoinCode() {
	sess := s.waitingSession()
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSessionByJoinCode(context.Background(), &GetSessionByJoinCodeInput{
		JoinCode: "ABC234",
	})
	s.Require().NoError(err)
	s.Equal("test-session-id", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestSaveSessionRejectsClaimedJoinCode() {
	first := s.waitingSession()
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: first})
	s.Require().NoError(err)

	// a different waiting session drew the same code; it loses the claim
	second := s.waitingSession()
	second.ID = "other-session-id"
	second.HomePlayer.UserID = "other-user-id"
	err = s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: second})
	s.Require().ErrorIs(err, ErrJoinCodeTaken)

	// the code still resolves to the holder
	retrieved, err := s.repo.GetSessionByJoinCode(context.Background(), &GetSessionByJoinCodeInput{
		JoinCode: "ABC234",
	})
	s.Require().NoError(err)
	s.Equal("test-session-id", retrieved.ID)

	// re-saving the holder with its own code is not a conflict
	err = s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: first})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) TestJoinCodeIndexClearedOnceActive() {
	sess := s.waitingSession()
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	sess.Status = models.SessionStatusActive
	sess.AwayPlayer = &models.PlayerSlot{
		UserID:   "away-user-id",
		RosterID: "away-roster-id",
	}
	err = s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	// the code no longer resolves; it may be reused by a new waiting session
	_, err = s.repo.GetSessionByJoinCode(context.Background(), &GetSessionByJoinCodeInput{
		JoinCode: "ABC234",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetOpenSessionByUser() {
	sess := s.waitingSession()
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetOpenSessionByUser(context.Background(), &GetOpenSessionByUserInput{
		UserID: "home-user-id",
	})
	s.Require().NoError(err)
	s.Equal("test-session-id", retrieved.ID)

	// both participants are indexed once the away seat fills
	sess.Status = models.SessionStatusActive
	sess.AwayPlayer = &models.PlayerSlot{UserID: "away-user-id", RosterID: "away-roster-id"}
	err = s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	retrieved, err = s.repo.GetOpenSessionByUser(context.Background(), &GetOpenSessionByUserInput{
		UserID: "away-user-id",
	})
	s.Require().NoError(err)
	s.Equal("test-session-id", retrieved.ID)
}

func (s *RedisRepositoryTestSuite) TestUserIndexClearedOnTerminalStatus() {
	sess := s.waitingSession()
	sess.Status = models.SessionStatusActive
	sess.AwayPlayer = &models.PlayerSlot{UserID: "away-user-id", RosterID: "away-roster-id"}
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	sess.Status = models.SessionStatusForfeit
	sess.WinnerUserID = "home-user-id"
	err = s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	for _, userID := range []string{"home-user-id", "away-user-id"} {
		_, err = s.repo.GetOpenSessionByUser(context.Background(), &GetOpenSessionByUserInput{
			UserID: userID,
		})
		s.Require().ErrorIs(err, ErrSessionNotFound)
	}

	// the session itself survives for history
	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)
	s.Equal(models.SessionStatusForfeit, retrieved.Status)
	s.Equal("home-user-id", retrieved.WinnerUserID)
}

func (s *RedisRepositoryTestSuite) TestMoveLogRoundTrips() {
	sess := s.waitingSession()
	sess.Status = models.SessionStatusActive
	sess.AwayPlayer = &models.PlayerSlot{UserID: "away-user-id", RosterID: "away-roster-id"}
	sess.Moves = []*models.Move{
		{
			ID:          "move-1",
			SessionID:   sess.ID,
			UserID:      "away-user-id",
			Die1:        4,
			Die2:        3,
			Outcome:     "single",
			RunsScored:  0,
			Description: "Ramirez lines a single into center field",
			StateAfter:  &models.GameState{Inning: 1, Half: models.HalfTop, Bases: models.BaseState{First: true}},
			Timestamp:   s.testNow,
		},
	}

	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: sess.ID})
	s.Require().NoError(err)
	s.Require().Len(retrieved.Moves, 1)
	s.Equal("single", retrieved.Moves[0].Outcome)
	s.True(retrieved.Moves[0].StateAfter.Bases.First)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	sess := s.waitingSession()
	err := s.repo.SaveSession(context.Background(), &SaveSessionInput{Session: sess})
	s.Require().NoError(err)

	err = s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		SessionID: "test-session-id",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(context.Background(), &GetSessionInput{SessionID: "test-session-id"})
	s.Require().ErrorIs(err, ErrSessionNotFound)

	_, err = s.repo.GetSessionByJoinCode(context.Background(), &GetSessionByJoinCodeInput{JoinCode: "ABC234"})
	s.Require().ErrorIs(err, ErrSessionNotFound)

	_, err = s.repo.GetOpenSessionByUser(context.Background(), &GetOpenSessionByUserInput{UserID: "home-user-id"})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession_NotFound() {
	err := s.repo.DeleteSession(context.Background(), &DeleteSessionInput{
		SessionID: "missing-session-id",
	})
	s.Require().ErrorIs(err, ErrSessionNotFound)
}
