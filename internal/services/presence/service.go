package presence

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/moundworks/diceball/internal/models"
	"github.com/moundworks/diceball/internal/services/session"
)

// service implements the Service interface. One grace timer exists per
// (session, user) pair; reconnecting cancels it, expiry forfeits the
// session if the player is still gone.
type service struct {
	cfg *Config

	mu     sync.Mutex
	timers map[timerKey]*time.Timer
}

type timerKey struct {
	sessionID string
	userID    string
}

// New creates a new presence service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionService == nil {
		return nil, ErrNilSessionService
	}

	if cfg.Grace <= 0 {
		cfg.Grace = DefaultGrace
	}

	return &service{
		cfg:    cfg,
		timers: map[timerKey]*time.Timer{},
	}, nil
}

// HandleConnect records a participant coming online and cancels any
// pending grace timer for them
func (s *service) HandleConnect(ctx context.Context, input *HandleConnectInput) (*HandleConnectOutput, error) {
	s.cancelTimer(timerKey{sessionID: input.SessionID, userID: input.UserID})

	output, err := s.cfg.SessionService.SetConnected(ctx, &session.SetConnectedInput{
		SessionID: input.SessionID,
		UserID:    input.UserID,
		Connected: true,
	})
	if err != nil {
		return nil, err
	}

	return &HandleConnectOutput{Session: output.Session}, nil
}

// HandleDisconnect records a participant going offline and arms the
// grace timer
func (s *service) HandleDisconnect(ctx context.Context, input *HandleDisconnectInput) (*HandleDisconnectOutput, error) {
	output, err := s.cfg.SessionService.SetConnected(ctx, &session.SetConnectedInput{
		SessionID: input.SessionID,
		UserID:    input.UserID,
		Connected: false,
	})
	if err != nil {
		return nil, err
	}

	// Only an in-progress game can be forfeited by absence
	if output.Session.Status == models.SessionStatusActive {
		s.armTimer(timerKey{sessionID: input.SessionID, userID: input.UserID})
	}

	return &HandleDisconnectOutput{Session: output.Session}, nil
}

// Grace returns the disconnect grace period, so transports can tell
// the surviving player how long the clock runs
func (s *service) Grace() time.Duration {
	return s.cfg.Grace
}

// Stop cancels all pending grace timers
func (s *service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, timer := range s.timers {
		timer.Stop()
		delete(s.timers, key)
	}
}

func (s *service) cancelTimer(key timerKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[key]; ok {
		timer.Stop()
		delete(s.timers, key)
	}
}

// armTimer replaces any existing timer for the key.
func (s *service) armTimer(key timerKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.timers[key]; ok {
		timer.Stop()
	}
	s.timers[key] = time.AfterFunc(s.cfg.Grace, func() {
		s.expire(key)
	})
}

// expire runs when a grace timer fires. The session is re-read so a
// reconnect or game end that raced the timer wins.
func (s *service) expire(key timerKey) {
	s.mu.Lock()
	if _, ok := s.timers[key]; !ok {
		// cancelled between firing and running
		s.mu.Unlock()
		return
	}
	delete(s.timers, key)
	s.mu.Unlock()

	ctx := context.Background()

	getOutput, err := s.cfg.SessionService.GetSession(ctx, &session.GetSessionInput{
		SessionID: key.sessionID,
	})
	if err != nil {
		if !errors.Is(err, session.ErrSessionNotFound) {
			log.Printf("presence: failed to load session %s on grace expiry: %v", key.sessionID, err)
		}
		return
	}

	sess := getOutput.Session
	if sess.Status != models.SessionStatusActive {
		return
	}
	if slot := sess.Slot(key.userID); slot == nil || slot.Connected {
		return
	}

	forfeitOutput, err := s.cfg.SessionService.Forfeit(ctx, &session.ForfeitInput{
		SessionID: key.sessionID,
		UserID:    key.userID,
	})
	if err != nil {
		// ErrInvalidSessionState means the game ended while we were
		// deciding; nothing to do
		if !errors.Is(err, session.ErrInvalidSessionState) {
			log.Printf("presence: failed to forfeit session %s on grace expiry: %v", key.sessionID, err)
		}
		return
	}

	log.Printf("presence: session %s forfeited, %s exceeded the disconnect grace period", key.sessionID, key.userID)

	if s.cfg.Notifier != nil {
		s.cfg.Notifier.SessionForfeited(forfeitOutput.Session)
	}
}
