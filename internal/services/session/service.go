package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/moundworks/diceball/internal/engine/inning"
	"github.com/moundworks/diceball/internal/engine/outcome"
	"github.com/moundworks/diceball/internal/models"
	sessionRepo "github.com/moundworks/diceball/internal/repositories/session"
)

// maxApplyAttempts bounds the optimistic retry loop in ApplyMove. The
// loop only repeats when the lineup advanced between the unlocked
// profile fetch and the locked re-validation.
const maxApplyAttempts = 3

// service implements the Service interface. Per-session mutexes
// serialize move application: of two near-simultaneous rolls, the
// second observes the first's state change and is rejected. Collaborator
// I/O (roster lookups) happens outside the lock.
type service struct {
	cfg *Config

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilRepository
	}
	if cfg.RosterService == nil {
		return nil, ErrNilRosterService
	}
	if cfg.Engine == nil {
		return nil, ErrNilEngine
	}
	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.JoinCodes == nil {
		return nil, ErrNilCodeGenerator
	}

	if cfg.JoinCodeAttempts <= 0 {
		cfg.JoinCodeAttempts = defaultJoinCodeAttempts
	}

	return &service{
		cfg:   cfg,
		locks: map[string]*sync.Mutex{},
	}, nil
}

// lockSession acquires the per-session mutex and returns its release
// function.
func (s *service) lockSession(sessionID string) func() {
	s.mu.Lock()
	l, ok := s.locks[sessionID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[sessionID] = l
	}
	s.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// dropLock forgets a terminal session's mutex. Terminal sessions are
// immutable, so later callers only need status checks.
func (s *service) dropLock(sessionID string) {
	s.mu.Lock()
	delete(s.locks, sessionID)
	s.mu.Unlock()
}

// checkRoster validates ownership and completeness, returning the
// roster's display name.
func (s *service) checkRoster(ctx context.Context, userID, rosterID string) (string, error) {
	owned, err := s.cfg.RosterService.IsOwnedBy(ctx, userID, rosterID)
	if err != nil {
		return "", fmt.Errorf("failed to check roster ownership: %w", err)
	}
	if !owned {
		return "", ErrRosterNotOwned
	}

	complete, name, err := s.cfg.RosterService.IsComplete(ctx, rosterID)
	if err != nil {
		return "", fmt.Errorf("failed to check roster completeness: %w", err)
	}
	if !complete {
		return "", ErrRosterIncomplete
	}

	return name, nil
}

// CreateSession opens a new game room with the caller as the home player
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	// One open session per user
	existing, err := s.cfg.SessionRepo.GetOpenSessionByUser(ctx, &sessionRepo.GetOpenSessionByUserInput{
		UserID: input.UserID,
	})
	if err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrActiveSessionExists
	}

	rosterName, err := s.checkRoster(ctx, input.UserID, input.RosterID)
	if err != nil {
		return nil, err
	}

	now := s.cfg.Clock.Now()
	sess := &models.Session{
		ID: s.cfg.UUIDGenerator.NewUUID(),
		HomePlayer: &models.PlayerSlot{
			UserID:       input.UserID,
			RosterID:     input.RosterID,
			RosterName:   rosterName,
			LastActiveAt: now,
		},
		Status:    models.SessionStatusWaiting,
		State:     models.NewGameState(),
		Moves:     []*models.Move{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Draw codes until one is free among currently waiting sessions
	for attempt := 0; attempt < s.cfg.JoinCodeAttempts; attempt++ {
		code := s.cfg.JoinCodes.Generate()
		_, err := s.cfg.SessionRepo.GetSessionByJoinCode(ctx, &sessionRepo.GetSessionByJoinCodeInput{
			JoinCode: code,
		})
		if err == nil {
			continue
		}
		if !errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, err
		}

		sess.JoinCode = code
		if err := s.cfg.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
			Session: sess,
		}); err != nil {
			// a concurrent create claimed the code between the lookup
			// and the save; draw another
			if errors.Is(err, sessionRepo.ErrJoinCodeTaken) {
				continue
			}
			return nil, err
		}
		return &CreateSessionOutput{Session: sess}, nil
	}

	return nil, ErrJoinCodeExhausted
}

// resolveSessionID maps a join input to a session ID.
func (s *service) resolveSessionID(ctx context.Context, input *JoinSessionInput) (string, error) {
	if input.SessionID != "" {
		return input.SessionID, nil
	}

	sess, err := s.cfg.SessionRepo.GetSessionByJoinCode(ctx, &sessionRepo.GetSessionByJoinCodeInput{
		JoinCode: input.JoinCode,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return "", ErrSessionNotFound
		}
		return "", err
	}
	return sess.ID, nil
}

// JoinSession seats the caller as the away player and starts the game
func (s *service) JoinSession(ctx context.Context, input *JoinSessionInput) (*JoinSessionOutput, error) {
	// The joiner must also be free of open sessions
	existing, err := s.cfg.SessionRepo.GetOpenSessionByUser(ctx, &sessionRepo.GetOpenSessionByUserInput{
		UserID: input.UserID,
	})
	if err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrActiveSessionExists
	}

	rosterName, err := s.checkRoster(ctx, input.UserID, input.RosterID)
	if err != nil {
		return nil, err
	}

	sessionID, err := s.resolveSessionID(ctx, input)
	if err != nil {
		return nil, err
	}

	unlock := s.lockSession(sessionID)
	defer unlock()

	// Re-fetch under the lock: a concurrent join loses here
	sess, err := s.getSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.SessionStatusWaiting {
		return nil, ErrInvalidSessionState
	}
	if sess.HomePlayer.UserID == input.UserID {
		return nil, ErrSelfJoin
	}

	now := s.cfg.Clock.Now()
	sess.AwayPlayer = &models.PlayerSlot{
		UserID:       input.UserID,
		RosterID:     input.RosterID,
		RosterName:   rosterName,
		LastActiveAt: now,
	}
	sess.Status = models.SessionStatusActive
	sess.StartedAt = now
	sess.UpdatedAt = now

	if err := s.cfg.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}); err != nil {
		return nil, err
	}

	return &JoinSessionOutput{Session: sess}, nil
}

// matchup identifies who bats and who pitches for the current half.
type matchup struct {
	battingSlot  *models.PlayerSlot
	pitchingSlot *models.PlayerSlot
	batterIndex  int
}

func currentMatchup(sess *models.Session) matchup {
	if sess.State.Half == models.HalfTop {
		return matchup{
			battingSlot:  sess.AwayPlayer,
			pitchingSlot: sess.HomePlayer,
			batterIndex:  sess.State.AwayBatterIndex,
		}
	}
	return matchup{
		battingSlot:  sess.HomePlayer,
		pitchingSlot: sess.AwayPlayer,
		batterIndex:  sess.State.HomeBatterIndex,
	}
}

// validateMove re-checks the turn rule against a fresh session.
func validateMove(sess *models.Session, userID string) error {
	if sess.Status != models.SessionStatusActive {
		return ErrInvalidSessionState
	}
	if !sess.Participant(userID) {
		return ErrNotParticipant
	}
	if sess.OnTheClock() != userID {
		return ErrNotYourTurn
	}
	return nil
}

// ApplyMove resolves one at-bat for the player on the clock
func (s *service) ApplyMove(ctx context.Context, input *ApplyMoveInput) (*ApplyMoveOutput, error) {
	for attempt := 0; attempt < maxApplyAttempts; attempt++ {
		// Unlocked pass: validate cheaply and fetch the stat snapshots
		// without holding the session lock across collaborator I/O.
		sess, err := s.getSession(ctx, input.SessionID)
		if err != nil {
			return nil, err
		}
		if err := validateMove(sess, input.UserID); err != nil {
			return nil, err
		}

		m := currentMatchup(sess)
		batter, err := s.cfg.RosterService.GetBatter(ctx, m.battingSlot.RosterID, m.batterIndex)
		if err != nil {
			return nil, fmt.Errorf("failed to get batter profile: %w", err)
		}
		pitcher, err := s.cfg.RosterService.GetPitcher(ctx, m.pitchingSlot.RosterID)
		if err != nil {
			return nil, fmt.Errorf("failed to get pitcher profile: %w", err)
		}

		output, retry, err := s.applyLocked(ctx, input, m, batter, pitcher)
		if err != nil {
			return nil, err
		}
		if retry {
			// the lineup moved underneath us; fetch the right batter
			continue
		}
		return output, nil
	}

	return nil, ErrMoveConflict
}

// applyLocked performs the locked portion of ApplyMove. retry is true
// when the prefetched batter no longer matches the lineup.
func (s *service) applyLocked(ctx context.Context, input *ApplyMoveInput, m matchup, batter models.BattingProfile, pitcher models.PitchingProfile) (*ApplyMoveOutput, bool, error) {
	unlock := s.lockSession(input.SessionID)
	defer unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, false, err
	}
	if err := validateMove(sess, input.UserID); err != nil {
		return nil, false, err
	}

	fresh := currentMatchup(sess)
	if fresh.batterIndex != m.batterIndex {
		return nil, true, nil
	}

	die1, die2 := s.cfg.DiceRoller.RollPair()
	draw := s.cfg.DiceRoller.Float64()
	kind := s.cfg.Engine.Resolve(batter, pitcher, die1, die2, draw)

	state := sess.State
	newBases, runs := outcome.Advance(kind, state.Bases)
	state.Bases = newBases
	outs := outcome.Outs(kind)

	if state.Half == models.HalfTop {
		state.AwayBatterIndex++
	} else {
		state.HomeBatterIndex++
	}

	result := inning.Apply(state, runs, outs)

	now := s.cfg.Clock.Now()
	description := outcome.Describe(kind, batter.Name, runs, s.cfg.DiceRoller.Float64())

	move := &models.Move{
		ID:           s.cfg.UUIDGenerator.NewUUID(),
		SessionID:    sess.ID,
		UserID:       input.UserID,
		Die1:         die1,
		Die2:         die2,
		Outcome:      string(kind),
		RunsScored:   runs,
		OutsRecorded: outs,
		BatterRef:    batter.PlayerRef,
		PitcherRef:   pitcher.PlayerRef,
		Description:  description,
		StateAfter:   state.Clone(),
		Timestamp:    now,
	}
	sess.Moves = append(sess.Moves, move)

	if slot := sess.Slot(input.UserID); slot != nil {
		slot.LastActiveAt = now
	}

	terminal := false
	switch result {
	case inning.ResultHomeWin:
		s.endLocked(sess, sess.HomePlayer.UserID, now)
		terminal = true
	case inning.ResultAwayWin:
		s.endLocked(sess, sess.AwayPlayer.UserID, now)
		terminal = true
	}
	sess.UpdatedAt = now

	if err := s.cfg.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}); err != nil {
		return nil, false, err
	}

	if terminal {
		s.dropLock(sess.ID)
	}

	return &ApplyMoveOutput{Move: move, Session: sess}, false, nil
}

// endLocked stamps the terminal fields for a completed game. Callers
// hold the session lock.
func (s *service) endLocked(sess *models.Session, winnerUserID string, now time.Time) {
	sess.Status = models.SessionStatusCompleted
	sess.WinnerUserID = winnerUserID
	if sess.State != nil {
		sess.State.GameOver = true
		sess.State.WinnerUserID = winnerUserID
	}
	sess.EndedAt = now
}

// Forfeit concedes an active session; the opponent wins
func (s *service) Forfeit(ctx context.Context, input *ForfeitInput) (*ForfeitOutput, error) {
	unlock := s.lockSession(input.SessionID)
	defer unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.SessionStatusActive {
		return nil, ErrInvalidSessionState
	}
	if !sess.Participant(input.UserID) {
		return nil, ErrNotParticipant
	}

	now := s.cfg.Clock.Now()
	sess.Status = models.SessionStatusForfeit
	sess.WinnerUserID = sess.Opponent(input.UserID)
	if sess.State != nil {
		sess.State.GameOver = true
		sess.State.WinnerUserID = sess.WinnerUserID
	}
	sess.EndedAt = now
	sess.UpdatedAt = now

	if err := s.cfg.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}); err != nil {
		return nil, err
	}
	s.dropLock(sess.ID)

	return &ForfeitOutput{Session: sess}, nil
}

// CompleteSession marks an active session finished with the given winner
func (s *service) CompleteSession(ctx context.Context, input *CompleteSessionInput) (*CompleteSessionOutput, error) {
	unlock := s.lockSession(input.SessionID)
	defer unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.SessionStatusActive {
		return nil, ErrInvalidSessionState
	}
	if !sess.Participant(input.WinnerUserID) {
		return nil, ErrNotParticipant
	}

	now := s.cfg.Clock.Now()
	sess.Status = models.SessionStatusCompleted
	sess.WinnerUserID = input.WinnerUserID
	if sess.State != nil {
		sess.State.GameOver = true
		sess.State.WinnerUserID = input.WinnerUserID
	}
	sess.EndedAt = now
	sess.UpdatedAt = now

	if err := s.cfg.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}); err != nil {
		return nil, err
	}
	s.dropLock(sess.ID)

	return &CompleteSessionOutput{Session: sess}, nil
}

// CancelSession abandons a waiting session; only the creator may cancel
func (s *service) CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error) {
	unlock := s.lockSession(input.SessionID)
	defer unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status != models.SessionStatusWaiting {
		return nil, ErrInvalidSessionState
	}
	if sess.HomePlayer == nil || sess.HomePlayer.UserID != input.UserID {
		return nil, ErrNotCreator
	}

	now := s.cfg.Clock.Now()
	sess.Status = models.SessionStatusAbandoned
	sess.EndedAt = now
	sess.UpdatedAt = now

	if err := s.cfg.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}); err != nil {
		return nil, err
	}
	s.dropLock(sess.ID)

	return &CancelSessionOutput{Session: sess}, nil
}

// SetConnected records a participant's liveness change. Terminal
// sessions are returned unchanged so late disconnect events from the
// transport stay harmless.
func (s *service) SetConnected(ctx context.Context, input *SetConnectedInput) (*SetConnectedOutput, error) {
	unlock := s.lockSession(input.SessionID)
	defer unlock()

	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}

	if sess.Status.Terminal() {
		return &SetConnectedOutput{Session: sess}, nil
	}

	slot := sess.Slot(input.UserID)
	if slot == nil {
		return nil, ErrNotParticipant
	}

	now := s.cfg.Clock.Now()
	slot.Connected = input.Connected
	slot.LastActiveAt = now
	sess.UpdatedAt = now

	if err := s.cfg.SessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: sess,
	}); err != nil {
		return nil, err
	}

	return &SetConnectedOutput{Session: sess}, nil
}

// GetSession retrieves a session by ID for a participant
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	sess, err := s.getSession(ctx, input.SessionID)
	if err != nil {
		return nil, err
	}
	return &GetSessionOutput{Session: sess}, nil
}

// getSession maps repository not-found errors to the service sentinel.
func (s *service) getSession(ctx context.Context, sessionID string) (*models.Session, error) {
	sess, err := s.cfg.SessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return sess, nil
}
