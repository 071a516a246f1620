package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/moundworks/diceball/internal/models"
	"github.com/moundworks/diceball/internal/services/identity"
	"github.com/moundworks/diceball/internal/services/presence"
	presencemock "github.com/moundworks/diceball/internal/services/presence/mocks"
	"github.com/moundworks/diceball/internal/services/session"
	sessionmock "github.com/moundworks/diceball/internal/services/session/mocks"
)

const (
	testSessionID = "session-1"
	testHomeUser  = "user-home"
	testAwayUser  = "user-away"
	testGrace     = 45 * time.Second
	readTimeout   = 2 * time.Second
)

type wsHandlerTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	mockSessions *sessionmock.MockService
	mockPresence *presencemock.MockService

	handler *Handler
	server  *httptest.Server
	conns   []*websocket.Conn
}

func (s *wsHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockSessions = sessionmock.NewMockService(s.ctrl)
	s.mockPresence = presencemock.NewMockService(s.ctrl)

	handler, err := NewHandler(&Config{
		SessionService:  s.mockSessions,
		PresenceService: s.mockPresence,
		Identity:        identity.Insecure{},
	}, NewHub())
	s.Require().NoError(err)
	s.handler = handler
	s.server = httptest.NewServer(handler)
	s.conns = nil

	// every attached connection reports a disconnect when it closes
	s.mockPresence.EXPECT().
		HandleDisconnect(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *presence.HandleDisconnectInput) (*presence.HandleDisconnectOutput, error) {
			return &presence.HandleDisconnectOutput{Session: s.activeSession()}, nil
		}).
		AnyTimes()
	s.mockPresence.EXPECT().
		Grace().
		Return(testGrace).
		AnyTimes()
}

func (s *wsHandlerTestSuite) TearDownTest() {
	for _, conn := range s.conns {
		conn.Close()
	}
	s.server.Close()
	s.ctrl.Finish()
}

func TestWSHandlerSuite(t *testing.T) {
	suite.Run(t, new(wsHandlerTestSuite))
}

func (s *wsHandlerTestSuite) activeSession() *models.Session {
	return &models.Session{
		ID: testSessionID,
		HomePlayer: &models.PlayerSlot{
			UserID:   testHomeUser,
			RosterID: "roster-home",
		},
		AwayPlayer: &models.PlayerSlot{
			UserID:   testAwayUser,
			RosterID: "roster-away",
		},
		Status: models.SessionStatusActive,
		State:  models.NewGameState(),
	}
}

func (s *wsHandlerTestSuite) wsURL(query string) string {
	return "ws" + strings.TrimPrefix(s.server.URL, "http") + "/?" + query
}

func (s *wsHandlerTestSuite) dial(query string) *websocket.Conn {
	conn, _, err := websocket.DefaultDialer.Dial(s.wsURL(query), nil)
	s.Require().NoError(err)
	s.conns = append(s.conns, conn)
	return conn
}

func (s *wsHandlerTestSuite) readEvent(conn *websocket.Conn) Envelope {
	conn.SetReadDeadline(time.Now().Add(readTimeout))
	_, raw, err := conn.ReadMessage()
	s.Require().NoError(err)

	var env Envelope
	s.Require().NoError(json.Unmarshal(raw, &env))
	return env
}

func (s *wsHandlerTestSuite) writeEvent(conn *websocket.Conn, eventType string, data any) {
	payload, err := json.Marshal(data)
	s.Require().NoError(err)
	frame, err := json.Marshal(Envelope{Type: eventType, Data: payload})
	s.Require().NoError(err)
	s.Require().NoError(conn.WriteMessage(websocket.TextMessage, frame))
}

// expectAttach wires the mocks for one client attaching via session_id.
func (s *wsHandlerTestSuite) expectAttach(userID string) {
	sess := s.activeSession()
	s.mockSessions.EXPECT().
		GetSession(gomock.Any(), &session.GetSessionInput{SessionID: testSessionID}).
		Return(&session.GetSessionOutput{Session: sess}, nil)
	s.mockPresence.EXPECT().
		HandleConnect(gomock.Any(), &presence.HandleConnectInput{
			SessionID: testSessionID,
			UserID:    userID,
		}).
		Return(&presence.HandleConnectOutput{Session: sess}, nil)
}

func (s *wsHandlerTestSuite) TestRejectsMissingToken() {
	_, resp, err := websocket.DefaultDialer.Dial(s.wsURL("session_id="+testSessionID), nil)
	s.Require().Error(err)
	s.Require().NotNil(resp)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *wsHandlerTestSuite) TestAttachSendsState() {
	s.expectAttach(testHomeUser)

	conn := s.dial("token=" + testHomeUser + "&session_id=" + testSessionID)

	env := s.readEvent(conn)
	s.Equal(EventState, env.Type)

	var data StateData
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(testSessionID, data.Session.ID)
}

func (s *wsHandlerTestSuite) TestAttachRejectsNonParticipant() {
	s.mockSessions.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(&session.GetSessionOutput{Session: s.activeSession()}, nil)

	conn := s.dial("token=user-stranger&session_id=" + testSessionID)

	env := s.readEvent(conn)
	s.Equal(EventError, env.Type)

	var data ErrorData
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal("not_participant", data.Code)
}

func (s *wsHandlerTestSuite) TestSecondAttachNotifiesOpponent() {
	s.expectAttach(testHomeUser)
	s.expectAttach(testAwayUser)

	homeConn := s.dial("token=" + testHomeUser + "&session_id=" + testSessionID)
	s.Equal(EventState, s.readEvent(homeConn).Type)

	awayConn := s.dial("token=" + testAwayUser + "&session_id=" + testSessionID)
	s.Equal(EventState, s.readEvent(awayConn).Type)

	env := s.readEvent(homeConn)
	s.Equal(EventOpponentConnected, env.Type)

	var data PresenceData
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(testAwayUser, data.UserID)
}

func (s *wsHandlerTestSuite) TestJoinByCode() {
	joined := s.activeSession()
	s.mockSessions.EXPECT().
		JoinSession(gomock.Any(), &session.JoinSessionInput{
			JoinCode: "ABC234",
			UserID:   testAwayUser,
			RosterID: "roster-away",
		}).
		Return(&session.JoinSessionOutput{Session: joined}, nil)
	s.mockPresence.EXPECT().
		HandleConnect(gomock.Any(), gomock.Any()).
		Return(&presence.HandleConnectOutput{Session: joined}, nil)

	conn := s.dial("token=" + testAwayUser)
	s.writeEvent(conn, EventJoin, JoinData{JoinCode: "ABC234", RosterID: "roster-away"})

	env := s.readEvent(conn)
	s.Equal(EventState, env.Type)

	var data StateData
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(models.SessionStatusActive, data.Session.Status)
}

func (s *wsHandlerTestSuite) TestRollBroadcastsToBothPlayers() {
	s.expectAttach(testHomeUser)
	s.expectAttach(testAwayUser)

	homeConn := s.dial("token=" + testHomeUser + "&session_id=" + testSessionID)
	s.Equal(EventState, s.readEvent(homeConn).Type)
	awayConn := s.dial("token=" + testAwayUser + "&session_id=" + testSessionID)
	s.Equal(EventState, s.readEvent(awayConn).Type)
	s.Equal(EventOpponentConnected, s.readEvent(homeConn).Type)

	after := s.activeSession()
	after.State.AwayBatterIndex = 1
	move := &models.Move{
		ID:        "move-1",
		SessionID: testSessionID,
		UserID:    testAwayUser,
		Die1:      3,
		Die2:      4,
		Outcome:   "single",
	}
	s.mockSessions.EXPECT().
		ApplyMove(gomock.Any(), &session.ApplyMoveInput{
			SessionID: testSessionID,
			UserID:    testAwayUser,
		}).
		Return(&session.ApplyMoveOutput{Move: move, Session: after}, nil)

	s.writeEvent(awayConn, EventRoll, struct{}{})

	for _, conn := range []*websocket.Conn{homeConn, awayConn} {
		env := s.readEvent(conn)
		s.Equal(EventRollResult, env.Type)

		var data RollResultData
		s.Require().NoError(json.Unmarshal(env.Data, &data))
		s.Equal("move-1", data.Move.ID)
		s.Equal("single", data.Move.Outcome)
	}
}

func (s *wsHandlerTestSuite) TestRollOutOfTurnSendsErrorToCallerOnly() {
	s.expectAttach(testHomeUser)

	conn := s.dial("token=" + testHomeUser + "&session_id=" + testSessionID)
	s.Equal(EventState, s.readEvent(conn).Type)

	s.mockSessions.EXPECT().
		ApplyMove(gomock.Any(), gomock.Any()).
		Return(nil, session.ErrNotYourTurn)

	s.writeEvent(conn, EventRoll, struct{}{})

	env := s.readEvent(conn)
	s.Equal(EventError, env.Type)

	var data ErrorData
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal("not_your_turn", data.Code)
}

func (s *wsHandlerTestSuite) TestGameEndBroadcastsEnded() {
	s.expectAttach(testAwayUser)

	conn := s.dial("token=" + testAwayUser + "&session_id=" + testSessionID)
	s.Equal(EventState, s.readEvent(conn).Type)

	after := s.activeSession()
	after.Status = models.SessionStatusCompleted
	after.WinnerUserID = testAwayUser
	s.mockSessions.EXPECT().
		ApplyMove(gomock.Any(), gomock.Any()).
		Return(&session.ApplyMoveOutput{Move: &models.Move{ID: "move-9"}, Session: after}, nil)

	s.writeEvent(conn, EventRoll, struct{}{})

	s.Equal(EventRollResult, s.readEvent(conn).Type)

	env := s.readEvent(conn)
	s.Equal(EventEnded, env.Type)

	var data EndedData
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(ReasonCompleted, data.Reason)
	s.Equal(testAwayUser, data.WinnerUserID)
}

func (s *wsHandlerTestSuite) TestForfeitBroadcastsEnded() {
	s.expectAttach(testAwayUser)

	conn := s.dial("token=" + testAwayUser + "&session_id=" + testSessionID)
	s.Equal(EventState, s.readEvent(conn).Type)

	done := s.activeSession()
	done.Status = models.SessionStatusForfeit
	done.WinnerUserID = testHomeUser
	s.mockSessions.EXPECT().
		Forfeit(gomock.Any(), &session.ForfeitInput{
			SessionID: testSessionID,
			UserID:    testAwayUser,
		}).
		Return(&session.ForfeitOutput{Session: done}, nil)

	s.writeEvent(conn, EventForfeit, struct{}{})

	env := s.readEvent(conn)
	s.Equal(EventEnded, env.Type)

	var data EndedData
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(ReasonForfeit, data.Reason)
	s.Equal(testHomeUser, data.WinnerUserID)
}

func (s *wsHandlerTestSuite) TestDisconnectNotifiesOpponentWithGraceWindow() {
	s.expectAttach(testHomeUser)
	s.expectAttach(testAwayUser)

	homeConn := s.dial("token=" + testHomeUser + "&session_id=" + testSessionID)
	s.Equal(EventState, s.readEvent(homeConn).Type)
	awayConn := s.dial("token=" + testAwayUser + "&session_id=" + testSessionID)
	s.Equal(EventState, s.readEvent(awayConn).Type)
	s.Equal(EventOpponentConnected, s.readEvent(homeConn).Type)

	awayConn.Close()

	env := s.readEvent(homeConn)
	s.Equal(EventOpponentDisconnected, env.Type)

	var data PresenceData
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal(testAwayUser, data.UserID)
	s.Equal(int(testGrace.Seconds()), data.TimeoutSeconds)
}

func (s *wsHandlerTestSuite) TestUnknownEventSendsError() {
	s.expectAttach(testHomeUser)

	conn := s.dial("token=" + testHomeUser + "&session_id=" + testSessionID)
	s.Equal(EventState, s.readEvent(conn).Type)

	s.writeEvent(conn, "steal_base", struct{}{})

	env := s.readEvent(conn)
	s.Equal(EventError, env.Type)

	var data ErrorData
	s.Require().NoError(json.Unmarshal(env.Data, &data))
	s.Equal("unknown_event", data.Code)
}
