package baserunning

import (
	"testing"

	"github.com/moundworks/diceball/internal/models"
	"github.com/stretchr/testify/suite"
)

type ResolverTestSuite struct {
	suite.Suite
}

func TestResolverTestSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func bases(first, second, third bool) models.BaseState {
	return models.BaseState{First: first, Second: second, Third: third}
}

func (s *ResolverTestSuite) TestHomeRun_BasesEmpty() {
	next, runs := HomeRun(bases(false, false, false))
	s.Equal(1, runs)
	s.Equal(bases(false, false, false), next)
}

func (s *ResolverTestSuite) TestHomeRun_BasesLoaded() {
	next, runs := HomeRun(bases(true, true, true))
	s.Equal(4, runs)
	s.Equal(bases(false, false, false), next)
}

func (s *ResolverTestSuite) TestTriple_ClearsBasesAndScoresAll() {
	next, runs := Triple(bases(true, false, true))
	s.Equal(2, runs)
	s.Equal(bases(false, false, true), next)
}

func (s *ResolverTestSuite) TestDouble_ScoresSecondAndThird() {
	next, runs := Double(bases(true, true, true))
	s.Equal(2, runs)
	s.Equal(bases(false, true, true), next)
}

func (s *ResolverTestSuite) TestDouble_RunnerOnFirstHoldsAtThird() {
	next, runs := Double(bases(true, false, false))
	s.Equal(0, runs)
	s.Equal(bases(false, true, true), next)
}

func (s *ResolverTestSuite) TestSingle_RunnerOnThirdScores() {
	next, runs := Single(bases(false, false, true))
	s.Equal(1, runs)
	s.Equal(bases(true, false, false), next)
}

func (s *ResolverTestSuite) TestSingle_EveryoneMovesUpOne() {
	next, runs := Single(bases(true, true, false))
	s.Equal(0, runs)
	s.Equal(bases(true, true, true), next)
}

func (s *ResolverTestSuite) TestWalk_BasesLoadedForcesInARun() {
	next, runs := Walk(bases(true, true, true))
	s.Equal(1, runs)
	s.Equal(bases(true, true, true), next)
}

func (s *ResolverTestSuite) TestWalk_OnlyFirstOccupied() {
	next, runs := Walk(bases(true, false, false))
	s.Equal(0, runs)
	s.Equal(bases(true, true, false), next)
}

func (s *ResolverTestSuite) TestWalk_UnforcedRunnersHold() {
	// runner on second is not forced; batter just takes first
	next, runs := Walk(bases(false, true, false))
	s.Equal(0, runs)
	s.Equal(bases(true, true, false), next)
}

func (s *ResolverTestSuite) TestWalk_FirstAndThirdLeavesThirdAlone() {
	next, runs := Walk(bases(true, false, true))
	s.Equal(0, runs)
	s.Equal(bases(true, true, true), next)
}

func (s *ResolverTestSuite) TestWalk_FirstAndSecondForcesChain() {
	next, runs := Walk(bases(true, true, false))
	s.Equal(0, runs)
	s.Equal(bases(true, true, true), next)
}

func (s *ResolverTestSuite) TestHold_LeavesRunnersInPlace() {
	next, runs := Hold(bases(true, false, true))
	s.Equal(0, runs)
	s.Equal(bases(true, false, true), next)
}
