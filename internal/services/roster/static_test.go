package roster

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/moundworks/diceball/internal/models"
)

type staticRosterTestSuite struct {
	suite.Suite
	ctx    context.Context
	source *Static
}

func (s *staticRosterTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.source = NewStatic(map[string]StaticRoster{
		"owned": {
			OwnerUserID: "user-1",
			Name:        "Harbor Cats",
			Lineup: []models.BattingProfile{
				{PlayerRef: "b1", Name: "Vasquez"},
				{PlayerRef: "b2", Name: "Okafor"},
				{PlayerRef: "b3", Name: "Brandt"},
			},
			Pitcher: models.PitchingProfile{PlayerRef: "p1", Name: "Alvarado"},
		},
		"open": {
			Name: "Sandlot Mix",
			Lineup: []models.BattingProfile{
				{PlayerRef: "b4", Name: "Shen"},
			},
			Pitcher: models.PitchingProfile{PlayerRef: "p2", Name: "Sorensen"},
		},
		"empty": {
			OwnerUserID: "user-1",
			Name:        "Draft In Progress",
		},
	})
}

func TestStaticRosterSuite(t *testing.T) {
	suite.Run(t, new(staticRosterTestSuite))
}

func (s *staticRosterTestSuite) TestIsOwnedBy() {
	owned, err := s.source.IsOwnedBy(s.ctx, "user-1", "owned")
	s.Require().NoError(err)
	s.True(owned)

	owned, err = s.source.IsOwnedBy(s.ctx, "user-2", "owned")
	s.Require().NoError(err)
	s.False(owned)

	// ownerless rosters are playable by anyone
	owned, err = s.source.IsOwnedBy(s.ctx, "user-2", "open")
	s.Require().NoError(err)
	s.True(owned)

	owned, err = s.source.IsOwnedBy(s.ctx, "user-1", "missing")
	s.Require().NoError(err)
	s.False(owned)
}

func (s *staticRosterTestSuite) TestIsComplete() {
	complete, name, err := s.source.IsComplete(s.ctx, "owned")
	s.Require().NoError(err)
	s.True(complete)
	s.Equal("Harbor Cats", name)

	complete, name, err = s.source.IsComplete(s.ctx, "empty")
	s.Require().NoError(err)
	s.False(complete)
	s.Equal("Draft In Progress", name)

	_, _, err = s.source.IsComplete(s.ctx, "missing")
	s.ErrorIs(err, ErrRosterNotFound)
}

func (s *staticRosterTestSuite) TestGetBatterWrapsLineup() {
	batter, err := s.source.GetBatter(s.ctx, "owned", 0)
	s.Require().NoError(err)
	s.Equal("Vasquez", batter.Name)

	// index 4 wraps to the second lineup slot
	batter, err = s.source.GetBatter(s.ctx, "owned", 4)
	s.Require().NoError(err)
	s.Equal("Okafor", batter.Name)

	_, err = s.source.GetBatter(s.ctx, "empty", 0)
	s.Require().Error(err)
}

func (s *staticRosterTestSuite) TestGetPitcher() {
	pitcher, err := s.source.GetPitcher(s.ctx, "owned")
	s.Require().NoError(err)
	s.Equal("Alvarado", pitcher.Name)

	_, err = s.source.GetPitcher(s.ctx, "missing")
	s.ErrorIs(err, ErrRosterNotFound)
}

func (s *staticRosterTestSuite) TestDemoRostersAreComplete() {
	demo := NewStatic(DemoRosters())

	for _, id := range []string{"demo-harbor-cats", "demo-river-hawks"} {
		complete, name, err := demo.IsComplete(s.ctx, id)
		s.Require().NoError(err)
		s.True(complete)
		s.NotEmpty(name)
	}
}
