package presence_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/presence"
)

type TrackerTestSuite struct {
	suite.Suite
	tracker *presence.Tracker
}

func TestTrackerSuite(t *testing.T) {
	suite.Run(t, new(TrackerTestSuite))
}

func (s *TrackerTestSuite) SetupTest() {
	tracker, err := presence.New(&presence.Config{TTL: time.Minute})
	s.Require().NoError(err)
	s.tracker = tracker
}

func (s *TrackerTestSuite) collect(world string) map[uuid.UUID]entities.Position {
	out := map[uuid.UUID]entities.Position{}
	s.tracker.ForEachInWorld(world, presence.VisitorFunc(func(id uuid.UUID, pos entities.Position) bool {
		out[id] = pos
		return true
	}))
	return out
}

func (s *TrackerTestSuite) TestForEachInWorldFiltersByWorld() {
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	s.tracker.Update(a, "overworld", entities.Position{X: 1})
	s.tracker.Update(b, "overworld", entities.Position{X: 2})
	s.tracker.Update(c, "the_nether", entities.Position{X: 3})

	got := s.collect("overworld")
	s.Len(got, 2)
	s.Equal(entities.Position{X: 2}, got[b])
	s.Len(s.collect("the_nether"), 1)
}

func (s *TrackerTestSuite) TestUpdateMovesPlayerBetweenWorlds() {
	a := uuid.New()
	s.tracker.Update(a, "overworld", entities.Position{})
	s.tracker.Update(a, "the_end", entities.Position{Y: 64})

	s.Empty(s.collect("overworld"))
	loc, ok := s.tracker.Lookup(a)
	s.Require().True(ok)
	s.Equal("the_end", loc.World)
}

func (s *TrackerTestSuite) TestRemove() {
	a := uuid.New()
	s.tracker.Update(a, "overworld", entities.Position{})
	s.tracker.Remove(a)

	_, ok := s.tracker.Lookup(a)
	s.False(ok)
	s.Empty(s.collect("overworld"))
}

func (s *TrackerTestSuite) TestStopsEarly() {
	for i := 0; i < 5; i++ {
		s.tracker.Update(uuid.New(), "overworld", entities.Position{})
	}
	calls := 0
	s.tracker.ForEachInWorld("overworld", presence.VisitorFunc(func(uuid.UUID, entities.Position) bool {
		calls++
		return false
	}))
	s.Equal(1, calls)
}

func (s *TrackerTestSuite) TestExpiredPlayersAreSkipped() {
	tracker, err := presence.New(&presence.Config{TTL: 10 * time.Millisecond})
	s.Require().NoError(err)
	tracker.Update(uuid.New(), "overworld", entities.Position{})

	s.Eventually(func() bool {
		seen := 0
		tracker.ForEachInWorld("overworld", presence.VisitorFunc(func(uuid.UUID, entities.Position) bool {
			seen++
			return true
		}))
		return seen == 0
	}, time.Second, 5*time.Millisecond)
}

func (s *TrackerTestSuite) TestInvalidConfig() {
	_, err := presence.New(&presence.Config{})
	s.True(errors.IsInvalidArgument(err))
	_, err = presence.New(nil)
	s.True(errors.IsInvalidArgument(err))
}
