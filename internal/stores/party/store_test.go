package party_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-progression/internal/broadcast"
	"github.com/KirkDiggler/rpg-progression/internal/config"
	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/phases"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-progression/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-progression/internal/presence"
	partyrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/party"
	partymock "github.com/KirkDiggler/rpg-progression/internal/repositories/party/mock"
	progressionmock "github.com/KirkDiggler/rpg-progression/internal/repositories/progression/mock"
	"github.com/KirkDiggler/rpg-progression/internal/stores/party"
	"github.com/KirkDiggler/rpg-progression/internal/stores/progression"
)

const (
	testWorld = "overworld"
	k         = entities.DefaultMultiplierIncrement
)

type StoreTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *partymock.MockRepository
	broadcaster *broadcast.Broadcaster
	progression *progression.Store
	store       *party.Store
	ctx         context.Context

	alice, bob, carol, dave uuid.UUID
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = partymock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.alice, s.bob, s.carol, s.dave = uuid.New(), uuid.New(), uuid.New(), uuid.New()

	b, err := broadcast.New(nil)
	s.Require().NoError(err)
	s.broadcaster = b

	s.store = s.newStore(config.Default(), func(*party.Config) {})
}

func (s *StoreTestSuite) TearDownTest() {
	s.store.Close()
}

func (s *StoreTestSuite) newStore(cfg *config.Config, adjust func(*party.Config)) *party.Store {
	registry, err := phases.New(s.ctx, &phases.Config{Builtins: cfg.BuiltinPhases()})
	s.Require().NoError(err)

	tracker, err := presence.New(&presence.Config{TTL: time.Minute})
	s.Require().NoError(err)

	progressionStore, err := progression.New(&progression.Config{
		World:               testWorld,
		Repository:          progressionmock.NewMockRepository(s.ctrl),
		Phases:              registry,
		Locator:             tracker,
		Publisher:           s.broadcaster,
		MultiplierIncrement: k,
	})
	s.Require().NoError(err)

	partyCfg := &party.Config{
		World:               testWorld,
		Repository:          s.repo,
		Phases:              registry,
		Progression:         progressionStore,
		Publisher:           s.broadcaster,
		IDGenerator:         idgen.NewSequential("party"),
		Clock:               clock.NewManual(time.Unix(1700000000, 0)),
		MaxSize:             cfg.Party.MaxSize,
		NameMinLength:       cfg.Party.NameMinLength,
		NameMaxLength:       cfg.Party.NameMaxLength,
		MultiplierIncrement: cfg.Party.MultiplierIncrement,
		InviteTTL:           cfg.Party.InviteTTL,
	}
	adjust(partyCfg)

	store, err := party.New(partyCfg)
	s.Require().NoError(err)
	progressionStore.SetPartyLookup(store)
	s.progression = progressionStore
	return store
}

func (s *StoreTestSuite) kill(player uuid.UUID, mob string, times int) {
	for i := 0; i < times; i++ {
		s.progression.RecordKill(player, mob)
	}
}

func password(p string) *string { return &p }

func (s *StoreTestSuite) TestJoinMergesWithMaxNotSum() {
	s.kill(s.alice, "zombie", 5)
	s.kill(s.bob, "zombie", 3)

	s.Require().Equal(party.ResultSuccess, s.store.CreateParty(s.alice, "wolves", nil))
	s.Require().Equal(party.ResultSuccess, s.store.JoinParty(s.bob, "wolves", ""))

	p, ok := s.store.GetPlayerParty(s.bob)
	s.Require().True(ok)
	s.Equal(5, p.Shared.KillCount("zombie"))
	s.Equal([]uuid.UUID{s.alice, s.bob}, p.Members)
}

func (s *StoreTestSuite) TestJoinOrderDoesNotMatter() {
	s.kill(s.alice, "zombie", 2)
	s.kill(s.bob, "zombie", 4)
	s.progression.SetObjective(s.bob, entities.ObjectiveWither, true)
	s.kill(s.carol, "skeleton", 1)

	s.store.CreateParty(s.alice, "first", nil)
	s.store.JoinParty(s.bob, "first", "")
	s.store.JoinParty(s.carol, "first", "")
	first, _ := s.store.GetPlayerParty(s.alice)
	s.store.DisbandParty(s.alice)

	s.store.CreateParty(s.carol, "second", nil)
	s.store.JoinParty(s.bob, "second", "")
	s.store.JoinParty(s.alice, "second", "")
	second, _ := s.store.GetPlayerParty(s.alice)

	s.Equal(first.Shared.Kills, second.Shared.Kills)
	s.Equal(first.Shared.Objectives, second.Shared.Objectives)
}

func (s *StoreTestSuite) TestLeaveAndRejoinNeverLosesProgress() {
	s.kill(s.alice, "zombie", 5)
	s.store.CreateParty(s.alice, "wolves", nil)
	s.store.JoinParty(s.bob, "wolves", "")
	s.store.RecordKill(s.bob, "creeper")
	before, _ := s.store.GetPlayerParty(s.alice)

	s.Equal(party.ResultSuccess, s.store.LeaveParty(s.bob))
	s.Equal(5, s.progression.Get(s.bob).KillCount("zombie"), "leaver absorbs shared progress")

	s.Equal(party.ResultSuccess, s.store.JoinParty(s.bob, "wolves", ""))
	after, _ := s.store.GetPlayerParty(s.alice)
	for mob, count := range before.Shared.Kills {
		s.GreaterOrEqual(after.Shared.Kills[mob], count)
	}
}

func (s *StoreTestSuite) TestLeaderLeavingTransfersLeadership() {
	s.store.CreateParty(s.alice, "wolves", nil)
	s.store.JoinParty(s.bob, "wolves", "")
	s.store.JoinParty(s.carol, "wolves", "")

	s.Equal(party.ResultSuccess, s.store.LeaveParty(s.alice))

	p, ok := s.store.GetPlayerParty(s.carol)
	s.Require().True(ok)
	s.Equal(s.bob, p.Leader)
	s.Equal([]uuid.UUID{s.bob, s.carol}, p.Members)
	s.False(s.store.IsPlayerInParty(s.alice))
}

func (s *StoreTestSuite) TestLastMemberLeavingDestroysParty() {
	s.store.CreateParty(s.alice, "wolves", nil)
	created, _ := s.store.GetPlayerParty(s.alice)

	s.Equal(party.ResultSuccess, s.store.LeaveParty(s.alice))
	s.Equal(party.ResultNotInParty, s.store.LeaveParty(s.alice))
	_, ok := s.store.GetPartyByName("wolves")
	s.False(ok)

	s.repo.EXPECT().
		SaveBatch(s.ctx, partyrepo.SaveBatchInput{
			World:   testWorld,
			Parties: []*entities.PartyRecord{},
			Deleted: []uuid.UUID{created.ID},
		}).
		Return(&partyrepo.SaveBatchOutput{Deleted: 1}, nil)
	s.NoError(s.store.Flush(s.ctx))

	s.Equal(party.ResultSuccess, s.store.CreateParty(s.bob, "wolves", nil))
}

func (s *StoreTestSuite) TestCreatePartyResults() {
	s.Equal(party.ResultInvalidName, s.store.CreateParty(s.alice, "ab", nil))
	s.Equal(party.ResultInvalidName, s.store.CreateParty(s.alice, " wolves", nil))
	s.Equal(party.ResultInvalidName, s.store.CreateParty(s.alice, "abcdefghijklmnopqrstuvwxy", nil))

	s.Equal(party.ResultSuccess, s.store.CreateParty(s.alice, "wolves", nil))
	s.Equal(party.ResultAlreadyInParty, s.store.CreateParty(s.alice, "bears", nil))
	s.Equal(party.ResultNameTaken, s.store.CreateParty(s.bob, "wolves", nil))
	s.Equal(party.ResultSuccess, s.store.CreateParty(s.bob, "Wolves", nil), "names are case sensitive")
}

func (s *StoreTestSuite) TestCreatePartyRejectsOverlongPassword() {
	long := strings.Repeat("x", entities.MaxPasswordLength+1)
	s.Equal(party.ResultInvalidPassword, s.store.CreateParty(s.alice, "vault", &long))
	s.False(s.store.IsPlayerInParty(s.alice))

	s.Equal(party.ResultSuccess, s.store.CreateParty(s.alice, "vault", password(long[:entities.MaxPasswordLength])))
}

func (s *StoreTestSuite) TestJoinPartyResults() {
	s.store.CreateParty(s.alice, "secret", password("hunter2"))
	s.store.CreateParty(s.bob, "open", nil)

	s.Equal(party.ResultPartyNotFound, s.store.JoinParty(s.carol, "missing", ""))
	s.Equal(party.ResultWrongPassword, s.store.JoinParty(s.carol, "secret", "nope"))
	s.Equal(party.ResultSuccess, s.store.JoinParty(s.carol, "secret", "hunter2"))
	s.Equal(party.ResultAlreadyInParty, s.store.JoinParty(s.carol, "open", ""))
	s.Equal(party.ResultSuccess, s.store.JoinParty(s.dave, "open", "ignored"))
}

func (s *StoreTestSuite) TestPartyFull() {
	store := s.newStore(config.Default(), func(c *party.Config) { c.MaxSize = 2 })
	defer store.Close()

	store.CreateParty(s.alice, "wolves", nil)
	s.Equal(party.ResultSuccess, store.JoinParty(s.bob, "wolves", ""))
	s.Equal(party.ResultPartyFull, store.JoinParty(s.carol, "wolves", ""))
	s.Equal(party.ResultPartyFull, store.Invite(s.alice, s.carol))
}

func (s *StoreTestSuite) TestKick() {
	s.store.CreateParty(s.alice, "wolves", nil)
	s.store.JoinParty(s.bob, "wolves", "")
	s.store.RecordKill(s.alice, "zombie")

	sub := s.broadcaster.Subscribe(s.bob)
	defer sub.Close()

	s.Equal(party.ResultNotInParty, s.store.Kick(s.carol, s.bob))
	s.Equal(party.ResultNotLeader, s.store.Kick(s.bob, s.alice))
	s.Equal(party.ResultCannotTargetSelf, s.store.Kick(s.alice, s.alice))
	s.Equal(party.ResultNotAMember, s.store.Kick(s.alice, s.carol))
	s.Equal(party.ResultSuccess, s.store.Kick(s.alice, s.bob))

	s.False(s.store.IsPlayerInParty(s.bob))
	s.Equal(1, s.progression.Get(s.bob).KillCount("zombie"))

	sawLeft := false
	for len(sub.C()) > 0 {
		if msg := <-sub.C(); msg.Kind == broadcast.KindPartyLeft {
			sawLeft = true
		}
	}
	s.True(sawLeft)
}

func (s *StoreTestSuite) TestPromote() {
	s.store.CreateParty(s.alice, "wolves", nil)
	s.store.JoinParty(s.bob, "wolves", "")

	s.Equal(party.ResultNotLeader, s.store.Promote(s.bob, s.bob))
	s.Equal(party.ResultNotAMember, s.store.Promote(s.alice, s.carol))
	s.Equal(party.ResultSuccess, s.store.Promote(s.alice, s.bob))

	p, _ := s.store.GetPlayerParty(s.alice)
	s.Equal(s.bob, p.Leader)
	s.True(p.IsMember(s.alice))
	s.Equal(party.ResultNotLeader, s.store.Kick(s.alice, s.bob))
}

func (s *StoreTestSuite) TestDisbandRunsLeaveForEveryMember() {
	s.store.CreateParty(s.alice, "wolves", nil)
	s.store.JoinParty(s.bob, "wolves", "")
	s.store.JoinParty(s.carol, "wolves", "")
	s.store.RecordKill(s.carol, "blaze")

	s.Equal(party.ResultNotLeader, s.store.DisbandParty(s.bob))
	s.Equal(party.ResultSuccess, s.store.DisbandParty(s.alice))

	for _, member := range []uuid.UUID{s.alice, s.bob, s.carol} {
		s.False(s.store.IsPlayerInParty(member))
		s.Equal(1, s.progression.Get(member).KillCount("blaze"))
	}
	s.Empty(s.store.ListPublicParties())
}

func (s *StoreTestSuite) TestInviteBypassesPassword() {
	s.store.CreateParty(s.alice, "secret", password("hunter2"))

	s.Equal(party.ResultCannotTargetSelf, s.store.Invite(s.alice, s.alice))
	s.Equal(party.ResultSuccess, s.store.Invite(s.alice, s.bob))
	s.Len(s.store.PendingInvites(s.bob), 1)

	s.Equal(party.ResultWrongPassword, s.store.JoinParty(s.carol, "secret", ""))
	s.Equal(party.ResultSuccess, s.store.JoinParty(s.bob, "secret", ""))
	s.Empty(s.store.PendingInvites(s.bob), "invite is consumed")

	s.Equal(party.ResultAlreadyInParty, s.store.Invite(s.alice, s.bob))
	s.Equal(party.ResultNotLeader, s.store.Invite(s.bob, s.carol))
}

func (s *StoreTestSuite) TestInviteExpires() {
	store := s.newStore(config.Default(), func(c *party.Config) { c.InviteTTL = 20 * time.Millisecond })
	defer store.Close()

	store.CreateParty(s.alice, "secret", password("hunter2"))
	s.Require().Equal(party.ResultSuccess, store.Invite(s.alice, s.bob))

	s.Eventually(func() bool {
		return len(store.PendingInvites(s.bob)) == 0
	}, time.Second, 5*time.Millisecond)
	s.Equal(party.ResultWrongPassword, store.JoinParty(s.bob, "secret", ""))
}

func (s *StoreTestSuite) TestAdjustedRequirementAndMultiplier() {
	s.store.CreateParty(s.alice, "wolves", nil)
	s.store.JoinParty(s.bob, "wolves", "")
	s.store.JoinParty(s.carol, "wolves", "")

	p, _ := s.store.GetPlayerParty(s.alice)
	s.Equal(25, s.store.GetAdjustedRequirement(p, 10))
	s.Equal(10, s.store.GetAdjustedRequirement(nil, 10))

	m, ok := s.store.MultiplierFor(s.bob)
	s.True(ok)
	s.InDelta(1+2*k, m, 1e-9)

	_, ok = s.store.MultiplierFor(s.dave)
	s.False(ok)
}

func (s *StoreTestSuite) TestListPublicParties() {
	s.store.CreateParty(s.alice, "zebras", nil)
	s.store.CreateParty(s.bob, "antelopes", nil)
	s.store.CreateParty(s.carol, "hidden", password("x"))
	s.store.JoinParty(s.dave, "zebras", "")

	listing := s.store.ListPublicParties()
	s.Require().Len(listing, 2)
	s.Equal("antelopes", listing[0].Name)
	s.Equal("zebras", listing[1].Name)
	s.Equal(2, listing[1].Members)
	s.Equal(4, listing[1].MaxMembers)
}

func (s *StoreTestSuite) TestSharedQuotaScalesWithPartySize() {
	cfg := config.Default()
	cfg.Phase1.KillQuotas = map[string]int{"zombie": 2}
	store := s.newStore(cfg, func(*party.Config) {})
	defer store.Close()

	store.CreateParty(s.alice, "wolves", nil)
	store.JoinParty(s.bob, "wolves", "")
	for _, o := range []string{entities.ObjectiveElderGuardian, entities.ObjectiveRaidWon, entities.ObjectiveTrialVault} {
		s.True(store.SetObjective(s.alice, o))
	}
	s.False(store.SetObjective(s.bob, entities.ObjectiveRaidWon))

	// two members: ceil(2 * 1.75) = 4
	for i := 0; i < 3; i++ {
		s.False(store.RecordKill(s.bob, "zombie"))
	}
	s.True(store.RecordKill(s.alice, "zombie"))
	s.True(store.IsPhaseComplete(s.bob, entities.PhaseOne))
	s.False(store.RecordKill(s.carol, "zombie"), "solo players have no shared state")
}

func (s *StoreTestSuite) TestOnePartyPerPlayerUnderConcurrency() {
	players := make([]uuid.UUID, 24)
	for i := range players {
		players[i] = uuid.New()
	}

	var wg sync.WaitGroup
	for i, player := range players {
		wg.Add(1)
		go func(i int, player uuid.UUID) {
			defer wg.Done()
			name := fmt.Sprintf("party-%d", i%3)
			s.store.CreateParty(player, name, nil)
			for j := 0; j < 3; j++ {
				s.store.JoinParty(player, fmt.Sprintf("party-%d", j), "")
				s.store.LeaveParty(player)
			}
			s.store.JoinParty(player, name, "")
		}(i, player)
	}
	wg.Wait()

	seen := map[uuid.UUID]uuid.UUID{}
	for _, player := range players {
		p, ok := s.store.GetPlayerParty(player)
		if !ok {
			continue
		}
		s.True(p.IsMember(player))
		s.True(p.IsMember(p.Leader))
		s.LessOrEqual(p.MemberCount(), s.store.MaxSize())
		seen[player] = p.ID
	}
	for _, listing := range s.store.ListPublicParties() {
		p, ok := s.store.GetPartyByName(listing.Name)
		s.Require().True(ok)
		for _, member := range p.Members {
			s.Equal(p.ID, seen[member], "member index must agree with party")
		}
	}
}

func (s *StoreTestSuite) TestLoadResolvesConflicts() {
	older, err := entities.NewPartyRecord(uuid.New(), "wolves", s.alice, nil, time.Unix(100, 0))
	s.Require().NoError(err)
	older.AddMember(s.bob)
	newer, err := entities.NewPartyRecord(uuid.New(), "bears", s.bob, nil, time.Unix(200, 0))
	s.Require().NoError(err)
	newer.AddMember(s.carol)
	duplicate, err := entities.NewPartyRecord(uuid.New(), "wolves", s.dave, nil, time.Unix(300, 0))
	s.Require().NoError(err)

	s.repo.EXPECT().
		LoadAll(s.ctx, partyrepo.LoadAllInput{World: testWorld}).
		Return(&partyrepo.LoadAllOutput{
			Parties: []*entities.PartyRecord{duplicate, newer, older},
		}, nil)

	s.Require().NoError(s.store.Load(s.ctx))

	bears, ok := s.store.GetPartyByName("bears")
	s.Require().True(ok)
	s.Equal([]uuid.UUID{s.carol}, bears.Members)
	s.Equal(s.carol, bears.Leader)

	wolves, _ := s.store.GetPartyByName("wolves")
	s.Equal(older.ID, wolves.ID)
	s.False(s.store.IsPlayerInParty(s.dave))
	s.Equal(2, s.store.DirtyCount(), "bears rewritten, duplicate deleted")
}

func (s *StoreTestSuite) TestFlushFailureKeepsChanges() {
	s.store.CreateParty(s.alice, "wolves", nil)

	gomock.InOrder(
		s.repo.EXPECT().SaveBatch(s.ctx, gomock.Any()).Return(nil, errors.Internal("boom")),
		s.repo.EXPECT().SaveBatch(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input partyrepo.SaveBatchInput) (*partyrepo.SaveBatchOutput, error) {
				s.Len(input.Parties, 1)
				return &partyrepo.SaveBatchOutput{Saved: 1}, nil
			}),
	)

	s.Error(s.store.Flush(s.ctx))
	s.Equal(1, s.store.DirtyCount())
	s.NoError(s.store.Flush(s.ctx))
	s.Zero(s.store.DirtyCount())
}

func (s *StoreTestSuite) TestNewValidatesConfig() {
	_, err := party.New(&party.Config{World: testWorld})
	s.True(errors.IsInvalidArgument(err))
}
