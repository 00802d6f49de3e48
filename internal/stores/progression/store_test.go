package progression_test

import (
	"context"
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
	"github.com/KirkDiggler/rpg-progression/internal/presence"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
	progressionmock "github.com/KirkDiggler/rpg-progression/internal/repositories/progression/mock"
	"github.com/KirkDiggler/rpg-progression/internal/stores/progression"
)

const (
	testWorld = "overworld"
	k         = entities.DefaultMultiplierIncrement
)

type fakeParties struct {
	mu          sync.Mutex
	multipliers map[uuid.UUID]float64
	updates     int
}

func (f *fakeParties) MultiplierFor(playerID uuid.UUID) (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.multipliers[playerID]
	return m, ok
}

func (f *fakeParties) SendPartyUpdate(uuid.UUID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates++
}

type placedPlayer struct {
	id  uuid.UUID
	pos entities.Position
}

// staticLocator reports a fixed set of players in testWorld
type staticLocator []placedPlayer

func (l staticLocator) ForEachInWorld(world string, v presence.Visitor) {
	if world != testWorld {
		return
	}
	for _, p := range l {
		if !v.Visit(p.id, p.pos) {
			return
		}
	}
}

type StoreTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	repo        *progressionmock.MockRepository
	tracker     *presence.Tracker
	broadcaster *broadcast.Broadcaster
	parties     *fakeParties
	store       *progression.Store
	ctx         context.Context
	player      uuid.UUID
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func (s *StoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.repo = progressionmock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.player = uuid.New()

	tracker, err := presence.New(&presence.Config{TTL: time.Minute})
	s.Require().NoError(err)
	s.tracker = tracker

	b, err := broadcast.New(nil)
	s.Require().NoError(err)
	s.broadcaster = b

	s.parties = &fakeParties{multipliers: map[uuid.UUID]float64{}}
	s.store = s.newStore(config.Default())
}

func (s *StoreTestSuite) newStore(cfg *config.Config) *progression.Store {
	registry, err := phases.New(s.ctx, &phases.Config{Builtins: cfg.BuiltinPhases()})
	s.Require().NoError(err)

	store, err := progression.New(&progression.Config{
		World:               testWorld,
		Repository:          s.repo,
		Phases:              registry,
		Locator:             s.tracker,
		Publisher:           s.broadcaster,
		MultiplierIncrement: k,
	})
	s.Require().NoError(err)
	store.SetPartyLookup(s.parties)
	return store
}

func (s *StoreTestSuite) completePhaseOneObjectives(store *progression.Store) {
	store.SetObjective(s.player, entities.ObjectiveElderGuardian, true)
	store.SetObjective(s.player, entities.ObjectiveRaidWon, true)
	store.SetObjective(s.player, entities.ObjectiveTrialVault, true)
}

func (s *StoreTestSuite) TestGetCreatesDefaultRecord() {
	record := s.store.Get(s.player)
	s.Equal(s.player, record.PlayerID)
	s.Empty(record.Kills)
	s.False(record.PhaseComplete(entities.PhaseOne))

	record.IncrementKill("zombie")
	s.Zero(s.store.Get(s.player).KillCount("zombie"), "Get must return a copy")
}

func (s *StoreTestSuite) TestPhaseOneScenario() {
	s.True(s.store.IsPhaseLocked(s.player, entities.PhaseOne))

	s.True(s.store.SetObjective(s.player, entities.ObjectiveElderGuardian, true))
	s.True(s.store.SetObjective(s.player, entities.ObjectiveRaidWon, true))
	s.True(s.store.IsPhaseLocked(s.player, entities.PhaseOne))
	s.True(s.store.SetObjective(s.player, entities.ObjectiveTrialVault, true))

	s.False(s.store.IsPhaseLocked(s.player, entities.PhaseOne))
	s.True(s.store.Get(s.player).PhaseComplete(entities.PhaseOne))
	s.True(s.store.IsPhaseLocked(s.player, entities.PhaseTwo))
}

func (s *StoreTestSuite) TestSetObjectiveIsIdempotent() {
	s.True(s.store.SetObjective(s.player, entities.ObjectiveWither, true))
	s.False(s.store.SetObjective(s.player, entities.ObjectiveWither, true))
	s.True(s.store.SetObjective(s.player, entities.ObjectiveWither, false))
	s.False(s.store.SetObjective(s.player, entities.ObjectiveWither, false))
}

func (s *StoreTestSuite) TestDisabledRequirementIsVacuous() {
	cfg := config.Default()
	cfg.Phase1.Require = map[string]bool{entities.ObjectiveRaidWon: false}
	store := s.newStore(cfg)

	store.SetObjective(s.player, entities.ObjectiveElderGuardian, true)
	store.SetObjective(s.player, entities.ObjectiveTrialVault, true)

	s.False(store.Get(s.player).Objectives[entities.ObjectiveRaidWon])
	s.True(store.Get(s.player).PhaseComplete(entities.PhaseOne))
}

func (s *StoreTestSuite) TestDisabledPhaseIsNeverLocked() {
	cfg := config.Default()
	cfg.Phase1.Enabled = false
	store := s.newStore(cfg)

	s.False(store.IsPhaseLocked(s.player, entities.PhaseOne))
	s.True(store.IsPhaseLocked(s.player, entities.PhaseTwo))
	s.False(store.IsPhaseLocked(s.player, "unknown_phase"))
}

func (s *StoreTestSuite) TestLaterPhaseWaitsForEarlierPhase() {
	s.store.SetObjective(s.player, entities.ObjectiveWither, true)
	s.store.SetObjective(s.player, entities.ObjectiveWarden, true)
	s.True(s.store.IsPhaseLocked(s.player, entities.PhaseTwo))

	s.completePhaseOneObjectives(s.store)
	s.False(s.store.IsPhaseLocked(s.player, entities.PhaseTwo))
}

func (s *StoreTestSuite) TestRecordKillReportsPhaseFlip() {
	cfg := config.Default()
	cfg.Phase1.KillQuotas = map[string]int{"minecraft:pillager": 2}
	store := s.newStore(cfg)
	s.completePhaseOneObjectives(store)

	s.False(store.RecordKill(s.player, "minecraft:pillager"))
	s.True(store.RecordKill(s.player, "minecraft:pillager"))
	s.False(store.RecordKill(s.player, "minecraft:pillager"))
	s.Equal(3, store.Get(s.player).KillCount("minecraft:pillager"))
}

func (s *StoreTestSuite) TestCountersAreMonotoneUntilReset() {
	previous := 0
	for i := 0; i < 20; i++ {
		s.store.RecordKill(s.player, "zombie")
		s.store.Absorb(s.player, entities.Progress{Kills: map[string]int{"zombie": i / 2}})
		current := s.store.Get(s.player).KillCount("zombie")
		s.GreaterOrEqual(current, previous)
		previous = current
	}

	s.store.Reset(s.player)
	s.Zero(s.store.Get(s.player).KillCount("zombie"))
}

func (s *StoreTestSuite) TestConcurrentKillsAreSerialized() {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.store.RecordKill(s.player, "zombie")
			s.store.CalculateAverageMultiplierNearPosition(0, 0, 0, testWorld)
		}()
	}
	wg.Wait()
	s.Equal(50, s.store.Get(s.player).KillCount("zombie"))
}

func (s *StoreTestSuite) TestCompletePhaseIsStickyUntilReset() {
	s.True(s.store.CompletePhase(s.player, entities.PhaseTwo))
	s.False(s.store.CompletePhase(s.player, entities.PhaseTwo))
	s.False(s.store.IsPhaseLocked(s.player, entities.PhaseTwo))

	s.store.EvaluatePhases(s.player)
	s.False(s.store.IsPhaseLocked(s.player, entities.PhaseTwo))
	s.True(s.store.IsPhaseLocked(s.player, entities.PhaseOne))

	s.False(s.store.CompletePhase(s.player, "no_such_phase"))

	s.store.Reset(s.player)
	s.True(s.store.IsPhaseLocked(s.player, entities.PhaseTwo))
}

func (s *StoreTestSuite) TestResetLeavesOtherPlayersAlone() {
	other := uuid.New()
	s.store.RecordKill(s.player, "zombie")
	s.store.RecordKill(other, "zombie")

	s.store.Reset(s.player)
	s.Equal(1, s.store.Get(other).KillCount("zombie"))
}

func (s *StoreTestSuite) TestAverageMultiplierNearPosition() {
	soloA, soloB, partied := uuid.New(), uuid.New(), uuid.New()
	far, elsewhere := uuid.New(), uuid.New()

	s.tracker.Update(soloA, testWorld, entities.Position{X: 1})
	s.tracker.Update(soloB, testWorld, entities.Position{Z: -10})
	s.tracker.Update(partied, testWorld, entities.Position{X: 32})
	s.tracker.Update(far, testWorld, entities.Position{X: 100})
	s.tracker.Update(elsewhere, "the_nether", entities.Position{})

	s.parties.multipliers[partied] = entities.Multiplier(3, k)
	s.parties.multipliers[far] = entities.Multiplier(4, k)

	got := s.store.CalculateAverageMultiplierNearPosition(0, 0, 0, testWorld)
	s.InDelta((1.0+1.0+1.0+2*k)/3, got, 1e-9)
}

func (s *StoreTestSuite) TestAverageMultiplierDoesNotAllocate() {
	partied := uuid.New()
	locator := staticLocator{
		{id: uuid.New(), pos: entities.Position{X: 1}},
		{id: partied, pos: entities.Position{Z: 5}},
		{id: uuid.New(), pos: entities.Position{X: 500}},
	}
	s.parties.multipliers[partied] = entities.Multiplier(3, k)

	registry, err := phases.New(s.ctx, &phases.Config{Builtins: config.Default().BuiltinPhases()})
	s.Require().NoError(err)
	store, err := progression.New(&progression.Config{
		World:               testWorld,
		Repository:          s.repo,
		Phases:              registry,
		Locator:             locator,
		Publisher:           s.broadcaster,
		MultiplierIncrement: k,
	})
	s.Require().NoError(err)
	store.SetPartyLookup(s.parties)

	var got float64
	allocs := testing.AllocsPerRun(100, func() {
		got = store.CalculateAverageMultiplierNearPosition(0, 0, 0, testWorld)
	})
	s.Zero(allocs)
	s.InDelta((1.0+1.0+2*k)/2, got, 1e-9)
}

func (s *StoreTestSuite) TestAverageMultiplierWithNobodyInRange() {
	s.Equal(1.0, s.store.CalculateAverageMultiplierNearPosition(0, 0, 0, testWorld))

	s.tracker.Update(s.player, testWorld, entities.Position{Y: 500})
	s.Equal(1.0, s.store.CalculateAverageMultiplierNearPosition(0, 0, 0, testWorld))
}

func (s *StoreTestSuite) TestMutationsPushSnapshots() {
	sub := s.broadcaster.Subscribe(s.player)
	defer sub.Close()

	s.store.RecordKill(s.player, "zombie")

	msg := <-sub.C()
	s.Equal(broadcast.KindProgression, msg.Kind)
	s.Equal(1, msg.Progression.Kills["zombie"])
	s.Zero(s.parties.updates, "gameplay mutations leave the party snapshot to the party store")

	s.store.MarkDirtyAndSendUpdates(s.player)
	msg = <-sub.C()
	s.Equal(broadcast.KindProgression, msg.Kind)
	s.Equal(1, s.parties.updates)
}

func (s *StoreTestSuite) TestAbsorbDoesNotPushPartyUpdate() {
	s.True(s.store.Absorb(s.player, entities.Progress{
		Objectives: map[string]bool{entities.ObjectiveWither: true},
	}))
	s.False(s.store.Absorb(s.player, entities.Progress{
		Objectives: map[string]bool{entities.ObjectiveWither: true},
	}))
	s.Zero(s.parties.updates)
	s.Equal(1, s.store.DirtyCount())
}

func (s *StoreTestSuite) TestFlushWritesDirtyRecords() {
	other := uuid.New()
	s.store.RecordKill(s.player, "zombie")
	s.store.RecordKill(other, "skeleton")
	s.store.Get(uuid.New())

	s.repo.EXPECT().
		SaveBatch(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input progressionrepo.SaveBatchInput) (*progressionrepo.SaveBatchOutput, error) {
			s.Equal(testWorld, input.World)
			s.Len(input.Records, 2)
			return &progressionrepo.SaveBatchOutput{Saved: len(input.Records)}, nil
		})

	s.Require().NoError(s.store.Flush(s.ctx))
	s.Zero(s.store.DirtyCount())

	// nothing dirty, no write
	s.Require().NoError(s.store.Flush(s.ctx))
}

func (s *StoreTestSuite) TestFlushFailureKeepsRecordsDirty() {
	s.store.RecordKill(s.player, "zombie")

	gomock.InOrder(
		s.repo.EXPECT().SaveBatch(s.ctx, gomock.Any()).Return(nil, errors.Internal("connection refused")),
		s.repo.EXPECT().SaveBatch(s.ctx, gomock.Any()).Return(&progressionrepo.SaveBatchOutput{Saved: 1}, nil),
	)

	s.Error(s.store.Flush(s.ctx))
	s.Equal(1, s.store.DirtyCount())
	s.Equal(1, s.store.Get(s.player).KillCount("zombie"), "memory stays authoritative")

	s.NoError(s.store.Flush(s.ctx))
	s.Zero(s.store.DirtyCount())
}

func (s *StoreTestSuite) TestLoadMarksCorruptedRecordsDirty() {
	loaded := entities.NewProgressionRecord(s.player)
	loaded.Kills["zombie"] = 7
	broken := uuid.New()

	s.repo.EXPECT().
		LoadAll(s.ctx, progressionrepo.LoadAllInput{World: testWorld}).
		Return(&progressionrepo.LoadAllOutput{
			Records:   []*entities.ProgressionRecord{loaded, entities.NewProgressionRecord(broken)},
			Corrupted: []string{broken.String(), "garbage"},
		}, nil)

	s.Require().NoError(s.store.Load(s.ctx))
	s.Equal(7, s.store.Get(s.player).KillCount("zombie"))
	s.Equal(1, s.store.DirtyCount())
}

func (s *StoreTestSuite) TestLoadFailure() {
	s.repo.EXPECT().LoadAll(s.ctx, gomock.Any()).Return(nil, errors.Unavailable("redis down"))

	err := s.store.Load(s.ctx)
	s.Error(err)
	s.True(errors.IsUnavailable(err))
}

func (s *StoreTestSuite) TestNewValidatesConfig() {
	_, err := progression.New(&progression.Config{})
	s.Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = progression.New(nil)
	s.True(errors.IsInvalidArgument(err))
}
