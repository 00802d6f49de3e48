package progression_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
	"github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
)

const testWorld = "overworld"

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr   *miniredis.Miniredis
	repo progression.Repository
	ctx  context.Context
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	client, mr := testutils.CreateTestRedisClient(s.T())
	s.mr = mr

	repo, err := progression.NewRedis(&progression.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()
}

func (s *RedisRepositoryTestSuite) TestRoundTrip() {
	record := entities.NewProgressionRecord(uuid.New())
	record.SetObjective(entities.ObjectiveElderGuardian, true)
	record.IncrementKill("zombie")
	record.SetCustomObjective("deep_dark", "ancient_city", true)
	record.Phases[entities.PhaseOne] = true
	record.Overrides[entities.PhaseTwo] = true

	saved, err := s.repo.SaveBatch(s.ctx, progression.SaveBatchInput{
		World:   testWorld,
		Records: []*entities.ProgressionRecord{record},
	})
	s.Require().NoError(err)
	s.Equal(1, saved.Saved)

	loaded, err := s.repo.LoadAll(s.ctx, progression.LoadAllInput{World: testWorld})
	s.Require().NoError(err)
	s.Require().Len(loaded.Records, 1)
	s.Empty(loaded.Corrupted)
	s.Equal(record, loaded.Records[0])
}

func (s *RedisRepositoryTestSuite) TestWorldsAreSeparate() {
	record := entities.NewProgressionRecord(uuid.New())
	_, err := s.repo.SaveBatch(s.ctx, progression.SaveBatchInput{
		World:   "the_nether",
		Records: []*entities.ProgressionRecord{record},
	})
	s.Require().NoError(err)

	loaded, err := s.repo.LoadAll(s.ctx, progression.LoadAllInput{World: testWorld})
	s.Require().NoError(err)
	s.Empty(loaded.Records)
}

func (s *RedisRepositoryTestSuite) TestCorruptedRecordResetsToDefaults() {
	good := entities.NewProgressionRecord(uuid.New())
	good.IncrementKill("skeleton")
	_, err := s.repo.SaveBatch(s.ctx, progression.SaveBatchInput{
		World:   testWorld,
		Records: []*entities.ProgressionRecord{good},
	})
	s.Require().NoError(err)

	broken := uuid.New()
	s.mr.HSet(progression.WorldKey(testWorld), broken.String(), "{not json")
	s.mr.HSet(progression.WorldKey(testWorld), "not-a-uuid", "{}")

	loaded, err := s.repo.LoadAll(s.ctx, progression.LoadAllInput{World: testWorld})
	s.Require().NoError(err)
	s.Len(loaded.Records, 2)
	s.ElementsMatch([]string{broken.String(), "not-a-uuid"}, loaded.Corrupted)

	byID := map[uuid.UUID]*entities.ProgressionRecord{}
	for _, r := range loaded.Records {
		byID[r.PlayerID] = r
	}
	s.Equal(1, byID[good.PlayerID].KillCount("skeleton"))
	s.Equal(entities.NewProgressionRecord(broken), byID[broken])
}

func (s *RedisRepositoryTestSuite) TestValidation() {
	_, err := s.repo.LoadAll(s.ctx, progression.LoadAllInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.SaveBatch(s.ctx, progression.SaveBatchInput{
		World:   testWorld,
		Records: []*entities.ProgressionRecord{nil},
	})
	s.True(errors.IsInvalidArgument(err))

	out, err := s.repo.SaveBatch(s.ctx, progression.SaveBatchInput{World: testWorld})
	s.NoError(err)
	s.Equal(0, out.Saved)

	_, err = progression.NewRedis(&progression.RedisConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestStorageFailure() {
	s.mr.Close()

	_, err := s.repo.LoadAll(s.ctx, progression.LoadAllInput{World: testWorld})
	s.Error(err)
	s.Equal(errors.CodeInternal, errors.GetCode(err))
}
