package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	partyrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/party"
	progressionrepo "github.com/KirkDiggler/rpg-progression/internal/repositories/progression"
	"github.com/KirkDiggler/rpg-progression/internal/testutils"
)

func TestRepairFindsAndDeletesCorruptedEntries(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)

	repo, err := progressionrepo.NewRedis(&progressionrepo.RedisConfig{Client: client})
	require.NoError(t, err)
	healthy := entities.NewProgressionRecord(uuid.New())
	_, err = repo.SaveBatch(ctx, progressionrepo.SaveBatchInput{
		World:   "overworld",
		Records: []*entities.ProgressionRecord{healthy},
	})
	require.NoError(t, err)

	broken := uuid.New().String()
	mr.HSet(progressionrepo.WorldKey("overworld"), broken, "{not json")
	mr.HSet(partyrepo.WorldKey("the_nether"), "not-a-uuid", "{}")

	worlds, err := storedWorlds(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, []string{"overworld", "the_nether"}, worlds)

	tables, err := findCorrupted(ctx, client, nil)
	require.NoError(t, err)
	require.Len(t, tables, 2)

	repairDelete, repairYes = true, true
	defer func() { repairDelete, repairYes = false, false }()

	var out bytes.Buffer
	require.NoError(t, reportCorrupted(ctx, strings.NewReader(""), &out, client, tables))
	assert.Contains(t, out.String(), "Found 2 corrupted entries")

	assert.Empty(t, mr.HGet(progressionrepo.WorldKey("overworld"), broken))
	assert.NotEmpty(t, mr.HGet(progressionrepo.WorldKey("overworld"), healthy.PlayerID.String()))

	tables, err = findCorrupted(ctx, client, nil)
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestRepairAsksBeforeDeleting(t *testing.T) {
	color.NoColor = true
	ctx := context.Background()
	client, mr := testutils.CreateTestRedisClient(t)

	mr.HSet(progressionrepo.WorldKey("overworld"), "not-a-uuid", "{}")
	tables, err := findCorrupted(ctx, client, []string{"overworld"})
	require.NoError(t, err)

	repairDelete = true
	defer func() { repairDelete = false }()

	var out bytes.Buffer
	require.NoError(t, reportCorrupted(ctx, strings.NewReader("no\n"), &out, client, tables))
	assert.Contains(t, out.String(), "Aborted")
	assert.Equal(t, "{}", mr.HGet(progressionrepo.WorldKey("overworld"), "not-a-uuid"))
}
