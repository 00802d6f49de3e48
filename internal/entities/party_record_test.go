package entities_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-progression/internal/entities"
	"github.com/KirkDiggler/rpg-progression/internal/errors"
)

func TestRemoveLeaderTransfersToOldestMember(t *testing.T) {
	leader, second, third := uuid.New(), uuid.New(), uuid.New()
	p, err := entities.NewPartyRecord(uuid.New(), "wolves", leader, nil, time.Now())
	require.NoError(t, err)
	p.AddMember(second)
	p.AddMember(third)

	transferred := p.RemoveMember(leader)

	assert.True(t, transferred)
	assert.Equal(t, second, p.Leader)
	assert.Equal(t, []uuid.UUID{second, third}, p.Members)
}

func TestRemoveMemberKeepsLeader(t *testing.T) {
	leader, second := uuid.New(), uuid.New()
	p, err := entities.NewPartyRecord(uuid.New(), "wolves", leader, nil, time.Now())
	require.NoError(t, err)
	p.AddMember(second)

	assert.False(t, p.RemoveMember(second))
	assert.Equal(t, leader, p.Leader)
	assert.Equal(t, 1, p.MemberCount())
}

func TestRemoveDoesNotAliasClones(t *testing.T) {
	leader, second, third := uuid.New(), uuid.New(), uuid.New()
	p, err := entities.NewPartyRecord(uuid.New(), "wolves", leader, nil, time.Now())
	require.NoError(t, err)
	p.AddMember(second)
	p.AddMember(third)

	snapshot := p.Clone()
	p.RemoveMember(second)

	require.Len(t, snapshot.Members, 3)
	assert.Equal(t, second, snapshot.Members[1])
}

func TestPasswordMakesPrivate(t *testing.T) {
	secret := "hunter2"
	private, err := entities.NewPartyRecord(uuid.New(), "vault", uuid.New(), &secret, time.Now())
	require.NoError(t, err)
	public, err := entities.NewPartyRecord(uuid.New(), "open", uuid.New(), nil, time.Now())
	require.NoError(t, err)

	assert.True(t, private.IsPrivate())
	assert.True(t, private.CheckPassword("hunter2"))
	assert.False(t, private.CheckPassword("hunter3"))

	assert.False(t, public.IsPrivate())
	assert.True(t, public.CheckPassword("anything"))
}

func TestPasswordIsStoredHashed(t *testing.T) {
	secret := "hunter2"
	p, err := entities.NewPartyRecord(uuid.New(), "vault", uuid.New(), &secret, time.Now())
	require.NoError(t, err)

	assert.NotEmpty(t, p.PasswordHash)
	assert.NotContains(t, p.PasswordHash, secret)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(data), secret)

	var decoded entities.PartyRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.CheckPassword(secret))
}

func TestPasswordTooLong(t *testing.T) {
	long := strings.Repeat("x", entities.MaxPasswordLength+1)
	_, err := entities.NewPartyRecord(uuid.New(), "vault", uuid.New(), &long, time.Now())
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPartyReevaluateScalesQuota(t *testing.T) {
	defs := []*entities.PhaseDefinition{{
		ID:         entities.PhaseOne,
		Enabled:    true,
		KillQuotas: map[string]int{"zombie": 4},
	}}
	p, err := entities.NewPartyRecord(uuid.New(), "wolves", uuid.New(), nil, time.Now())
	require.NoError(t, err)
	p.AddMember(uuid.New())
	p.Shared.Kills["zombie"] = 4

	assert.False(t, p.Reevaluate(defs, 0.75), "4 kills do not meet ceil(4*1.75)=7")
	assert.False(t, p.Phases[entities.PhaseOne])

	p.Shared.Kills["zombie"] = 7
	assert.True(t, p.Reevaluate(defs, 0.75))
	assert.True(t, p.Phases[entities.PhaseOne])
}
