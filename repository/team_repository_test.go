package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"esportshub/models"
	"esportshub/repository/testutil"
)

func TestTeamRepository_CreateAndJoinCode(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	teams := NewTeamRepository(testDB.DB)
	ctx := context.Background()

	founder, err := users.Create(ctx, "founder", testutil.Email("founder"), testutil.PasswordHash, models.RolePlayer)
	require.NoError(t, err)

	team, err := teams.Create(ctx, "Alpha", founder.ID)
	require.NoError(t, err)
	require.NotNil(t, team)

	assert.Equal(t, "Alpha", team.Name)
	assert.Equal(t, founder.ID, team.FounderID)
	assert.Len(t, team.JoinCode, joinCodeLength)

	t.Run("lookup by join code", func(t *testing.T) {
		found, err := teams.GetByJoinCode(ctx, team.JoinCode)
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, team.ID, found.ID)
	})

	t.Run("unknown join code", func(t *testing.T) {
		found, err := teams.GetByJoinCode(ctx, "ZZZZZZ")
		require.NoError(t, err)
		assert.Nil(t, found)
	})
}

func TestTeamRepository_Membership(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	teams := NewTeamRepository(testDB.DB)
	ctx := context.Background()

	founder, err := users.Create(ctx, "founder", testutil.Email("founder"), testutil.PasswordHash, models.RolePlayer)
	require.NoError(t, err)
	member, err := users.Create(ctx, "member", testutil.Email("member"), testutil.PasswordHash, models.RolePlayer)
	require.NoError(t, err)

	team, err := teams.Create(ctx, "Alpha", founder.ID)
	require.NoError(t, err)

	require.NoError(t, teams.AddMember(ctx, team.ID, founder.ID))
	require.NoError(t, teams.AddMember(ctx, team.ID, member.ID))

	t.Run("membership by user", func(t *testing.T) {
		membership, err := teams.GetMembershipByUser(ctx, member.ID)
		require.NoError(t, err)
		require.NotNil(t, membership)
		assert.Equal(t, team.ID, membership.TeamID)
	})

	t.Run("no membership", func(t *testing.T) {
		stranger, err := users.Create(ctx, "stranger", testutil.Email("stranger"), testutil.PasswordHash, models.RolePlayer)
		require.NoError(t, err)

		membership, err := teams.GetMembershipByUser(ctx, stranger.ID)
		require.NoError(t, err)
		assert.Nil(t, membership)
	})

	t.Run("list members", func(t *testing.T) {
		members, err := teams.GetMembers(ctx, team.ID)
		require.NoError(t, err)
		assert.Len(t, members, 2)
	})

	t.Run("remove member", func(t *testing.T) {
		require.NoError(t, teams.RemoveMember(ctx, team.ID, member.ID))

		membership, err := teams.GetMembershipByUser(ctx, member.ID)
		require.NoError(t, err)
		assert.Nil(t, membership)
	})
}

func TestTeamRepository_GetByGame(t *testing.T) {
	t.Parallel()
	testDB := testutil.SetupTestDatabase(t)

	users := NewUserRepository(testDB.DB)
	teams := NewTeamRepository(testDB.DB)
	leagues := NewLeagueRepository(testDB.DB)
	ctx := context.Background()

	founderA, err := users.Create(ctx, "foundera", testutil.Email("foundera"), testutil.PasswordHash, models.RolePlayer)
	require.NoError(t, err)
	founderB, err := users.Create(ctx, "founderb", testutil.Email("founderb"), testutil.PasswordHash, models.RolePlayer)
	require.NoError(t, err)

	teamA, err := teams.Create(ctx, "Alpha", founderA.ID)
	require.NoError(t, err)
	_, err = teams.Create(ctx, "Bravo", founderB.ID)
	require.NoError(t, err)

	_, err = leagues.CreateTeamEntry(ctx, teamA.ID, testutil.TeamGameID)
	require.NoError(t, err)

	inLeague, err := teams.GetByGame(ctx, testutil.TeamGameID)
	require.NoError(t, err)
	require.Len(t, inLeague, 1)
	assert.Equal(t, teamA.ID, inLeague[0].ID)
}
