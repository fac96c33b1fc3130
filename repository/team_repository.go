package repository

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/jackc/pgx/v5"

	"esportshub/database"
	"esportshub/models"
)

const (
	joinCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	joinCodeLength   = 6
	joinCodeRetries  = 5
)

// TeamRepository provides access to teams and team memberships.
type TeamRepository struct {
	q queryable
}

// NewTeamRepository creates a new team repository backed by the pool.
func NewTeamRepository(db *database.DB) *TeamRepository {
	return &TeamRepository{q: db.Pool}
}

func newTeamRepositoryWithTx(tx queryable) *TeamRepository {
	return &TeamRepository{q: tx}
}

// newJoinCode draws a random join code from a restricted alphabet.
func newJoinCode() (string, error) {
	buf := make([]byte, joinCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate join code: %w", err)
	}
	for i, b := range buf {
		buf[i] = joinCodeAlphabet[int(b)%len(joinCodeAlphabet)]
	}
	return string(buf), nil
}

// Create inserts a new team with a store-generated unique join code,
// retrying on the rare code collision.
func (r *TeamRepository) Create(ctx context.Context, name string, founderID int64) (*models.Team, error) {
	query := `
		INSERT INTO teams (name, founder_id, join_code)
		VALUES ($1, $2, $3)
		RETURNING id, name, founder_id, join_code, created_at
	`

	for attempt := 0; attempt < joinCodeRetries; attempt++ {
		code, err := newJoinCode()
		if err != nil {
			return nil, err
		}

		var team models.Team
		err = r.q.QueryRow(ctx, query, name, founderID, code).Scan(
			&team.ID,
			&team.Name,
			&team.FounderID,
			&team.JoinCode,
			&team.CreatedAt,
		)
		if isUniqueViolation(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
		return &team, nil
	}

	return nil, fmt.Errorf("failed to create team: join code collisions exhausted %d attempts", joinCodeRetries)
}

// GetByID retrieves a team by primary key. Returns nil when absent.
func (r *TeamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	query := `
		SELECT id, name, founder_id, join_code, created_at
		FROM teams
		WHERE id = $1
	`
	return r.scanTeam(r.q.QueryRow(ctx, query, id))
}

// GetByJoinCode retrieves a team by its unique join code. Returns nil
// when no team has the code.
func (r *TeamRepository) GetByJoinCode(ctx context.Context, code string) (*models.Team, error) {
	query := `
		SELECT id, name, founder_id, join_code, created_at
		FROM teams
		WHERE join_code = $1
	`
	return r.scanTeam(r.q.QueryRow(ctx, query, code))
}

func (r *TeamRepository) scanTeam(row pgx.Row) (*models.Team, error) {
	var team models.Team
	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.FounderID,
		&team.JoinCode,
		&team.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return &team, nil
}

// GetAll returns all teams, newest first.
func (r *TeamRepository) GetAll(ctx context.Context) ([]*models.Team, error) {
	query := `
		SELECT id, name, founder_id, join_code, created_at
		FROM teams
		ORDER BY created_at DESC
	`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.FounderID, &team.JoinCode, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, &team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	return teams, nil
}

// GetByGame returns teams holding a league entry for the given game.
func (r *TeamRepository) GetByGame(ctx context.Context, gameID int64) ([]*models.Team, error) {
	query := `
		SELECT DISTINCT t.id, t.name, t.founder_id, t.join_code, t.created_at
		FROM teams t
		JOIN team_league_entries tle ON tle.team_id = t.id
		WHERE tle.game_id = $1
		ORDER BY t.name
	`

	rows, err := r.q.Query(ctx, query, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams for game %d: %w", gameID, err)
	}
	defer rows.Close()

	var teams []*models.Team
	for rows.Next() {
		var team models.Team
		if err := rows.Scan(&team.ID, &team.Name, &team.FounderID, &team.JoinCode, &team.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, &team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate teams: %w", err)
	}

	return teams, nil
}

// Delete removes a team row.
func (r *TeamRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.q.Exec(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete team %d: %w", id, err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotFound, "team %d not found", id)
	}
	return nil
}

// AddMember inserts a membership row.
func (r *TeamRepository) AddMember(ctx context.Context, teamID, userID int64) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO team_members (team_id, user_id) VALUES ($1, $2)`,
		teamID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to add user %d to team %d: %w", userID, teamID, err)
	}
	return nil
}

// GetMembershipByUser returns the user's membership row, or nil when
// the user belongs to no team.
func (r *TeamRepository) GetMembershipByUser(ctx context.Context, userID int64) (*models.TeamMember, error) {
	query := `
		SELECT team_id, user_id, joined_at
		FROM team_members
		WHERE user_id = $1
	`

	var member models.TeamMember
	err := r.q.QueryRow(ctx, query, userID).Scan(&member.TeamID, &member.UserID, &member.JoinedAt)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get membership for user %d: %w", userID, err)
	}

	return &member, nil
}

// GetMembers returns all membership rows of a team.
func (r *TeamRepository) GetMembers(ctx context.Context, teamID int64) ([]*models.TeamMember, error) {
	query := `
		SELECT team_id, user_id, joined_at
		FROM team_members
		WHERE team_id = $1
		ORDER BY joined_at
	`

	rows, err := r.q.Query(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members of team %d: %w", teamID, err)
	}
	defer rows.Close()

	var members []*models.TeamMember
	for rows.Next() {
		var member models.TeamMember
		if err := rows.Scan(&member.TeamID, &member.UserID, &member.JoinedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership: %w", err)
		}
		members = append(members, &member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate memberships: %w", err)
	}

	return members, nil
}

// RemoveMember deletes a single membership row.
func (r *TeamRepository) RemoveMember(ctx context.Context, teamID, userID int64) error {
	result, err := r.q.Exec(ctx,
		`DELETE FROM team_members WHERE team_id = $1 AND user_id = $2`,
		teamID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to remove user %d from team %d: %w", userID, teamID, err)
	}
	if result.RowsAffected() == 0 {
		return models.NewError(models.CodeNotFound, "user %d is not a member of team %d", userID, teamID)
	}
	return nil
}

// RemoveAllMembers deletes every membership row of a team. Part of the
// founder-departure cascade.
func (r *TeamRepository) RemoveAllMembers(ctx context.Context, teamID int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM team_members WHERE team_id = $1`, teamID); err != nil {
		return fmt.Errorf("failed to remove members of team %d: %w", teamID, err)
	}
	return nil
}
