package service

import (
	"context"
	"time"

	"esportshub/models"
)

// UserRepository defines the interface for user account data access.
type UserRepository interface {
	// GetByID retrieves a user by primary key, nil when absent.
	GetByID(ctx context.Context, id int64) (*models.User, error)

	// GetByEmail retrieves a user by unique email, nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// Create inserts a new user; a taken email is a conflict.
	Create(ctx context.Context, name, email, passwordHash string, role models.UserRole) (*models.User, error)
}

// TeamRepository defines the interface for team and membership data
// access.
type TeamRepository interface {
	// Create inserts a team with a store-generated unique join code.
	Create(ctx context.Context, name string, founderID int64) (*models.Team, error)

	// GetByID retrieves a team by primary key, nil when absent.
	GetByID(ctx context.Context, id int64) (*models.Team, error)

	// GetByJoinCode retrieves a team by join code, nil when absent.
	GetByJoinCode(ctx context.Context, code string) (*models.Team, error)

	// GetAll returns all teams.
	GetAll(ctx context.Context) ([]*models.Team, error)

	// GetByGame returns teams holding a league entry for a game.
	GetByGame(ctx context.Context, gameID int64) ([]*models.Team, error)

	// Delete removes a team row.
	Delete(ctx context.Context, id int64) error

	// AddMember inserts a membership row.
	AddMember(ctx context.Context, teamID, userID int64) error

	// GetMembershipByUser returns the user's membership, nil when none.
	GetMembershipByUser(ctx context.Context, userID int64) (*models.TeamMember, error)

	// GetMembers returns all memberships of a team.
	GetMembers(ctx context.Context, teamID int64) ([]*models.TeamMember, error)

	// RemoveMember deletes a single membership row.
	RemoveMember(ctx context.Context, teamID, userID int64) error

	// RemoveAllMembers deletes every membership of a team.
	RemoveAllMembers(ctx context.Context, teamID int64) error
}

// GameRepository defines the interface for game reference data access.
type GameRepository interface {
	// GetByID retrieves a game by primary key, nil when absent.
	GetByID(ctx context.Context, id int64) (*models.Game, error)

	// GetAll returns games, optionally filtered by entrant type.
	GetAll(ctx context.Context, individual *bool) ([]*models.Game, error)
}

// EventRepository defines the interface for event data access.
type EventRepository interface {
	Create(ctx context.Context, name string, kind models.EventKind, year int, month *int) (*models.Event, error)
	GetByID(ctx context.Context, id int64) (*models.Event, error)
	GetAll(ctx context.Context) ([]*models.Event, error)
}

// TournamentRepository defines the interface for tournament data access.
type TournamentRepository interface {
	Create(ctx context.Context, name string, start, end time.Time, location string, eventID, gameID int64) (*models.Tournament, error)
	GetByID(ctx context.Context, id int64) (*models.Tournament, error)
	GetAll(ctx context.Context) ([]*models.Tournament, error)
}

// LeagueRepository defines the interface for league entry data access.
type LeagueRepository interface {
	GetIndividualEntry(ctx context.Context, userID, gameID int64) (*models.IndividualLeagueEntry, error)
	CreateIndividualEntry(ctx context.Context, userID, gameID int64) (*models.IndividualLeagueEntry, error)
	DeleteIndividualEntry(ctx context.Context, userID, gameID int64) error
	ListIndividualEntriesByUser(ctx context.Context, userID int64) ([]*models.IndividualLeagueEntry, error)
	RecordIndividualResult(ctx context.Context, userID, gameID int64, win bool) error

	GetTeamEntry(ctx context.Context, teamID, gameID int64) (*models.TeamLeagueEntry, error)
	CreateTeamEntry(ctx context.Context, teamID, gameID int64) (*models.TeamLeagueEntry, error)
	DeleteTeamEntry(ctx context.Context, teamID, gameID int64) error
	DeleteTeamEntriesByTeam(ctx context.Context, teamID int64) error
	ListTeamEntriesByTeam(ctx context.Context, teamID int64) ([]*models.TeamLeagueEntry, error)
	RecordTeamResult(ctx context.Context, teamID, gameID int64, win bool) error
}

// RosterRepository defines the interface for tournament roster data
// access.
type RosterRepository interface {
	GetPlayerEntry(ctx context.Context, userID, tournamentID int64) (*models.TournamentPlayer, error)
	AddPlayer(ctx context.Context, userID, tournamentID int64) error
	RemovePlayer(ctx context.Context, userID, tournamentID int64) error
	ListPlayers(ctx context.Context, tournamentID int64) ([]*models.Entrant, error)

	GetTeamEntry(ctx context.Context, teamID, tournamentID int64) (*models.TournamentTeam, error)
	AddTeam(ctx context.Context, teamID, tournamentID int64) error
	RemoveTeam(ctx context.Context, teamID, tournamentID int64) error
	RemoveTeamFromAll(ctx context.Context, teamID int64) error
	ListTeams(ctx context.Context, tournamentID int64) ([]*models.Entrant, error)
}

// StandingRepository defines the interface for the standings ledger.
type StandingRepository interface {
	CreateForUser(ctx context.Context, tournamentID, userID int64) error
	CreateForTeam(ctx context.Context, tournamentID, teamID int64) error
	GetByUser(ctx context.Context, tournamentID, userID int64) (*models.Standing, error)
	GetByTeam(ctx context.Context, tournamentID, teamID int64) (*models.Standing, error)
	DeleteByUser(ctx context.Context, tournamentID, userID int64) error
	DeleteByTeam(ctx context.Context, tournamentID, teamID int64) error
	DeleteAllByTeam(ctx context.Context, teamID int64) error
	UpdateForUser(ctx context.Context, tournamentID, userID int64, points int, position *int) error
	UpdateForTeam(ctx context.Context, tournamentID, teamID int64, points int, position *int) error
	ListByTournament(ctx context.Context, tournamentID int64) ([]*models.Standing, error)
}

// AuthService defines the interface for credential issuance and
// account-facing reads.
type AuthService interface {
	// Register creates a player account and enrolls it in every
	// individual game's league, all or nothing.
	Register(ctx context.Context, name, email, password string) (*Session, error)

	// Login verifies credentials and issues a fresh token.
	Login(ctx context.Context, email, password string) (*Session, error)

	// Profile returns the user's account, team membership and
	// individual league entries.
	Profile(ctx context.Context, userID int64) (*Profile, error)
}

// TeamService defines the interface for team membership operations.
type TeamService interface {
	// CreateTeam founds a team; the founder's membership is created
	// with it.
	CreateTeam(ctx context.Context, founderID int64, name string) (*models.Team, error)

	// JoinTeamByCode adds the user to the team holding the join code.
	JoinTeamByCode(ctx context.Context, userID int64, code string) error

	// LeaveTeam removes the caller's membership; a departing founder
	// dissolves the whole team.
	LeaveTeam(ctx context.Context, userID int64) error

	// ListTeams returns all teams.
	ListTeams(ctx context.Context) ([]*models.Team, error)

	// TeamsByGame returns teams participating in a game's league.
	TeamsByGame(ctx context.Context, gameID int64) ([]*models.Team, error)
}

// LeagueService defines the interface for league participation.
type LeagueService interface {
	JoinIndividualLeague(ctx context.Context, userID, gameID int64) error
	LeaveIndividualLeague(ctx context.Context, userID, gameID int64) error
	JoinTeamLeague(ctx context.Context, callerID, teamID, gameID int64) error
	LeaveTeamLeague(ctx context.Context, callerID, teamID, gameID int64) error

	// RecordIndividualResult increments a win or loss counter.
	RecordIndividualResult(ctx context.Context, userID, gameID int64, win bool) error

	// RecordTeamResult increments a win or loss counter.
	RecordTeamResult(ctx context.Context, teamID, gameID int64, win bool) error

	// TeamEntries returns a team's league entries.
	TeamEntries(ctx context.Context, teamID int64) ([]*models.TeamLeagueEntry, error)
}

// TournamentService defines the interface for tournament rosters,
// standings and the event/tournament catalog.
type TournamentService interface {
	EnrollIndividual(ctx context.Context, userID, tournamentID int64) error
	WithdrawIndividual(ctx context.Context, userID, tournamentID int64) error
	EnrollTeam(ctx context.Context, callerID, teamID, tournamentID int64) error
	WithdrawTeam(ctx context.Context, callerID, teamID, tournamentID int64) error

	// RecordStanding overwrites an entrant's points and position.
	// Exactly one of userID or teamID must be set.
	RecordStanding(ctx context.Context, tournamentID int64, userID, teamID *int64, points int, position *int) error

	CreateEvent(ctx context.Context, name string, kind models.EventKind, year int, month *int) (*models.Event, error)
	CreateTournament(ctx context.Context, name string, start, end time.Time, location string, eventID, gameID int64) (*models.Tournament, error)

	ListTournaments(ctx context.Context) ([]*models.Tournament, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
	ListGames(ctx context.Context, individual *bool) ([]*models.Game, error)
	Standings(ctx context.Context, tournamentID int64) ([]*models.Standing, error)
	TournamentPlayers(ctx context.Context, tournamentID int64) ([]*models.Entrant, error)
	TournamentTeams(ctx context.Context, tournamentID int64) ([]*models.Entrant, error)
}

// UnitOfWork defines the interface for transactional repository
// operations.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit commits the transaction.
	Commit() error

	// Rollback rolls back the transaction.
	Rollback() error

	// Repository getters
	UserRepository() UserRepository
	TeamRepository() TeamRepository
	GameRepository() GameRepository
	EventRepository() EventRepository
	TournamentRepository() TournamentRepository
	LeagueRepository() LeagueRepository
	RosterRepository() RosterRepository
	StandingRepository() StandingRepository
}

// UnitOfWorkFactory defines the interface for creating UnitOfWork
// instances.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}
