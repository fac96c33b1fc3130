package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"esportshub/models"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, name, email, passwordHash string, role models.UserRole) (*models.User, error) {
	args := m.Called(ctx, name, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockTeamRepository is a mock implementation of TeamRepository
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) Create(ctx context.Context, name string, founderID int64) (*models.Team, error) {
	args := m.Called(ctx, name, founderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByID(ctx context.Context, id int64) (*models.Team, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByJoinCode(ctx context.Context, code string) (*models.Team, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamRepository) GetAll(ctx context.Context) ([]*models.Team, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Team), args.Error(1)
}

func (m *MockTeamRepository) GetByGame(ctx context.Context, gameID int64) ([]*models.Team, error) {
	args := m.Called(ctx, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Team), args.Error(1)
}

func (m *MockTeamRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockTeamRepository) AddMember(ctx context.Context, teamID, userID int64) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *MockTeamRepository) GetMembershipByUser(ctx context.Context, userID int64) (*models.TeamMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) GetMembers(ctx context.Context, teamID int64) ([]*models.TeamMember, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) RemoveMember(ctx context.Context, teamID, userID int64) error {
	args := m.Called(ctx, teamID, userID)
	return args.Error(0)
}

func (m *MockTeamRepository) RemoveAllMembers(ctx context.Context, teamID int64) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

// MockGameRepository is a mock implementation of GameRepository
type MockGameRepository struct {
	mock.Mock
}

func (m *MockGameRepository) GetByID(ctx context.Context, id int64) (*models.Game, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Game), args.Error(1)
}

func (m *MockGameRepository) GetAll(ctx context.Context, individual *bool) ([]*models.Game, error) {
	args := m.Called(ctx, individual)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Game), args.Error(1)
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, name string, kind models.EventKind, year int, month *int) (*models.Event, error) {
	args := m.Called(ctx, name, kind, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockEventRepository) GetAll(ctx context.Context) ([]*models.Event, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Event), args.Error(1)
}

// MockTournamentRepository is a mock implementation of TournamentRepository
type MockTournamentRepository struct {
	mock.Mock
}

func (m *MockTournamentRepository) Create(ctx context.Context, name string, start, end time.Time, location string, eventID, gameID int64) (*models.Tournament, error) {
	args := m.Called(ctx, name, start, end, location, eventID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tournament), args.Error(1)
}

func (m *MockTournamentRepository) GetByID(ctx context.Context, id int64) (*models.Tournament, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tournament), args.Error(1)
}

func (m *MockTournamentRepository) GetAll(ctx context.Context) ([]*models.Tournament, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Tournament), args.Error(1)
}

// MockLeagueRepository is a mock implementation of LeagueRepository
type MockLeagueRepository struct {
	mock.Mock
}

func (m *MockLeagueRepository) GetIndividualEntry(ctx context.Context, userID, gameID int64) (*models.IndividualLeagueEntry, error) {
	args := m.Called(ctx, userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IndividualLeagueEntry), args.Error(1)
}

func (m *MockLeagueRepository) CreateIndividualEntry(ctx context.Context, userID, gameID int64) (*models.IndividualLeagueEntry, error) {
	args := m.Called(ctx, userID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.IndividualLeagueEntry), args.Error(1)
}

func (m *MockLeagueRepository) DeleteIndividualEntry(ctx context.Context, userID, gameID int64) error {
	args := m.Called(ctx, userID, gameID)
	return args.Error(0)
}

func (m *MockLeagueRepository) ListIndividualEntriesByUser(ctx context.Context, userID int64) ([]*models.IndividualLeagueEntry, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.IndividualLeagueEntry), args.Error(1)
}

func (m *MockLeagueRepository) RecordIndividualResult(ctx context.Context, userID, gameID int64, win bool) error {
	args := m.Called(ctx, userID, gameID, win)
	return args.Error(0)
}

func (m *MockLeagueRepository) GetTeamEntry(ctx context.Context, teamID, gameID int64) (*models.TeamLeagueEntry, error) {
	args := m.Called(ctx, teamID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamLeagueEntry), args.Error(1)
}

func (m *MockLeagueRepository) CreateTeamEntry(ctx context.Context, teamID, gameID int64) (*models.TeamLeagueEntry, error) {
	args := m.Called(ctx, teamID, gameID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TeamLeagueEntry), args.Error(1)
}

func (m *MockLeagueRepository) DeleteTeamEntry(ctx context.Context, teamID, gameID int64) error {
	args := m.Called(ctx, teamID, gameID)
	return args.Error(0)
}

func (m *MockLeagueRepository) DeleteTeamEntriesByTeam(ctx context.Context, teamID int64) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *MockLeagueRepository) ListTeamEntriesByTeam(ctx context.Context, teamID int64) ([]*models.TeamLeagueEntry, error) {
	args := m.Called(ctx, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.TeamLeagueEntry), args.Error(1)
}

func (m *MockLeagueRepository) RecordTeamResult(ctx context.Context, teamID, gameID int64, win bool) error {
	args := m.Called(ctx, teamID, gameID, win)
	return args.Error(0)
}

// MockRosterRepository is a mock implementation of RosterRepository
type MockRosterRepository struct {
	mock.Mock
}

func (m *MockRosterRepository) GetPlayerEntry(ctx context.Context, userID, tournamentID int64) (*models.TournamentPlayer, error) {
	args := m.Called(ctx, userID, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TournamentPlayer), args.Error(1)
}

func (m *MockRosterRepository) AddPlayer(ctx context.Context, userID, tournamentID int64) error {
	args := m.Called(ctx, userID, tournamentID)
	return args.Error(0)
}

func (m *MockRosterRepository) RemovePlayer(ctx context.Context, userID, tournamentID int64) error {
	args := m.Called(ctx, userID, tournamentID)
	return args.Error(0)
}

func (m *MockRosterRepository) ListPlayers(ctx context.Context, tournamentID int64) ([]*models.Entrant, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Entrant), args.Error(1)
}

func (m *MockRosterRepository) GetTeamEntry(ctx context.Context, teamID, tournamentID int64) (*models.TournamentTeam, error) {
	args := m.Called(ctx, teamID, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TournamentTeam), args.Error(1)
}

func (m *MockRosterRepository) AddTeam(ctx context.Context, teamID, tournamentID int64) error {
	args := m.Called(ctx, teamID, tournamentID)
	return args.Error(0)
}

func (m *MockRosterRepository) RemoveTeam(ctx context.Context, teamID, tournamentID int64) error {
	args := m.Called(ctx, teamID, tournamentID)
	return args.Error(0)
}

func (m *MockRosterRepository) RemoveTeamFromAll(ctx context.Context, teamID int64) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *MockRosterRepository) ListTeams(ctx context.Context, tournamentID int64) ([]*models.Entrant, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Entrant), args.Error(1)
}

// MockStandingRepository is a mock implementation of StandingRepository
type MockStandingRepository struct {
	mock.Mock
}

func (m *MockStandingRepository) CreateForUser(ctx context.Context, tournamentID, userID int64) error {
	args := m.Called(ctx, tournamentID, userID)
	return args.Error(0)
}

func (m *MockStandingRepository) CreateForTeam(ctx context.Context, tournamentID, teamID int64) error {
	args := m.Called(ctx, tournamentID, teamID)
	return args.Error(0)
}

func (m *MockStandingRepository) GetByUser(ctx context.Context, tournamentID, userID int64) (*models.Standing, error) {
	args := m.Called(ctx, tournamentID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Standing), args.Error(1)
}

func (m *MockStandingRepository) GetByTeam(ctx context.Context, tournamentID, teamID int64) (*models.Standing, error) {
	args := m.Called(ctx, tournamentID, teamID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Standing), args.Error(1)
}

func (m *MockStandingRepository) DeleteByUser(ctx context.Context, tournamentID, userID int64) error {
	args := m.Called(ctx, tournamentID, userID)
	return args.Error(0)
}

func (m *MockStandingRepository) DeleteByTeam(ctx context.Context, tournamentID, teamID int64) error {
	args := m.Called(ctx, tournamentID, teamID)
	return args.Error(0)
}

func (m *MockStandingRepository) DeleteAllByTeam(ctx context.Context, teamID int64) error {
	args := m.Called(ctx, teamID)
	return args.Error(0)
}

func (m *MockStandingRepository) UpdateForUser(ctx context.Context, tournamentID, userID int64, points int, position *int) error {
	args := m.Called(ctx, tournamentID, userID, points, position)
	return args.Error(0)
}

func (m *MockStandingRepository) UpdateForTeam(ctx context.Context, tournamentID, teamID int64, points int, position *int) error {
	args := m.Called(ctx, tournamentID, teamID, points, position)
	return args.Error(0)
}

func (m *MockStandingRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]*models.Standing, error) {
	args := m.Called(ctx, tournamentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Standing), args.Error(1)
}

// MockUnitOfWork is a mock implementation of UnitOfWork
type MockUnitOfWork struct {
	mock.Mock

	userRepo       UserRepository
	teamRepo       TeamRepository
	gameRepo       GameRepository
	eventRepo      EventRepository
	tournamentRepo TournamentRepository
	leagueRepo     LeagueRepository
	rosterRepo     RosterRepository
	standingRepo   StandingRepository
}

// SetRepositories wires the repositories returned by the getters. Nil
// entries fall back to fresh mocks so tests only configure what they use.
func (m *MockUnitOfWork) SetRepositories(user UserRepository, team TeamRepository, game GameRepository, event EventRepository, tournament TournamentRepository, league LeagueRepository, roster RosterRepository, standing StandingRepository) {
	if user == nil {
		user = new(MockUserRepository)
	}
	if team == nil {
		team = new(MockTeamRepository)
	}
	if game == nil {
		game = new(MockGameRepository)
	}
	if event == nil {
		event = new(MockEventRepository)
	}
	if tournament == nil {
		tournament = new(MockTournamentRepository)
	}
	if league == nil {
		league = new(MockLeagueRepository)
	}
	if roster == nil {
		roster = new(MockRosterRepository)
	}
	if standing == nil {
		standing = new(MockStandingRepository)
	}
	m.userRepo = user
	m.teamRepo = team
	m.gameRepo = game
	m.eventRepo = event
	m.tournamentRepo = tournament
	m.leagueRepo = league
	m.rosterRepo = roster
	m.standingRepo = standing
}

func (m *MockUnitOfWork) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUnitOfWork) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockUnitOfWork) UserRepository() UserRepository             { return m.userRepo }
func (m *MockUnitOfWork) TeamRepository() TeamRepository             { return m.teamRepo }
func (m *MockUnitOfWork) GameRepository() GameRepository             { return m.gameRepo }
func (m *MockUnitOfWork) EventRepository() EventRepository           { return m.eventRepo }
func (m *MockUnitOfWork) TournamentRepository() TournamentRepository { return m.tournamentRepo }
func (m *MockUnitOfWork) LeagueRepository() LeagueRepository         { return m.leagueRepo }
func (m *MockUnitOfWork) RosterRepository() RosterRepository         { return m.rosterRepo }
func (m *MockUnitOfWork) StandingRepository() StandingRepository     { return m.standingRepo }

// MockUnitOfWorkFactory is a mock implementation of UnitOfWorkFactory
type MockUnitOfWorkFactory struct {
	mock.Mock
}

func (m *MockUnitOfWorkFactory) Create() UnitOfWork {
	args := m.Called()
	return args.Get(0).(UnitOfWork)
}
