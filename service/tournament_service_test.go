package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"esportshub/models"
)

func soloTournament() (*models.Tournament, *models.Game) {
	return &models.Tournament{ID: 42, Name: "Spring Open", GameID: 3},
		&models.Game{ID: 3, Name: "Chess", Individual: true}
}

func squadTournament() (*models.Tournament, *models.Game) {
	return &models.Tournament{ID: 43, Name: "Clash Cup", GameID: 7},
		&models.Game{ID: 7, Name: "Rocket League", Individual: false}
}

func TestTournamentService_EnrollIndividual_PairsRosterAndStanding(t *testing.T) {
	ctx := context.Background()

	// Setup mocks
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockGameRepo := new(MockGameRepository)
	mockTournamentRepo := new(MockTournamentRepository)
	mockRosterRepo := new(MockRosterRepository)
	mockStandingRepo := new(MockStandingRepository)

	// Configure unit of work
	mockUoW.SetRepositories(nil, nil, mockGameRepo, nil, mockTournamentRepo, nil, mockRosterRepo, mockStandingRepo)

	service := NewTournamentService(mockFactory)

	tournament, game := soloTournament()

	// Mock expectations
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockTournamentRepo.On("GetByID", ctx, int64(42)).Return(tournament, nil)
	mockGameRepo.On("GetByID", ctx, int64(3)).Return(game, nil)
	mockRosterRepo.On("GetPlayerEntry", ctx, int64(5), int64(42)).Return(nil, nil)
	mockRosterRepo.On("AddPlayer", ctx, int64(5), int64(42)).Return(nil)
	mockStandingRepo.On("CreateForUser", ctx, int64(42), int64(5)).Return(nil)

	err := service.EnrollIndividual(ctx, 5, 42)

	assert.NoError(t, err)
	mockUoW.AssertExpectations(t)
	mockRosterRepo.AssertExpectations(t)
	mockStandingRepo.AssertExpectations(t)
}

func TestTournamentService_EnrollIndividual_AlreadyEnrolled(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockGameRepo := new(MockGameRepository)
	mockTournamentRepo := new(MockTournamentRepository)
	mockRosterRepo := new(MockRosterRepository)
	mockStandingRepo := new(MockStandingRepository)

	mockUoW.SetRepositories(nil, nil, mockGameRepo, nil, mockTournamentRepo, nil, mockRosterRepo, mockStandingRepo)

	service := NewTournamentService(mockFactory)

	tournament, game := soloTournament()

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockTournamentRepo.On("GetByID", ctx, int64(42)).Return(tournament, nil)
	mockGameRepo.On("GetByID", ctx, int64(3)).Return(game, nil)
	mockRosterRepo.On("GetPlayerEntry", ctx, int64(5), int64(42)).Return(&models.TournamentPlayer{UserID: 5, TournamentID: 42}, nil)

	err := service.EnrollIndividual(ctx, 5, 42)

	assert.True(t, models.IsCode(err, models.CodeConflict))
	mockRosterRepo.AssertNotCalled(t, "AddPlayer")
	mockStandingRepo.AssertNotCalled(t, "CreateForUser")
}

func TestTournamentService_EnrollIndividual_TeamGameTournament(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockGameRepo := new(MockGameRepository)
	mockTournamentRepo := new(MockTournamentRepository)
	mockRosterRepo := new(MockRosterRepository)

	mockUoW.SetRepositories(nil, nil, mockGameRepo, nil, mockTournamentRepo, nil, mockRosterRepo, nil)

	service := NewTournamentService(mockFactory)

	tournament, game := squadTournament()

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockTournamentRepo.On("GetByID", ctx, int64(43)).Return(tournament, nil)
	mockGameRepo.On("GetByID", ctx, int64(7)).Return(game, nil)

	err := service.EnrollIndividual(ctx, 5, 43)

	assert.True(t, models.IsCode(err, models.CodeInvalidGameType))
	mockRosterRepo.AssertNotCalled(t, "AddPlayer")
}

func TestTournamentService_EnrollIndividual_CommitFailureIsPartial(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockGameRepo := new(MockGameRepository)
	mockTournamentRepo := new(MockTournamentRepository)
	mockRosterRepo := new(MockRosterRepository)
	mockStandingRepo := new(MockStandingRepository)

	mockUoW.SetRepositories(nil, nil, mockGameRepo, nil, mockTournamentRepo, nil, mockRosterRepo, mockStandingRepo)

	service := NewTournamentService(mockFactory)

	tournament, game := soloTournament()

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(assert.AnError)
	mockUoW.On("Rollback").Return(nil)

	mockTournamentRepo.On("GetByID", ctx, int64(42)).Return(tournament, nil)
	mockGameRepo.On("GetByID", ctx, int64(3)).Return(game, nil)
	mockRosterRepo.On("GetPlayerEntry", ctx, int64(5), int64(42)).Return(nil, nil)
	mockRosterRepo.On("AddPlayer", ctx, int64(5), int64(42)).Return(nil)
	mockStandingRepo.On("CreateForUser", ctx, int64(42), int64(5)).Return(nil)

	err := service.EnrollIndividual(ctx, 5, 42)

	assert.True(t, models.IsCode(err, models.CodePartialFailure))
}

func TestTournamentService_WithdrawIndividual_RemovesBothRows(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockGameRepo := new(MockGameRepository)
	mockTournamentRepo := new(MockTournamentRepository)
	mockRosterRepo := new(MockRosterRepository)
	mockStandingRepo := new(MockStandingRepository)

	mockUoW.SetRepositories(nil, nil, mockGameRepo, nil, mockTournamentRepo, nil, mockRosterRepo, mockStandingRepo)

	service := NewTournamentService(mockFactory)

	tournament, game := soloTournament()

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockTournamentRepo.On("GetByID", ctx, int64(42)).Return(tournament, nil)
	mockGameRepo.On("GetByID", ctx, int64(3)).Return(game, nil)
	mockRosterRepo.On("GetPlayerEntry", ctx, int64(5), int64(42)).Return(&models.TournamentPlayer{UserID: 5, TournamentID: 42}, nil)
	mockRosterRepo.On("RemovePlayer", ctx, int64(5), int64(42)).Return(nil)
	mockStandingRepo.On("DeleteByUser", ctx, int64(42), int64(5)).Return(nil)

	err := service.WithdrawIndividual(ctx, 5, 42)

	assert.NoError(t, err)
	mockRosterRepo.AssertExpectations(t)
	mockStandingRepo.AssertExpectations(t)
}

func TestTournamentService_WithdrawIndividual_NotEnrolled(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockGameRepo := new(MockGameRepository)
	mockTournamentRepo := new(MockTournamentRepository)
	mockRosterRepo := new(MockRosterRepository)
	mockStandingRepo := new(MockStandingRepository)

	mockUoW.SetRepositories(nil, nil, mockGameRepo, nil, mockTournamentRepo, nil, mockRosterRepo, mockStandingRepo)

	service := NewTournamentService(mockFactory)

	tournament, game := soloTournament()

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockTournamentRepo.On("GetByID", ctx, int64(42)).Return(tournament, nil)
	mockGameRepo.On("GetByID", ctx, int64(3)).Return(game, nil)
	mockRosterRepo.On("GetPlayerEntry", ctx, int64(5), int64(42)).Return(nil, nil)

	err := service.WithdrawIndividual(ctx, 5, 42)

	assert.True(t, models.IsCode(err, models.CodeNotEnrolled))
	mockRosterRepo.AssertNotCalled(t, "RemovePlayer")
	mockStandingRepo.AssertNotCalled(t, "DeleteByUser")
}

func TestTournamentService_EnrollTeam_NotFounder(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockTeamRepo := new(MockTeamRepository)
	mockGameRepo := new(MockGameRepository)
	mockTournamentRepo := new(MockTournamentRepository)
	mockRosterRepo := new(MockRosterRepository)

	mockUoW.SetRepositories(nil, mockTeamRepo, mockGameRepo, nil, mockTournamentRepo, nil, mockRosterRepo, nil)

	service := NewTournamentService(mockFactory)

	tournament, game := squadTournament()

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockTournamentRepo.On("GetByID", ctx, int64(43)).Return(tournament, nil)
	mockGameRepo.On("GetByID", ctx, int64(7)).Return(game, nil)
	mockTeamRepo.On("GetByID", ctx, int64(9)).Return(&models.Team{ID: 9, FounderID: 1}, nil)

	err := service.EnrollTeam(ctx, 2, 9, 43)

	assert.True(t, models.IsCode(err, models.CodeForbidden))
	mockRosterRepo.AssertNotCalled(t, "AddTeam")
}

func TestTournamentService_EnrollTeam_Success(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockTeamRepo := new(MockTeamRepository)
	mockGameRepo := new(MockGameRepository)
	mockTournamentRepo := new(MockTournamentRepository)
	mockRosterRepo := new(MockRosterRepository)
	mockStandingRepo := new(MockStandingRepository)

	mockUoW.SetRepositories(nil, mockTeamRepo, mockGameRepo, nil, mockTournamentRepo, nil, mockRosterRepo, mockStandingRepo)

	service := NewTournamentService(mockFactory)

	tournament, game := squadTournament()

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockTournamentRepo.On("GetByID", ctx, int64(43)).Return(tournament, nil)
	mockGameRepo.On("GetByID", ctx, int64(7)).Return(game, nil)
	mockTeamRepo.On("GetByID", ctx, int64(9)).Return(&models.Team{ID: 9, FounderID: 1}, nil)
	mockRosterRepo.On("GetTeamEntry", ctx, int64(9), int64(43)).Return(nil, nil)
	mockRosterRepo.On("AddTeam", ctx, int64(9), int64(43)).Return(nil)
	mockStandingRepo.On("CreateForTeam", ctx, int64(43), int64(9)).Return(nil)

	err := service.EnrollTeam(ctx, 1, 9, 43)

	assert.NoError(t, err)
	mockRosterRepo.AssertExpectations(t)
	mockStandingRepo.AssertExpectations(t)
}

func TestTournamentService_RecordStanding_RequiresExactlyOneEntrant(t *testing.T) {
	ctx := context.Background()

	mockFactory := new(MockUnitOfWorkFactory)
	service := NewTournamentService(mockFactory)

	userID := int64(5)
	teamID := int64(9)

	err := service.RecordStanding(ctx, 42, nil, nil, 10, nil)
	assert.True(t, models.IsCode(err, models.CodeBadRequest))

	err = service.RecordStanding(ctx, 42, &userID, &teamID, 10, nil)
	assert.True(t, models.IsCode(err, models.CodeBadRequest))

	mockFactory.AssertNotCalled(t, "Create")
}

func TestTournamentService_RecordStanding_ForUser(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockGameRepo := new(MockGameRepository)
	mockTournamentRepo := new(MockTournamentRepository)
	mockStandingRepo := new(MockStandingRepository)

	mockUoW.SetRepositories(nil, nil, mockGameRepo, nil, mockTournamentRepo, nil, nil, mockStandingRepo)

	service := NewTournamentService(mockFactory)

	tournament, game := soloTournament()
	userID := int64(5)
	position := 2

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockTournamentRepo.On("GetByID", ctx, int64(42)).Return(tournament, nil)
	mockGameRepo.On("GetByID", ctx, int64(3)).Return(game, nil)
	mockStandingRepo.On("UpdateForUser", ctx, int64(42), int64(5), 150, &position).Return(nil)

	err := service.RecordStanding(ctx, 42, &userID, nil, 150, &position)

	assert.NoError(t, err)
	mockStandingRepo.AssertExpectations(t)
}

func TestTournamentService_CreateEvent_MonthRules(t *testing.T) {
	ctx := context.Background()

	mockFactory := new(MockUnitOfWorkFactory)
	service := NewTournamentService(mockFactory)

	month := 13
	_, err := service.CreateEvent(ctx, "Monthly Clash", models.EventMonthly, 2026, &month)
	assert.True(t, models.IsCode(err, models.CodeBadRequest))

	_, err = service.CreateEvent(ctx, "Monthly Clash", models.EventMonthly, 2026, nil)
	assert.True(t, models.IsCode(err, models.CodeBadRequest))

	june := 6
	_, err = service.CreateEvent(ctx, "Worlds", models.EventAnnual, 2026, &june)
	assert.True(t, models.IsCode(err, models.CodeBadRequest))

	mockFactory.AssertNotCalled(t, "Create")
}

func TestTournamentService_CreateTournament_EndBeforeStart(t *testing.T) {
	ctx := context.Background()

	mockFactory := new(MockUnitOfWorkFactory)
	service := NewTournamentService(mockFactory)

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -3)

	tournament, err := service.CreateTournament(ctx, "Spring Open", start, end, "Berlin", 1, 3)

	assert.Nil(t, tournament)
	assert.True(t, models.IsCode(err, models.CodeBadRequest))
	mockFactory.AssertNotCalled(t, "Create")
}

func TestTournamentService_CreateTournament_UnknownEvent(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockEventRepo := new(MockEventRepository)
	mockTournamentRepo := new(MockTournamentRepository)

	mockUoW.SetRepositories(nil, nil, nil, mockEventRepo, mockTournamentRepo, nil, nil, nil)

	service := NewTournamentService(mockFactory)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockEventRepo.On("GetByID", ctx, int64(99)).Return(nil, nil)

	start := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	tournament, err := service.CreateTournament(ctx, "Spring Open", start, start.AddDate(0, 0, 2), "Berlin", 99, 3)

	assert.Nil(t, tournament)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
	mockTournamentRepo.AssertNotCalled(t, "Create")
}
