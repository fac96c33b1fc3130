package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"esportshub/auth"
	"esportshub/models"
)

// MockTokenIssuer is a mock implementation of TokenIssuer
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(user *models.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func TestAuthService_Register_EnrollsAllIndividualLeagues(t *testing.T) {
	ctx := context.Background()

	// Setup mocks
	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockGameRepo := new(MockGameRepository)
	mockLeagueRepo := new(MockLeagueRepository)
	mockIssuer := new(MockTokenIssuer)

	// Configure unit of work
	mockUoW.SetRepositories(mockUserRepo, nil, mockGameRepo, nil, nil, mockLeagueRepo, nil, nil)

	service := NewAuthService(mockFactory, mockIssuer)

	newUser := &models.User{
		ID:    7,
		Name:  "ada",
		Email: "ada@example.com",
		Role:  models.RolePlayer,
	}
	individualGames := []*models.Game{
		{ID: 3, Name: "Chess", Individual: true},
		{ID: 5, Name: "StarCraft II", Individual: true},
	}

	// Mock expectations
	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("Create", ctx, "ada", "ada@example.com", mock.AnythingOfType("string"), models.RolePlayer).Return(newUser, nil)
	mockGameRepo.On("GetAll", ctx, mock.MatchedBy(func(individual *bool) bool {
		return individual != nil && *individual
	})).Return(individualGames, nil)
	mockLeagueRepo.On("CreateIndividualEntry", ctx, int64(7), int64(3)).Return(&models.IndividualLeagueEntry{UserID: 7, GameID: 3}, nil)
	mockLeagueRepo.On("CreateIndividualEntry", ctx, int64(7), int64(5)).Return(&models.IndividualLeagueEntry{UserID: 7, GameID: 5}, nil)
	mockIssuer.On("Issue", newUser).Return("signed-token", nil)

	session, err := service.Register(ctx, "ada", "ada@example.com", "hunter22")

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, newUser, session.User)

	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockGameRepo.AssertExpectations(t)
	mockLeagueRepo.AssertExpectations(t)
	mockIssuer.AssertExpectations(t)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctx := context.Background()

	mockFactory := new(MockUnitOfWorkFactory)
	mockIssuer := new(MockTokenIssuer)

	service := NewAuthService(mockFactory, mockIssuer)

	session, err := service.Register(ctx, "ada", "", "hunter22")

	assert.Nil(t, session)
	assert.True(t, models.IsCode(err, models.CodeBadRequest))
	mockFactory.AssertNotCalled(t, "Create")
}

func TestAuthService_Register_CommitFailureIsPartial(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockGameRepo := new(MockGameRepository)
	mockLeagueRepo := new(MockLeagueRepository)
	mockIssuer := new(MockTokenIssuer)

	mockUoW.SetRepositories(mockUserRepo, nil, mockGameRepo, nil, nil, mockLeagueRepo, nil, nil)

	service := NewAuthService(mockFactory, mockIssuer)

	newUser := &models.User{ID: 7, Name: "ada", Email: "ada@example.com", Role: models.RolePlayer}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Commit").Return(errors.New("connection reset"))
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("Create", ctx, "ada", "ada@example.com", mock.AnythingOfType("string"), models.RolePlayer).Return(newUser, nil)
	mockGameRepo.On("GetAll", ctx, mock.AnythingOfType("*bool")).Return([]*models.Game{{ID: 3, Individual: true}}, nil)
	mockLeagueRepo.On("CreateIndividualEntry", ctx, int64(7), int64(3)).Return(&models.IndividualLeagueEntry{UserID: 7, GameID: 3}, nil)

	session, err := service.Register(ctx, "ada", "ada@example.com", "hunter22")

	assert.Nil(t, session)
	assert.True(t, models.IsCode(err, models.CodePartialFailure))
	mockIssuer.AssertNotCalled(t, "Issue")
}

func TestAuthService_Login_Success(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockIssuer := new(MockTokenIssuer)

	mockUoW.SetRepositories(mockUserRepo, nil, nil, nil, nil, nil, nil, nil)

	service := NewAuthService(mockFactory, mockIssuer)

	hash, err := auth.HashPassword("hunter22")
	assert.NoError(t, err)

	user := &models.User{ID: 7, Email: "ada@example.com", PasswordHash: hash, Role: models.RolePlayer}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)
	// No Commit() expected, login only reads

	mockUserRepo.On("GetByEmail", ctx, "ada@example.com").Return(user, nil)
	mockIssuer.On("Issue", user).Return("signed-token", nil)

	session, err := service.Login(ctx, "ada@example.com", "hunter22")

	assert.NoError(t, err)
	assert.Equal(t, "signed-token", session.Token)
	assert.Equal(t, user, session.User)

	mockUoW.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockIssuer.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockIssuer := new(MockTokenIssuer)

	mockUoW.SetRepositories(mockUserRepo, nil, nil, nil, nil, nil, nil, nil)

	service := NewAuthService(mockFactory, mockIssuer)

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetByEmail", ctx, "ghost@example.com").Return(nil, nil)

	session, err := service.Login(ctx, "ghost@example.com", "hunter22")

	assert.Nil(t, session)
	assert.True(t, models.IsCode(err, models.CodeNotFound))
	mockIssuer.AssertNotCalled(t, "Issue")
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockIssuer := new(MockTokenIssuer)

	mockUoW.SetRepositories(mockUserRepo, nil, nil, nil, nil, nil, nil, nil)

	service := NewAuthService(mockFactory, mockIssuer)

	hash, err := auth.HashPassword("hunter22")
	assert.NoError(t, err)

	user := &models.User{ID: 7, Email: "ada@example.com", PasswordHash: hash}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetByEmail", ctx, "ada@example.com").Return(user, nil)

	session, err := service.Login(ctx, "ada@example.com", "wrong")

	assert.Nil(t, session)
	assert.True(t, models.IsCode(err, models.CodeInvalidCredential))
	mockIssuer.AssertNotCalled(t, "Issue")
}

func TestAuthService_Profile_WithTeam(t *testing.T) {
	ctx := context.Background()

	mockUoW := new(MockUnitOfWork)
	mockFactory := new(MockUnitOfWorkFactory)
	mockUserRepo := new(MockUserRepository)
	mockTeamRepo := new(MockTeamRepository)
	mockLeagueRepo := new(MockLeagueRepository)
	mockIssuer := new(MockTokenIssuer)

	mockUoW.SetRepositories(mockUserRepo, mockTeamRepo, nil, nil, nil, mockLeagueRepo, nil, nil)

	service := NewAuthService(mockFactory, mockIssuer)

	user := &models.User{ID: 7, Name: "ada"}
	team := &models.Team{ID: 2, Name: "Alpha", FounderID: 7}
	entries := []*models.IndividualLeagueEntry{{ID: 1, UserID: 7, GameID: 3, Wins: 4, Losses: 1}}

	mockFactory.On("Create").Return(mockUoW)
	mockUoW.On("Begin", ctx).Return(nil)
	mockUoW.On("Rollback").Return(nil)

	mockUserRepo.On("GetByID", ctx, int64(7)).Return(user, nil)
	mockTeamRepo.On("GetMembershipByUser", ctx, int64(7)).Return(&models.TeamMember{TeamID: 2, UserID: 7}, nil)
	mockTeamRepo.On("GetByID", ctx, int64(2)).Return(team, nil)
	mockLeagueRepo.On("ListIndividualEntriesByUser", ctx, int64(7)).Return(entries, nil)

	profile, err := service.Profile(ctx, 7)

	assert.NoError(t, err)
	assert.Equal(t, user, profile.User)
	assert.Equal(t, team, profile.Team)
	assert.Equal(t, entries, profile.LeagueEntries)
}
