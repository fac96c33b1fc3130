package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"esportshub/auth"
	"esportshub/models"
)

// TokenIssuer signs identity assertions for authenticated users.
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

// Session is the result of a successful login or registration.
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Profile is a user's account together with its memberships.
type Profile struct {
	User          *models.User                    `json:"user"`
	Team          *models.Team                    `json:"team,omitempty"`
	LeagueEntries []*models.IndividualLeagueEntry `json:"league_entries"`
}

type authService struct {
	uowFactory UnitOfWorkFactory
	tokens     TokenIssuer
}

// NewAuthService creates a new auth service.
func NewAuthService(uowFactory UnitOfWorkFactory, tokens TokenIssuer) AuthService {
	return &authService{
		uowFactory: uowFactory,
		tokens:     tokens,
	}
}

// Register creates a player account and, in the same transaction,
// enrolls it with zero wins and losses in every individual game's
// league. If the fan-out cannot complete, the registration fails as a
// whole.
func (s *authService) Register(ctx context.Context, name, email, password string) (*Session, error) {
	if name == "" || email == "" || password == "" {
		return nil, models.NewError(models.CodeBadRequest, "name, email and password are required")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().Create(ctx, name, email, hash, models.RolePlayer)
	if err != nil {
		return nil, err
	}

	individual := true
	games, err := uow.GameRepository().GetAll(ctx, &individual)
	if err != nil {
		return nil, fmt.Errorf("failed to list individual games: %w", err)
	}
	for _, game := range games {
		if _, err := uow.LeagueRepository().CreateIndividualEntry(ctx, user.ID, game.ID); err != nil {
			return nil, fmt.Errorf("failed to enroll new user in league for game %d: %w", game.ID, err)
		}
	}

	if err := commitUnit(uow, "registration"); err != nil {
		return nil, err
	}

	log.Infof("Registered user %d with %d league entries", user.ID, len(games))

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, User: user}, nil
}

// Login verifies the user's credentials and issues a fresh token.
func (s *authService) Login(ctx context.Context, email, password string) (*Session, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewError(models.CodeNotFound, "no account for %s", email)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, models.NewError(models.CodeInvalidCredential, "invalid credentials")
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, err
	}

	return &Session{Token: token, User: user}, nil
}

// Profile returns the user's account, current team and individual
// league entries.
func (s *authService) Profile(ctx context.Context, userID int64) (*Profile, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	user, err := uow.UserRepository().GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewError(models.CodeNotFound, "user %d not found", userID)
	}

	profile := &Profile{User: user}

	membership, err := uow.TeamRepository().GetMembershipByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if membership != nil {
		team, err := uow.TeamRepository().GetByID(ctx, membership.TeamID)
		if err != nil {
			return nil, err
		}
		profile.Team = team
	}

	entries, err := uow.LeagueRepository().ListIndividualEntriesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile.LeagueEntries = entries

	return profile, nil
}
