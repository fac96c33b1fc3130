package service

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"esportshub/models"
)

type teamService struct {
	uowFactory UnitOfWorkFactory
}

// NewTeamService creates a new team service.
func NewTeamService(uowFactory UnitOfWorkFactory) TeamService {
	return &teamService{uowFactory: uowFactory}
}

// CreateTeam founds a team. The team row, its join code and the
// founder's membership are created atomically; a founder already on a
// team is rejected.
func (s *teamService) CreateTeam(ctx context.Context, founderID int64, name string) (*models.Team, error) {
	if name == "" {
		return nil, models.NewError(models.CodeBadRequest, "team name is required")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	existing, err := uow.TeamRepository().GetMembershipByUser(ctx, founderID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewError(models.CodeConflict, "user %d already belongs to a team", founderID)
	}

	team, err := uow.TeamRepository().Create(ctx, name, founderID)
	if err != nil {
		return nil, err
	}

	if err := uow.TeamRepository().AddMember(ctx, team.ID, founderID); err != nil {
		return nil, err
	}

	if err := commitUnit(uow, "team creation"); err != nil {
		return nil, err
	}

	return team, nil
}

// JoinTeamByCode adds the user to the team holding the join code.
func (s *teamService) JoinTeamByCode(ctx context.Context, userID int64, code string) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	team, err := uow.TeamRepository().GetByJoinCode(ctx, code)
	if err != nil {
		return err
	}
	if team == nil {
		return models.NewError(models.CodeNotFound, "no team with that join code")
	}

	existing, err := uow.TeamRepository().GetMembershipByUser(ctx, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewError(models.CodeConflict, "user %d already belongs to a team", userID)
	}

	if err := uow.TeamRepository().AddMember(ctx, team.ID, userID); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LeaveTeam removes the caller's membership. A departing founder
// dissolves the team entirely: memberships, league entries, tournament
// roster rows and standings all go with it, atomically.
func (s *teamService) LeaveTeam(ctx context.Context, userID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	membership, err := uow.TeamRepository().GetMembershipByUser(ctx, userID)
	if err != nil {
		return err
	}
	if membership == nil {
		return models.NewError(models.CodeNotFound, "user %d belongs to no team", userID)
	}

	team, err := uow.TeamRepository().GetByID(ctx, membership.TeamID)
	if err != nil {
		return err
	}
	if team == nil {
		return models.NewError(models.CodeNotFound, "team %d not found", membership.TeamID)
	}

	if team.FounderID != userID {
		if err := uow.TeamRepository().RemoveMember(ctx, team.ID, userID); err != nil {
			return err
		}
		if err := uow.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	}

	// Founder departure: dissolve the team and everything hanging off it.
	if err := uow.StandingRepository().DeleteAllByTeam(ctx, team.ID); err != nil {
		return err
	}
	if err := uow.RosterRepository().RemoveTeamFromAll(ctx, team.ID); err != nil {
		return err
	}
	if err := uow.LeagueRepository().DeleteTeamEntriesByTeam(ctx, team.ID); err != nil {
		return err
	}
	if err := uow.TeamRepository().RemoveAllMembers(ctx, team.ID); err != nil {
		return err
	}
	if err := uow.TeamRepository().Delete(ctx, team.ID); err != nil {
		return err
	}

	if err := commitUnit(uow, "team dissolution"); err != nil {
		return err
	}

	log.Infof("Team %d dissolved by founder %d", team.ID, userID)
	return nil
}

// ListTeams returns all teams.
func (s *teamService) ListTeams(ctx context.Context) ([]*models.Team, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	return uow.TeamRepository().GetAll(ctx)
}

// TeamsByGame returns teams participating in a game's league.
func (s *teamService) TeamsByGame(ctx context.Context, gameID int64) ([]*models.Team, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	game, err := uow.GameRepository().GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, models.NewError(models.CodeNotFound, "game %d not found", gameID)
	}

	return uow.TeamRepository().GetByGame(ctx, gameID)
}
