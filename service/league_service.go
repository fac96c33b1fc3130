package service

import (
	"context"
	"fmt"

	"esportshub/models"
)

type leagueService struct {
	uowFactory UnitOfWorkFactory
}

// NewLeagueService creates a new league service.
func NewLeagueService(uowFactory UnitOfWorkFactory) LeagueService {
	return &leagueService{uowFactory: uowFactory}
}

// JoinIndividualLeague enrolls a user in an individual game's league.
func (s *leagueService) JoinIndividualLeague(ctx context.Context, userID, gameID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	game, err := uow.GameRepository().GetByID(ctx, gameID)
	if err != nil {
		return err
	}
	if game == nil {
		return models.NewError(models.CodeNotFound, "game %d not found", gameID)
	}
	if !game.Individual {
		return models.NewError(models.CodeInvalidGameType, "game %d is a team game", gameID)
	}

	existing, err := uow.LeagueRepository().GetIndividualEntry(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewError(models.CodeConflict, "user %d already has an entry for game %d", userID, gameID)
	}

	if _, err := uow.LeagueRepository().CreateIndividualEntry(ctx, userID, gameID); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LeaveIndividualLeague removes a user's league entry.
func (s *leagueService) LeaveIndividualLeague(ctx context.Context, userID, gameID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	game, err := uow.GameRepository().GetByID(ctx, gameID)
	if err != nil {
		return err
	}
	if game == nil {
		return models.NewError(models.CodeNotFound, "game %d not found", gameID)
	}

	existing, err := uow.LeagueRepository().GetIndividualEntry(ctx, userID, gameID)
	if err != nil {
		return err
	}
	if existing == nil {
		return models.NewError(models.CodeNotEnrolled, "user %d has no entry for game %d", userID, gameID)
	}

	if err := uow.LeagueRepository().DeleteIndividualEntry(ctx, userID, gameID); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// checkTeamLeagueAccess resolves the game and team and verifies the
// caller is the team's founder. Shared by join and leave.
func (s *leagueService) checkTeamLeagueAccess(ctx context.Context, uow UnitOfWork, callerID, teamID, gameID int64) (*models.Game, error) {
	game, err := uow.GameRepository().GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, models.NewError(models.CodeNotFound, "game %d not found", gameID)
	}

	team, err := uow.TeamRepository().GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, models.NewError(models.CodeNotFound, "team %d not found", teamID)
	}
	if team.FounderID != callerID {
		return nil, models.NewError(models.CodeForbidden, "only the team founder may manage league participation")
	}

	return game, nil
}

// JoinTeamLeague enrolls a team in a team game's league. Founder only.
func (s *leagueService) JoinTeamLeague(ctx context.Context, callerID, teamID, gameID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	game, err := s.checkTeamLeagueAccess(ctx, uow, callerID, teamID, gameID)
	if err != nil {
		return err
	}
	if game.Individual {
		return models.NewError(models.CodeInvalidGameType, "game %d is an individual game", gameID)
	}

	existing, err := uow.LeagueRepository().GetTeamEntry(ctx, teamID, gameID)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewError(models.CodeConflict, "team %d already has an entry for game %d", teamID, gameID)
	}

	if _, err := uow.LeagueRepository().CreateTeamEntry(ctx, teamID, gameID); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// LeaveTeamLeague removes a team's league entry. Founder only.
func (s *leagueService) LeaveTeamLeague(ctx context.Context, callerID, teamID, gameID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if _, err := s.checkTeamLeagueAccess(ctx, uow, callerID, teamID, gameID); err != nil {
		return err
	}

	existing, err := uow.LeagueRepository().GetTeamEntry(ctx, teamID, gameID)
	if err != nil {
		return err
	}
	if existing == nil {
		return models.NewError(models.CodeNotEnrolled, "team %d has no entry for game %d", teamID, gameID)
	}

	if err := uow.LeagueRepository().DeleteTeamEntry(ctx, teamID, gameID); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RecordIndividualResult increments a win or loss counter on an
// individual league entry.
func (s *leagueService) RecordIndividualResult(ctx context.Context, userID, gameID int64, win bool) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.LeagueRepository().RecordIndividualResult(ctx, userID, gameID, win); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RecordTeamResult increments a win or loss counter on a team league
// entry.
func (s *leagueService) RecordTeamResult(ctx context.Context, teamID, gameID int64, win bool) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if err := uow.LeagueRepository().RecordTeamResult(ctx, teamID, gameID, win); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// TeamEntries returns a team's league entries.
func (s *leagueService) TeamEntries(ctx context.Context, teamID int64) ([]*models.TeamLeagueEntry, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	team, err := uow.TeamRepository().GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team == nil {
		return nil, models.NewError(models.CodeNotFound, "team %d not found", teamID)
	}

	return uow.LeagueRepository().ListTeamEntriesByTeam(ctx, teamID)
}
