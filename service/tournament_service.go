package service

import (
	"context"
	"fmt"
	"time"

	"esportshub/models"
)

type tournamentService struct {
	uowFactory UnitOfWorkFactory
}

// NewTournamentService creates a new tournament service.
func NewTournamentService(uowFactory UnitOfWorkFactory) TournamentService {
	return &tournamentService{uowFactory: uowFactory}
}

// resolveTournamentGame loads a tournament and its game.
func (s *tournamentService) resolveTournamentGame(ctx context.Context, uow UnitOfWork, tournamentID int64) (*models.Tournament, *models.Game, error) {
	tournament, err := uow.TournamentRepository().GetByID(ctx, tournamentID)
	if err != nil {
		return nil, nil, err
	}
	if tournament == nil {
		return nil, nil, models.NewError(models.CodeNotFound, "tournament %d not found", tournamentID)
	}

	game, err := uow.GameRepository().GetByID(ctx, tournament.GameID)
	if err != nil {
		return nil, nil, err
	}
	if game == nil {
		return nil, nil, fmt.Errorf("tournament %d references missing game %d", tournamentID, tournament.GameID)
	}

	return tournament, game, nil
}

// EnrollIndividual adds a user to a tournament roster. The roster row
// and its zero-point standing are written as one unit.
func (s *tournamentService) EnrollIndividual(ctx context.Context, userID, tournamentID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	_, game, err := s.resolveTournamentGame(ctx, uow, tournamentID)
	if err != nil {
		return err
	}
	if !game.Individual {
		return models.NewError(models.CodeInvalidGameType, "tournament %d is for a team game", tournamentID)
	}

	existing, err := uow.RosterRepository().GetPlayerEntry(ctx, userID, tournamentID)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewError(models.CodeConflict, "user %d is already enrolled in tournament %d", userID, tournamentID)
	}

	if err := uow.RosterRepository().AddPlayer(ctx, userID, tournamentID); err != nil {
		return err
	}
	if err := uow.StandingRepository().CreateForUser(ctx, tournamentID, userID); err != nil {
		return err
	}

	return commitUnit(uow, "individual enrollment")
}

// WithdrawIndividual removes a user from a tournament roster together
// with the paired standing.
func (s *tournamentService) WithdrawIndividual(ctx context.Context, userID, tournamentID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if _, _, err := s.resolveTournamentGame(ctx, uow, tournamentID); err != nil {
		return err
	}

	existing, err := uow.RosterRepository().GetPlayerEntry(ctx, userID, tournamentID)
	if err != nil {
		return err
	}
	if existing == nil {
		return models.NewError(models.CodeNotEnrolled, "user %d is not enrolled in tournament %d", userID, tournamentID)
	}

	if err := uow.RosterRepository().RemovePlayer(ctx, userID, tournamentID); err != nil {
		return err
	}
	if err := uow.StandingRepository().DeleteByUser(ctx, tournamentID, userID); err != nil {
		return err
	}

	return commitUnit(uow, "individual withdrawal")
}

// checkTeamRosterAccess loads the team and verifies the caller is its
// founder.
func (s *tournamentService) checkTeamRosterAccess(ctx context.Context, uow UnitOfWork, callerID, teamID int64) error {
	team, err := uow.TeamRepository().GetByID(ctx, teamID)
	if err != nil {
		return err
	}
	if team == nil {
		return models.NewError(models.CodeNotFound, "team %d not found", teamID)
	}
	if team.FounderID != callerID {
		return models.NewError(models.CodeForbidden, "only the team founder may manage tournament enrollment")
	}
	return nil
}

// EnrollTeam adds a team to a tournament roster. Founder only; the
// roster row and its zero-point standing are written as one unit.
func (s *tournamentService) EnrollTeam(ctx context.Context, callerID, teamID, tournamentID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	_, game, err := s.resolveTournamentGame(ctx, uow, tournamentID)
	if err != nil {
		return err
	}
	if game.Individual {
		return models.NewError(models.CodeInvalidGameType, "tournament %d is for an individual game", tournamentID)
	}

	if err := s.checkTeamRosterAccess(ctx, uow, callerID, teamID); err != nil {
		return err
	}

	existing, err := uow.RosterRepository().GetTeamEntry(ctx, teamID, tournamentID)
	if err != nil {
		return err
	}
	if existing != nil {
		return models.NewError(models.CodeConflict, "team %d is already enrolled in tournament %d", teamID, tournamentID)
	}

	if err := uow.RosterRepository().AddTeam(ctx, teamID, tournamentID); err != nil {
		return err
	}
	if err := uow.StandingRepository().CreateForTeam(ctx, tournamentID, teamID); err != nil {
		return err
	}

	return commitUnit(uow, "team enrollment")
}

// WithdrawTeam removes a team from a tournament roster together with
// the paired standing. Founder only.
func (s *tournamentService) WithdrawTeam(ctx context.Context, callerID, teamID, tournamentID int64) error {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if _, _, err := s.resolveTournamentGame(ctx, uow, tournamentID); err != nil {
		return err
	}

	if err := s.checkTeamRosterAccess(ctx, uow, callerID, teamID); err != nil {
		return err
	}

	existing, err := uow.RosterRepository().GetTeamEntry(ctx, teamID, tournamentID)
	if err != nil {
		return err
	}
	if existing == nil {
		return models.NewError(models.CodeNotEnrolled, "team %d is not enrolled in tournament %d", teamID, tournamentID)
	}

	if err := uow.RosterRepository().RemoveTeam(ctx, teamID, tournamentID); err != nil {
		return err
	}
	if err := uow.StandingRepository().DeleteByTeam(ctx, tournamentID, teamID); err != nil {
		return err
	}

	return commitUnit(uow, "team withdrawal")
}

// RecordStanding overwrites an entrant's points and position. Exactly
// one of userID or teamID identifies the entrant.
func (s *tournamentService) RecordStanding(ctx context.Context, tournamentID int64, userID, teamID *int64, points int, position *int) error {
	if (userID == nil) == (teamID == nil) {
		return models.NewError(models.CodeBadRequest, "exactly one of user_id or team_id must be given")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if _, _, err := s.resolveTournamentGame(ctx, uow, tournamentID); err != nil {
		return err
	}

	if userID != nil {
		err := uow.StandingRepository().UpdateForUser(ctx, tournamentID, *userID, points, position)
		if err != nil {
			return err
		}
	} else {
		err := uow.StandingRepository().UpdateForTeam(ctx, tournamentID, *teamID, points, position)
		if err != nil {
			return err
		}
	}

	if err := uow.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// CreateEvent inserts an event. Monthly events carry a month, annual
// events must not.
func (s *tournamentService) CreateEvent(ctx context.Context, name string, kind models.EventKind, year int, month *int) (*models.Event, error) {
	if name == "" {
		return nil, models.NewError(models.CodeBadRequest, "event name is required")
	}
	switch kind {
	case models.EventMonthly:
		if month == nil || *month < 1 || *month > 12 {
			return nil, models.NewError(models.CodeBadRequest, "monthly events require a month between 1 and 12")
		}
	case models.EventAnnual:
		if month != nil {
			return nil, models.NewError(models.CodeBadRequest, "annual events must not carry a month")
		}
	default:
		return nil, models.NewError(models.CodeBadRequest, "unknown event kind %q", kind)
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	event, err := uow.EventRepository().Create(ctx, name, kind, year, month)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return event, nil
}

// CreateTournament inserts a tournament after resolving its event and
// game.
func (s *tournamentService) CreateTournament(ctx context.Context, name string, start, end time.Time, location string, eventID, gameID int64) (*models.Tournament, error) {
	if name == "" {
		return nil, models.NewError(models.CodeBadRequest, "tournament name is required")
	}
	if end.Before(start) {
		return nil, models.NewError(models.CodeBadRequest, "tournament cannot end before it starts")
	}

	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	event, err := uow.EventRepository().GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, models.NewError(models.CodeNotFound, "event %d not found", eventID)
	}

	game, err := uow.GameRepository().GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, models.NewError(models.CodeNotFound, "game %d not found", gameID)
	}

	tournament, err := uow.TournamentRepository().Create(ctx, name, start, end, location, eventID, gameID)
	if err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return tournament, nil
}

// ListTournaments returns all tournaments.
func (s *tournamentService) ListTournaments(ctx context.Context) ([]*models.Tournament, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	return uow.TournamentRepository().GetAll(ctx)
}

// ListEvents returns all events.
func (s *tournamentService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	return uow.EventRepository().GetAll(ctx)
}

// ListGames returns games, optionally filtered by entrant type.
func (s *tournamentService) ListGames(ctx context.Context, individual *bool) ([]*models.Game, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	return uow.GameRepository().GetAll(ctx, individual)
}

// Standings returns a tournament's standings with entrant names.
func (s *tournamentService) Standings(ctx context.Context, tournamentID int64) ([]*models.Standing, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if _, _, err := s.resolveTournamentGame(ctx, uow, tournamentID); err != nil {
		return nil, err
	}

	return uow.StandingRepository().ListByTournament(ctx, tournamentID)
}

// TournamentPlayers returns the individual entrants of a tournament.
func (s *tournamentService) TournamentPlayers(ctx context.Context, tournamentID int64) ([]*models.Entrant, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if _, _, err := s.resolveTournamentGame(ctx, uow, tournamentID); err != nil {
		return nil, err
	}

	return uow.RosterRepository().ListPlayers(ctx, tournamentID)
}

// TournamentTeams returns the team entrants of a tournament.
func (s *tournamentService) TournamentTeams(ctx context.Context, tournamentID int64) ([]*models.Entrant, error) {
	uow := s.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer uow.Rollback()

	if _, _, err := s.resolveTournamentGame(ctx, uow, tournamentID); err != nil {
		return nil, err
	}

	return uow.RosterRepository().ListTeams(ctx, tournamentID)
}
