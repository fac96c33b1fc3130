package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"esportshub/models"
)

func (s *Server) listGames(c *gin.Context) {
	var individual *bool
	switch c.Query("type") {
	case "individual":
		v := true
		individual = &v
	case "team":
		v := false
		individual = &v
	}

	games, err := s.tournaments.ListGames(c.Request.Context(), individual)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

func (s *Server) listEvents(c *gin.Context) {
	events, err := s.tournaments.ListEvents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (s *Server) listTournaments(c *gin.Context) {
	tournaments, err := s.tournaments.ListTournaments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tournaments)
}

func (s *Server) standings(c *gin.Context) {
	tournamentID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	standings, err := s.tournaments.Standings(c.Request.Context(), tournamentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, standings)
}

func (s *Server) tournamentPlayers(c *gin.Context) {
	tournamentID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	players, err := s.tournaments.TournamentPlayers(c.Request.Context(), tournamentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

func (s *Server) tournamentTeams(c *gin.Context) {
	tournamentID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	teams, err := s.tournaments.TournamentTeams(c.Request.Context(), tournamentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

func (s *Server) enrollIndividual(c *gin.Context) {
	tournamentID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := s.tournaments.EnrollIndividual(c.Request.Context(), identity(c).UserID, tournamentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) withdrawIndividual(c *gin.Context) {
	tournamentID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := s.tournaments.WithdrawIndividual(c.Request.Context(), identity(c).UserID, tournamentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type teamRosterRequest struct {
	TeamID int64 `json:"team_id" binding:"required"`
}

func (s *Server) enrollTeam(c *gin.Context) {
	tournamentID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req teamRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badPayload(err))
		return
	}

	if err := s.tournaments.EnrollTeam(c.Request.Context(), identity(c).UserID, req.TeamID, tournamentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) withdrawTeam(c *gin.Context) {
	tournamentID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req teamRosterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badPayload(err))
		return
	}

	if err := s.tournaments.WithdrawTeam(c.Request.Context(), identity(c).UserID, req.TeamID, tournamentID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type createEventRequest struct {
	Name  string           `json:"name" binding:"required"`
	Kind  models.EventKind `json:"kind" binding:"required"`
	Year  int              `json:"year" binding:"required"`
	Month *int             `json:"month"`
}

func (s *Server) createEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badPayload(err))
		return
	}

	event, err := s.tournaments.CreateEvent(c.Request.Context(), req.Name, req.Kind, req.Year, req.Month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}

type createTournamentRequest struct {
	Name      string    `json:"name" binding:"required"`
	StartDate time.Time `json:"start_date" binding:"required"`
	EndDate   time.Time `json:"end_date" binding:"required"`
	Location  string    `json:"location"`
	EventID   int64     `json:"event_id" binding:"required"`
	GameID    int64     `json:"game_id" binding:"required"`
}

func (s *Server) createTournament(c *gin.Context) {
	var req createTournamentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badPayload(err))
		return
	}

	tournament, err := s.tournaments.CreateTournament(c.Request.Context(), req.Name, req.StartDate, req.EndDate, req.Location, req.EventID, req.GameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tournament)
}

type recordStandingRequest struct {
	UserID   *int64 `json:"user_id"`
	TeamID   *int64 `json:"team_id"`
	Points   int    `json:"points"`
	Position *int   `json:"position"`
}

func (s *Server) recordStanding(c *gin.Context) {
	tournamentID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req recordStandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badPayload(err))
		return
	}

	if err := s.tournaments.RecordStanding(c.Request.Context(), tournamentID, req.UserID, req.TeamID, req.Points, req.Position); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
