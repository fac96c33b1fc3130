package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"esportshub/models"
)

// pathID parses a numeric path parameter, reporting a bad request on
// garbage.
func pathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, models.NewError(models.CodeBadRequest, "invalid %s", name)
	}
	return id, nil
}

type createTeamRequest struct {
	Name string `json:"name" binding:"required"`
}

func (s *Server) createTeam(c *gin.Context) {
	var req createTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.NewError(models.CodeBadRequest, "invalid team payload: %v", err))
		return
	}

	team, err := s.teams.CreateTeam(c.Request.Context(), identity(c).UserID, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

func (s *Server) listTeams(c *gin.Context) {
	teams, err := s.teams.ListTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

type joinTeamRequest struct {
	JoinCode string `json:"join_code" binding:"required"`
}

func (s *Server) joinTeam(c *gin.Context) {
	var req joinTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, models.NewError(models.CodeBadRequest, "invalid join payload: %v", err))
		return
	}

	if err := s.teams.JoinTeamByCode(c.Request.Context(), identity(c).UserID, req.JoinCode); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (s *Server) leaveTeam(c *gin.Context) {
	if err := s.teams.LeaveTeam(c.Request.Context(), identity(c).UserID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) teamsByGame(c *gin.Context) {
	gameID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	teams, err := s.teams.TeamsByGame(c.Request.Context(), gameID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, teams)
}

func (s *Server) teamLeagueEntries(c *gin.Context) {
	teamID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	entries, err := s.leagues.TeamEntries(c.Request.Context(), teamID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}
