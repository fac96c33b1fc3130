package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) joinIndividualLeague(c *gin.Context) {
	gameID, err := pathID(c, "gameID")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := s.leagues.JoinIndividualLeague(c.Request.Context(), identity(c).UserID, gameID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) leaveIndividualLeague(c *gin.Context) {
	gameID, err := pathID(c, "gameID")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := s.leagues.LeaveIndividualLeague(c.Request.Context(), identity(c).UserID, gameID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) joinTeamLeague(c *gin.Context) {
	teamID, err := pathID(c, "teamID")
	if err != nil {
		respondError(c, err)
		return
	}
	gameID, err := pathID(c, "gameID")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := s.leagues.JoinTeamLeague(c.Request.Context(), identity(c).UserID, teamID, gameID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) leaveTeamLeague(c *gin.Context) {
	teamID, err := pathID(c, "teamID")
	if err != nil {
		respondError(c, err)
		return
	}
	gameID, err := pathID(c, "gameID")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := s.leagues.LeaveTeamLeague(c.Request.Context(), identity(c).UserID, teamID, gameID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type resultRequest struct {
	Win *bool `json:"win" binding:"required"`
}

func (s *Server) recordIndividualResult(c *gin.Context) {
	gameID, err := pathID(c, "gameID")
	if err != nil {
		respondError(c, err)
		return
	}

	var req struct {
		UserID int64 `json:"user_id" binding:"required"`
		Win    *bool `json:"win" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badPayload(err))
		return
	}

	if err := s.leagues.RecordIndividualResult(c.Request.Context(), req.UserID, gameID, *req.Win); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) recordTeamResult(c *gin.Context) {
	teamID, err := pathID(c, "teamID")
	if err != nil {
		respondError(c, err)
		return
	}
	gameID, err := pathID(c, "gameID")
	if err != nil {
		respondError(c, err)
		return
	}

	var req resultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, badPayload(err))
		return
	}

	if err := s.leagues.RecordTeamResult(c.Request.Context(), teamID, gameID, *req.Win); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
