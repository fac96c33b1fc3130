package api

import (
	"github.com/gin-gonic/gin"

	"esportshub/service"
)

// Server wires the HTTP surface onto the service layer.
type Server struct {
	tokens      TokenVerifier
	auth        service.AuthService
	teams       service.TeamService
	leagues     service.LeagueService
	tournaments service.TournamentService
}

// NewServer creates a new API server.
func NewServer(tokens TokenVerifier, auth service.AuthService, teams service.TeamService, leagues service.LeagueService, tournaments service.TournamentService) *Server {
	return &Server{
		tokens:      tokens,
		auth:        auth,
		teams:       teams,
		leagues:     leagues,
		tournaments: tournaments,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")
	{
		api.POST("/auth/register", s.register)
		api.POST("/auth/login", s.login)
		api.GET("/me", Auth(s.tokens), s.me)

		api.GET("/games", Auth(s.tokens), s.listGames)
		api.GET("/games/:id/teams", Auth(s.tokens), s.teamsByGame)

		// teams
		api.POST("/teams", Auth(s.tokens), s.createTeam)
		api.GET("/teams", Auth(s.tokens), s.listTeams)
		api.POST("/teams/join", Auth(s.tokens), s.joinTeam)
		api.POST("/teams/leave", Auth(s.tokens), s.leaveTeam)
		api.GET("/teams/:id/leagues", Auth(s.tokens), s.teamLeagueEntries)

		// leagues
		api.POST("/leagues/individual/:gameID/join", Auth(s.tokens), s.joinIndividualLeague)
		api.POST("/leagues/individual/:gameID/leave", Auth(s.tokens), s.leaveIndividualLeague)
		api.POST("/leagues/team/:teamID/:gameID/join", Auth(s.tokens), s.joinTeamLeague)
		api.POST("/leagues/team/:teamID/:gameID/leave", Auth(s.tokens), s.leaveTeamLeague)

		// tournaments
		api.GET("/events", Auth(s.tokens), s.listEvents)
		api.GET("/tournaments", Auth(s.tokens), s.listTournaments)
		api.GET("/tournaments/:id/standings", Auth(s.tokens), s.standings)
		api.GET("/tournaments/:id/players", Auth(s.tokens), s.tournamentPlayers)
		api.GET("/tournaments/:id/teams", Auth(s.tokens), s.tournamentTeams)
		api.POST("/tournaments/:id/enroll", Auth(s.tokens), s.enrollIndividual)
		api.POST("/tournaments/:id/withdraw", Auth(s.tokens), s.withdrawIndividual)
		api.POST("/tournaments/:id/enroll-team", Auth(s.tokens), s.enrollTeam)
		api.POST("/tournaments/:id/withdraw-team", Auth(s.tokens), s.withdrawTeam)

		// admin
		admin := api.Group("/admin", Auth(s.tokens), RequireAdmin())
		{
			admin.POST("/events", s.createEvent)
			admin.POST("/tournaments", s.createTournament)
			admin.POST("/tournaments/:id/standings", s.recordStanding)
			admin.POST("/leagues/individual/:gameID/results", s.recordIndividualResult)
			admin.POST("/leagues/team/:teamID/:gameID/results", s.recordTeamResult)
		}
	}

	return r
}
