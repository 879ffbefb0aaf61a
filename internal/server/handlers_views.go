package server

import (
	"escape-tracker/internal/registry"
	"escape-tracker/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

func (s *Server) handleHome(c *gin.Context) {
	templ.Handler(web.Home()).ServeHTTP(c.Writer, c.Request)
}

func (s *Server) handleGame(c *gin.Context) {
	templ.Handler(web.Game()).ServeHTTP(c.Writer, c.Request)
}

func (s *Server) handleResultsView(c *gin.Context) {
	escaped, eliminated := s.registry.ListResults()
	board := web.ResultsBoard{
		Escaped:    resultRows(escaped),
		Eliminated: resultRows(eliminated),
		LiveUpdate: s.cfg.ResultsPush,
	}
	templ.Handler(web.Results(board)).ServeHTTP(c.Writer, c.Request)
}

func resultRows(records []registry.PlayerRecord) []web.ResultRow {
	rows := make([]web.ResultRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, web.ResultRow{
			Name:          record.PlayerName.String(),
			Number:        record.PlayerNumber.String(),
			TimeRemaining: record.TimeRemaining.String(),
		})
	}
	return rows
}
