package server

import (
	"errors"
	"log"
	"net/http"

	"escape-tracker/internal/registry"

	"github.com/gin-gonic/gin"
)

const (
	statusExists = "exists"
	statusNew    = "new"
)

type playerRequest struct {
	PlayerName   registry.Value `json:"playerName"`
	PlayerNumber registry.Value `json:"playerNumber"`
}

type resultRequest struct {
	PlayerName    registry.Value `json:"playerName"`
	PlayerNumber  registry.Value `json:"playerNumber"`
	TimeRemaining registry.Value `json:"timeRemaining"`
	Escaped       registry.Value `json:"escaped"`
}

type registerResponse struct {
	Message string                `json:"message"`
	Data    registry.PlayerRecord `json:"data"`
	Status  string                `json:"status"`
}

type resultResponse struct {
	Message string                `json:"message"`
	Data    registry.PlayerRecord `json:"data"`
}

type resultsResponse struct {
	Escaped    []registry.PlayerRecord `json:"escaped"`
	Eliminated []registry.PlayerRecord `json:"eliminated"`
}

func (s *Server) handleRegisterPlayer(c *gin.Context) {
	var req playerRequest
	if !bindJSON(c, &req, "") {
		return
	}
	record, isNew := s.registry.Register(req.PlayerName, req.PlayerNumber)
	if !isNew {
		c.JSON(http.StatusOK, registerResponse{
			Message: "Player already registered",
			Data:    record,
			Status:  statusExists,
		})
		return
	}
	log.Printf("player registered player=%s number=%s", record.PlayerName, record.PlayerNumber)
	c.JSON(http.StatusOK, registerResponse{
		Message: "Player registered successfully",
		Data:    record,
		Status:  statusNew,
	})
}

func (s *Server) handleSubmitResult(c *gin.Context) {
	var req resultRequest
	if !bindJSON(c, &req, "") {
		return
	}
	record, err := s.registry.SubmitResult(req.PlayerName, req.PlayerNumber, req.TimeRemaining, req.Escaped)
	if err != nil {
		if errors.Is(err, registry.ErrPlayerNotFound) {
			log.Printf("result for unknown player player=%s number=%s", req.PlayerName, req.PlayerNumber)
			writeError(c, http.StatusBadRequest, "Player not found")
			return
		}
		writeError(c, http.StatusInternalServerError, "failed to submit result")
		return
	}
	log.Printf("result submitted player=%s number=%s escaped=%t time_remaining=%s",
		record.PlayerName, record.PlayerNumber, record.Escaped, record.TimeRemaining)
	c.JSON(http.StatusOK, resultResponse{
		Message: "Player status updated",
		Data:    record,
	})
}

func (s *Server) handleCheckPlayer(c *gin.Context) {
	var req playerRequest
	if !bindJSON(c, &req, "") {
		return
	}
	c.JSON(http.StatusOK, s.registry.Check(req.PlayerName, req.PlayerNumber))
}

func (s *Server) handleGetResults(c *gin.Context) {
	escaped, eliminated := s.registry.ListResults()
	c.JSON(http.StatusOK, resultsResponse{
		Escaped:    escaped,
		Eliminated: eliminated,
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"players": s.registry.Stats().Total,
	})
}
