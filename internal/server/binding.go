package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// bindJSON decodes the request body. Missing fields are left as null; only an
// undecodable body is rejected.
func bindJSON(c *gin.Context, req any, fallback string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if fallback == "" {
			fallback = "invalid request"
		}
		writeError(c, http.StatusBadRequest, fallback)
		return false
	}
	return true
}
