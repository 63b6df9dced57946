package handler

import (
	"net/http"

	"github.com/chobyoungjae/interface/internal/infra"

	"github.com/gin-gonic/gin"
)

// Health reports process liveness and the state of the spreadsheet upstream's
// circuit breaker. Breaker may be nil in local store mode.
func Health(breaker *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		upstream := "local"
		if breaker != nil {
			upstream = breaker.State().String()
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "ok",
			"upstream": upstream,
		})
	}
}
