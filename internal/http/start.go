package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Start is a healthcheck-style probe.
//
//	@Summary	Test endpoint
//	@Tags		health
//	@Produce	plain
//	@Success	200	{string}	string	"Returns a greeting message"
//	@Router		/start [get]
func Start(c *gin.Context) {
	c.String(http.StatusOK, "Hello, World!")
}
