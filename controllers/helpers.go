package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"compensation-request-api/services"
)

// actorFrom rebuilds the acting user from the claims the auth middleware
// stored on the context.
func actorFrom(c *gin.Context) services.Actor {
	return services.Actor{
		Username: c.GetString("username"),
		Name:     c.GetString("name"),
		Role:     c.GetString("role"),
	}
}

// respondActionError maps a lifecycle rejection onto its HTTP status.
// Anything that is not an ActionError is an internal failure.
func respondActionError(c *gin.Context, err error) {
	var actionErr *services.ActionError
	if errors.As(err, &actionErr) {
		status := http.StatusBadRequest
		switch actionErr.Kind {
		case services.ErrAuthorization:
			status = http.StatusForbidden
		case services.ErrNotFound:
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"success": false, "error": actionErr.Reason})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
}
