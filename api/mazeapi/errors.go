package mazeapi

import (
	"errors"
	"net/http"

	"github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service"
	"github.com/gin-gonic/gin"
)

// statusFor maps service and maze errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidRoute):
		return http.StatusUnprocessableEntity
	case errors.Is(err, maze.ErrInvalidDimensions),
		errors.Is(err, maze.ErrInvalidSeed),
		errors.Is(err, domain.ErrInvalidTitle),
		errors.Is(err, domain.ErrInvalidMaze),
		errors.Is(err, service.ErrNonPositiveElapsed):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrChallengeNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(ctx *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	ctx.JSON(status, gin.H{"error": msg})
}
