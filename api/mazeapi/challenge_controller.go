package mazeapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/beka-birhanu/vinom-maze/api/identity"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChallengeController manages challenge publishing, runs and leaderboards.
type ChallengeController struct {
	challenges i.ChallengeManager
	publicURL  string
}

// NewChallengeController initializes a ChallengeController.
func NewChallengeController(cm i.ChallengeManager, publicURL string) *ChallengeController {
	return &ChallengeController{
		challenges: cm,
		publicURL:  strings.TrimSuffix(publicURL, "/"),
	}
}

// RegisterPublic registers public routes.
func (cc *ChallengeController) RegisterPublic(route *gin.RouterGroup) {
	challenges := route.Group("/challenges")
	{
		challenges.GET("/:ID", cc.challenge)
		challenges.GET("/:ID/leaderboard", cc.leaderboard)
	}
}

// RegisterProtected registers protected routes.
func (cc *ChallengeController) RegisterProtected(route *gin.RouterGroup) {
	challenges := route.Group("/challenges")
	{
		challenges.POST("", cc.create)
		challenges.POST("/:ID/runs", cc.submitRun)
	}
	route.GET("/users/me/challenges", cc.mine)
}

// create publishes a new challenge authored by the caller.
func (cc *ChallengeController) create(ctx *gin.Context) {
	userID, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	var request CreateChallengeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	challenge, err := cc.challenges.Create(ctx.Request.Context(), userID, request.Title, request.Cols, request.Rows, request.Seed)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, toChallengeResponse(challenge, cc.publicURL))
}

// challenge returns a single challenge.
func (cc *ChallengeController) challenge(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid challenge id"})
		return
	}

	challenge, err := cc.challenges.ByID(ctx.Request.Context(), id)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, toChallengeResponse(challenge, cc.publicURL))
}

// mine lists the caller's challenges.
func (cc *ChallengeController) mine(ctx *gin.Context) {
	userID, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	challenges, err := cc.challenges.ByAuthor(ctx.Request.Context(), userID)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	response := make([]*ChallengeResponse, 0, len(challenges))
	for _, c := range challenges {
		response = append(response, toChallengeResponse(c, cc.publicURL))
	}
	ctx.JSON(http.StatusOK, response)
}

// submitRun scores a route walked by the caller.
func (cc *ChallengeController) submitRun(ctx *gin.Context) {
	userID, err := identity.UserID(ctx)
	if err != nil {
		ctx.Status(http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid challenge id"})
		return
	}

	var request SubmitRunRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	elapsed := time.Duration(request.ElapsedMs) * time.Millisecond
	result, err := cc.challenges.SubmitRun(ctx.Request.Context(), id, userID, request.Route, elapsed)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// leaderboard returns the fastest runs of a challenge.
func (cc *ChallengeController) leaderboard(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("ID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid challenge id"})
		return
	}

	var query LeaderboardQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := cc.challenges.Leaderboard(ctx.Request.Context(), id, query.Limit)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, &LeaderboardResponse{
		ChallengeID: id.String(),
		Entries:     entries,
	})
}
