package mazeapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
)

const (
	defaultDimension = 10
	qrSize           = 320 // mobile-friendly size
)

// MazeController serves generated mazes and share codes.
type MazeController struct {
	generator i.MazeGenerator
	publicURL string
}

// NewMazeController initializes a MazeController. publicURL prefixes the
// share links encoded in QR codes.
func NewMazeController(g i.MazeGenerator, publicURL string) *MazeController {
	return &MazeController{
		generator: g,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}
}

// RegisterPublic registers public routes.
func (mc *MazeController) RegisterPublic(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.GET("", mc.layout)
		mazes.GET("/:seed/qr", mc.shareQR)
	}
}

// RegisterProtected registers protected routes.
func (mc *MazeController) RegisterProtected(route *gin.RouterGroup) {}

// layout returns the maze for the queried dimensions and seed.
func (mc *MazeController) layout(ctx *gin.Context) {
	var query MazeQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cols, rows := withDefaults(query.Cols, query.Rows)

	layout, err := mc.generator.Generate(ctx.Request.Context(), cols, rows, query.Seed, query.Path)
	if err != nil {
		abortWithError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, layout)
}

// shareQR returns a PNG QR code linking to the maze.
func (mc *MazeController) shareQR(ctx *gin.Context) {
	seed, err := strconv.Atoi(ctx.Param("seed"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "seed must be a base-10 integer"})
		return
	}

	var query ShareQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cols, rows := withDefaults(query.Cols, query.Rows)

	// Validates the parameters and warms the cache for whoever scans the code.
	if _, err := mc.generator.Generate(ctx.Request.Context(), cols, rows, seed, false); err != nil {
		abortWithError(ctx, err)
		return
	}

	png, err := qrcode.Encode(shareURL(mc.publicURL, cols, rows, seed), qrcode.Medium, qrSize)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "qr generation failed"})
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}

func withDefaults(cols, rows int) (int, int) {
	if cols == 0 {
		cols = defaultDimension
	}
	if rows == 0 {
		rows = defaultDimension
	}
	return cols, rows
}

func shareURL(publicURL string, cols, rows, seed int) string {
	return fmt.Sprintf("%s/api/v1/mazes?cols=%d&rows=%d&seed=%d", publicURL, cols, rows, seed)
}
