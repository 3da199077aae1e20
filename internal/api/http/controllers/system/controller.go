package system

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"opsCalc/internal/api/http/docs"
	"opsCalc/internal/ports"
)

// Controller — системные маршруты: health, liveness, readiness, метрики, описание API.
type Controller struct {
	store   ports.IOperationStore
	apiJSON []byte
	log     *slog.Logger
}

// New создаёт системный контроллер. Описание API переводится в JSON один раз.
func New(store ports.IOperationStore, log *slog.Logger) (*Controller, error) {
	apiJSON, err := docs.JSON()
	if err != nil {
		return nil, err
	}
	return &Controller{store: store, apiJSON: apiJSON, log: log}, nil
}

// RegisterRoutes реализует http.Controller: регистрирует маршруты на роутере.
func (c *Controller) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", c.health)
	r.GET("/liveness", c.live)
	r.GET("/readiness", c.ready)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/api-docs", c.apiDocs)
	r.GET("/api-docs/openapi.yaml", c.apiDocsYAML)
}

func (c *Controller) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"msg": "Health ok!"})
}

func (c *Controller) live(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "alive"})
}

func (c *Controller) ready(ctx *gin.Context) {
	if err := c.store.Ping(ctx.Request.Context()); err != nil {
		c.log.Warn("ready check failed", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (c *Controller) apiDocs(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "application/json; charset=utf-8", c.apiJSON)
}

func (c *Controller) apiDocsYAML(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "application/yaml; charset=utf-8", docs.YAML())
}
