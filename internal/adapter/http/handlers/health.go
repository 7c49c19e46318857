package handlers

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/adapter/http/middleware"
)

const healthPingTimeout = 2 * time.Second

var startedAt = time.Now()

type healthSummary struct {
	App     string `json:"app"`
	Version string `json:"version"`
	Time    string `json:"time"`
	Status  string `json:"status"`
}

type healthReport struct {
	App      string            `json:"app"`
	Version  string            `json:"version"`
	Time     string            `json:"time"`
	Uptime   string            `json:"uptime"`
	Language string            `json:"language"`
	Checks   map[string]string `json:"checks"`
}

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) CheckHealth(c *gin.Context) {
	status := "ok"
	code := http.StatusOK
	if !h.databaseReachable(c.Request.Context()) {
		status = "down"
		code = http.StatusInternalServerError
	}

	c.JSON(code, healthSummary{
		App:     appName(),
		Version: appVersion(),
		Time:    time.Now().UTC().Format(time.RFC3339),
		Status:  status,
	})
}

func (h *HealthHandler) CheckHealthReport(c *gin.Context) {
	mysqlStatus := "down"
	if h.databaseReachable(c.Request.Context()) {
		mysqlStatus = "ok"
	}

	c.JSON(http.StatusOK, healthReport{
		App:      appName(),
		Version:  appVersion(),
		Time:     time.Now().UTC().Format(time.RFC3339),
		Uptime:   time.Since(startedAt).Round(time.Second).String(),
		Language: middleware.GetLang(c),
		Checks:   map[string]string{"mysql": mysqlStatus},
	})
}

func (h *HealthHandler) databaseReachable(ctx context.Context) bool {
	if h.db == nil {
		return false
	}
	// Bound the ping so a stalled database cannot hang the probe.
	pingCtx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()
	return h.db.PingContext(pingCtx) == nil
}

func appName() string {
	if name := os.Getenv("APP_NAME"); name != "" {
		return name
	}
	return "project-spark"
}

func appVersion() string {
	if version := os.Getenv("APP_VERSION"); version != "" {
		return version
	}
	return "dev"
}
