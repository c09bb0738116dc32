package app

import (
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/satvik-g4s/Hour-Recon/internal/middleware"
	"github.com/satvik-g4s/Hour-Recon/internal/recon"
)

// BuildApp wires the module graph and mounts routes. The only stateful piece
// is the in-memory artifact store for downloads; everything else is stateless
// per-run.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	router.MaxMultipartMemory = maxUploadBytes()
	router.Use(middleware.ContextLogger(logger))

	store := recon.NewMemoryStore(envInt("RECON_RUN_CACHE", 16))
	reconService := recon.NewService(store, recon.Config{
		SpecialCustomer: os.Getenv("RECON_SPECIAL_CUSTOMER"),
	}, logger)
	reconHandler := recon.NewHandler(reconService, store)

	api := router.Group("/api/v1")
	recon.RegisterRoutes(api, reconHandler)

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}

func maxUploadBytes() int64 {
	return int64(envInt("RECON_MAX_UPLOAD_MB", 64)) << 20
}

func envInt(name string, fallback int) int {
	if raw := os.Getenv(name); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			return v
		}
	}
	return fallback
}
