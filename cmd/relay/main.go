// The relay accepts a base64-encoded image plus a filename hint and stores
// it in the shop's bucket, answering with a durable hosted URL. It is the
// one server-side piece of the system; the client treats its failures as
// non-fatal.
package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/dmoralesmx/cotizador/internal/assets"
	"github.com/dmoralesmx/cotizador/internal/config"
	"github.com/dmoralesmx/cotizador/internal/logging"
)

type uploadRequest struct {
	Name  string `json:"name"`
	Image string `json:"image" binding:"required"`
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	uploader, err := assets.NewS3Uploader(context.Background())
	if err != nil {
		log.Fatalf("s3 uploader: %v", err)
	}
	if !uploader.Enabled() {
		log.Fatal("ASSET_S3_BUCKET is not configured")
	}

	if cfg.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), logging.JSONLogger())
	// the SPA called the relay cross-origin
	r.Use(cors.Default())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"status": "ok"}})
	})

	r.POST("/upload", func(c *gin.Context) {
		var req uploadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid_request"})
			return
		}
		url, err := uploader.Upload(c.Request.Context(), req.Name, req.Image)
		if err != nil {
			logging.LogKV("error", "upload failed", map[string]interface{}{"error": err.Error()})
			c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": "upload_failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"url": url}})
	})

	log.Printf("relay listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
