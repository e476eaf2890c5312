package main

import (
	"embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

//go:embed web/index.html
var webFS embed.FS

// setupStaticFiles serves the embedded search page at / and answers unknown paths
func setupStaticFiles(router *gin.Engine) {
	page, err := webFS.ReadFile("web/index.html")
	if err != nil {
		log.Fatal().Err(err).Msg("embedded index.html missing")
	}

	router.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
	})

	router.NoRoute(func(c *gin.Context) {
		if len(c.Request.URL.Path) >= 4 && c.Request.URL.Path[:4] == "/api" {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		c.Redirect(http.StatusFound, "/")
	})
}
