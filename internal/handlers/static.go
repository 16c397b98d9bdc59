package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

// StaticFallback serves the frontend build for every unmatched route: a
// matching file from the build directory, otherwise index.html so the SPA
// router can take over. When the build tree is absent the response is a
// JSON 404.
func StaticFallback(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
			return
		}

		requested := strings.TrimPrefix(c.Request.URL.Path, "/")
		if requested != "" {
			assetPath := filepath.Join(staticDir, filepath.Clean("/"+requested))
			if info, err := os.Stat(assetPath); err == nil && !info.IsDir() {
				c.File(assetPath)
				return
			}
		}

		indexPath := filepath.Join(staticDir, "index.html")
		if _, err := os.Stat(indexPath); err == nil {
			c.File(indexPath)
			return
		}

		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	}
}
