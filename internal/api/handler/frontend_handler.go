package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"leetdeck/internal/common"
)

// FrontendHandler serves the prebuilt single-page app. Any path that
// does not map to a real file under the dist directory falls back to
// index.html so client-side routing works. When the bundle has not been
// built, every page request gets a fixed 503 notice instead.
type FrontendHandler struct {
	distDir string
}

func NewFrontendHandler(distDir string) *FrontendHandler {
	return &FrontendHandler{distDir: distDir}
}

func (h *FrontendHandler) ServeSPA(w http.ResponseWriter, r *http.Request) {
	indexPath := filepath.Join(h.distDir, "index.html")
	if _, err := os.Stat(indexPath); err != nil {
		common.RespondWithErrorDetails(w, common.HTTPStatusFromError(common.ErrServiceUnavailable),
			"frontend not built", "Build the frontend bundle or point FRONTEND_DIST at an existing one")
		return
	}

	// Clean the path so ".." cannot escape the dist directory.
	relPath := strings.TrimPrefix(filepath.Clean("/"+r.URL.Path), "/")
	filePath := filepath.Join(h.distDir, relPath)

	if info, err := os.Stat(filePath); err == nil && !info.IsDir() {
		http.ServeFile(w, r, filePath)
		return
	}

	http.ServeFile(w, r, indexPath)
}
