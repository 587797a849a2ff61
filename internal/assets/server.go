// Package assets serves stored images and their listing over HTTP. It only
// reflects artifact store state; it knows nothing about tool invocations.
package assets

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hamflx/imagen3-mcp/internal/store"
)

// Server exposes GET /images/{name} and GET /list-images for one store.
type Server struct {
	store *store.Store
}

// NewServer creates an asset server backed by st.
func NewServer(st *store.Store) *Server {
	return &Server{store: st}
}

// Router builds the gin engine. Release mode keeps gin's debug output away
// from the process streams; stdout carries the MCP transport.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), allowAnyOrigin())
	r.GET("/images/:name", s.serveImage)
	r.GET("/list-images", s.listImages)
	return r
}

// allowAnyOrigin permits cross-origin reads; generated URLs are embedded in
// pages served from arbitrary origins.
func allowAnyOrigin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Next()
	}
}

func (s *Server) serveImage(c *gin.Context) {
	name := c.Param("name")
	// Only bare filenames resolve; anything that could escape the images
	// directory, and dot-prefixed temp files, are treated as missing.
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		c.Status(http.StatusNotFound)
		return
	}

	path := filepath.Join(s.store.ImagesDir(), name)
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		c.Status(http.StatusNotFound)
		return
	}
	c.File(path)
}

func (s *Server) listImages(c *gin.Context) {
	names, err := s.store.List()
	if err != nil {
		c.Status(http.StatusNotFound)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

// Serve runs the server on addr until ctx is canceled. Shutdown is abrupt:
// the process is exiting anyway, so in-flight requests are not drained.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:    addr,
		Handler: s.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		srv.Close()
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
