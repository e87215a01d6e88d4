package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-cpu-pathtracer/pkg/core"
	"github.com/df07/go-cpu-pathtracer/pkg/log"
	"github.com/df07/go-cpu-pathtracer/pkg/renderer"
	"github.com/df07/go-cpu-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// Server presents rendered frames over HTTP. It owns one renderer whose
// worker pool is shared by every request.
type Server struct {
	port     int
	echo     *echo.Echo
	renderer *renderer.Renderer
	logger   core.Logger
}

// NewServer creates a web server that renders with config
func NewServer(port int, config renderer.Config) *Server {
	s := &Server{
		port:     port,
		echo:     echo.New(),
		renderer: renderer.NewRenderer(config, log.New("renderer")),
		logger:   log.New("web"),
	}
	s.echo.HideBanner = true
	s.echo.HidePort = true
	s.echo.Use(corsMiddleware)

	s.echo.GET("/api/health", s.handleHealth)
	s.echo.GET("/api/scenes", s.handleScenes)
	s.echo.GET("/api/scene-config", s.handleSceneConfig)
	s.echo.GET("/api/frame", s.handleFrame)
	s.echo.GET("/api/inspect", s.handleInspect)

	return s
}

// Handler exposes the routes for embedding and tests
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Noticef("starting web server on http://localhost%s", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and releases the render workers
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.echo.Shutdown(ctx)
	s.renderer.Close()
	return err
}

func corsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Access-Control-Allow-Origin", "*")
		c.Response().Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Response().Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")

		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusOK)
		}

		return next(c)
	}
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes
func (s *Server) handleScenes(c echo.Context) error {
	return c.JSON(http.StatusOK, scene.ListScenes())
}

// handleSceneConfig returns the camera a scene is framed with
func (s *Server) handleSceneConfig(c echo.Context) error {
	sceneObj, err := s.sceneParam(c)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, err)
	}
	cfg := sceneObj.CameraConfig
	return c.JSON(http.StatusOK, map[string]interface{}{
		"center":      [3]float64{cfg.Center.X, cfg.Center.Y, cfg.Center.Z},
		"lookAt":      [3]float64{cfg.LookAt.X, cfg.LookAt.Y, cfg.LookAt.Z},
		"up":          [3]float64{cfg.Up.X, cfg.Up.Y, cfg.Up.Z},
		"vfov":        cfg.VFov,
		"aspectRatio": cfg.AspectRatio,
	})
}

// sceneParam builds the scene named by the "scene" query parameter, "default" when absent
func (s *Server) sceneParam(c echo.Context) (*scene.Scene, error) {
	name := c.QueryParam("scene")
	if name == "" {
		name = "default"
	}
	return scene.NewSceneByName(name)
}

func errorJSON(c echo.Context, status int, err error) error {
	return c.JSON(status, map[string]string{"error": err.Error()})
}

// parseIntParam reads an integer query parameter bounded to [min, max]
func parseIntParam(c echo.Context, key string, defaultValue, min, max int) (int, error) {
	if value := c.QueryParam(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}
