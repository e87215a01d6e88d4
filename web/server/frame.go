package server

import (
	"bytes"
	"errors"
	"image/png"
	"net/http"
	"strconv"

	"github.com/df07/go-cpu-pathtracer/pkg/geometry"
	"github.com/df07/go-cpu-pathtracer/pkg/scene"
	"github.com/labstack/echo/v4"
)

// FrameRequest represents a frame request from the client
type FrameRequest struct {
	Scene   string // Scene name (e.g., "glass")
	Width   int    // Image width
	Height  int    // Image height
	Samples int    // Samples per pixel
	Fixed   bool   // Use the fixed frustum camera instead of the scene's camera
}

// parseFrameRequest parses and bounds the frame query parameters
func parseFrameRequest(c echo.Context) (*FrameRequest, error) {
	req := &FrameRequest{Scene: c.QueryParam("scene")}
	if req.Scene == "" {
		req.Scene = "default"
	}

	var err error
	if req.Width, err = parseIntParam(c, "width", 400, 1, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(c, "height", 200, 1, 2000); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(c, "samples", 16, 1, 10000); err != nil {
		return nil, err
	}
	if fixed := c.QueryParam("fixed"); fixed != "" {
		if req.Fixed, err = strconv.ParseBool(fixed); err != nil {
			return nil, errors.New("invalid fixed: " + fixed)
		}
	}
	return req, nil
}

// handleFrame renders one complete frame and returns it as PNG
func (s *Server) handleFrame(c echo.Context) error {
	req, err := parseFrameRequest(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err)
	}

	sceneObj, err := scene.NewSceneByName(req.Scene)
	if err != nil {
		return errorJSON(c, http.StatusNotFound, err)
	}

	camera := geometry.NewCamera()
	if !req.Fixed {
		if camera, err = sceneObj.NewCamera(req.Width, req.Height); err != nil {
			return errorJSON(c, http.StatusBadRequest, err)
		}
	}

	buffer, stats, err := s.renderer.RenderFrameSamples(sceneObj, camera, req.Width, req.Height, req.Samples)
	if err != nil {
		s.logger.Errorf("frame %q failed: %v", req.Scene, err)
		return errorJSON(c, http.StatusInternalServerError, err)
	}

	var encoded bytes.Buffer
	if err := png.Encode(&encoded, buffer.ToImage()); err != nil {
		return errorJSON(c, http.StatusInternalServerError, err)
	}

	header := c.Response().Header()
	header.Set("X-Render-Duration-Ms", strconv.FormatInt(stats.Duration.Milliseconds(), 10))
	header.Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	header.Set("X-Render-Workers", strconv.Itoa(stats.Workers))
	return c.Blob(http.StatusOK, "image/png", encoded.Bytes())
}
