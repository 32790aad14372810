package server

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"net/http"
	"strconv"

	"github.com/df07/go-ppm-raytracer/pkg/logging"
	"github.com/df07/go-ppm-raytracer/pkg/ppm"
	"github.com/df07/go-ppm-raytracer/pkg/renderer"
	"github.com/df07/go-ppm-raytracer/pkg/scene"
	"github.com/google/uuid"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene     string // Scene selector (e.g. "5")
	Format    string // "ppm", "png" or "bmp"
	Workers   int
	Normalize string
	FlatHit   string
}

// encoders keyed by output format
var encoders = map[string]struct {
	contentType string
	encode      func(buf *bytes.Buffer, raster *renderer.Raster) error
}{
	"ppm": {"image/x-portable-pixmap", func(buf *bytes.Buffer, raster *renderer.Raster) error {
		return ppm.Encode(buf, raster)
	}},
	"png": {"image/png", func(buf *bytes.Buffer, raster *renderer.Raster) error {
		return png.Encode(buf, ppm.ToImage(raster))
	}},
	"bmp": {"image/bmp", func(buf *bytes.Buffer, raster *renderer.Raster) error {
		return ppm.EncodeBMP(buf, raster)
	}},
}

// parseRenderRequest parses request parameters on top of the server defaults
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:     query.Get("scene"),
		Format:    query.Get("format"),
		Normalize: s.config.Normalize,
		FlatHit:   s.config.FlatHit,
	}

	if req.Scene == "" {
		return nil, errors.New("missing scene")
	}
	if req.Format == "" {
		req.Format = "ppm"
	}
	if _, ok := encoders[req.Format]; !ok {
		return nil, fmt.Errorf("unknown format %q", req.Format)
	}
	if v := query.Get("normalize"); v != "" {
		req.Normalize = v
	}
	if v := query.Get("flatHit"); v != "" {
		req.FlatHit = v
	}

	var err error
	if req.Workers, err = parseIntParam(r, "workers", s.config.Workers, 0, 256); err != nil {
		return nil, err
	}
	return req, nil
}

// handleRender renders one scene and returns the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	renderID := uuid.NewString()
	w.Header().Set("X-Render-Id", renderID)

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	cfg := s.config
	cfg.Workers = req.Workers
	cfg.Normalize = req.Normalize
	cfg.FlatHit = req.FlatHit
	if err := cfg.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	shader, err := cfg.Shader()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	selected, err := scene.Lookup(req.Scene, shader)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	logger := logging.With("render", renderID, "scene", selected.Name)
	raytracer := selected.NewRaytracer()
	raytracer.SetWorkers(cfg.Workers)

	// Use request context to detect client disconnection
	raster, stats, err := raytracer.Render(r.Context())
	if err != nil {
		logger.Warn("render abandoned", "err", err)
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	logger.Info("render completed", "duration", stats.Duration, "format", req.Format)

	enc := encoders[req.Format]
	var buf bytes.Buffer
	if err := enc.encode(&buf, raster); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", enc.contentType)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", selected.OutputFile))
	w.WriteHeader(http.StatusOK)
	buf.WriteTo(w)
}
