// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preview serves rendered call scripts over HTTP.
//
// Routes:
//
//	GET  /health   liveness probe
//	POST /render   YAML script in, image out (?format=png|bmp|tiff,
//	               optional ?zoom=&pan_x=&pan_y= for a final frame)
//	POST /dump     YAML script in, call trace and shape store as text
//
// Every request replays its script on a fresh scene. Renders run one at a
// time because gg's GPU accelerator is process-wide.
package preview

import (
	"bytes"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/boundary"
	"github.com/gogpu/shapes/internal/script"
	"github.com/gogpu/shapes/internal/snapshot"
)

var contentTypes = map[string]string{
	snapshot.FormatPNG:  "image/png",
	snapshot.FormatBMP:  "image/bmp",
	snapshot.FormatTIFF: "image/tiff",
}

// Server is the preview HTTP server.
type Server struct {
	app  *fiber.App
	cfg  Config
	opts []shapes.StateOption
	mu   sync.Mutex
}

// New creates a server. opts are passed to every scene it creates.
func New(cfg Config, opts ...shapes.StateOption) *Server {
	s := &Server{cfg: cfg, opts: opts}

	s.app = fiber.New(fiber.Config{
		AppName:      "shapes preview",
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		BodyLimit:    cfg.BodyLimit,
	})
	s.app.Use(recover.New())
	s.app.Use(logRequests)

	s.app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Post("/render", s.render)
	s.app.Post("/dump", s.dump)

	return s
}

// App returns the underlying fiber app.
func (s *Server) App() *fiber.App { return s.app }

// Listen serves on the configured address until the app shuts down.
func (s *Server) Listen() error {
	shapes.Logger().Info("preview: listening", "addr", s.cfg.Addr)
	return s.app.Listen(s.cfg.Addr)
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

func logRequests(c fiber.Ctx) error {
	start := time.Now()
	err := c.Next()
	shapes.Logger().Info("preview: request",
		"method", c.Method(),
		"path", c.Path(),
		"status", c.Response().StatusCode(),
		"latency", time.Since(start))
	return err
}

// replay parses the request body and replays it on a fresh boundary.
// The caller must Close the returned boundary.
func (s *Server) replay(c fiber.Ctx) (*boundary.Boundary, script.Trace, error) {
	sc, err := script.Parse(c.Body())
	if err != nil {
		return nil, nil, err
	}
	b := boundary.New(s.opts...)
	trace, err := script.Replay(b, sc)
	if err != nil {
		b.Close()
		return nil, trace, err
	}
	return b, trace, nil
}

func badRequest(c fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func (s *Server) render(c fiber.Ctx) error {
	format := c.Query("format", snapshot.FormatPNG)
	contentType, ok := contentTypes[format]
	if !ok {
		return badRequest(c, errors.New("unsupported format "+strconv.Quote(format)))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, _, err := s.replay(c)
	if err != nil {
		return badRequest(c, err)
	}
	defer b.Close()

	if view, err := viewFromQuery(c); err != nil {
		return badRequest(c, err)
	} else if view != nil {
		if err := b.RenderFrame(view[0], view[1], view[2]); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
	}

	snap, ok := b.State().Surface().(shapes.Snapshotter)
	if !ok {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "surface cannot be read back"})
	}
	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, snap.Image(), format); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(buf.Bytes())
}

func (s *Server) dump(c fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, trace, err := s.replay(c)
	if err != nil {
		return badRequest(c, err)
	}
	defer b.Close()

	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.SendString(trace.String() + script.Dump(b.State().Store()))
}

// viewFromQuery returns zoom, pan_x and pan_y when any of them is present.
func viewFromQuery(c fiber.Ctx) (*[3]float32, error) {
	keys := [3]string{"zoom", "pan_x", "pan_y"}
	view := [3]float32{1, 0, 0}
	found := false
	for i, k := range keys {
		raw := c.Query(k)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 32)
		if err != nil {
			return nil, errors.New("invalid " + k + ": " + raw)
		}
		view[i] = float32(v)
		found = true
	}
	if !found {
		return nil, nil
	}
	return &view, nil
}
