// Package mockapi serves canned Trendyol seller API responses so the client
// and CLI can be exercised locally without real credentials.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/trendyol-seller/internal/config"
	mw "github.com/donaldgifford/trendyol-seller/internal/mockapi/middleware"
	"github.com/donaldgifford/trendyol-seller/pkg/trendyol"
)

const cursorPrefix = "cursor-"

// Server is the mock API. Webhooks and question answers are kept in memory
// for the life of the process.
type Server struct {
	echo   *echo.Echo
	cfg    config.MockServerConfig
	logger *slog.Logger

	mu       sync.Mutex
	webhooks map[string]trendyol.Webhook
	answers  map[string]string
}

// New builds a mock server with all routes registered.
func New(cfg config.MockServerConfig, logger *slog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:     e,
		cfg:      cfg,
		logger:   logger,
		webhooks: make(map[string]trendyol.Webhook),
		answers:  make(map[string]string),
	}

	e.Use(mw.Recovery(logger))
	e.Use(mw.RequestLog(logger))
	e.Use(mw.Metrics())
	e.Use(mw.BasicAuth())

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	s.registerCatalog()
	s.registerProducts()
	s.registerSeller()

	e.RouteNotFound("/*", func(c echo.Context) error {
		return apiError(c, http.StatusNotFound, "resource not found")
	})

	return s
}

// Handler returns the server as an http.Handler.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	s.echo.Server.ReadTimeout = s.cfg.ReadTimeout
	s.echo.Server.WriteTimeout = s.cfg.WriteTimeout

	s.logger.Info("starting mock trendyol server", "addr", addr)
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("mock server: %w", err)
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

var placeholder = regexp.MustCompile(`\{(\w+)\}`)

// echoPath turns a client route template into an Echo route pattern.
func echoPath(route string) string {
	return placeholder.ReplaceAllString(route, ":$1")
}

func apiError(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"message": message})
}

// pageParams reads page, size and nextPageToken. A cursor overrides the
// page index.
func pageParams(c echo.Context, defaultSize, maxSize int) (page, size int, err error) {
	size = defaultSize
	if v := c.QueryParam("size"); v != "" {
		size, err = strconv.Atoi(v)
		if err != nil || size <= 0 {
			return 0, 0, fmt.Errorf("invalid size %q", v)
		}
		size = min(size, maxSize)
	}
	if v := c.QueryParam("page"); v != "" {
		page, err = strconv.Atoi(v)
		if err != nil || page < 0 {
			return 0, 0, fmt.Errorf("invalid page %q", v)
		}
	}
	if token := c.QueryParam("nextPageToken"); token != "" {
		page, err = strconv.Atoi(strings.TrimPrefix(token, cursorPrefix))
		if err != nil || !strings.HasPrefix(token, cursorPrefix) {
			return 0, 0, fmt.Errorf("invalid nextPageToken %q", token)
		}
	}
	return page, size, nil
}

// buildPage renders page of a generated collection of total items. Pages at
// or past cursorAfter carry a nextPageToken while more pages remain.
func buildPage[T any](total int64, page, size, cursorAfter int, gen func(i int) T) trendyol.Page[T] {
	totalPages := int((total + int64(size) - 1) / int64(size))
	start := int64(page) * int64(size)
	end := min(start+int64(size), total)

	content := make([]T, 0, max(end-start, 0))
	for i := start; i < end; i++ {
		content = append(content, gen(int(i)))
	}

	p := trendyol.Page[T]{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}
	if page >= cursorAfter && page+1 < totalPages {
		p.NextPageToken = cursorPrefix + strconv.Itoa(page+1)
	}
	return p
}

// legacyPage wraps items the way legacy list endpoints do.
func legacyPage[T any](items []T, page, size int) map[string]any {
	start := min(page*size, len(items))
	end := min(start+size, len(items))
	return map[string]any{
		"content":       items[start:end],
		"page":          page,
		"size":          size,
		"totalElements": len(items),
		"totalPages":    (len(items) + size - 1) / size,
	}
}
