// Package server provides the HTTP server and Echo setup for the meeting API.
package server

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"meetline/internal/config"
	"meetline/internal/metrics"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// Server is the HTTP server (Echo) with the shared middleware chain and the
// registered handlers.
type Server struct {
	echo *echo.Echo
	addr string
}

// Handler registers routes on the Echo instance.
type Handler interface {
	Register(e *echo.Echo)
}

// New builds the Echo server with recovery, request logging, security
// headers, CORS, and Prometheus instrumentation, then mounts the handlers.
func New(cfg *config.Config, addr string, handlers ...Handler) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = readTimeout
	e.Server.WriteTimeout = writeTimeout
	e.Server.IdleTimeout = idleTimeout

	e.Use(middleware.Recover())
	e.Use(requestLogging())
	e.Use(securityHeaders(cfg))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORS.AllowedOrigins,
		AllowMethods: cfg.CORS.AllowedMethods,
		AllowHeaders: cfg.CORS.AllowedHeaders,
		MaxAge:       cfg.CORS.MaxAge,
	}))
	e.Use(metrics.PrometheusMiddleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	for _, h := range handlers {
		if h != nil {
			h.Register(e)
		}
	}

	return &Server{echo: e, addr: addr}
}

// Start starts the HTTP server (blocks until shutdown).
func (s *Server) Start() error {
	log.Printf("Server listening on %s", s.addr)
	return s.echo.Start(s.addr)
}

// Stop gracefully shuts down the server using the given context.
func (s *Server) Stop(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// securityHeaders adds security headers to responses
func securityHeaders(cfg *config.Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")

			// HSTS (only in production with HTTPS)
			if !cfg.App.Debug && c.Request().TLS != nil {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			return next(c)
		}
	}
}

// requestLogging logs all incoming requests and their responses
func requestLogging() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			// Skip logging for health checks to reduce noise
			if req.URL.Path == "/health" {
				return next(c)
			}

			start := time.Now()
			log.Printf("[REQUEST] %s %s from %s", req.Method, req.URL.Path, c.RealIP())

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			duration := time.Since(start)
			status := c.Response().Status
			statusText := "OK"
			if status >= 400 {
				statusText = "ERROR"
			}
			log.Printf("[RESPONSE] %s %s -> %d %s (%v)", req.Method, req.URL.Path, status, statusText, duration)
			return nil
		}
	}
}
