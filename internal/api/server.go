package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"hermes/internal/csv"
	"hermes/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Source loads the datasets. Implementations must not return partial
// results together with an error.
type Source interface {
	Transfers() ([]models.TransferRecord, error)
	Phaseouts() ([]models.PhaseoutRecord, error)
}

const (
	transferFailure = "Falha ao ler os dados de transferência."
	phaseoutFailure = "Falha ao ler os dados de phaseout."
)

type Server struct {
	source Source
	log    zerolog.Logger
	router *gin.Engine
}

func NewServer(source Source, logger zerolog.Logger) *Server {
	s := &Server{source: source, log: logger}

	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger(), cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
	}))

	router.GET("/healthz", s.health)
	api := router.Group("/api")
	api.GET("/"+string(models.Transfer), s.listTransfers)
	api.GET("/"+string(models.Phaseout), s.listPhaseouts)

	s.router = router
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Msg("data service listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to serve: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.log.Info().Msg("shutting down data service")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down: %w", err)
	}
	return nil
}

func (s *Server) listTransfers(c *gin.Context) {
	start := time.Now()
	records, err := s.source.Transfers()
	if err != nil {
		s.fail(c, models.Transfer, err, transferFailure)
		return
	}
	if records == nil {
		records = []models.TransferRecord{}
	}
	s.log.Info().
		Str("dataset", string(models.Transfer)).
		Int("rows", len(records)).
		Dur("took", time.Since(start)).
		Msg("transfer data read and sent")
	c.JSON(http.StatusOK, records)
}

func (s *Server) listPhaseouts(c *gin.Context) {
	start := time.Now()
	records, err := s.source.Phaseouts()
	if err != nil {
		s.fail(c, models.Phaseout, err, phaseoutFailure)
		return
	}
	if records == nil {
		records = []models.PhaseoutRecord{}
	}
	s.log.Info().
		Str("dataset", string(models.Phaseout)).
		Int("rows", len(records)).
		Dur("took", time.Since(start)).
		Msg("phaseout data read and normalized")
	c.JSON(http.StatusOK, records)
}

func (s *Server) fail(c *gin.Context, dataset models.Dataset, err error, message string) {
	kind := "unknown"
	switch {
	case errors.Is(err, csv.ErrFileAccess):
		kind = "file_access"
	case errors.Is(err, csv.ErrParse):
		kind = "parse"
	}
	s.log.Error().
		Err(err).
		Str("dataset", string(dataset)).
		Str("kind", kind).
		Msg("failed to read dataset")
	c.JSON(http.StatusInternalServerError, gin.H{"erro": message})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("took", time.Since(start)).
			Msg("request")
	}
}
