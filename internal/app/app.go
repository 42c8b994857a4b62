package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/bowling-league/internal/config"
	"github.com/riskibarqy/bowling-league/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/bowling-league/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/bowling-league/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/bowling-league/internal/platform/id"
	"github.com/riskibarqy/bowling-league/internal/platform/logging"
	"github.com/riskibarqy/bowling-league/internal/platform/resilience"
	"github.com/riskibarqy/bowling-league/internal/usecase"
)

// Server bundles the HTTP server with the resources it owns.
type Server struct {
	HTTP  *http.Server
	close func() error
}

// Close releases storage connections. Call it after the HTTP server has shut down.
func (s *Server) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	verifier, err := newTokenVerifier(cfg, logger)
	if err != nil {
		_ = repos.close()
		return nil, err
	}

	ids := idgen.NewUUIDGenerator()
	leagueSvc := usecase.NewLeagueService(repos.leagues, repos.weeks, ids)
	rosterSvc := usecase.NewRosterService(repos.leagues, repos.teams, repos.bowlers, ids)
	scheduleSvc := usecase.NewScheduleService(repos.leagues, repos.weeks)
	matchSvc := usecase.NewMatchService(repos.leagues, repos.weeks, repos.teams, repos.bowlers, repos.matches, ids)
	scoreSheetSvc := usecase.NewScoreSheetService(repos.leagues, repos.weeks, repos.bowlers, repos.matches)
	standingSvc := usecase.NewStandingService(repos.leagues, repos.teams, repos.matches, cfg.StandingsWorkers)

	handler := httpapi.NewHandler(leagueSvc, rosterSvc, scheduleSvc, matchSvc, scoreSheetSvc, standingSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	return &Server{
		HTTP: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           router,
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.WriteTimeout,
		},
		close: repos.close,
	}, nil
}

func newTokenVerifier(cfg config.Config, logger *logging.Logger) (httpapi.TokenVerifier, error) {
	switch cfg.AuthMode {
	case config.AuthModeJWT:
		verifier, err := jwtauth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
		if err != nil {
			return nil, fmt.Errorf("build jwt verifier: %w", err)
		}
		logger.Info("auth verifier ready", "mode", cfg.AuthMode, "issuer", cfg.JWTIssuer)
		return verifier, nil
	default:
		client := anubis.NewClient(
			&http.Client{Timeout: cfg.AnubisTimeout},
			anubis.Config{
				BaseURL:        cfg.AnubisBaseURL,
				IntrospectPath: cfg.AnubisIntrospectURL,
				AdminKey:       cfg.AnubisAdminKey,
				CacheTTL:       cfg.AnubisCacheTTL,
				CircuitBreaker: resilience.CircuitBreakerConfig{
					Enabled:          cfg.AnubisCircuitEnabled,
					FailureThreshold: cfg.AnubisCircuitFailureCount,
					OpenTimeout:      cfg.AnubisCircuitOpenTimeout,
					HalfOpenMaxReq:   cfg.AnubisCircuitHalfOpenMaxReq,
				},
			},
			logger,
		)
		logger.Info("auth verifier ready", "mode", config.AuthModeAnubis, "base_url", cfg.AnubisBaseURL)
		return client, nil
	}
}
