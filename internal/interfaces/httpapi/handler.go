package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/bowling-league/internal/platform/logging"
	"github.com/riskibarqy/bowling-league/internal/usecase"
)

const maxRequestBodyBytes = 1 << 20

type Handler struct {
	leagueService     *usecase.LeagueService
	rosterService     *usecase.RosterService
	scheduleService   *usecase.ScheduleService
	matchService      *usecase.MatchService
	scoreSheetService *usecase.ScoreSheetService
	standingService   *usecase.StandingService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	rosterService *usecase.RosterService,
	scheduleService *usecase.ScheduleService,
	matchService *usecase.MatchService,
	scoreSheetService *usecase.ScoreSheetService,
	standingService *usecase.StandingService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:     leagueService,
		rosterService:     rosterService,
		scheduleService:   scheduleService,
		matchService:      matchService,
		scoreSheetService: scoreSheetService,
		standingService:   standingService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetSelf(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSelf")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, selfDTO{
		UserID: principal.UserID,
		Email:  principal.Email,
	})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeRequest reads a JSON body into dest and validates it. The raw body is returned
// for handlers that need to tell an explicit null from an absent key.
func (h *Handler) decodeRequest(ctx context.Context, r *http.Request, dest any) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: read request body: %v", usecase.ErrInvalidInput, err)
	}

	decoder := sonic.ConfigDefault.NewDecoder(bytes.NewReader(body))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dest); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	if err := h.validateRequest(ctx, dest); err != nil {
		return nil, err
	}

	return body, nil
}

func weekNumberFromPath(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("weekNumber"))
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		return 0, fmt.Errorf("%w: invalid week number %q", usecase.ErrInvalidInput, raw)
	}
	return number, nil
}

func pathValue(r *http.Request, name string) string {
	return strings.TrimSpace(r.PathValue(name))
}
