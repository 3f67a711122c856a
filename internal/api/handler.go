package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/patterns/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/patterns/internal/models"
	countuniquevalues "github.com/povarna/generative-ai-agents/patterns/leetcode/0026_count_unique_values"
	"github.com/rs/zerolog"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_solver.go -package=mocks

type Solver interface {
	Anagram(ctx context.Context, req models.AnagramRequest) (models.AnagramResult, error)
	CountUnique(ctx context.Context, req models.UniqueRequest) (models.UniqueResult, error)
}

type Handler struct {
	solver Solver
	logger *zerolog.Logger
}

func NewHandler(solver Solver, logger *zerolog.Logger) *Handler {
	return &Handler{
		solver: solver,
		logger: logger,
	}
}

// POST /api/v1/anagram
// Body: AnagramRequest
// Returns: AnagramResult
func (h *Handler) Anagram(req *restful.Request, resp *restful.Response) {
	var anagramRequest models.AnagramRequest
	if err := req.ReadEntity(&anagramRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("id", anagramRequest.ID).
		Str("method", string(anagramRequest.Method)).
		Msg("Check anagram")

	result, err := h.solver.Anagram(req.Request.Context(), anagramRequest)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, models.ErrUnknownMethod) {
			status = http.StatusBadRequest
		}
		h.logger.Error().Err(err).Str("id", anagramRequest.ID).Msg("Anagram check failed")
		middleware.HandleError(resp, err, status)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// POST /api/v1/unique
// Body: UniqueRequest
// Returns: UniqueResult
func (h *Handler) CountUnique(req *restful.Request, resp *restful.Response) {
	var uniqueRequest models.UniqueRequest
	if err := req.ReadEntity(&uniqueRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("id", uniqueRequest.ID).
		Int("values", len(uniqueRequest.Values)).
		Bool("checked", uniqueRequest.Checked).
		Msg("Count unique values")

	result, err := h.solver.CountUnique(req.Request.Context(), uniqueRequest)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, countuniquevalues.ErrUnsorted) {
			status = http.StatusUnprocessableEntity
		}
		h.logger.Error().Err(err).Str("id", uniqueRequest.ID).Msg("Unique count failed")
		middleware.HandleError(resp, err, status)
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: Version,
	})
}
