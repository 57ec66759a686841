// Package http implements the HTTP transport: statement upload, analysis
// and health endpoints.
package http

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "finlens/internal/errors"
	"finlens/internal/services"
	v1 "finlens/pkg/contracts/api/v1"
)

// AnalysisHandler handles statement analysis requests.
type AnalysisHandler struct {
	service        *services.AnalysisService
	logger         *slog.Logger
	maxUploadBytes int64
}

// NewAnalysisHandler creates an analysis handler.
func NewAnalysisHandler(service *services.AnalysisService, logger *slog.Logger, maxUploadBytes int64) *AnalysisHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisHandler{
		service:        service,
		logger:         logger.With(slog.String("handler", "analysis")),
		maxUploadBytes: maxUploadBytes,
	}
}

// Routes returns the analysis routes.
func (h *AnalysisHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Post("/analyze", h.Analyze)
	return r
}

// Analyze handles POST /api/analyze. The multipart body carries the
// statement file under "file" plus optional "company" and "years" fields.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.renderError(w, r, apierrors.ErrFileTooLarge)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.renderError(w, r, apierrors.ErrMissingFile)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.renderError(w, r, apierrors.ErrInvalidRequest)
		return
	}

	req := v1.AnalyzeRequest{Company: r.FormValue("company")}
	if yearsRaw := r.FormValue("years"); yearsRaw != "" {
		years, err := strconv.Atoi(yearsRaw)
		if err != nil {
			h.renderError(w, r, apierrors.ErrValidation("years", "must be an integer"))
			return
		}
		req.Years = years
	}

	resp, err := h.service.Analyze(ctx, data, header.Filename, req)
	if err != nil {
		h.logger.WarnContext(ctx, "analysis failed",
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		h.renderError(w, r, apierrors.FromPipeline(err))
		return
	}

	render.JSON(w, r, resp)
}

func (h *AnalysisHandler) renderError(w http.ResponseWriter, r *http.Request, apiErr *apierrors.APIError) {
	if err := render.Render(w, r, apierrors.NewErrorResponse(apiErr)); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to render error response",
			slog.String("error", err.Error()))
	}
}
