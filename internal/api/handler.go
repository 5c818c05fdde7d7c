package api

import (
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/rs/zerolog"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/api/middleware"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/config"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/fixes"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/kpi"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/patterns"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/report"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/triage"
)

// ReportRequest carries the record collection plus optional per-run
// threshold overrides, merged field-by-field onto the service defaults.
// Two concurrent requests with different thresholds never share state: a
// fresh pipeline is built per request.
type ReportRequest struct {
	Records     []models.AnalysisRecord `json:"records"`
	Thresholds  *config.Overrides       `json:"thresholds,omitempty"`
	FailOnEmpty bool                    `json:"fail_on_empty,omitempty"`
	Strict      bool                    `json:"strict,omitempty"`
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

type Handler struct {
	defaults config.Thresholds
	logger   *zerolog.Logger
}

func NewHandler(defaults config.Thresholds, logger *zerolog.Logger) *Handler {
	return &Handler{defaults: defaults, logger: logger}
}

// POST /api/v1/report
// Body: ReportRequest
// Returns: models.Report
func (h *Handler) GenerateReport(req *restful.Request, resp *restful.Response) {
	var reportRequest ReportRequest
	if err := req.ReadEntity(&reportRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	thresholds := h.defaults
	if reportRequest.Thresholds != nil {
		thresholds = reportRequest.Thresholds.Apply(h.defaults)
	}

	h.logger.Info().
		Int("records", len(reportRequest.Records)).
		Bool("overrides", reportRequest.Thresholds != nil).
		Msg("Start report generation")

	builder, err := h.newBuilder(thresholds, reportRequest)
	if err != nil {
		var thresholdErr *config.InvalidThresholdError
		if errors.As(err, &thresholdErr) {
			middleware.HandleError(resp, err, http.StatusBadRequest)
			return
		}
		middleware.HandleError(resp, err, http.StatusInternalServerError)
		return
	}

	rep, err := builder.Build(reportRequest.Records)
	if err != nil {
		status := http.StatusInternalServerError
		var malformedErr *models.MalformedRecordError
		switch {
		case errors.Is(err, report.ErrNoRecords):
			status = http.StatusUnprocessableEntity
		case errors.As(err, &malformedErr):
			status = http.StatusBadRequest
		}
		h.logger.Error().Err(err).Msg("Report generation failed")
		middleware.HandleError(resp, err, status)
		return
	}

	h.logger.Info().
		Str("run_id", rep.RunID).
		Int("conversations", rep.TotalConversations).
		Int("skipped", rep.SkippedRecordCount).
		Msg("Report generation complete")

	resp.WriteHeaderAndEntity(http.StatusOK, rep)
}

// Health handler GET /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	resp.WriteHeaderAndEntity(http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: "1.0.0",
	})
}

func (h *Handler) newBuilder(th config.Thresholds, reportRequest ReportRequest) (*report.Builder, error) {
	opts := report.Options{
		Malformed:   report.SkipMalformed,
		FailOnEmpty: reportRequest.FailOnEmpty,
	}
	if reportRequest.Strict {
		opts.Malformed = report.FailOnMalformed
	}

	return report.NewBuilder(
		th,
		kpi.NewCalculator(th, nil, h.logger),
		triage.NewClassifier(th, h.logger),
		patterns.NewAnalyzer(h.logger),
		fixes.NewRecommender(h.logger),
		opts,
		h.logger,
	)
}
