package dto

import "github.com/SscSPs/finance_tracker/internal/core/domain"

// GenerateMonthRequest triggers generation for one month.
type GenerateMonthRequest struct {
	Month string `json:"month" binding:"required,month"`
}

// GenerationReportResponse is the per-obligation outcome of a generation run.
type GenerationReportResponse struct {
	Month     string                  `json:"month"`
	Generated []domain.GeneratedEntry `json:"generated"`
	Skipped   []domain.SkippedEntry   `json:"skipped"`
	Failed    []domain.FailedEntry    `json:"failed"`
}

// ToGenerationReportResponse converts a domain.GenerationReport for output.
func ToGenerationReportResponse(r *domain.GenerationReport) GenerationReportResponse {
	return GenerationReportResponse{
		Month:     r.Month.String(),
		Generated: r.Generated,
		Skipped:   r.Skipped,
		Failed:    r.Failed,
	}
}
