package domain

// GeneratedEntry records a transaction created during a generation run.
type GeneratedEntry struct {
	ObligationID  string `json:"obligationID"`
	TransactionID string `json:"transactionID"`
	OccurredOn    string `json:"occurredOn"`
}

// SkippedEntry records an obligation that already had a transaction for the month.
type SkippedEntry struct {
	ObligationID          string `json:"obligationID"`
	ExistingTransactionID string `json:"existingTransactionID,omitempty"`
}

// FailedEntry records an obligation whose stored data could not be materialized.
type FailedEntry struct {
	ObligationID string `json:"obligationID"`
	Reason       string `json:"reason"`
}

// GenerationReport is the per-obligation outcome of generating one owner's month.
type GenerationReport struct {
	OwnerID   string           `json:"ownerID"`
	Month     Month            `json:"month"`
	Generated []GeneratedEntry `json:"generated"`
	Skipped   []SkippedEntry   `json:"skipped"`
	Failed    []FailedEntry    `json:"failed"`
}

// NewGenerationReport returns an empty report with non-nil lists.
func NewGenerationReport(ownerID string, m Month) *GenerationReport {
	return &GenerationReport{
		OwnerID:   ownerID,
		Month:     m,
		Generated: []GeneratedEntry{},
		Skipped:   []SkippedEntry{},
		Failed:    []FailedEntry{},
	}
}

// HasFailures reports whether any obligation failed.
func (r *GenerationReport) HasFailures() bool {
	return len(r.Failed) > 0
}
