package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelAuditFields converts a domain AuditFields to a model AuditFields
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		CreatedBy:     d.CreatedBy,
		LastUpdatedAt: d.LastUpdatedAt,
		LastUpdatedBy: d.LastUpdatedBy,
	}
}

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}

// ToModelAllocations converts a domain allocation set to child rows of parentID.
func ToModelAllocations(parentID string, set domain.AllocationSet) []models.CategoryAllocation {
	rows := make([]models.CategoryAllocation, len(set))
	for i, a := range set {
		rows[i] = models.CategoryAllocation{ParentID: parentID, CategoryID: a.CategoryID, AllocatedAmount: a.AllocatedAmount}
	}
	return rows
}

// ToDomainAllocations converts child rows back to a domain allocation set.
func ToDomainAllocations(rows []models.CategoryAllocation) domain.AllocationSet {
	set := make(domain.AllocationSet, len(rows))
	for i, r := range rows {
		set[i] = domain.CategoryAllocation{CategoryID: r.CategoryID, AllocatedAmount: r.AllocatedAmount}
	}
	return set
}
