package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:      d.TransactionID,
		OwnerID:            d.OwnerID,
		Kind:               string(d.Kind),
		Description:        d.Description,
		Notes:              d.Notes,
		Amount:             d.Amount,
		Status:             string(d.Status),
		OccurredOn:         d.OccurredOn,
		OccurredMonth:      d.OccurredMonth.String(),
		DueOn:              d.DueOn,
		PaidOn:             d.PaidOn,
		PaymentMethodID:    d.PaymentMethodID,
		SourceObligationID: d.SourceObligationID,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	month, err := domain.ParseMonth(m.OccurredMonth)
	if err != nil {
		return domain.Transaction{}, apperrors.NewDataIntegrityError("transaction %s occurred_month: %v", m.TransactionID, err)
	}
	return domain.Transaction{
		TransactionID:      m.TransactionID,
		OwnerID:            m.OwnerID,
		Kind:               domain.ObligationKind(m.Kind),
		Description:        m.Description,
		Notes:              m.Notes,
		Amount:             m.Amount,
		Status:             domain.TransactionStatus(m.Status),
		OccurredOn:         m.OccurredOn,
		OccurredMonth:      month,
		DueOn:              m.DueOn,
		PaidOn:             m.PaidOn,
		PaymentMethodID:    m.PaymentMethodID,
		SourceObligationID: m.SourceObligationID,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}, nil
}
