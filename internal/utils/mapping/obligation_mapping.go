package mapping

import (
	"github.com/SscSPs/finance_tracker/internal/apperrors"
	"github.com/SscSPs/finance_tracker/internal/core/domain"
	"github.com/SscSPs/finance_tracker/internal/models"
)

// ToModelObligation converts a domain RecurringObligation to a model row.
// Allocations are stored separately.
func ToModelObligation(d domain.RecurringObligation) models.RecurringObligation {
	m := models.RecurringObligation{
		ObligationID:    d.ObligationID,
		OwnerID:         d.OwnerID,
		LineageID:       d.LineageID,
		SupersedesID:    d.SupersedesID,
		Title:           d.Title,
		Description:     d.Description,
		Amount:          d.Amount,
		Kind:            string(d.Kind),
		DayOfMonth:      d.DayOfMonth,
		DefaultStatus:   string(d.DefaultStatus),
		PaymentMethodID: d.PaymentMethodID,
		ActiveFromMonth: d.ActiveFromMonth.String(),
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	if d.ActiveToMonth != nil {
		to := d.ActiveToMonth.String()
		m.ActiveToMonth = &to
	}
	return m
}

// ToDomainObligation converts a model row to a domain RecurringObligation. A stored month
// that does not parse is a data integrity failure, not a caller error.
func ToDomainObligation(m models.RecurringObligation) (domain.RecurringObligation, error) {
	from, err := domain.ParseMonth(m.ActiveFromMonth)
	if err != nil {
		return domain.RecurringObligation{}, apperrors.NewDataIntegrityError("obligation %s active_from_month: %v", m.ObligationID, err)
	}
	d := domain.RecurringObligation{
		ObligationID:    m.ObligationID,
		OwnerID:         m.OwnerID,
		LineageID:       m.LineageID,
		SupersedesID:    m.SupersedesID,
		Title:           m.Title,
		Description:     m.Description,
		Amount:          m.Amount,
		Kind:            domain.ObligationKind(m.Kind),
		DayOfMonth:      m.DayOfMonth,
		DefaultStatus:   domain.TransactionStatus(m.DefaultStatus),
		PaymentMethodID: m.PaymentMethodID,
		ActiveFromMonth: from,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	if m.ActiveToMonth != nil {
		to, err := domain.ParseMonth(*m.ActiveToMonth)
		if err != nil {
			return domain.RecurringObligation{}, apperrors.NewDataIntegrityError("obligation %s active_to_month: %v", m.ObligationID, err)
		}
		d.ActiveToMonth = &to
	}
	return d, nil
}
