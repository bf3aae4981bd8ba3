package mapping

import (
	"github.com/SscSPs/cleanbook_engine/internal/core/domain"
	"github.com/SscSPs/cleanbook_engine/internal/models"
)

// ToDomainAuditFields converts a model AuditFields to a domain AuditFields
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
