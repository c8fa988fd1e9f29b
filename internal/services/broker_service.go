package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/models"
	"brokerfolio/internal/pagination"
	"brokerfolio/internal/report"
)

// brokerService handles broker business logic.
type brokerService struct {
	db      *gorm.DB
	records report.RecordSource
}

// NewBrokerService creates a new BrokerServicer. records supplies the
// transactions used by GetBrokerSummary.
func NewBrokerService(db *gorm.DB, records report.RecordSource) BrokerServicer {
	return &brokerService{db: db, records: records}
}

// CreateBroker creates a new broker with a unique name and, if given, a unique tax ID.
func (s *brokerService) CreateBroker(input BrokerInput) (*models.Broker, error) {
	name := ""
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Broker name is required")
	}
	if err := s.ensureNameAvailable(name, ""); err != nil {
		return nil, err
	}

	broker := &models.Broker{Name: name}
	if taxID := optionalTrimmed(input.TaxID); taxID != nil {
		if err := s.ensureTaxIDAvailable(*taxID, ""); err != nil {
			return nil, err
		}
		broker.TaxID = taxID
	}
	applyBrokerContact(broker, input)

	if err := s.db.Create(broker).Error; err != nil {
		if isUniqueConstraintError(err) {
			return nil, apperrors.ErrDuplicateBroker
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return broker, nil
}

// ListBrokers returns a paginated list of brokers ordered by name.
func (s *brokerService) ListBrokers(page pagination.PageRequest) (*pagination.PageResponse[models.Broker], error) {
	return s.paginate(s.db.Model(&models.Broker{}), page)
}

// GetBrokerByID returns a broker by its ID.
func (s *brokerService) GetBrokerByID(id string) (*models.Broker, error) {
	var broker models.Broker
	if err := s.db.Where("id = ?", id).First(&broker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &broker, nil
}

// GetBrokerByCode returns a broker by its code.
func (s *brokerService) GetBrokerByCode(code string) (*models.Broker, error) {
	var broker models.Broker
	if err := s.db.Where("code = ?", strings.TrimSpace(code)).First(&broker).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBrokerNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &broker, nil
}

// SearchBrokers matches term against name, code and tax ID. An empty term lists all brokers.
func (s *brokerService) SearchBrokers(term string, page pagination.PageRequest) (*pagination.PageResponse[models.Broker], error) {
	if strings.TrimSpace(term) == "" {
		return s.ListBrokers(page)
	}
	pattern := likePattern(term)
	query := s.db.Model(&models.Broker{}).
		Where("UPPER(name) LIKE ? OR UPPER(code) LIKE ? OR tax_id LIKE ?", pattern, pattern, pattern)
	return s.paginate(query, page)
}

// UpdateBroker applies the non-nil fields of input to a broker.
func (s *brokerService) UpdateBroker(id string, input BrokerInput) (*models.Broker, error) {
	broker, err := s.GetBrokerByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Broker name cannot be empty")
		}
		if err := s.ensureNameAvailable(name, id); err != nil {
			return nil, err
		}
		updates["name"] = name
	}
	if input.TaxID != nil {
		taxID := optionalTrimmed(input.TaxID)
		if taxID != nil {
			if err := s.ensureTaxIDAvailable(*taxID, id); err != nil {
				return nil, err
			}
		}
		updates["tax_id"] = taxID
	}
	if input.Code != nil {
		updates["code"] = strings.TrimSpace(*input.Code)
	}
	if input.Website != nil {
		updates["website"] = *input.Website
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Email != nil {
		updates["email"] = *input.Email
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(broker).Updates(updates).Error; err != nil {
			if isUniqueConstraintError(err) {
				return nil, apperrors.ErrDuplicateBroker
			}
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetBrokerByID(id)
}

// DeleteBroker removes a broker that no transaction references.
func (s *brokerService) DeleteBroker(id string) error {
	broker, err := s.GetBrokerByID(id)
	if err != nil {
		return err
	}

	var count int64
	if err := s.db.Model(&models.Transaction{}).Where("broker_id = ?", id).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrBrokerInUse
	}

	if err := s.db.Delete(broker).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetBrokerStats counts brokers with and without recorded transactions.
func (s *brokerService) GetBrokerStats() (*BrokerStats, error) {
	stats := &BrokerStats{}
	if err := s.db.Model(&models.Broker{}).Count(&stats.TotalBrokers).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	active := s.db.Model(&models.Transaction{}).Select("broker_id")
	if err := s.db.Model(&models.Broker{}).
		Where("id IN (?)", active).
		Count(&stats.BrokersWithTransactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	stats.BrokersWithoutActivity = stats.TotalBrokers - stats.BrokersWithTransactions
	return stats, nil
}

// GetBrokerSummary aggregates every transaction recorded at a broker. The
// broker lookup and the record fetch run concurrently.
func (s *brokerService) GetBrokerSummary(ctx context.Context, id string) (*BrokerSummary, error) {
	var (
		broker  *models.Broker
		records []report.Record
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		broker, err = s.GetBrokerByID(id)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.records.Records(gctx, report.Criteria{BrokerID: id})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := &BrokerSummary{Broker: broker, NetInvested: decimal.Zero}
	for _, r := range records {
		if r.BrokerID != id {
			continue
		}
		summary.TotalOperations++
		switch r.Operation {
		case report.OperationBuy:
			summary.BuyCount++
			summary.NetInvested = summary.NetInvested.Add(r.Value())
		case report.OperationSell:
			summary.SellCount++
			summary.NetInvested = summary.NetInvested.Sub(r.Value())
		}
		if summary.LastOperation == nil || r.Date.After(*summary.LastOperation) {
			d := r.Date
			summary.LastOperation = &d
		}
	}
	summary.NetInvested = summary.NetInvested.Round(report.MoneyPlaces)
	return summary, nil
}

// paginate counts and fetches one page of the given broker query, ordered by name.
func (s *brokerService) paginate(query *gorm.DB, page pagination.PageRequest) (*pagination.PageResponse[models.Broker], error) {
	result, err := pagination.Fetch[models.Broker](query, page, "name ASC")
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return result, nil
}

func (s *brokerService) ensureNameAvailable(name, exceptID string) error {
	var existing models.Broker
	err := s.db.Where("name = ?", name).First(&existing).Error
	if err == nil && existing.ID != exceptID {
		return apperrors.ErrDuplicateBroker
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func (s *brokerService) ensureTaxIDAvailable(taxID, exceptID string) error {
	var existing models.Broker
	err := s.db.Where("tax_id = ?", taxID).First(&existing).Error
	if err == nil && existing.ID != exceptID {
		return apperrors.ErrDuplicateBrokerTax
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// applyBrokerContact copies the optional contact fields of input onto b.
func applyBrokerContact(b *models.Broker, input BrokerInput) {
	if input.Code != nil {
		b.Code = strings.TrimSpace(*input.Code)
	}
	if input.Website != nil {
		b.Website = *input.Website
	}
	if input.Phone != nil {
		b.Phone = *input.Phone
	}
	if input.Email != nil {
		b.Email = *input.Email
	}
	if input.Notes != nil {
		b.Notes = *input.Notes
	}
}

// optionalTrimmed returns nil for a nil or blank string, otherwise the trimmed value.
func optionalTrimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
