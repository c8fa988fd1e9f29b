package handlers

import (
	"context"

	"brokerfolio/internal/models"
	"brokerfolio/internal/pagination"
	"brokerfolio/internal/report"
	"brokerfolio/internal/services"
)

// --- mock asset type service ---

type mockAssetTypeService struct {
	createAssetTypeFn   func(name, description string) (*models.AssetType, error)
	searchAssetTypesFn  func(term string, page pagination.PageRequest) (*pagination.PageResponse[models.AssetType], error)
	getAssetTypeStatsFn func() (*services.AssetTypeStats, error)
	getAssetTypeFn      func(id string) (*models.AssetType, error)
	updateAssetTypeFn   func(id string, name, description *string) (*models.AssetType, error)
	deleteAssetTypeFn   func(id string) error
}

var _ services.AssetTypeServicer = (*mockAssetTypeService)(nil)

func (m *mockAssetTypeService) CreateAssetType(name, description string) (*models.AssetType, error) {
	if m.createAssetTypeFn != nil {
		return m.createAssetTypeFn(name, description)
	}
	return &models.AssetType{Name: name}, nil
}

func (m *mockAssetTypeService) ListAssetTypes(page pagination.PageRequest) (*pagination.PageResponse[models.AssetType], error) {
	resp := pagination.NewPageResponse([]models.AssetType{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockAssetTypeService) SearchAssetTypes(term string, page pagination.PageRequest) (*pagination.PageResponse[models.AssetType], error) {
	if m.searchAssetTypesFn != nil {
		return m.searchAssetTypesFn(term, page)
	}
	resp := pagination.NewPageResponse([]models.AssetType{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockAssetTypeService) GetAssetTypeStats() (*services.AssetTypeStats, error) {
	if m.getAssetTypeStatsFn != nil {
		return m.getAssetTypeStatsFn()
	}
	return &services.AssetTypeStats{}, nil
}

func (m *mockAssetTypeService) GetAssetTypeByID(id string) (*models.AssetType, error) {
	if m.getAssetTypeFn != nil {
		return m.getAssetTypeFn(id)
	}
	return &models.AssetType{Base: models.Base{ID: id}}, nil
}

func (m *mockAssetTypeService) UpdateAssetType(id string, name, description *string) (*models.AssetType, error) {
	if m.updateAssetTypeFn != nil {
		return m.updateAssetTypeFn(id, name, description)
	}
	return &models.AssetType{Base: models.Base{ID: id}}, nil
}

func (m *mockAssetTypeService) DeleteAssetType(id string) error {
	if m.deleteAssetTypeFn != nil {
		return m.deleteAssetTypeFn(id)
	}
	return nil
}

// --- mock asset service ---

type mockAssetService struct {
	createAssetFn      func(input services.AssetInput) (*models.Asset, error)
	getAssetFn         func(id string) (*models.Asset, error)
	getAssetByTickerFn func(ticker string) (*models.Asset, error)
	listAssetsByTypeFn func(assetTypeID string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	searchAssetsFn     func(term string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	updateAssetFn      func(id string, input services.AssetInput) (*models.Asset, error)
	deleteAssetFn      func(id string) error
	getAssetStatsFn    func() (*services.AssetStats, error)
}

var _ services.AssetServicer = (*mockAssetService)(nil)

func (m *mockAssetService) CreateAsset(input services.AssetInput) (*models.Asset, error) {
	if m.createAssetFn != nil {
		return m.createAssetFn(input)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) ListAssets(page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	resp := pagination.NewPageResponse([]models.Asset{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockAssetService) GetAssetByID(id string) (*models.Asset, error) {
	if m.getAssetFn != nil {
		return m.getAssetFn(id)
	}
	return &models.Asset{Base: models.Base{ID: id}}, nil
}

func (m *mockAssetService) GetAssetByTicker(ticker string) (*models.Asset, error) {
	if m.getAssetByTickerFn != nil {
		return m.getAssetByTickerFn(ticker)
	}
	return &models.Asset{Ticker: ticker}, nil
}

func (m *mockAssetService) ListAssetsByType(assetTypeID string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	if m.listAssetsByTypeFn != nil {
		return m.listAssetsByTypeFn(assetTypeID, page)
	}
	resp := pagination.NewPageResponse([]models.Asset{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockAssetService) SearchAssets(term string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	if m.searchAssetsFn != nil {
		return m.searchAssetsFn(term, page)
	}
	resp := pagination.NewPageResponse([]models.Asset{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockAssetService) UpdateAsset(id string, input services.AssetInput) (*models.Asset, error) {
	if m.updateAssetFn != nil {
		return m.updateAssetFn(id, input)
	}
	return &models.Asset{Base: models.Base{ID: id}}, nil
}

func (m *mockAssetService) DeleteAsset(id string) error {
	if m.deleteAssetFn != nil {
		return m.deleteAssetFn(id)
	}
	return nil
}

func (m *mockAssetService) GetAssetStats() (*services.AssetStats, error) {
	if m.getAssetStatsFn != nil {
		return m.getAssetStatsFn()
	}
	return &services.AssetStats{ByType: []services.TypeCount{}}, nil
}

// --- mock broker service ---

type mockBrokerService struct {
	createBrokerFn     func(input services.BrokerInput) (*models.Broker, error)
	getBrokerFn        func(id string) (*models.Broker, error)
	getBrokerByCodeFn  func(code string) (*models.Broker, error)
	searchBrokersFn    func(term string, page pagination.PageRequest) (*pagination.PageResponse[models.Broker], error)
	updateBrokerFn     func(id string, input services.BrokerInput) (*models.Broker, error)
	deleteBrokerFn     func(id string) error
	getBrokerStatsFn   func() (*services.BrokerStats, error)
	getBrokerSummaryFn func(ctx context.Context, id string) (*services.BrokerSummary, error)
}

var _ services.BrokerServicer = (*mockBrokerService)(nil)

func (m *mockBrokerService) CreateBroker(input services.BrokerInput) (*models.Broker, error) {
	if m.createBrokerFn != nil {
		return m.createBrokerFn(input)
	}
	return &models.Broker{}, nil
}

func (m *mockBrokerService) ListBrokers(page pagination.PageRequest) (*pagination.PageResponse[models.Broker], error) {
	resp := pagination.NewPageResponse([]models.Broker{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockBrokerService) GetBrokerByID(id string) (*models.Broker, error) {
	if m.getBrokerFn != nil {
		return m.getBrokerFn(id)
	}
	return &models.Broker{Base: models.Base{ID: id}}, nil
}

func (m *mockBrokerService) GetBrokerByCode(code string) (*models.Broker, error) {
	if m.getBrokerByCodeFn != nil {
		return m.getBrokerByCodeFn(code)
	}
	return &models.Broker{Code: code}, nil
}

func (m *mockBrokerService) SearchBrokers(term string, page pagination.PageRequest) (*pagination.PageResponse[models.Broker], error) {
	if m.searchBrokersFn != nil {
		return m.searchBrokersFn(term, page)
	}
	resp := pagination.NewPageResponse([]models.Broker{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockBrokerService) UpdateBroker(id string, input services.BrokerInput) (*models.Broker, error) {
	if m.updateBrokerFn != nil {
		return m.updateBrokerFn(id, input)
	}
	return &models.Broker{Base: models.Base{ID: id}}, nil
}

func (m *mockBrokerService) DeleteBroker(id string) error {
	if m.deleteBrokerFn != nil {
		return m.deleteBrokerFn(id)
	}
	return nil
}

func (m *mockBrokerService) GetBrokerStats() (*services.BrokerStats, error) {
	if m.getBrokerStatsFn != nil {
		return m.getBrokerStatsFn()
	}
	return &services.BrokerStats{}, nil
}

func (m *mockBrokerService) GetBrokerSummary(ctx context.Context, id string) (*services.BrokerSummary, error) {
	if m.getBrokerSummaryFn != nil {
		return m.getBrokerSummaryFn(ctx, id)
	}
	return &services.BrokerSummary{}, nil
}

// --- mock transaction service ---

type mockTransactionService struct {
	createTransactionFn func(input services.TransactionInput) (*models.Transaction, error)
	listTransactionsFn  func(criteria report.Criteria, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error)
	getTransactionFn    func(id string) (*models.Transaction, error)
	updateTransactionFn func(id string, input services.TransactionInput) (*models.Transaction, error)
	deleteTransactionFn func(id string) error
}

var _ services.TransactionServicer = (*mockTransactionService)(nil)

func (m *mockTransactionService) Records(_ context.Context, _ report.Criteria) ([]report.Record, error) {
	return nil, nil
}

func (m *mockTransactionService) CreateTransaction(input services.TransactionInput) (*models.Transaction, error) {
	if m.createTransactionFn != nil {
		return m.createTransactionFn(input)
	}
	return &models.Transaction{}, nil
}

func (m *mockTransactionService) ListTransactions(criteria report.Criteria, page pagination.PageRequest) (*pagination.PageResponse[models.Transaction], error) {
	if m.listTransactionsFn != nil {
		return m.listTransactionsFn(criteria, page)
	}
	resp := pagination.NewPageResponse([]models.Transaction{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockTransactionService) GetTransactionByID(id string) (*models.Transaction, error) {
	if m.getTransactionFn != nil {
		return m.getTransactionFn(id)
	}
	return &models.Transaction{Base: models.Base{ID: id}}, nil
}

func (m *mockTransactionService) UpdateTransaction(id string, input services.TransactionInput) (*models.Transaction, error) {
	if m.updateTransactionFn != nil {
		return m.updateTransactionFn(id, input)
	}
	return &models.Transaction{Base: models.Base{ID: id}}, nil
}

func (m *mockTransactionService) DeleteTransaction(id string) error {
	if m.deleteTransactionFn != nil {
		return m.deleteTransactionFn(id)
	}
	return nil
}

// --- mock report service ---

type mockReportService struct {
	positionFn func(ctx context.Context, criteria report.Criteria) (*report.PositionReport, error)
	movementFn func(ctx context.Context, criteria report.Criteria) (*report.MovementReport, error)
}

var _ services.ReportServicer = (*mockReportService)(nil)

func (m *mockReportService) PositionReport(ctx context.Context, criteria report.Criteria) (*report.PositionReport, error) {
	if m.positionFn != nil {
		return m.positionFn(ctx, criteria)
	}
	return &report.PositionReport{Positions: []report.PositionLine{}}, nil
}

func (m *mockReportService) MovementReport(ctx context.Context, criteria report.Criteria) (*report.MovementReport, error) {
	if m.movementFn != nil {
		return m.movementFn(ctx, criteria)
	}
	return &report.MovementReport{Buys: []report.Record{}, Sells: []report.Record{}}, nil
}
