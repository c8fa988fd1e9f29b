// Package catalog loads reference data (asset types, assets, brokers) from
// YAML and registers it through the services. Entries that already exist are
// skipped, so a catalog can be applied repeatedly.
package catalog

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/logger"
	"brokerfolio/internal/pagination"
	"brokerfolio/internal/services"
)

// Catalog is the document layout of a catalog file.
type Catalog struct {
	AssetTypes []AssetType `yaml:"asset_types"`
	Brokers    []Broker    `yaml:"brokers"`
}

// AssetType declares an asset type and the assets filed under it.
type AssetType struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Assets      []Asset `yaml:"assets"`
}

// Asset declares one tradable asset.
type Asset struct {
	Ticker      string `yaml:"ticker"`
	Name        string `yaml:"name"`
	TaxID       string `yaml:"tax_id"`
	Description string `yaml:"description"`
}

// Broker declares one brokerage.
type Broker struct {
	Name    string `yaml:"name"`
	Code    string `yaml:"code"`
	TaxID   string `yaml:"tax_id"`
	Website string `yaml:"website"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
}

// Result counts what Apply created and skipped.
type Result struct {
	Created int
	Skipped int
}

// Parse decodes a catalog and checks that every entry carries its required fields.
func Parse(r io.Reader) (*Catalog, error) {
	var c Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	for i, t := range c.AssetTypes {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("asset_types[%d]: name is required", i)
		}
		for j, a := range t.Assets {
			if strings.TrimSpace(a.Ticker) == "" || strings.TrimSpace(a.Name) == "" {
				return nil, fmt.Errorf("asset_types[%d].assets[%d]: ticker and name are required", i, j)
			}
		}
	}
	for i, b := range c.Brokers {
		if strings.TrimSpace(b.Name) == "" {
			return nil, fmt.Errorf("brokers[%d]: name is required", i)
		}
	}
	return &c, nil
}

// Loader applies catalogs through the entity services.
type Loader struct {
	assetTypes services.AssetTypeServicer
	assets     services.AssetServicer
	brokers    services.BrokerServicer
}

// NewLoader creates a Loader.
func NewLoader(assetTypes services.AssetTypeServicer, assets services.AssetServicer, brokers services.BrokerServicer) *Loader {
	return &Loader{assetTypes: assetTypes, assets: assets, brokers: brokers}
}

// Apply registers every entry of c that does not exist yet.
func (l *Loader) Apply(c *Catalog) (Result, error) {
	var res Result
	log := logger.Get()

	typeIDs, err := l.existingAssetTypes()
	if err != nil {
		return res, err
	}

	for _, t := range c.AssetTypes {
		name := strings.TrimSpace(t.Name)
		id, ok := typeIDs[name]
		if ok {
			res.Skipped++
		} else {
			created, err := l.assetTypes.CreateAssetType(name, t.Description)
			if err != nil {
				return res, fmt.Errorf("asset type %q: %w", name, err)
			}
			id = created.ID
			typeIDs[name] = id
			res.Created++
		}

		for _, a := range t.Assets {
			_, err := l.assets.CreateAsset(services.AssetInput{
				Ticker:      &a.Ticker,
				Name:        &a.Name,
				TaxID:       &a.TaxID,
				Description: &a.Description,
				AssetTypeID: &id,
			})
			if skip, err := tally(&res, err); err != nil {
				return res, fmt.Errorf("asset %q: %w", a.Ticker, err)
			} else if skip {
				log.Debugw("asset already registered", "ticker", a.Ticker)
			}
		}
	}

	for _, b := range c.Brokers {
		input := services.BrokerInput{Name: &b.Name, Code: &b.Code, Website: &b.Website, Email: &b.Email, Phone: &b.Phone}
		if b.TaxID != "" {
			input.TaxID = &b.TaxID
		}
		_, err := l.brokers.CreateBroker(input)
		if skip, err := tally(&res, err); err != nil {
			return res, fmt.Errorf("broker %q: %w", b.Name, err)
		} else if skip {
			log.Debugw("broker already registered", "broker", b.Name)
		}
	}

	log.Infow("catalog applied", "created", res.Created, "skipped", res.Skipped)
	return res, nil
}

// tally counts a create outcome. Duplicate errors count as skipped.
func tally(res *Result, err error) (skipped bool, _ error) {
	switch {
	case err == nil:
		res.Created++
		return false, nil
	case errors.Is(err, apperrors.ErrDuplicateAsset),
		errors.Is(err, apperrors.ErrDuplicateBroker),
		errors.Is(err, apperrors.ErrDuplicateBrokerTax):
		res.Skipped++
		return true, nil
	default:
		return false, err
	}
}

// existingAssetTypes maps the names of registered asset types to their IDs.
func (l *Loader) existingAssetTypes() (map[string]string, error) {
	ids := map[string]string{}
	req := pagination.PageRequest{Page: 1, PageSize: pagination.MaxPageSize}
	for {
		page, err := l.assetTypes.ListAssetTypes(req)
		if err != nil {
			return nil, fmt.Errorf("list asset types: %w", err)
		}
		for _, t := range page.Data {
			ids[t.Name] = t.ID
		}
		if req.Page >= page.TotalPages {
			return ids, nil
		}
		req.Page++
	}
}
