package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "brokerfolio/internal/errors"
	"brokerfolio/internal/models"
	"brokerfolio/internal/pagination"
	"brokerfolio/internal/services"
)

func setupAssetTypeRouter(handler *AssetTypeHandler) *gin.Engine {
	r := gin.New()
	r.POST("/asset-types", handler.CreateAssetType)
	r.GET("/asset-types", handler.ListAssetTypes)
	r.GET("/asset-types/search", handler.SearchAssetTypes)
	r.GET("/asset-types/stats", handler.GetAssetTypeStats)
	r.GET("/asset-types/:id", handler.GetAssetType)
	r.GET("/asset-types/:id/assets", handler.ListAssetsByType)
	r.PUT("/asset-types/:id", handler.UpdateAssetType)
	r.DELETE("/asset-types/:id", handler.DeleteAssetType)
	return r
}

func TestAssetTypeHandler_CreateAssetType(t *testing.T) {
	t.Run("returns_201_on_success", func(t *testing.T) {
		svc := &mockAssetTypeService{
			createAssetTypeFn: func(name, description string) (*models.AssetType, error) {
				return &models.AssetType{Base: models.Base{ID: testID}, Name: name, Description: description}, nil
			},
		}
		r := setupAssetTypeRouter(NewAssetTypeHandler(svc, &mockAssetService{}))

		rec := doRequest(r, "POST", "/asset-types", `{"name":"Stocks","description":"B3 equities"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		at := parseJSON(t, rec)["asset_type"].(map[string]interface{})
		if at["name"] != "Stocks" {
			t.Errorf("expected name=Stocks, got %v", at["name"])
		}
	})

	t.Run("returns_400_missing_name", func(t *testing.T) {
		r := setupAssetTypeRouter(NewAssetTypeHandler(&mockAssetTypeService{}, &mockAssetService{}))

		rec := doRequest(r, "POST", "/asset-types", `{"description":"x"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns_409_on_duplicate", func(t *testing.T) {
		svc := &mockAssetTypeService{
			createAssetTypeFn: func(string, string) (*models.AssetType, error) {
				return nil, apperrors.ErrDuplicateAssetType
			},
		}
		r := setupAssetTypeRouter(NewAssetTypeHandler(svc, &mockAssetService{}))

		rec := doRequest(r, "POST", "/asset-types", `{"name":"Stocks"}`)

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "DUPLICATE_ASSET_TYPE")
	})
}

func TestAssetTypeHandler_SearchAssetTypes(t *testing.T) {
	t.Run("passes_term_and_page", func(t *testing.T) {
		var gotTerm string
		var gotPage pagination.PageRequest
		svc := &mockAssetTypeService{
			searchAssetTypesFn: func(term string, page pagination.PageRequest) (*pagination.PageResponse[models.AssetType], error) {
				gotTerm, gotPage = term, page
				resp := pagination.NewPageResponse([]models.AssetType{{Name: "REIT"}}, page.Page, page.PageSize, 1)
				return &resp, nil
			},
		}
		r := setupAssetTypeRouter(NewAssetTypeHandler(svc, &mockAssetService{}))

		rec := doRequest(r, "GET", "/asset-types/search?q=funds&page=2&page_size=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotTerm != "funds" {
			t.Errorf("expected term funds, got %q", gotTerm)
		}
		if gotPage.Page != 2 || gotPage.PageSize != 5 {
			t.Errorf("expected page 2 size 5, got %+v", gotPage)
		}
		data := parseJSON(t, rec)["data"].([]interface{})
		if len(data) != 1 {
			t.Errorf("expected 1 asset type, got %d", len(data))
		}
	})

	t.Run("returns_400_on_bad_page_size", func(t *testing.T) {
		r := setupAssetTypeRouter(NewAssetTypeHandler(&mockAssetTypeService{}, &mockAssetService{}))

		rec := doRequest(r, "GET", "/asset-types/search?q=x&page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestAssetTypeHandler_GetAssetTypeStats(t *testing.T) {
	t.Run("returns_stats", func(t *testing.T) {
		svc := &mockAssetTypeService{
			getAssetTypeStatsFn: func() (*services.AssetTypeStats, error) {
				return &services.AssetTypeStats{TotalAssetTypes: 3, AssetTypesWithAssets: 2, AssetTypesWithoutAssets: 1}, nil
			},
		}
		r := setupAssetTypeRouter(NewAssetTypeHandler(svc, &mockAssetService{}))

		rec := doRequest(r, "GET", "/asset-types/stats", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		stats := parseJSON(t, rec)["stats"].(map[string]interface{})
		if stats["total_asset_types"] != float64(3) || stats["asset_types_without_assets"] != float64(1) {
			t.Errorf("unexpected stats %v", stats)
		}
	})

	t.Run("returns_500_on_failure", func(t *testing.T) {
		svc := &mockAssetTypeService{
			getAssetTypeStatsFn: func() (*services.AssetTypeStats, error) {
				return nil, apperrors.ErrInternalServer
			},
		}
		r := setupAssetTypeRouter(NewAssetTypeHandler(svc, &mockAssetService{}))

		rec := doRequest(r, "GET", "/asset-types/stats", "")

		if rec.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", rec.Code)
		}
	})
}

func TestAssetTypeHandler_GetAssetType(t *testing.T) {
	t.Run("returns_400_invalid_id", func(t *testing.T) {
		r := setupAssetTypeRouter(NewAssetTypeHandler(&mockAssetTypeService{}, &mockAssetService{}))

		rec := doRequest(r, "GET", "/asset-types/42", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns_404_not_found", func(t *testing.T) {
		svc := &mockAssetTypeService{
			getAssetTypeFn: func(string) (*models.AssetType, error) {
				return nil, apperrors.ErrAssetTypeNotFound
			},
		}
		r := setupAssetTypeRouter(NewAssetTypeHandler(svc, &mockAssetService{}))

		rec := doRequest(r, "GET", "/asset-types/"+testID, "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ASSET_TYPE_NOT_FOUND")
	})
}

func TestAssetTypeHandler_ListAssetsByType(t *testing.T) {
	var gotID string
	assets := &mockAssetService{
		listAssetsByTypeFn: func(id string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
			gotID = id
			resp := pagination.NewPageResponse([]models.Asset{{Ticker: "HGLG11"}}, 1, 20, 1)
			return &resp, nil
		},
	}
	r := setupAssetTypeRouter(NewAssetTypeHandler(&mockAssetTypeService{}, assets))

	rec := doRequest(r, "GET", "/asset-types/"+testID+"/assets", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotID != testID {
		t.Errorf("expected asset type id %s, got %s", testID, gotID)
	}
	data := parseJSON(t, rec)["data"].([]interface{})
	if len(data) != 1 {
		t.Errorf("expected 1 asset, got %d", len(data))
	}
}

func TestAssetTypeHandler_UpdateAssetType(t *testing.T) {
	var gotName *string
	svc := &mockAssetTypeService{
		updateAssetTypeFn: func(id string, name, _ *string) (*models.AssetType, error) {
			gotName = name
			return &models.AssetType{Base: models.Base{ID: id}, Name: *name}, nil
		},
	}
	r := setupAssetTypeRouter(NewAssetTypeHandler(svc, &mockAssetService{}))

	rec := doRequest(r, "PUT", "/asset-types/"+testID, `{"name":"ETFs"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotName == nil || *gotName != "ETFs" {
		t.Errorf("expected name ETFs to be passed through, got %v", gotName)
	}
}

func TestAssetTypeHandler_DeleteAssetType(t *testing.T) {
	t.Run("returns_200", func(t *testing.T) {
		r := setupAssetTypeRouter(NewAssetTypeHandler(&mockAssetTypeService{}, &mockAssetService{}))

		rec := doRequest(r, "DELETE", "/asset-types/"+testID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("returns_409_in_use", func(t *testing.T) {
		svc := &mockAssetTypeService{
			deleteAssetTypeFn: func(string) error { return apperrors.ErrAssetTypeInUse },
		}
		r := setupAssetTypeRouter(NewAssetTypeHandler(svc, &mockAssetService{}))

		rec := doRequest(r, "DELETE", "/asset-types/"+testID, "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "ASSET_TYPE_IN_USE")
	})
}
