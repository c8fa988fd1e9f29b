package services

import (
	"testing"

	"brokerfolio/internal/pagination"
	"brokerfolio/internal/testutil"
)

func TestCreateAssetType(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetTypeService(db)

		at, err := svc.CreateAssetType("  Stocks ", "listed equities")
		testutil.AssertNoError(t, err)

		if at.ID == "" {
			t.Fatal("expected asset type ID to be set")
		}
		if at.Name != "Stocks" {
			t.Errorf("expected trimmed name Stocks, got %q", at.Name)
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetTypeService(db)

		_, err := svc.CreateAssetType("   ", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetTypeService(db)

		_, err := svc.CreateAssetType("REIT", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateAssetType("REIT", "again")
		testutil.AssertAppError(t, err, "DUPLICATE_ASSET_TYPE")
	})
}

func TestListAssetTypes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetTypeService(db)

	for _, name := range []string{"Stocks", "ETF", "REIT"} {
		_, err := svc.CreateAssetType(name, "")
		testutil.AssertNoError(t, err)
	}

	result, err := svc.ListAssetTypes(pagination.PageRequest{Page: 1, PageSize: 2})
	testutil.AssertNoError(t, err)

	if result.TotalItems != 3 {
		t.Errorf("expected 3 total items, got %d", result.TotalItems)
	}
	if len(result.Data) != 2 {
		t.Fatalf("expected 2 items on the first page, got %d", len(result.Data))
	}
	if result.Data[0].Name != "ETF" || result.Data[1].Name != "REIT" {
		t.Errorf("expected ETF, REIT ordered by name, got %s, %s", result.Data[0].Name, result.Data[1].Name)
	}
}

func TestSearchAssetTypes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewAssetTypeService(db)

	for _, in := range [][2]string{
		{"Stocks", "listed equities"},
		{"REIT", "real estate funds"},
		{"ETF", "exchange traded funds"},
	} {
		_, err := svc.CreateAssetType(in[0], in[1])
		testutil.AssertNoError(t, err)
	}

	page := pagination.PageRequest{Page: 1, PageSize: 10}

	t.Run("by_name_ignoring_case", func(t *testing.T) {
		result, err := svc.SearchAssetTypes("stoc", page)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 1 || result.Data[0].Name != "Stocks" {
			t.Errorf("expected only Stocks, got %+v", result.Data)
		}
	})

	t.Run("by_description", func(t *testing.T) {
		result, err := svc.SearchAssetTypes("FUNDS", page)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Fatalf("expected 2 matches, got %d", result.TotalItems)
		}
		if result.Data[0].Name != "ETF" || result.Data[1].Name != "REIT" {
			t.Errorf("expected ETF, REIT ordered by name, got %s, %s", result.Data[0].Name, result.Data[1].Name)
		}
	})

	t.Run("no_match", func(t *testing.T) {
		result, err := svc.SearchAssetTypes("crypto", page)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 0 || len(result.Data) != 0 {
			t.Errorf("expected no matches, got %+v", result.Data)
		}
	})

	t.Run("empty_term_lists_all", func(t *testing.T) {
		result, err := svc.SearchAssetTypes("  ", page)
		testutil.AssertNoError(t, err)
		if result.TotalItems != 3 {
			t.Errorf("expected 3 asset types, got %d", result.TotalItems)
		}
	})

	t.Run("paginated", func(t *testing.T) {
		result, err := svc.SearchAssetTypes("funds", pagination.PageRequest{Page: 2, PageSize: 1})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 || len(result.Data) != 1 {
			t.Fatalf("expected 1 of 2 items, got %d of %d", len(result.Data), result.TotalItems)
		}
		if result.Data[0].Name != "REIT" {
			t.Errorf("expected REIT on page 2, got %s", result.Data[0].Name)
		}
	})
}

func TestGetAssetTypeStats(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)

		stats, err := NewAssetTypeService(db).GetAssetTypeStats()
		testutil.AssertNoError(t, err)
		if *stats != (AssetTypeStats{}) {
			t.Errorf("expected zero stats, got %+v", stats)
		}
	})

	t.Run("with_and_without_assets", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetTypeService(db)

		stocks := testutil.CreateTestAssetType(t, db)
		testutil.CreateTestAssetType(t, db)
		testutil.CreateTestAsset(t, db, stocks.ID, "PETR4")
		testutil.CreateTestAsset(t, db, stocks.ID, "VALE3")

		stats, err := svc.GetAssetTypeStats()
		testutil.AssertNoError(t, err)
		if stats.TotalAssetTypes != 2 {
			t.Errorf("expected 2 asset types, got %d", stats.TotalAssetTypes)
		}
		if stats.AssetTypesWithAssets != 1 || stats.AssetTypesWithoutAssets != 1 {
			t.Errorf("expected 1 with and 1 without assets, got %+v", stats)
		}
	})
}

func TestUpdateAssetType(t *testing.T) {
	t.Run("rename", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetTypeService(db)

		at, err := svc.CreateAssetType("Stock", "")
		testutil.AssertNoError(t, err)

		name := "Stocks"
		updated, err := svc.UpdateAssetType(at.ID, &name, nil)
		testutil.AssertNoError(t, err)

		if updated.Name != "Stocks" {
			t.Errorf("expected name Stocks, got %s", updated.Name)
		}
	})

	t.Run("keep_own_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetTypeService(db)

		at, err := svc.CreateAssetType("ETF", "")
		testutil.AssertNoError(t, err)

		name, desc := "ETF", "exchange traded funds"
		updated, err := svc.UpdateAssetType(at.ID, &name, &desc)
		testutil.AssertNoError(t, err)

		if updated.Description != desc {
			t.Errorf("expected description %q, got %q", desc, updated.Description)
		}
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetTypeService(db)

		_, err := svc.CreateAssetType("ETF", "")
		testutil.AssertNoError(t, err)
		at, err := svc.CreateAssetType("REIT", "")
		testutil.AssertNoError(t, err)

		name := "ETF"
		_, err = svc.UpdateAssetType(at.ID, &name, nil)
		testutil.AssertAppError(t, err, "DUPLICATE_ASSET_TYPE")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetTypeService(db)

		name := "x"
		_, err := svc.UpdateAssetType("0190a1b2-0000-7000-8000-000000000000", &name, nil)
		testutil.AssertAppError(t, err, "ASSET_TYPE_NOT_FOUND")
	})
}

func TestDeleteAssetType(t *testing.T) {
	t.Run("unused", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetTypeService(db)

		at := testutil.CreateTestAssetType(t, db)
		testutil.AssertNoError(t, svc.DeleteAssetType(at.ID))

		_, err := svc.GetAssetTypeByID(at.ID)
		testutil.AssertAppError(t, err, "ASSET_TYPE_NOT_FOUND")
	})

	t.Run("in_use", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewAssetTypeService(db)

		at := testutil.CreateTestAssetType(t, db)
		testutil.CreateTestAsset(t, db, at.ID, "VALE3")

		err := svc.DeleteAssetType(at.ID)
		testutil.AssertAppError(t, err, "ASSET_TYPE_IN_USE")
	})
}
