package models

import "testing"

func TestParseDocumentRejectsMalformed(t *testing.T) {
	if _, err := ParseDocument([]byte(`{"ingredients": [`)); err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestParseDocumentBackfillsDefaults(t *testing.T) {
	// A document with only orders: everything else comes back as defaults.
	data, err := ParseDocument([]byte(`{"orders": [{"id": "o1", "date": "2026-08-01", "customerName": "דנה", "status": "pending"}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(data.Orders) != 1 {
		t.Fatalf("orders len = %d, want 1", len(data.Orders))
	}
	if data.Ingredients == nil || len(data.Ingredients) != 0 {
		t.Fatalf("ingredients = %v, want empty slice", data.Ingredients)
	}
	if len(data.Packagings) != 3 {
		t.Fatalf("packagings len = %d, want default catalog of 3", len(data.Packagings))
	}
	if data.Packagings[0].Name != "קופסה רגילה" || data.Packagings[0].Cost != 5 {
		t.Fatalf("first default packaging = %+v", data.Packagings[0])
	}

	want := DefaultSettings()
	if data.Settings.LaborCostPerHour != want.LaborCostPerHour ||
		data.Settings.ProfitMarginPercent != want.ProfitMarginPercent ||
		data.Settings.DeliveryCost != want.DeliveryCost ||
		data.Settings.OverheadPercent != want.OverheadPercent {
		t.Fatalf("settings = %+v, want defaults %+v", data.Settings, want)
	}
}

func TestParseDocumentPartialSettings(t *testing.T) {
	// An explicit zero must survive the merge; only absent fields are
	// back-filled.
	data, err := ParseDocument([]byte(`{"settings": {"deliveryCost": 0, "profitMarginPercent": 45}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if data.Settings.DeliveryCost != 0 {
		t.Fatalf("DeliveryCost = %v, want explicit 0", data.Settings.DeliveryCost)
	}
	if data.Settings.ProfitMarginPercent != 45 {
		t.Fatalf("ProfitMarginPercent = %v, want 45", data.Settings.ProfitMarginPercent)
	}
	if data.Settings.LaborCostPerHour != 50 {
		t.Fatalf("LaborCostPerHour = %v, want back-filled 50", data.Settings.LaborCostPerHour)
	}
	if data.Settings.OverheadPercent != 10 {
		t.Fatalf("OverheadPercent = %v, want back-filled 10", data.Settings.OverheadPercent)
	}
}

func TestParseDocumentKeepsProvidedPackagings(t *testing.T) {
	data, err := ParseDocument([]byte(`{"packagings": [{"id": "x", "name": "קופסה מיוחדת", "cost": 9}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data.Packagings) != 1 || data.Packagings[0].Cost != 9 {
		t.Fatalf("packagings = %+v, want the provided catalog untouched", data.Packagings)
	}
}
