// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"dealcalc/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// NewSeededTestApp creates a test app with the default pricing configuration
// already loaded.
func NewSeededTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	app := NewTestApp(t)
	if err := collections.Seed(app); err != nil {
		t.Fatalf("failed to seed test app: %v", err)
	}
	return app
}

// CreateTestProduct creates a product catalog record and returns it.
func CreateTestProduct(t *testing.T, app *pocketbase.PocketBase, key, name, currency string, listPrice float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("products")
	if err != nil {
		t.Fatalf("failed to find products collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("key", key)
	record.Set("name", name)
	record.Set("currency", currency)
	record.Set("list_price", listPrice)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test product: %v", err)
	}

	return record
}

// CreateTestRate creates an exchange-rate record and returns it.
func CreateTestRate(t *testing.T, app *pocketbase.PocketBase, code string, rate float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("exchange_rates")
	if err != nil {
		t.Fatalf("failed to find exchange_rates collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("code", code)
	record.Set("rate", rate)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test rate: %v", err)
	}

	return record
}

// CreateTestPlan creates a plan-pricing record and returns it.
func CreateTestPlan(t *testing.T, app *pocketbase.PocketBase, plan string, platformFee, implementationFee float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("plan_pricing")
	if err != nil {
		t.Fatalf("failed to find plan_pricing collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("plan", plan)
	record.Set("platform_fee", platformFee)
	record.Set("implementation_fee", implementationFee)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test plan: %v", err)
	}

	return record
}

// CreateTestPortalTier creates a portal seat pricing tier record.
func CreateTestPortalTier(t *testing.T, app *pocketbase.PocketBase, upToSeats int, perSeat float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("portal_pricing")
	if err != nil {
		t.Fatalf("failed to find portal_pricing collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("up_to_seats", upToSeats)
	record.Set("per_seat", perSeat)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test portal tier: %v", err)
	}

	return record
}
