// Package collections creates and seeds the static pricing tables the
// engine reads its configuration from.
package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the products, exchange_rates,
// plan_pricing and portal_pricing collections exist.
func Setup(app *pocketbase.PocketBase) {
	ensureCollection(app, "products", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "key", Required: true})
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "currency", Required: true})
		c.Fields.Add(&core.NumberField{Name: "list_price", Required: true})
	})

	ensureCollection(app, "exchange_rates", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "code", Required: true})
		c.Fields.Add(&core.NumberField{Name: "rate", Required: true})
	})

	ensureCollection(app, "plan_pricing", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "plan", Required: true})
		c.Fields.Add(&core.NumberField{Name: "platform_fee", Required: true})
		c.Fields.Add(&core.NumberField{Name: "implementation_fee", Required: true})
	})

	ensureCollection(app, "portal_pricing", func(c *core.Collection) {
		c.Fields.Add(&core.NumberField{Name: "up_to_seats", Required: true})
		c.Fields.Add(&core.NumberField{Name: "per_seat", Required: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
