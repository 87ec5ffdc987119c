// Package collections defines the PocketBase schema and the record-backed
// repositories for orders and favorites.
package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"github.com/rs/zerolog"

	"marnthara/services"
)

// Collection names.
const (
	OrdersCollection    = "orders"
	FavoritesCollection = "favorites"
)

// stateMaxSize bounds the stored order JSON.
const stateMaxSize = 5 << 20

// Setup ensures the orders and favorites collections exist.
func Setup(app core.App, log zerolog.Logger) error {
	_, err := ensureCollection(app, log, OrdersCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "customer_name"})
		c.Fields.Add(&core.TextField{Name: "quote_number"})
		c.Fields.Add(&core.JSONField{Name: "state", MaxSize: stateMaxSize})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
	if err != nil {
		return err
	}

	_, err = ensureCollection(app, log, FavoritesCollection, func(c *core.Collection) {
		c.Fields.Add(&core.SelectField{
			Name:      "category",
			Required:  true,
			Values:    services.FavoriteCategories,
			MaxSelect: 1,
		})
		c.Fields.Add(&core.TextField{Name: "code", Required: true})
		c.Fields.Add(&core.NumberField{Name: "price"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
		c.AddIndex("idx_favorites_category_code", true, "category, code", "")
	})
	return err
}

// ensureCollection returns the named collection, creating it with the fields
// added by addFields when it does not exist yet.
func ensureCollection(app core.App, log zerolog.Logger, name string, addFields func(*core.Collection)) (*core.Collection, error) {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Debug().Str("collection", name).Msg("collection exists")
		return existing, nil
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	log.Info().Str("collection", name).Str("id", collection.Id).Msg("created collection")
	return collection, nil
}
