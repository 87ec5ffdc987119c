package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"

	"marnthara/services"
)

// LoadFavorites reads every favorite record grouped by category.
func LoadFavorites(app core.App) (services.Favorites, error) {
	records, err := app.FindRecordsByFilter(FavoritesCollection, "id != ''", "code", 0, 0)
	if err != nil {
		return nil, fmt.Errorf("query favorites: %w", err)
	}
	favs := services.NewFavorites()
	for _, rec := range records {
		cat := rec.GetString("category")
		favs[cat] = append(favs[cat], services.FavoriteItem{
			Code:  rec.GetString("code"),
			Price: rec.GetFloat("price"),
		})
	}
	return favs, nil
}

// SaveFavorites replaces the stored favorites with favs in one transaction.
func SaveFavorites(app core.App, favs services.Favorites) error {
	return app.RunInTransaction(func(txApp core.App) error {
		col, err := txApp.FindCollectionByNameOrId(FavoritesCollection)
		if err != nil {
			return fmt.Errorf("find favorites collection: %w", err)
		}
		existing, err := txApp.FindAllRecords(col)
		if err != nil {
			return fmt.Errorf("query favorites: %w", err)
		}
		for _, rec := range existing {
			if err := txApp.Delete(rec); err != nil {
				return fmt.Errorf("delete favorite %s: %w", rec.Id, err)
			}
		}
		for _, cat := range services.FavoriteCategories {
			for _, item := range favs[cat] {
				rec := core.NewRecord(col)
				rec.Set("category", cat)
				rec.Set("code", item.Code)
				rec.Set("price", item.Price)
				if err := txApp.Save(rec); err != nil {
					return fmt.Errorf("save favorite %s/%s: %w", cat, item.Code, err)
				}
			}
		}
		return nil
	})
}
