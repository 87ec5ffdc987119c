package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"marnthara/collections"
	"marnthara/services"
)

// favoritesMu serializes read-modify-write cycles on the favorites records.
var favoritesMu sync.Mutex

type favoriteRequest struct {
	Category string  `json:"category" validate:"required"`
	Code     string  `json:"code" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// updateFavorites loads the stored favorites, applies fn and saves the
// result when fn succeeds.
func updateFavorites(app core.App, fn func(services.Favorites) error) (services.Favorites, error) {
	favoritesMu.Lock()
	defer favoritesMu.Unlock()

	favs, err := collections.LoadFavorites(app)
	if err != nil {
		return nil, err
	}
	if err := fn(favs); err != nil {
		return nil, err
	}
	if err := collections.SaveFavorites(app, favs); err != nil {
		return nil, err
	}
	return favs, nil
}

func favoritesFailed(e *core.RequestEvent, op string, err error) error {
	logger.Error().Err(err).Str("op", op).Msg("favorites")
	return errorJSON(e, http.StatusInternalServerError, "Something went wrong. Please try again.", nil)
}

// HandleFavoritesList returns every favorite grouped by category.
// Route: GET /api/favorites
func HandleFavoritesList(app core.App) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		favs, err := collections.LoadFavorites(app)
		if err != nil {
			return favoritesFailed(e, "list", err)
		}
		return e.JSON(http.StatusOK, favs)
	}
}

// HandleFavoriteAdd adds a favorite or updates the price of an existing code.
// Route: POST /api/favorites
func HandleFavoriteAdd(app core.App) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req favoriteRequest
		if ok, err := bindJSON(e, &req); !ok {
			return err
		}
		in := services.FavoriteInput{Category: req.Category, Code: req.Code, Price: req.Price}
		if err := in.Validate(); err != nil {
			return errorJSON(e, http.StatusBadRequest, "invalid favorite", err)
		}

		favs, err := updateFavorites(app, func(f services.Favorites) error { return f.Add(in) })
		if err != nil {
			return favoritesFailed(e, "add", err)
		}
		SetToast(e, "success", "Favorite saved")
		return e.JSON(http.StatusOK, favs)
	}
}

// HandleFavoriteDelete removes one code from a category.
// Route: DELETE /api/favorites/{type}/{code}
func HandleFavoriteDelete(app core.App) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		category := e.Request.PathValue("type")
		code := e.Request.PathValue("code")
		if !services.IsFavoriteCategory(category) {
			return errorJSON(e, http.StatusBadRequest, "Unknown favorite category", nil)
		}

		found := false
		favs, err := updateFavorites(app, func(f services.Favorites) error {
			found = f.Delete(category, code)
			return nil
		})
		if err != nil {
			return favoritesFailed(e, "delete", err)
		}
		if !found {
			return errorJSON(e, http.StatusNotFound, "Favorite not found", nil)
		}
		return e.JSON(http.StatusOK, favs)
	}
}

// readFavoritesBody decodes exported favorites JSON from the request.
func readFavoritesBody(e *core.RequestEvent) (services.Favorites, error) {
	data, err := io.ReadAll(io.LimitReader(e.Request.Body, maxImportSize))
	if err != nil {
		return nil, err
	}
	return services.DecodeFavorites(data)
}

// HandleFavoritesMerge folds posted favorites into the stored ones.
// Route: POST /api/favorites/merge
func HandleFavoritesMerge(app core.App) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		incoming, err := readFavoritesBody(e)
		if err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid favorites file", err.Error())
		}
		merged := 0
		favs, err := updateFavorites(app, func(f services.Favorites) error {
			merged = f.Merge(incoming)
			return nil
		})
		if err != nil {
			return favoritesFailed(e, "merge", err)
		}
		SetToast(e, "success", fmt.Sprintf("%d favorites merged", merged))
		return e.JSON(http.StatusOK, map[string]any{"merged": merged, "favorites": favs})
	}
}

// HandleFavoritesReplace overwrites the stored favorites with the posted ones.
// Route: PUT /api/favorites
func HandleFavoritesReplace(app core.App) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		incoming, err := readFavoritesBody(e)
		if err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid favorites file", err.Error())
		}
		favoritesMu.Lock()
		err = collections.SaveFavorites(app, incoming)
		favoritesMu.Unlock()
		if err != nil {
			return favoritesFailed(e, "replace", err)
		}
		SetToast(e, "success", "Favorites replaced")
		return e.JSON(http.StatusOK, incoming)
	}
}

// HandleFavoritesImport validates an uploaded .csv or .xlsx file and merges
// it when every row is valid. Otherwise the row errors are returned and
// nothing is saved.
// Route: POST /api/favorites/import
func HandleFavoritesImport(app core.App) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return errorJSON(e, http.StatusBadRequest, "Please select a file to upload", nil)
		}
		defer file.Close()

		result, err := services.ParseFavoritesFile(file, header.Filename)
		if err != nil {
			return errorJSON(e, http.StatusBadRequest, err.Error(), nil)
		}
		if result.ErrorRows > 0 {
			return errorJSON(e, http.StatusUnprocessableEntity,
				fmt.Sprintf("%d of %d rows have errors", result.ErrorRows, result.TotalRows), result)
		}

		favs, err := updateFavorites(app, func(f services.Favorites) error {
			f.Merge(result.Favorites)
			return nil
		})
		if err != nil {
			return favoritesFailed(e, "import", err)
		}
		SetToast(e, "success", fmt.Sprintf("%d favorites imported", result.ValidRows))
		return e.JSON(http.StatusOK, map[string]any{"result": result, "favorites": favs})
	}
}

// HandleFavoritesExport downloads the favorites as an editable workbook.
// Route: GET /api/favorites/export
func HandleFavoritesExport(app core.App) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		favs, err := collections.LoadFavorites(app)
		if err != nil {
			return favoritesFailed(e, "export", err)
		}
		xlsxBytes, err := services.GenerateFavoritesWorkbook(favs)
		if err != nil {
			return favoritesFailed(e, "export", err)
		}
		filename := fmt.Sprintf("favorites_%s.xlsx", time.Now().Format("2006-01-02"))
		return attachment(e, xlsxContentType, filename, xlsxBytes)
	}
}

// HandleFavoritesErrorReport turns posted import errors into a workbook.
// Route: POST /api/favorites/import/errors
func HandleFavoritesErrorReport() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var rowErrors []services.ValidationError
		if err := json.NewDecoder(e.Request.Body).Decode(&rowErrors); err != nil {
			return errorJSON(e, http.StatusBadRequest, "Invalid error data", nil)
		}
		xlsxBytes, err := services.GenerateErrorReport(rowErrors)
		if err != nil {
			return favoritesFailed(e, "error_report", err)
		}
		filename := fmt.Sprintf("favorites_errors_%s.xlsx", time.Now().Format("2006-01-02"))
		return attachment(e, xlsxContentType, filename, xlsxBytes)
	}
}
