package services

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"marnthara/order"
)

// ErrInvalidFavorites is returned when imported data has none of the known
// favorite categories as a list.
var ErrInvalidFavorites = errors.New("invalid favorites data")

// FavoriteItem is a saved fabric or product code with its usual price.
type FavoriteItem struct {
	Code  string  `json:"code"`
	Price float64 `json:"price"`
}

// Favorites maps a favorite category to its saved items, sorted by code.
type Favorites map[string][]FavoriteItem

// Favorite categories besides the area-based item types.
const (
	FavoriteFabric    = "fabric"
	FavoriteSheer     = "sheer"
	FavoriteWallpaper = "wallpaper"
)

// FavoriteCategories lists every category favorites can be saved under.
var FavoriteCategories = []string{
	FavoriteFabric,
	FavoriteSheer,
	FavoriteWallpaper,
	string(order.CategoryWoodenBlind),
	string(order.CategoryRollerBlind),
	string(order.CategoryVerticalBlind),
	string(order.CategoryPartition),
	string(order.CategoryPleatedScreen),
	string(order.CategoryAluminumBlind),
}

// IsFavoriteCategory reports whether c is one of FavoriteCategories.
func IsFavoriteCategory(c string) bool {
	return slices.Contains(FavoriteCategories, c)
}

// NewFavorites returns an empty list for every category.
func NewFavorites() Favorites {
	f := make(Favorites, len(FavoriteCategories))
	for _, c := range FavoriteCategories {
		f[c] = []FavoriteItem{}
	}
	return f
}

// FavoriteInput is a single favorite to add or update.
type FavoriteInput struct {
	Category string  `json:"category"`
	Code     string  `json:"code"`
	Price    float64 `json:"price"`
}

func (in FavoriteInput) Validate() error {
	categories := make([]any, len(FavoriteCategories))
	for i, c := range FavoriteCategories {
		categories[i] = c
	}
	return validation.ValidateStruct(&in,
		validation.Field(&in.Category, validation.Required, validation.In(categories...)),
		validation.Field(&in.Code, validation.Required),
		validation.Field(&in.Price, validation.Min(0.0)),
	)
}

// Add inserts a favorite or updates the price of an existing code.
func (f Favorites) Add(in FavoriteInput) error {
	in.Code = strings.TrimSpace(in.Code)
	if err := in.Validate(); err != nil {
		return err
	}
	items := f[in.Category]
	if i := indexOfCode(items, in.Code); i >= 0 {
		items[i].Price = in.Price
	} else {
		items = append(items, FavoriteItem{Code: in.Code, Price: in.Price})
	}
	sortFavorites(items)
	f[in.Category] = items
	return nil
}

// Delete removes a code from a category and reports whether it was present.
func (f Favorites) Delete(category, code string) bool {
	code = strings.TrimSpace(code)
	items, ok := f[category]
	if !ok || code == "" {
		return false
	}
	i := indexOfCode(items, code)
	if i < 0 {
		return false
	}
	f[category] = slices.Delete(items, i, i+1)
	return true
}

// Merge folds other into f: existing codes are replaced, new codes appended
// and each touched list re-sorted. It returns the number of items merged.
func (f Favorites) Merge(other Favorites) int {
	count := 0
	for category, incoming := range other {
		items, ok := f[category]
		if !ok {
			continue
		}
		for _, it := range incoming {
			if it.Code == "" {
				continue
			}
			if i := indexOfCode(items, it.Code); i >= 0 {
				items[i] = it
			} else {
				items = append(items, it)
			}
			count++
		}
		sortFavorites(items)
		f[category] = items
	}
	return count
}

// DecodeFavorites parses exported favorites JSON. Unknown categories are
// dropped and missing ones filled with empty lists.
func DecodeFavorites(data []byte) (Favorites, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Join(ErrInvalidFavorites, err)
	}

	out := NewFavorites()
	valid := false
	for _, c := range FavoriteCategories {
		msg, ok := raw[c]
		if !ok {
			continue
		}
		var items []FavoriteItem
		if err := json.Unmarshal(msg, &items); err != nil || items == nil {
			continue
		}
		valid = true
		out[c] = items
	}
	if !valid {
		return nil, ErrInvalidFavorites
	}
	return out, nil
}

func indexOfCode(items []FavoriteItem, code string) int {
	return slices.IndexFunc(items, func(it FavoriteItem) bool { return it.Code == code })
}

func sortFavorites(items []FavoriteItem) {
	c := collate.New(language.Thai)
	slices.SortStableFunc(items, func(a, b FavoriteItem) int {
		return c.CompareString(a.Code, b.Code)
	})
}
