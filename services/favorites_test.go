package services

import (
	"errors"
	"testing"
)

func TestFavorites_Add(t *testing.T) {
	f := NewFavorites()

	if err := f.Add(FavoriteInput{Category: FavoriteFabric, Code: " B-200 ", Price: 1200}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := f.Add(FavoriteInput{Category: FavoriteFabric, Code: "A-100", Price: 1000}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := f.Add(FavoriteInput{Category: FavoriteFabric, Code: "B-200", Price: 1500}); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	got := f[FavoriteFabric]
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Code != "A-100" || got[1].Code != "B-200" {
		t.Errorf("order = %v, want A-100, B-200", got)
	}
	if got[1].Price != 1500 {
		t.Errorf("updated price = %v, want 1500", got[1].Price)
	}
}

func TestFavorites_AddInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   FavoriteInput
	}{
		{"blank code", FavoriteInput{Category: FavoriteFabric, Code: "  ", Price: 100}},
		{"unknown category", FavoriteInput{Category: "carpet", Code: "X", Price: 100}},
		{"set is not a favorite category", FavoriteInput{Category: "set", Code: "X", Price: 100}},
		{"negative price", FavoriteInput{Category: FavoriteSheer, Code: "X", Price: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFavorites()
			if err := f.Add(tt.in); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestFavorites_Delete(t *testing.T) {
	f := NewFavorites()
	_ = f.Add(FavoriteInput{Category: FavoriteWallpaper, Code: "WP-1", Price: 900})

	if f.Delete(FavoriteWallpaper, "missing") {
		t.Error("Delete returned true for missing code")
	}
	if f.Delete("carpet", "WP-1") {
		t.Error("Delete returned true for unknown category")
	}
	if !f.Delete(FavoriteWallpaper, " WP-1 ") {
		t.Error("Delete returned false for existing code")
	}
	if len(f[FavoriteWallpaper]) != 0 {
		t.Errorf("wallpaper favorites = %v, want empty", f[FavoriteWallpaper])
	}
}

func TestFavorites_Merge(t *testing.T) {
	f := NewFavorites()
	_ = f.Add(FavoriteInput{Category: FavoriteFabric, Code: "C", Price: 1})

	n := f.Merge(Favorites{
		FavoriteFabric: {{Code: "C", Price: 3}, {Code: "A", Price: 2}, {Code: "", Price: 9}},
		"unknown":      {{Code: "Z", Price: 1}},
	})
	if n != 2 {
		t.Errorf("Merge() = %d, want 2", n)
	}
	got := f[FavoriteFabric]
	if len(got) != 2 || got[0].Code != "A" || got[1].Price != 3 {
		t.Errorf("fabric = %v", got)
	}
	if _, ok := f["unknown"]; ok {
		t.Error("unknown category was added")
	}
}

func TestDecodeFavorites(t *testing.T) {
	f, err := DecodeFavorites([]byte(`{"sheer":[{"code":"S1","price":1000}],"bogus":1}`))
	if err != nil {
		t.Fatalf("DecodeFavorites() error = %v", err)
	}
	if len(f[FavoriteSheer]) != 1 {
		t.Errorf("sheer = %v", f[FavoriteSheer])
	}
	if f[FavoriteFabric] == nil {
		t.Error("missing categories should be filled with empty lists")
	}
	if _, ok := f["bogus"]; ok {
		t.Error("unknown key kept")
	}
}

func TestDecodeFavorites_Invalid(t *testing.T) {
	for _, in := range []string{`{}`, `{"fabric":"nope"}`, `[]`, `not json`} {
		if _, err := DecodeFavorites([]byte(in)); !errors.Is(err, ErrInvalidFavorites) {
			t.Errorf("DecodeFavorites(%s) error = %v, want ErrInvalidFavorites", in, err)
		}
	}
}
