package collections

import (
	"context"
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"marnthara/order"
	"marnthara/services"
	"marnthara/store"
)

type seedItem struct {
	category order.Category
	width    float64
	height   float64
	fields   map[string]any
}

type seedRoom struct {
	name  string
	items []seedItem
}

var demoRooms = []seedRoom{
	{
		name: "ห้องนั่งเล่น",
		items: []seedItem{
			{order.CategorySet, 2.4, 2.6, map[string]any{
				"style": order.StyleWave, "fabric_variant": "ทึบ&โปร่ง",
				"price_per_m_raw": 1200, "sheer_price_per_m": 1000,
				"fabric_code": "A-101", "sheer_fabric_code": "S-12",
			}},
			{order.CategoryRollerBlind, 1.2, 1.5, map[string]any{"price_sqyd": 650, "code": "RB-7"}},
		},
	},
	{
		name: "ห้องนอนใหญ่",
		items: []seedItem{
			{order.CategoryWallpaper, 0, 2.7, map[string]any{
				"price_per_roll": 1100, "widths": []any{3.2, 2.8},
			}},
			{order.CategorySet, 1.8, 2.4, map[string]any{
				"style": order.StyleLouis, "price_per_m_raw": 1500, "louis_price_per_m": 2400,
			}},
		},
	},
}

var demoFavorites = []services.FavoriteInput{
	{Category: services.FavoriteFabric, Code: "A-101", Price: 1200},
	{Category: services.FavoriteFabric, Code: "B-220", Price: 1500},
	{Category: services.FavoriteSheer, Code: "S-12", Price: 1000},
	{Category: services.FavoriteWallpaper, Code: "WP-3301", Price: 1100},
	{Category: string(order.CategoryRollerBlind), Code: "RB-7", Price: 650},
}

// Seed creates a demo order built through the store and a starter set of
// favorites.
func Seed(app core.App) error {
	record, err := CreateOrder(app, time.Now())
	if err != nil {
		return err
	}

	ctx := context.Background()
	s := store.New(store.WithPersister(NewOrderRepository(app, record.Id)))
	dispatch := func(a store.ActionType, p store.Payload) error {
		if err := s.Dispatch(ctx, a, p, store.DispatchOptions{SkipUndo: true}); err != nil {
			return fmt.Errorf("seed %s: %w", a, err)
		}
		return nil
	}

	if err := dispatch(store.ActionUpdateCustomer, store.Payload{Field: "customer_name", Value: "คุณสมศรี ใจดี"}); err != nil {
		return err
	}
	if err := dispatch(store.ActionUpdateCustomer, store.Payload{Field: "customer_phone", Value: "081-234-5678"}); err != nil {
		return err
	}

	for _, rd := range demoRooms {
		if err := dispatch(store.ActionAddRoom, store.Payload{}); err != nil {
			return err
		}
		rooms := s.GetState().Rooms
		roomID := rooms[len(rooms)-1].ID
		if err := dispatch(store.ActionUpdateRoomName, store.Payload{RoomID: roomID, Value: rd.name}); err != nil {
			return err
		}

		for _, si := range rd.items {
			if err := dispatch(store.ActionAddItem, store.Payload{
				RoomID: roomID, WidthM: order.Num(si.width), HeightM: order.Num(si.height),
			}); err != nil {
				return err
			}
			room, _ := s.GetState().FindRoom(roomID)
			itemID := room.Items[len(room.Items)-1].ID
			if err := dispatch(store.ActionSetItemType, store.Payload{RoomID: roomID, ItemID: itemID, ItemType: si.category}); err != nil {
				return err
			}
			if si.width == 0 || si.height == 0 {
				if err := dispatch(store.ActionUpdateItem, store.Payload{RoomID: roomID, ItemID: itemID, Field: "height_m", Value: si.height}); err != nil {
					return err
				}
			}
			for field, value := range si.fields {
				if err := dispatch(store.ActionUpdateItem, store.Payload{RoomID: roomID, ItemID: itemID, Field: field, Value: value}); err != nil {
					return err
				}
			}
		}
	}

	favs := services.NewFavorites()
	for _, in := range demoFavorites {
		if err := favs.Add(in); err != nil {
			return fmt.Errorf("seed favorite %s: %w", in.Code, err)
		}
	}
	return SaveFavorites(app, favs)
}
