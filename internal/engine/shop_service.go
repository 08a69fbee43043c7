package engine

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"kidquest/internal/storage"
)

// PurchaseResult reports a completed purchase.
type PurchaseResult struct {
	Item            ShopItem
	PointsRemaining int
}

// Purchase validates affordability and ownership itself, deducts the price,
// records ownership, and makes the item the active selection for its type —
// all in one transaction. Points can never go negative through this path.
func (s *Service) Purchase(ctx context.Context, itemID string) (*PurchaseResult, error) {
	item := ShopItemByID(itemID)
	if item == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
	}
	now := s.now()

	var result *PurchaseResult
	err := storage.WithTx(ctx, s.db, func(tx *sql.Tx) error {
		profile := storage.NewProfileRepo(tx)
		items := storage.NewItemRepo(tx)

		owned, err := items.IsOwned(ctx, item.ID)
		if err != nil {
			return err
		}
		if owned {
			return fmt.Errorf("%w: %s", ErrAlreadyOwned, item.ID)
		}

		points, err := profile.GetInt(ctx, storage.KeyPoints)
		if err != nil {
			return err
		}
		if points < item.Price {
			return InsufficientPointsError{Have: points, Need: item.Price}
		}

		if err := profile.SetInt(ctx, storage.KeyPoints, points-item.Price); err != nil {
			return err
		}
		if err := items.Insert(ctx, item.ID, now); err != nil {
			return err
		}
		if err := setActiveSelection(ctx, profile, item); err != nil {
			return err
		}

		result = &PurchaseResult{Item: *item, PointsRemaining: points - item.Price}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("item purchased",
		zap.String("item", item.ID),
		zap.Int("price", item.Price),
		zap.Int("points_remaining", result.PointsRemaining))
	return result, nil
}

// UseItem makes an already-owned item the active selection for its type.
// Reapplying the current selection is a no-op beyond rewriting the value.
func (s *Service) UseItem(ctx context.Context, itemID string) (*ShopItem, error) {
	item := ShopItemByID(itemID)
	if item == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownItem, itemID)
	}

	owned, err := storage.NewItemRepo(s.db).IsOwned(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, fmt.Errorf("%w: %s", ErrNotOwned, item.ID)
	}
	if err := setActiveSelection(ctx, storage.NewProfileRepo(s.db), item); err != nil {
		return nil, err
	}
	return item, nil
}

// OwnedItems returns owned catalog items in purchase order.
func (s *Service) OwnedItems(ctx context.Context) ([]ShopItem, error) {
	owned, err := storage.NewItemRepo(s.db).ListOwned(ctx)
	if err != nil {
		return nil, err
	}
	var out []ShopItem
	for _, o := range owned {
		if item := ShopItemByID(o.ID); item != nil {
			out = append(out, *item)
		}
	}
	return out, nil
}

// ActiveTheme returns the color payload of the active theme, or nil when the
// default theme is in use.
func (s *Service) ActiveTheme(ctx context.Context) (*ThemeColors, error) {
	id, err := storage.NewProfileRepo(s.db).GetString(ctx, storage.KeyActiveTheme)
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, nil
	}
	item := ShopItemByID(id)
	if item == nil || item.Theme == nil {
		return nil, nil
	}
	return item.Theme, nil
}

// One active selection per type; selecting a new one silently replaces it.
func setActiveSelection(ctx context.Context, profile *storage.ProfileRepo, item *ShopItem) error {
	switch item.Type {
	case ItemTheme:
		return profile.Set(ctx, storage.KeyActiveTheme, item.ID)
	case ItemCostume:
		return profile.Set(ctx, storage.KeyActiveCostume, item.ID)
	case ItemEffect:
		return profile.Set(ctx, storage.KeyActiveEffect, item.ID)
	default:
		return fmt.Errorf("unknown item type: %q", item.Type)
	}
}
