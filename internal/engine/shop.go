package engine

type ItemType string

const (
	ItemTheme   ItemType = "theme"
	ItemCostume ItemType = "costume"
	ItemEffect  ItemType = "effect"
)

// ThemeColors is the payload a theme applies to the UI.
type ThemeColors struct {
	Primary   string
	Secondary string
	Accent    string
}

// ShopItem is a static catalog entry. Ownership and the active selection per
// type are the only mutable shop state.
type ShopItem struct {
	ID          string
	Name        string
	Description string
	Price       int
	Icon        string
	Type        ItemType
	Theme       *ThemeColors
}

// ShopItems returns the static catalog, in display order.
func ShopItems() []ShopItem {
	return []ShopItem{
		{
			ID: "theme_space", Name: "Space Theme", Icon: "🚀", Price: 500, Type: ItemTheme,
			Description: "Transform your app into a cosmic adventure!",
			Theme:       &ThemeColors{Primary: "#6B46C1", Secondary: "#805AD5", Accent: "#9F7AEA"},
		},
		{
			ID: "theme_ocean", Name: "Ocean Theme", Icon: "🌊", Price: 500, Type: ItemTheme,
			Description: "Dive into an underwater experience!",
			Theme:       &ThemeColors{Primary: "#2B6CB0", Secondary: "#4299E1", Accent: "#63B3ED"},
		},
		{
			ID: "pet_costume_wizard", Name: "Wizard Costume", Icon: "🧙", Price: 300, Type: ItemCostume,
			Description: "A magical outfit for your pet!",
		},
		{
			ID: "pet_costume_superhero", Name: "Superhero Costume", Icon: "🦸", Price: 300, Type: ItemCostume,
			Description: "Transform your pet into a superhero!",
		},
		{
			ID: "special_effects_rainbow", Name: "Rainbow Trail", Icon: "🌈", Price: 200, Type: ItemEffect,
			Description: "Leave a trail of rainbows as you move!",
		},
		{
			ID: "special_effects_sparkles", Name: "Sparkle Effect", Icon: "✨", Price: 200, Type: ItemEffect,
			Description: "Add sparkles to your interactions!",
		},
	}
}

func ShopItemByID(id string) *ShopItem {
	for _, item := range ShopItems() {
		if item.ID == id {
			it := item
			return &it
		}
	}
	return nil
}
