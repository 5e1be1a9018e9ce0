package value

import (
	"fmt"
	"strings"

	"ahoy_market/internal/domain"
	"ahoy_market/pkg/errcodes"
)

// Category is the faction an item belongs to.
type Category string

const (
	CategoryNeutral Category = "Neutral"
	CategoryAnimal  Category = "Animal"
	CategoryPlant   Category = "Plant"
	CategoryZombie  Category = "Zombie"
	CategoryMech    Category = "Mech"
	CategoryDragon  Category = "Dragon"
)

func Categories() []Category {
	return []Category{CategoryNeutral, CategoryAnimal, CategoryPlant, CategoryZombie, CategoryMech, CategoryDragon}
}

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

func Rarities() []Rarity {
	return []Rarity{RarityCommon, RarityRare, RarityEpic, RarityLegendary}
}

type Foil string

const (
	FoilRegular Foil = "Regular"
	FoilGold    Foil = "Gold"
)

func Foils() []Foil {
	return []Foil{FoilRegular, FoilGold}
}

// Color is the catalog tint of an item, a combination of rarity and foil.
type Color string

const (
	ColorWhite      Color = "White"
	ColorWhiteGold  Color = "WhiteGold"
	ColorBlue       Color = "Blue"
	ColorBlueGold   Color = "BlueGold"
	ColorPurple     Color = "Purple"
	ColorPurpleGold Color = "PurpleGold"
	ColorOrange     Color = "Orange"
	ColorOrangeGold Color = "OrangeGold"
)

func Colors() []Color {
	return []Color{
		ColorWhite, ColorWhiteGold, ColorBlue, ColorBlueGold,
		ColorPurple, ColorPurpleGold, ColorOrange, ColorOrangeGold,
	}
}

func (c Color) IsGold() bool {
	return strings.HasSuffix(string(c), "Gold")
}

// ColorOf maps a foil and rarity preference to the catalog color.
func ColorOf(foil Foil, rarity Rarity) Color {
	var base Color

	switch rarity {
	case RarityCommon:
		base = ColorWhite
	case RarityRare:
		base = ColorBlue
	case RarityEpic:
		base = ColorPurple
	case RarityLegendary:
		base = ColorOrange
	default:
		return ""
	}

	if foil == FoilGold {
		return base + "Gold"
	}

	return base
}

func ParseCategory(s string) (Category, error) {
	for _, c := range Categories() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}

	return "", domain.NewError(errcodes.ValidationError, fmt.Sprintf("unknown category %q", s))
}

func ParseRarity(s string) (Rarity, error) {
	for _, r := range Rarities() {
		if strings.EqualFold(string(r), strings.TrimSpace(s)) {
			return r, nil
		}
	}

	return "", domain.NewError(errcodes.ValidationError, fmt.Sprintf("unknown rarity %q", s))
}

func ParseFoil(s string) (Foil, error) {
	for _, f := range Foils() {
		if strings.EqualFold(string(f), strings.TrimSpace(s)) {
			return f, nil
		}
	}

	return "", domain.NewError(errcodes.ValidationError, fmt.Sprintf("unknown foil %q", s))
}

func ParseColor(s string) (Color, error) {
	for _, c := range Colors() {
		if strings.EqualFold(string(c), strings.TrimSpace(s)) {
			return c, nil
		}
	}

	return "", domain.NewError(errcodes.ValidationError, fmt.Sprintf("unknown color %q", s))
}
