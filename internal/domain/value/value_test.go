package value_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/errcodes"
)

func TestColorOf(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		foil   value.Foil
		rarity value.Rarity
		color  value.Color
	}{
		{value.FoilRegular, value.RarityCommon, value.ColorWhite},
		{value.FoilRegular, value.RarityRare, value.ColorBlue},
		{value.FoilRegular, value.RarityEpic, value.ColorPurple},
		{value.FoilRegular, value.RarityLegendary, value.ColorOrange},
		{value.FoilGold, value.RarityCommon, value.ColorWhiteGold},
		{value.FoilGold, value.RarityRare, value.ColorBlueGold},
		{value.FoilGold, value.RarityEpic, value.ColorPurpleGold},
		{value.FoilGold, value.RarityLegendary, value.ColorOrangeGold},
		{value.FoilGold, value.Rarity("Mythic"), ""},
	}

	for _, tc := range testCases {
		t.Run(string(tc.foil)+"/"+string(tc.rarity), func(*testing.T) {
			rq.Equal(tc.color, value.ColorOf(tc.foil, tc.rarity))
		})
	}
}

func TestWireCodes(t *testing.T) {
	rq := require.New(t)

	rq.Equal(12, value.ChainNftCards.WireCode())
	rq.Equal(13, value.ChainNftBoxes.WireCode())
	rq.Equal(15, value.ChainNftFragments.WireCode())

	rq.Equal(0, value.SecondaryPriceAscending.WireCode())
	rq.Equal(3, value.SecondarySalesVolumeDescending.WireCode())
	rq.Equal(5, value.SecondaryQuantityDescending.WireCode())

	rq.Equal(0, value.ListingPriceAscending.WireCode())
	rq.Equal(1, value.ListingPriceDescending.WireCode())
	rq.Equal(3, value.ListingLatest.WireCode())
	rq.Equal(4, value.ListingPriceExpAscending.WireCode())
	rq.Equal(5, value.ListingPriceExpDescending.WireCode())
	rq.Equal(6, value.ListingHonorPointsAscending.WireCode())
}

func TestParse(t *testing.T) {
	rq := require.New(t)

	category, err := value.ParseCategory(" zombie ")
	rq.NoError(err)
	rq.Equal(value.CategoryZombie, category)

	rarity, err := value.ParseRarity("LEGENDARY")
	rq.NoError(err)
	rq.Equal(value.RarityLegendary, rarity)

	foil, err := value.ParseFoil("gold")
	rq.NoError(err)
	rq.Equal(value.FoilGold, foil)

	color, err := value.ParseColor("purplegold")
	rq.NoError(err)
	rq.Equal(value.ColorPurpleGold, color)

	_, err = value.ParseCategory("Pirate")
	rq.Error(err)
	rq.True(domain.HasCode(err, errcodes.ValidationError))
}

func TestCategoryFilterColors(t *testing.T) {
	rq := require.New(t)

	rq.Nil(value.CategoryFilter{}.Colors())

	f := value.CategoryFilter{
		Rarities: value.NewSet(value.RarityEpic),
	}
	rq.Equal(value.NewSet(value.ColorPurple, value.ColorPurpleGold), f.Colors())

	f = value.CategoryFilter{
		Rarities: value.NewSet(value.RarityCommon, value.RarityLegendary),
		Foils:    value.NewSet(value.FoilGold),
	}
	rq.Equal(value.NewSet(value.ColorWhiteGold, value.ColorOrangeGold), f.Colors())

	f = value.CategoryFilter{
		Foils: value.NewSet(value.FoilRegular),
	}
	rq.Len(f.Colors(), 4)
}

func TestSetMatches(t *testing.T) {
	rq := require.New(t)

	var empty value.Set[value.Category]

	rq.True(empty.Matches(value.CategoryMech))
	rq.False(empty.Has(value.CategoryMech))

	s := value.NewSet(value.CategoryMech)
	rq.True(s.Matches(value.CategoryMech))
	rq.False(s.Matches(value.CategoryPlant))
}
