package market

import (
	"fmt"

	"github.com/shopspring/decimal"

	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/errcodes"
)

const (
	coinIDUSDT        = 1
	paymentTypeWallet = "Wallet"
	metadataPriceExp  = "Price/EXP"
)

type discreteFilterValue struct {
	ValueName string `json:"valueName"`
	ValueID   string `json:"valueId"`
}

// discreteFilter is one vendor filter group. The id lists are always sent as
// arrays, empty when nothing is selected.
type discreteFilter struct {
	FilterName      string                `json:"filterName"`
	FilterValueList []discreteFilterValue `json:"filterValueList"`
	ValueIDList     []string              `json:"valueIdList"`
	FilterIDList    []string              `json:"filterIdList"`
}

type continuityFilter struct {
	FilterName string `json:"filterName"`
	FilterID   uint32 `json:"filterId"`
	Start      uint32 `json:"start"`
	StepSize   uint32 `json:"stepSize"`
	End        uint32 `json:"end"`
	Max        uint32 `json:"max"`
	Min        uint32 `json:"min"`
}

func levelContinuity() continuityFilter {
	return continuityFilter{
		FilterName: "Level",
		FilterID:   1,
		Start:      1,
		StepSize:   1,
		End:        10,
		Max:        100,
		Min:        1,
	}
}

func newDiscreteFilter(name string, options, selected []string) discreteFilter {
	values := make([]discreteFilterValue, 0, len(options))
	for _, option := range options {
		values = append(values, discreteFilterValue{ValueName: option, ValueID: option})
	}

	if selected == nil {
		selected = []string{}
	}

	return discreteFilter{
		FilterName:      name,
		FilterValueList: values,
		ValueIDList:     selected,
		FilterIDList:    append([]string{}, selected...),
	}
}

// selectedIn returns the members of all that set contains, in vendor order.
func selectedIn[T ~string](all []T, set value.Set[T]) []string {
	selected := make([]string, 0, len(set))
	for _, item := range all {
		if set.Has(item) {
			selected = append(selected, string(item))
		}
	}

	return selected
}

func toStrings[T ~string](items []T) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, string(item))
	}

	return out
}

// discreteList builds the five filter groups the vendor expects, in order.
// Type and Source are never restricted.
func discreteList(filter value.CategoryFilter) []discreteFilter {
	return []discreteFilter{
		newDiscreteFilter("Type", []string{"Leaders", "Members"}, nil),
		newDiscreteFilter("Faction", toStrings(value.Categories()), selectedIn(value.Categories(), filter.Factions)),
		newDiscreteFilter("Rarity", toStrings(value.Rarities()), selectedIn(value.Rarities(), filter.Rarities)),
		newDiscreteFilter("Foil", toStrings(value.Foils()), selectedIn(value.Foils(), filter.Foils)),
		newDiscreteFilter(
			"Source",
			[]string{"All", "Ahoy Box", "Ladder Chest", "Alchemy", "Reward", "Season Box"},
			nil,
		),
	}
}

type secondaryRequest struct {
	ChainNftID     int                `json:"chainNftId"`
	DiscreteList   []discreteFilter   `json:"discreteList"`
	ContinuityList []continuityFilter `json:"continuityList"`
	PageNumber     uint32             `json:"pageNumber"`
	PageSize       uint32             `json:"pageSize"`
	SortType       int                `json:"sortType"`
}

type secondaryResponse struct {
	Total uint32          `json:"total"`
	List  []secondaryItem `json:"list"`
}

type secondaryItem struct {
	Volume        uint32 `json:"volume"`
	Quantity      uint32 `json:"quantity"`
	SecondaryID   uint32 `json:"secondaryId"`
	SecondaryName string `json:"secondaryName"`
	NftName       string `json:"nftName"`
	Image         string `json:"image"`
	ChainNftID    uint32 `json:"chainNftId"`
	FloorPrice    string `json:"floorPrice"`
	PriceUnity    string `json:"priceUnity"`
}

func (i secondaryItem) toEntity() (entity.SecondaryListing, error) {
	floor, err := parseDecimal("floorPrice", i.FloorPrice)
	if err != nil {
		return entity.SecondaryListing{}, err
	}

	return entity.SecondaryListing{
		ItemID:     value.ItemID(i.SecondaryID),
		Name:       i.SecondaryName,
		FloorPrice: floor,
		Quantity:   i.Quantity,
		VolumeSold: i.Volume,
	}, nil
}

type marketHomeRequest struct {
	CoinID           int                `json:"coinId"`
	DiscreteList     []discreteFilter   `json:"discreteList"`
	ContinuityList   []continuityFilter `json:"continuityList"`
	PageNumber       uint32             `json:"pageNumber"`
	PageSize         uint32             `json:"pageSize"`
	FirstCategoryID  int                `json:"firstCategoryId"`
	SecondCategoryID uint32             `json:"secondCategoryId"`
	SortType         int                `json:"sortType"`
}

type marketHomeResponse struct {
	List []marketHomeItem `json:"list"`
}

type marketHomeItem struct {
	ChainNftID           uint32          `json:"chainNftId"`
	Amount               uint32          `json:"amount"`
	PriceUnity           string          `json:"priceUnity"`
	PriorityTrait1       string          `json:"priorityTrait1"`
	AccumulateTrait      accumulateTrait `json:"accumulateTrait"`
	NftType              uint32          `json:"nftType"`
	Image                string          `json:"image"`
	SalePrice            string          `json:"salePrice"`
	TokenID              string          `json:"tokenId"`
	NftName              string          `json:"nftName"`
	PriorityTrait2       string          `json:"priorityTrait2"`
	SaleAggregatorNumber string          `json:"saleAggregatorNumber"`
	MetadataList         []metadata      `json:"metadataList"`
}

type accumulateTrait struct {
	Name  string `json:"name"`
	Value uint32 `json:"value"`
}

type metadata struct {
	Name         string `json:"name"`
	Value        string `json:"value"`
	IfAccumulate *bool  `json:"ifAccumulate"`
}

func (i marketHomeItem) toEntity() (entity.UnitListing, error) {
	price, err := parseDecimal("salePrice", i.SalePrice)
	if err != nil {
		return entity.UnitListing{}, err
	}

	listing := entity.UnitListing{
		Handle:    i.SaleAggregatorNumber,
		Name:      i.NftName,
		UnitPrice: price,
		Level:     i.AccumulateTrait.Value,
	}

	for _, meta := range i.MetadataList {
		if meta.Name != metadataPriceExp {
			continue
		}

		perExp, err := parseDecimal(metadataPriceExp, meta.Value)
		if err != nil {
			return entity.UnitListing{}, err
		}

		listing.PricePerExp = &perExp

		break
	}

	return listing, nil
}

type buyPayload struct {
	Nonce                string `json:"nonce"`
	Amount               uint32 `json:"amount"`
	Password             string `json:"password"`
	PaymentType          string `json:"paymentType"`
	ReqTimestamp         int64  `json:"reqTimestamp"`
	SaleAggregatorNumber string `json:"saleAggregatorNumber"`
}

type encryptedRequest struct {
	EncContent string `json:"encContent"`
	EncKey     string `json:"encKey"`
}

type balanceRequest struct {
	CoinID      int    `json:"coinId"`
	PaymentType string `json:"paymentType"`
}

type balanceItem struct {
	Balance    float64 `json:"balance"`
	StrBalance string  `json:"strBalance"`
	ChainName  string  `json:"chainName"`
	PriceUnity string  `json:"priceUnity"`
}

func (b balanceItem) toEntity() entity.Balance {
	amount, err := decimal.NewFromString(b.StrBalance)
	if err != nil {
		amount = decimal.NewFromFloat(b.Balance)
	}

	return entity.Balance{
		Chain:   b.ChainName,
		Unit:    b.PriceUnity,
		Balance: amount,
	}
}

type dealTrendRequest struct {
	ChainNftID int    `json:"chainNftId"`
	CategoryID string `json:"categoryId"`
	TimeRange  string `json:"timeRange"`
}

type dealTrendResponse struct {
	Nodes       []dealTrendNode `json:"nodes"`
	PaymentInfo paymentInfo     `json:"paymentInfo"`
}

type paymentInfo struct {
	Unit string `json:"unit"`
}

type dealTrendNode struct {
	MaxValue   string `json:"maxValue"`
	TotalValue string `json:"totalValue"`
	Timestamp  int64  `json:"timestamp"`
	AvgValue   string `json:"avgValue"`
	Count      uint32 `json:"count"`
	MinValue   string `json:"minValue"`
}

func (n dealTrendNode) toEntity() (entity.DealTrendNode, error) {
	fields := map[string]string{
		"maxValue":   n.MaxValue,
		"totalValue": n.TotalValue,
		"avgValue":   n.AvgValue,
		"minValue":   n.MinValue,
	}

	parsed := make(map[string]decimal.Decimal, len(fields))

	for name, raw := range fields {
		d, err := parseDecimal(name, raw)
		if err != nil {
			return entity.DealTrendNode{}, err
		}

		parsed[name] = d
	}

	return entity.DealTrendNode{
		Timestamp: n.Timestamp,
		Count:     n.Count,
		Avg:       parsed["avgValue"],
		Min:       parsed["minValue"],
		Max:       parsed["maxValue"],
		Total:     parsed["totalValue"],
	}, nil
}

func parseDecimal(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, domain.WrapError(err, errcodes.NumericParseError, fmt.Sprintf("parse %s %q", field, raw))
	}

	return d, nil
}
