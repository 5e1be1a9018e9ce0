package config

import "github.com/shopspring/decimal"

const (
	BuyPolicyReference  = "reference"
	BuyPolicyTopAverage = "top-average"
	BuyPolicyAll        = "all"
	BuyPolicyGold       = "gold-vs-regular"
)

// Buy configures the buy engine. Gold cards are compared against the top
// BUY_TOP_N listings of their regular card.
type Buy struct {
	Policy                 string          `env:"BUY_POLICY" envDefault:"reference" validate:"oneof=reference top-average all gold-vs-regular"`
	MaxLevel               uint32          `env:"BUY_MAX_LEVEL" envDefault:"3"`
	MaxListings            int             `env:"BUY_MAX_LISTINGS" envDefault:"20" validate:"min=1"`
	TopN                   int             `env:"BUY_TOP_N" envDefault:"5" validate:"min=1"`
	TopRatio               decimal.Decimal `env:"BUY_TOP_RATIO" envDefault:"0.5"`
	MinListings            int             `env:"BUY_MIN_LISTINGS" envDefault:"5" validate:"min=0"`
	GoldRatio              decimal.Decimal `env:"BUY_GOLD_RATIO" envDefault:"1.1"`
	GoldMinRegularListings int             `env:"BUY_GOLD_MIN_REGULAR_LISTINGS" envDefault:"10" validate:"min=0"`
}

type Files struct {
	PriceTablePath   string `env:"PRICE_TABLE_PATH" envDefault:"prices.csv" validate:"required"`
	CatalogPath      string `env:"CATALOG_PATH" envDefault:"data/catalog.json" validate:"required"`
	ReportDir        string `env:"REPORT_DIR" envDefault:"."`
	SnapshotSchedule string `env:"REPORT_SNAPSHOT_SCHEDULE"`
}
