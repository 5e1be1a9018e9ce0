package pricetable_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/service/pricetable"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/errcodes"
)

type resolverStub map[string]value.ItemID

func (r resolverStub) ResolveName(name string) (value.ItemID, bool) {
	id, ok := r[name]
	return id, ok
}

var testResolver = resolverStub{ //nolint:gochecknoglobals // skip
	"Fox":        1,
	"Golden Fox": 2,
	"Ogre":       3,
}

func TestLoad(t *testing.T) {
	rq := require.New(t)

	input := "Fox,1.5\n Golden Fox , 12\nOgre,0.25\nFox,2\n"

	table, err := pricetable.Load(strings.NewReader(input), testResolver)
	rq.NoError(err)
	rq.Equal(3, table.Len())
	rq.Equal([]value.ItemID{1, 2, 3}, table.IDs())

	price, ok := table.Get(1)
	rq.True(ok)
	rq.True(decimal.RequireFromString("2").Equal(price), "last row wins")

	price, ok = table.Get(2)
	rq.True(ok)
	rq.True(decimal.RequireFromString("12").Equal(price))

	_, ok = table.Get(99)
	rq.False(ok)
}

func TestLoadEmpty(t *testing.T) {
	rq := require.New(t)

	table, err := pricetable.Load(strings.NewReader(""), testResolver)
	rq.NoError(err)
	rq.Zero(table.Len())
}

func TestLoadErrors(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		input    string
		wantLine string
	}{
		{name: "Unknown name", input: "Fox,1\nDragon King,5\n", wantLine: "line 2"},
		{name: "Bad price", input: "Fox,one\n", wantLine: "line 1"},
		{name: "Negative price", input: "Fox,-1\n", wantLine: "line 1"},
		{name: "Missing column", input: "Fox\n", wantLine: "line 1"},
		{name: "Extra column", input: "Fox,1,2\n", wantLine: "line 1"},
		{name: "Broken quoting", input: "\"Fox,1\n", wantLine: "line 1"},
		{name: "After quoted multi-line field", input: "Ogre,1\nFox,\"2\n\"\nDragon King,5\n", wantLine: "line 4"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			table, err := pricetable.Load(strings.NewReader(tc.input), testResolver)
			rq.Nil(table)
			rq.Error(err)

			code, ok := domain.GetCode(err)
			rq.True(ok)
			rq.Equal(errcodes.ConfigError, code)
			rq.ErrorContains(err, tc.wantLine)
		})
	}
}

func TestLoadFile(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "prices.csv")
	rq.NoError(os.WriteFile(path, []byte("Ogre,3.75\n"), 0o600))

	table, err := pricetable.LoadFile(path, testResolver)
	rq.NoError(err)

	price, ok := table.Get(3)
	rq.True(ok)
	rq.True(decimal.RequireFromString("3.75").Equal(price))

	_, err = pricetable.LoadFile(filepath.Join(t.TempDir(), "missing.csv"), testResolver)
	rq.True(domain.HasCode(err, errcodes.ConfigError))
}

func TestNewCopiesInput(t *testing.T) {
	rq := require.New(t)

	prices := map[value.ItemID]decimal.Decimal{1: decimal.NewFromInt(1)}
	table := pricetable.New(prices)

	prices[2] = decimal.NewFromInt(2)

	rq.Equal(1, table.Len())
}
