package catalog

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"ahoy_market/internal/domain"
	"ahoy_market/internal/domain/entity"
	"ahoy_market/internal/domain/value"
	"ahoy_market/pkg/errcodes"
)

const goldSuffix = " (Gold)"

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

type itemSchema struct {
	ID            uint32 `json:"id"`
	Name          string `json:"name"`
	LocalizedName string `json:"localized_name"`
	Category      string `json:"category"`
	Color         string `json:"color"`
}

// Catalog is the immutable item catalog. It is safe for concurrent reads.
type Catalog struct {
	items       map[value.ItemID]entity.Item
	byName      map[string]value.ItemID
	byLocalized map[string]value.ItemID
	regularOf   map[value.ItemID]value.ItemID
	ids         []value.ItemID
}

func LoadFile(path string) (*Catalog, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.ConfigError, "open catalog")
	}
	defer fh.Close()

	return Load(fh)
}

// Load decodes a JSON array of catalog entries.
func Load(r io.Reader) (*Catalog, error) {
	var schemas []itemSchema

	if err := json.NewDecoder(r).Decode(&schemas); err != nil {
		return nil, domain.WrapError(err, errcodes.ConfigError, "decode catalog")
	}

	items := make([]entity.Item, 0, len(schemas))

	for i, s := range schemas {
		category, err := value.ParseCategory(s.Category)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.ConfigError, fmt.Sprintf("catalog entry %d", i))
		}

		color, err := value.ParseColor(s.Color)
		if err != nil {
			return nil, domain.WrapError(err, errcodes.ConfigError, fmt.Sprintf("catalog entry %d", i))
		}

		items = append(items, entity.Item{
			ID:            value.ItemID(s.ID),
			Name:          s.Name,
			LocalizedName: s.LocalizedName,
			Category:      category,
			Color:         color,
		})
	}

	return New(items...)
}

func New(items ...entity.Item) (*Catalog, error) {
	c := &Catalog{
		items:       make(map[value.ItemID]entity.Item, len(items)),
		byName:      make(map[string]value.ItemID, len(items)),
		byLocalized: make(map[string]value.ItemID, len(items)),
		regularOf:   make(map[value.ItemID]value.ItemID),
		ids:         make([]value.ItemID, 0, len(items)),
	}

	for _, item := range items {
		if item.Name == "" {
			return nil, domain.NewError(errcodes.ConfigError, fmt.Sprintf("catalog item %s has no name", item.ID))
		}

		if _, ok := c.items[item.ID]; ok {
			return nil, domain.NewError(errcodes.ConfigError, fmt.Sprintf("duplicate catalog id %s", item.ID))
		}

		if _, ok := c.byName[item.Name]; ok {
			return nil, domain.NewError(errcodes.ConfigError, fmt.Sprintf("duplicate catalog name %q", item.Name))
		}

		c.items[item.ID] = item
		c.byName[item.Name] = item.ID
		c.ids = append(c.ids, item.ID)

		if item.LocalizedName != "" {
			if _, ok := c.byLocalized[item.LocalizedName]; ok {
				return nil, domain.NewError(
					errcodes.ConfigError,
					fmt.Sprintf("duplicate catalog localized name %q", item.LocalizedName),
				)
			}

			c.byLocalized[item.LocalizedName] = item.ID
		}
	}

	for _, item := range items {
		base, ok := strings.CutSuffix(item.Name, goldSuffix)
		if !ok || !item.Color.IsGold() {
			continue
		}

		if regular, ok := c.byName[base]; ok {
			c.regularOf[item.ID] = regular
		}
	}

	slices.Sort(c.ids)

	return c, nil
}

func (c *Catalog) Len() int {
	return len(c.items)
}

// ResolveName finds an item by its display name, falling back to the
// localized name.
func (c *Catalog) ResolveName(name string) (value.ItemID, bool) {
	if id, ok := c.byName[name]; ok {
		return id, true
	}

	id, ok := c.byLocalized[name]

	return id, ok
}

// RegularOf returns the regular card of a gold card named "<name> (Gold)".
func (c *Catalog) RegularOf(id value.ItemID) (value.ItemID, bool) {
	regular, ok := c.regularOf[id]
	return regular, ok
}

func (c *Catalog) Lookup(id value.ItemID) (entity.Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// FilterBy returns the ids of items whose category and color are in the
// given sets, ordered by id. An empty set does not restrict.
func (c *Catalog) FilterBy(categories value.Set[value.Category], colors value.Set[value.Color]) []value.ItemID {
	return lo.Filter(c.ids, func(id value.ItemID, _ int) bool {
		item := c.items[id]
		return categories.Matches(item.Category) && colors.Matches(item.Color)
	})
}

// Universe returns the items selected by the operator's category filter.
func (c *Catalog) Universe(filter value.CategoryFilter) []value.ItemID {
	return c.FilterBy(filter.Factions, filter.Colors())
}
