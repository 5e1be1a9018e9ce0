package value

import (
	"strconv"
)

// ItemID identifies a catalog item on the vendor, the same id the vendor
// uses as secondCategoryId and secondaryId.
type ItemID uint32

func (id ItemID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// ChainNftID is the vendor's top level asset class.
type ChainNftID uint8

const (
	ChainNftCards     ChainNftID = 12
	ChainNftBoxes     ChainNftID = 13
	ChainNftFragments ChainNftID = 15
)

func (c ChainNftID) WireCode() int {
	return int(c)
}
