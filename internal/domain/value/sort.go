package value

// SecondarySort orders the per-category summary rows.
type SecondarySort uint8

const (
	SecondaryPriceAscending SecondarySort = iota
	SecondaryPriceDescending
	SecondarySalesVolumeAscending
	SecondarySalesVolumeDescending
	SecondaryQuantityAscending
	SecondaryQuantityDescending
)

// WireCode returns the sortType value the vendor expects.
func (s SecondarySort) WireCode() int {
	switch s {
	case SecondaryPriceAscending:
		return 0
	case SecondaryPriceDescending:
		return 1
	case SecondarySalesVolumeAscending:
		return 2
	case SecondarySalesVolumeDescending:
		return 3
	case SecondaryQuantityAscending:
		return 4
	case SecondaryQuantityDescending:
		return 5
	default:
		return 0
	}
}

// ListingSort orders the individual listings of one item.
type ListingSort uint8

const (
	ListingPriceAscending ListingSort = iota
	ListingPriceDescending
	ListingLatest
	ListingPriceExpAscending
	ListingPriceExpDescending
	ListingHonorPointsAscending
)

// WireCode returns the sortType value the vendor expects. Code 2 is not
// used by the vendor.
func (s ListingSort) WireCode() int {
	switch s {
	case ListingPriceAscending:
		return 0
	case ListingPriceDescending:
		return 1
	case ListingLatest:
		return 3
	case ListingPriceExpAscending:
		return 4
	case ListingPriceExpDescending:
		return 5
	case ListingHonorPointsAscending:
		return 6
	default:
		return 0
	}
}
