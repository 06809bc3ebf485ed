package domain

// ItemFilter contains filtering and sorting parameters for item listings.
// Zero values mean "no filter" / default sort (deadline ascending).
type ItemFilter struct {
	Status    *ItemStatus
	SortBy    ItemSortKey
	SortOrder SortOrder
}
