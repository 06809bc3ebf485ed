package domain

// ItemStatus represents the workflow state of a delivery item.
// All statuses are mutually reachable via direct assignment; the only
// transition side effect is that the first move into DELIVERED stamps
// DeliveredAt.
type ItemStatus string

const (
	ItemStatusTodo       ItemStatus = "TODO"
	ItemStatusInProgress ItemStatus = "IN_PROGRESS"
	ItemStatusDelivered  ItemStatus = "DELIVERED"
	ItemStatusArchived   ItemStatus = "ARCHIVED"
)

func (s ItemStatus) String() string { return string(s) }

func (s ItemStatus) IsValid() bool {
	switch s {
	case ItemStatusTodo, ItemStatusInProgress, ItemStatusDelivered, ItemStatusArchived:
		return true
	}
	return false
}

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

func (o SortOrder) String() string { return string(o) }

func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// ItemSortKey selects the column items are ordered by.
type ItemSortKey string

const (
	ItemSortDeadline   ItemSortKey = "deadline"
	ItemSortSourceDate ItemSortKey = "source_date"
	ItemSortCreatedAt  ItemSortKey = "created_at"
)

func (k ItemSortKey) String() string { return string(k) }

func (k ItemSortKey) IsValid() bool {
	switch k {
	case ItemSortDeadline, ItemSortSourceDate, ItemSortCreatedAt:
		return true
	}
	return false
}
