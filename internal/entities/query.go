package entities

// FilterAll is the sentinel filter value meaning "no constraint".
const FilterAll = "all"

const (
	FilterKeyStatus   = "status"
	FilterKeyPriority = "priority"
	FilterKeyUrgency  = "urgency"
	FilterKeyVehicle  = "vehicle"
	FilterKeyCategory = "category"
	FilterKeyRole     = "role"
)

type Filter struct {
	Key   string
	Value string
}

// Query is the filter state of one list view: free-text search plus categorical filters,
// combined conjunctively.
type Query struct {
	SearchText string
	Filters    []Filter
}

func (q Query) WithFilter(key, value string) Query {
	filters := make([]Filter, 0, len(q.Filters)+1)
	filters = append(filters, q.Filters...)
	filters = append(filters, Filter{Key: key, Value: value})

	return Query{
		SearchText: q.SearchText,
		Filters:    filters,
	}
}
