package domain

// ProductFilter narrows a catalog listing. Zero values mean "no filter";
// Limit is expected to be clamped by the caller.
type ProductFilter struct {
	Search   string
	Category string
	Limit    int
	Offset   int
}
