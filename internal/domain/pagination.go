package domain

// DefaultPageLimit is the page size used when none is specified.
const DefaultPageLimit = 50

// MaxPageLimit is the maximum allowed page size.
const MaxPageLimit = 1000

// PaginationParams holds offset/limit parameters for list operations.
type PaginationParams struct {
	Offset int64
	Limit  int64
}

// NewPaginationParams validates and builds pagination parameters.
func NewPaginationParams(offset, limit int64) (PaginationParams, error) {
	if offset < 0 {
		return PaginationParams{}, ErrValidation("offset", "Offset must be non-negative")
	}
	if limit <= 0 || limit > MaxPageLimit {
		return PaginationParams{}, ErrValidation("limit", "Limit must be between 1 and %d", MaxPageLimit)
	}
	return PaginationParams{Offset: offset, Limit: limit}, nil
}

// DefaultPagination returns the first page with the default limit.
func DefaultPagination() PaginationParams {
	return PaginationParams{Offset: 0, Limit: DefaultPageLimit}
}

// PaginatedResult is one page of a list operation plus total-count metadata.
type PaginatedResult[T any] struct {
	Items      []T
	TotalCount int64
	Offset     int64
	Limit      int64
	HasNext    bool
}

// NewPaginatedResult assembles a result page and computes HasNext.
func NewPaginatedResult[T any](items []T, totalCount int64, p PaginationParams) *PaginatedResult[T] {
	return &PaginatedResult[T]{
		Items:      items,
		TotalCount: totalCount,
		Offset:     p.Offset,
		Limit:      p.Limit,
		HasNext:    p.Offset+p.Limit < totalCount,
	}
}
