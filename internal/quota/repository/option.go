package repository

// ListOptions contains filtering options for quota queries.
type ListOptions struct {
	FormID     string
	OnlyActive bool
}

// UpdateCountOptions contains options for persisting a recomputed count.
type UpdateCountOptions struct {
	QuotaID      string
	CurrentCount int
}
