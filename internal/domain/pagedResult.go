package domain

// PagedResult é a forma única de página de resultados exposta pelo cliente,
// independente do envelope usado pelo endpoint upstream.
// Invariantes: len(Items) <= PageSize e TotalCount >= len(Items).
type PagedResult[T any] struct {
	Items      []T  `json:"items"`
	TotalCount int  `json:"totalCount"`
	HasMore    bool `json:"hasMore"`
	PageSize   int  `json:"pageSize"`
}
