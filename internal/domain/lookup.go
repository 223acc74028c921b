package domain

// Category is an externally-owned ticket category reference.
type Category struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	ParentID  *int64 `json:"parent_id"`
	SortOrder int    `json:"sort_order"`
}

// Project is an externally-owned project reference.
type Project struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
