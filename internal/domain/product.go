package domain

import (
	"time"
)

type Product struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	Tags            []string  `json:"tags"`
	PopularityScore int64     `json:"popularity_score"`
	CreatedAt       time.Time `json:"created_at"`
}

type ProductFilters struct {
	NameContains string
}

type ListOptions struct {
	Page, PageSize int
}

type ListMetadata struct {
	TotalRows int64 `json:"total_rows"`
}
