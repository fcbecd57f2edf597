package domain

// Image is an uploaded media record owned by the upstream API. URL is
// normalized at the transport boundary: the upstream returns either
// fileUrl or url, never both consistently.
type Image struct {
	ID          int64  `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"isPublic"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}
