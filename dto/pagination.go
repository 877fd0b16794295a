package dto

// PaginationBlogPostDTO is a concrete swagger-friendly type for the
// paginated blog post listing.
// swagger:model PaginationBlogPostDTO
type PaginationBlogPostDTO struct {
	Data     []BlogPostDTO `json:"data"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
	Total    int64         `json:"total"`
}
