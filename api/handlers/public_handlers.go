package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"atelier-cms/config"
	"atelier-cms/services"
)

// PingHandler godoc
// @Summary      Liveness probe
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /ping [get]
func PingHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	}
}

// ListCategoriesHandler godoc
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryDTO
// @Router       /categories [get]
func ListCategoriesHandler(svc *services.CategoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// ListBlogPostsHandler godoc
// @Summary      List published blog posts
// @Description  Published posts newest first, optionally filtered by category slug
// @Tags         blog
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (<=100)"
// @Param        category   query  string  false  "Category slug"
// @Produce      json
// @Success      200  {object}  dto.PaginationBlogPostDTO
// @Router       /blog-posts [get]
func ListBlogPostsHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		cfg := config.GetConfig()
		page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
		pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(cfg.API.DefaultPageSize)))
		if page < 1 {
			page = 1
		}
		if pageSize < 1 || pageSize > cfg.API.MaxPageSize {
			pageSize = cfg.API.DefaultPageSize
		}

		out, err := svc.ListPublished(c.Request.Context(), services.ListPostsInput{
			Page:         page,
			PageSize:     pageSize,
			CategorySlug: c.Query("category"),
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetBlogPostHandler godoc
// @Summary      Get a published blog post by slug
// @Tags         blog
// @Param        slug  path  string  true  "Post slug"
// @Produce      json
// @Success      200  {object}  dto.BlogPostDTO
// @Failure      404  {object}  map[string]string
// @Router       /blog-posts/{slug} [get]
func GetBlogPostHandler(svc *services.BlogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := svc.GetPublishedBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

// ListProjectsHandler godoc
// @Summary      List portfolio projects
// @Tags         projects
// @Produce      json
// @Success      200  {array}  dto.ProjectDTO
// @Router       /projects [get]
func ListProjectsHandler(svc *services.ProjectService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// ListServicesHandler godoc
// @Summary      List offered services
// @Tags         services
// @Produce      json
// @Success      200  {array}  dto.ServiceDTO
// @Router       /services [get]
func ListServicesHandler(svc *services.ServiceService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// ListTeamMembersHandler godoc
// @Summary      List team members
// @Tags         team
// @Produce      json
// @Success      200  {array}  dto.TeamMemberDTO
// @Router       /team-members [get]
func ListTeamMembersHandler(svc *services.TeamService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// ListTestimonialsHandler godoc
// @Summary      List testimonials
// @Tags         testimonials
// @Produce      json
// @Success      200  {array}  dto.TestimonialDTO
// @Router       /testimonials [get]
func ListTestimonialsHandler(svc *services.TestimonialService) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
	}
}
