package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"atelier-cms/api/handlers"
	"atelier-cms/api/middleware"
	"atelier-cms/cdn"
	_ "atelier-cms/docs"
	"atelier-cms/internal/metrics"
	"atelier-cms/repositories"
	"atelier-cms/services"
	"atelier-cms/store"
)

// Deps carries everything the router wires into handlers. Tests build it
// over the in-memory store; main builds it over Mongo.
type Deps struct {
	Categories   *services.CategoryService
	Blog         *services.BlogService
	Projects     *services.ProjectService
	Services     *services.ServiceService
	Team         *services.TeamService
	Testimonials *services.TestimonialService
	Contact      *services.ContactService
	Subscribers  *services.SubscriberService
	Auth         *services.AuthService
	Uploader     cdn.Uploader
	Metrics      *metrics.Registry

	// HealthCheck pings the backing store; nil reports healthy.
	HealthCheck func(ctx context.Context) error
}

// NewDeps builds the repository and service graph over the given store.
func NewDeps(s store.Store, auth *services.AuthService, uploader cdn.Uploader, reg *metrics.Registry) Deps {
	categories := repositories.NewCategoryRepository(s)
	return Deps{
		Categories:   services.NewCategoryService(categories),
		Blog:         services.NewBlogService(repositories.NewBlogPostRepository(s), categories),
		Projects:     services.NewProjectService(repositories.NewProjectRepository(s)),
		Services:     services.NewServiceService(repositories.NewServiceRepository(s)),
		Team:         services.NewTeamService(repositories.NewTeamMemberRepository(s)),
		Testimonials: services.NewTestimonialService(repositories.NewTestimonialRepository(s)),
		Contact:      services.NewContactService(repositories.NewContactMessageRepository(s)),
		Subscribers:  services.NewSubscriberService(repositories.NewSubscriberRepository(s)),
		Auth:         auth,
		Uploader:     uploader,
		Metrics:      reg,
	}
}

func New(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLogging())
	r.Use(middleware.CORS())
	if d.Metrics != nil {
		r.Use(d.Metrics.GinMiddleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if d.HealthCheck != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := d.HealthCheck(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "store": "down", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// v1 routes
	api := r.Group("/api/v1")
	{
		api.GET("/ping", handlers.PingHandler())

		api.GET("/categories", handlers.ListCategoriesHandler(d.Categories))
		api.GET("/blog-posts", handlers.ListBlogPostsHandler(d.Blog))
		api.GET("/blog-posts/:slug", handlers.GetBlogPostHandler(d.Blog))
		api.GET("/projects", handlers.ListProjectsHandler(d.Projects))
		api.GET("/services", handlers.ListServicesHandler(d.Services))
		api.GET("/team-members", handlers.ListTeamMembersHandler(d.Team))
		api.GET("/testimonials", handlers.ListTestimonialsHandler(d.Testimonials))

		api.POST("/subscribe", handlers.SubscribeHandler(d.Subscribers))
		api.POST("/contact", handlers.ContactHandler(d.Contact))
		api.POST("/auth/login", handlers.LoginHandler(d.Auth))
	}

	admin := api.Group("/admin")
	admin.Use(middleware.AdminAuth(d.Auth))
	{
		admin.GET("/categories", handlers.HandleList(d.Categories.List))
		admin.POST("/categories", handlers.HandleCreate(d.Categories.Create))
		admin.PUT("/categories/:id", handlers.HandleUpdate(d.Categories.Update))
		admin.DELETE("/categories/:id", handlers.HandleDelete(d.Categories.Delete))

		admin.GET("/blog-posts", handlers.HandleList(d.Blog.ListAll))
		admin.POST("/blog-posts", handlers.HandleCreate(d.Blog.Create))
		admin.PUT("/blog-posts/:id", handlers.HandleUpdate(d.Blog.Update))
		admin.DELETE("/blog-posts/:id", handlers.HandleDelete(d.Blog.Delete))

		admin.GET("/projects", handlers.HandleList(d.Projects.List))
		admin.POST("/projects", handlers.HandleCreate(d.Projects.Create))
		admin.PUT("/projects/:id", handlers.HandleUpdate(d.Projects.Update))
		admin.DELETE("/projects/:id", handlers.HandleDelete(d.Projects.Delete))

		admin.GET("/services", handlers.HandleList(d.Services.List))
		admin.POST("/services", handlers.HandleCreate(d.Services.Create))
		admin.PUT("/services/:id", handlers.HandleUpdate(d.Services.Update))
		admin.DELETE("/services/:id", handlers.HandleDelete(d.Services.Delete))

		admin.GET("/team-members", handlers.HandleList(d.Team.List))
		admin.POST("/team-members", handlers.HandleCreate(d.Team.Create))
		admin.PUT("/team-members/:id", handlers.HandleUpdate(d.Team.Update))
		admin.DELETE("/team-members/:id", handlers.HandleDelete(d.Team.Delete))

		admin.GET("/testimonials", handlers.HandleList(d.Testimonials.List))
		admin.POST("/testimonials", handlers.HandleCreate(d.Testimonials.Create))
		admin.PUT("/testimonials/:id", handlers.HandleUpdate(d.Testimonials.Update))
		admin.DELETE("/testimonials/:id", handlers.HandleDelete(d.Testimonials.Delete))

		admin.GET("/contact-messages", handlers.ListContactMessagesHandler(d.Contact))
		admin.GET("/subscribers", handlers.ListSubscribersHandler(d.Subscribers))

		if d.Uploader != nil {
			admin.POST("/upload", handlers.UploadHandler(d.Uploader))
		}
	}

	return r
}
