// Package routes wires every endpoint to its controller.
package routes

import (
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/isipark/siteapi/app/controllers"
	"github.com/isipark/siteapi/app/repositories"
	"github.com/isipark/siteapi/config"
	"github.com/isipark/siteapi/pkg/metrics"
	"github.com/isipark/siteapi/pkg/middleware"
	"github.com/isipark/siteapi/pkg/reqid"
	"github.com/isipark/siteapi/pkg/response"
	"github.com/isipark/siteapi/pkg/router"
)

// Build assembles the full route table on top of the global middleware
// stack. Public reads and the two public submission endpoints need no
// token; every mutation sits behind the admin JWT.
func Build(db *gorm.DB) *router.Router {
	r := router.New()

	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		// reqid before Logger so the ID is in the context when it logs.
		reqid.Middleware(),
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(config.RateLimitPerMinute(), time.Minute),
	)

	products := controllers.NewProductController(repositories.NewProductRepository(db))
	categories := controllers.NewCategoryController(repositories.NewCategoryRepository(db))
	services := controllers.NewServiceController(repositories.NewServiceRepository(db))
	blog := controllers.NewBlogController(repositories.NewBlogRepository(db))
	faq := controllers.NewFAQController(repositories.NewFAQRepository(db))
	testimonials := controllers.NewTestimonialController(repositories.NewTestimonialRepository(db))
	company := controllers.NewCompanyController(repositories.NewCompanyRepository(db))
	references := controllers.NewReferenceController(repositories.NewReferenceRepository(db))
	contact := controllers.NewContactController(repositories.NewContactRepository(db))
	authc := controllers.NewAuthController(repositories.NewAdminUserRepository(db))
	uploads := controllers.NewUploadController()

	api := r.Group("/api")

	// Public reads
	api.Get("/products", "products.list", products.List)
	api.Get("/products/{id}", "products.get", products.Get)
	api.Get("/categories", "categories.list", categories.List)
	api.Get("/services", "services.list", services.List)
	api.Get("/services/{id}", "services.get", services.Get)
	api.Get("/blog", "blog.list", blog.List)
	api.Get("/blog/{id}", "blog.get", blog.Get)
	api.Get("/faq", "faq.list", faq.List)
	api.Get("/faq/{id}", "faq.get", faq.Get)
	api.Get("/testimonials", "testimonials.list", testimonials.List)
	api.Get("/testimonials/{id}", "testimonials.get", testimonials.Get)
	api.Get("/company", "company.get", company.Get)
	api.Get("/references", "references.list", references.List)
	api.Get("/references/{id}", "references.get", references.Get)

	// Public submissions
	api.Post("/contact", "contact.create", contact.Create)
	api.Post("/testimonials", "testimonials.create", testimonials.Create)

	// Auth
	api.Post("/auth/login", "auth.login", authc.Login)

	// Admin-gated mutations
	admin := api.Group("", middleware.Admin)
	admin.Post("/products", "products.create", products.Create)
	admin.Put("/products/{id}", "products.update", products.Update)
	admin.Delete("/products/{id}", "products.delete", products.Delete)
	admin.Post("/categories", "categories.create", categories.Create)
	admin.Post("/services", "services.create", services.Create)
	admin.Put("/services/{id}", "services.update", services.Update)
	admin.Delete("/services/{id}", "services.delete", services.Delete)
	admin.Post("/blog", "blog.create", blog.Create)
	admin.Put("/blog/{id}", "blog.update", blog.Update)
	admin.Delete("/blog/{id}", "blog.delete", blog.Delete)
	admin.Post("/faq", "faq.create", faq.Create)
	admin.Put("/faq/{id}", "faq.update", faq.Update)
	admin.Delete("/faq/{id}", "faq.delete", faq.Delete)
	admin.Put("/testimonials/{id}", "testimonials.update", testimonials.Update)
	admin.Delete("/testimonials/{id}", "testimonials.delete", testimonials.Delete)
	admin.Put("/company", "company.update", company.Update)
	admin.Post("/references", "references.create", references.Create)
	admin.Put("/references/{id}", "references.update", references.Update)
	admin.Delete("/references/{id}", "references.delete", references.Delete)
	admin.Get("/contact", "contact.list", contact.List)
	admin.Get("/contact/{id}", "contact.get", contact.Get)
	admin.Put("/contact/{id}", "contact.update", contact.Update)
	admin.Delete("/contact/{id}", "contact.delete", contact.Delete)
	admin.Post("/admin/uploads", "uploads.create", uploads.Create)

	// Operational endpoints
	r.HandleFunc("/metrics", metrics.Handler())
	r.HandleFunc("/healthz", healthz(db))

	return r
}

// healthz reports process and database liveness.
func healthz(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(r.Context()) != nil {
			response.Error(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}

		response.OK(w, map[string]string{"status": "ok", "database": "ok"})
	}
}
