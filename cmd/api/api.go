package main

import (
	"context"
	"errors"
	"expvar"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/docs" // swagger spec
	"storefront/internal/auth"
	"storefront/internal/blob"
	"storefront/internal/cache"
	"storefront/internal/domain/storage"
	"storefront/internal/ratelimiter"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         *storage.Container
	logger        *zap.SugaredLogger
	uploader      blob.Uploader
	cache         cache.Cache
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.corsOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", csrfHeaderName},
		ExposedHeaders:   []string{"Link", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/api", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/api/swagger/doc.json")))

		r.Get("/categories", app.listCategoriesHandler)
		r.Get("/brands", app.listBrandsHandler)

		r.Route("/products", func(r chi.Router) {
			r.Get("/newest", app.newestProductsHandler)
			r.Get("/bestsellers", app.bestsellersHandler)
			r.Get("/sale", app.saleProductsHandler)
			r.Get("/minifilter", app.productsByBrandHandler)
			r.Get("/filter", app.filterProductsHandler)
			r.Get("/search", app.searchProductsHandler)

			r.Route("/{productID}", func(r chi.Router) {
				r.Get("/", app.getProductHandler)
				r.Get("/similar", app.similarProductsHandler)
				r.With(app.RateLimiterMiddleware).Post("/click", app.recordClickHandler)
			})
		})

		r.Route("/admin", func(r chi.Router) {
			r.With(app.RateLimiterMiddleware).Post("/login", app.loginHandler)
			r.Post("/logout", app.logoutHandler)

			// everything else requires a valid admin session
			r.Group(func(r chi.Router) {
				r.Use(app.AdminCookieMiddleware)

				r.Get("/check-auth", app.checkAuthHandler)
				r.Post("/upload", app.uploadHandler)

				r.Route("/categories", func(r chi.Router) {
					r.Get("/", app.adminListCategoriesHandler)
					r.Post("/", app.createCategoryHandler)
					r.Put("/{categoryID}", app.updateCategoryHandler)
					r.Delete("/{categoryID}", app.deleteCategoryHandler)
				})

				r.Route("/brands", func(r chi.Router) {
					r.Get("/", app.adminListBrandsHandler)
					r.Post("/", app.createBrandHandler)
					r.Put("/{brandID}", app.updateBrandHandler)
					r.Delete("/{brandID}", app.deleteBrandHandler)
				})

				r.Route("/products", func(r chi.Router) {
					r.Get("/", app.adminListProductsHandler)
					r.Post("/", app.createProductHandler)
					r.Get("/{productID}", app.adminGetProductHandler)
					r.Put("/{productID}", app.updateProductHandler)
					r.Delete("/{productID}", app.deleteProductHandler)
				})
			})
		})
	})

	return r
}

func (app *application) run(mux http.Handler) error {
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
