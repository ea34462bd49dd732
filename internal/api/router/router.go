package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	_ "github.com/sembarang8788-lab/cafe-backend/docs"
	"github.com/sembarang8788-lab/cafe-backend/internal/api"
	m "github.com/sembarang8788-lab/cafe-backend/internal/api/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

func SetupRouter(server *api.Server, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	// 配置 CORS, 前端為獨立站台
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Requested-With"},
	}))
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.LoggerMiddleware(logger))
	r.Use(m.RecoverMiddleware)

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	// 健康檢查與靜態路由
	r.Get("/", server.HealthHandler.Live)
	r.Get("/health", server.HealthHandler.Health)
	r.Get("/robots.txt", server.HealthHandler.Robots)
	r.Get("/favicon.ico", server.HealthHandler.Favicon)

	// API 路由
	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", server.ProductHandler.List)
			r.Post("/", server.ProductHandler.Create)
			r.Get("/{id}", server.ProductHandler.Get)
			r.Put("/{id}", server.ProductHandler.Update)
			r.Patch("/{id}/stock", server.ProductHandler.PatchStock)
			r.Delete("/{id}", server.ProductHandler.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", server.OrderHandler.List)
			r.Post("/", server.OrderHandler.Create)
			// report要排在/{id}之前註冊, chi以較長的pattern優先但保持明確
			r.Get("/report/daily", server.OrderHandler.DailyReport)
			r.Get("/{id}", server.OrderHandler.Get)
			r.Delete("/{id}", server.OrderHandler.Delete)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", server.UserHandler.List)
			r.Post("/register", server.UserHandler.Register)
			r.Post("/login", server.UserHandler.Login)
			r.Get("/{id}", server.UserHandler.Get)
			r.Put("/{id}", server.UserHandler.Update)
			r.Delete("/{id}", server.UserHandler.Delete)
		})
	})

	// 404 fallback
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprintf(w, `{"success":false,"message":"Route not found"}`)
	})

	// 在設置完所有路由後打印路由樹
	fmt.Println(chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		fmt.Printf("%s %s\n", method, route)
		return nil
	}))
	return r
}
