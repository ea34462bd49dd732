package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sembarang8788-lab/cafe-backend/internal/api"
	"github.com/sembarang8788-lab/cafe-backend/internal/api/handler"
	"github.com/sembarang8788-lab/cafe-backend/internal/api/router"
	"github.com/sembarang8788-lab/cafe-backend/internal/appcontext"
	"github.com/sembarang8788-lab/cafe-backend/internal/config"
	"github.com/sembarang8788-lab/cafe-backend/internal/constants"
)

// @title cafe-backend
// @version 1.0
// @description 咖啡廳點餐系統後端
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3001
// @BasePath  /api

func main() {
	app, err := appcontext.NewApplicationContext(config.GetConfig())
	if err != nil {
		log.Fatal(err)
		return
	}

	// 初始化 handler
	productHandler := handler.NewProductHandler(app.ProductService)
	orderHandler := handler.NewOrderHandler(app.OrderService)
	userHandler := handler.NewUserHandler(app.UserService)
	healthHandler := handler.NewHealthHandler(app.Store)

	server := api.NewServer(productHandler, orderHandler, userHandler, healthHandler)

	// 設置路由
	r := router.SetupRouter(server, app.Logger)

	port := app.Cf.ServerPort
	if port == "" {
		port = constants.DefaultServerPort
	}

	// 設定服務器參數
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	// 設置訊號監聽
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutDonwCompleted := make(chan struct{}, 1)
	// 監聽退出訊號
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}

		if err := app.Shutdown(shutdownCtx); err != nil {
			log.Printf("Application shutdown error: %v", err)
		}

		shutDonwCompleted <- struct{}{}
	}()

	// 啟動服務
	log.Printf("Server starting on %s", srv.Addr)
	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatal(err)
	}
	<-shutDonwCompleted
	log.Printf("closed completed")
}
