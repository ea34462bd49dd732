package api

import "github.com/sembarang8788-lab/cafe-backend/internal/api/handler"

type Server struct {
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	UserHandler    *handler.UserHandler
	HealthHandler  *handler.HealthHandler
}

func NewServer(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	return &Server{
		ProductHandler: productHandler,
		OrderHandler:   orderHandler,
		UserHandler:    userHandler,
		HealthHandler:  healthHandler,
	}
}
