package http

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/northwind-service/internal/service"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	orders     *service.OrderService
	products   *service.ProductService
	customers  *service.CustomerService
	employees  *service.EmployeeService
	categories *service.CategoryService
	shippers   *service.ShipperService

	db    *sql.DB
	redis *redis.Client
}

func NewHandler(
	orders *service.OrderService,
	products *service.ProductService,
	customers *service.CustomerService,
	employees *service.EmployeeService,
	categories *service.CategoryService,
	shippers *service.ShipperService,
	db *sql.DB,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		orders:     orders,
		products:   products,
		customers:  customers,
		employees:  employees,
		categories: categories,
		shippers:   shippers,
		db:         db,
		redis:      redisClient,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	r.POST("/orders", h.CreateOrder)
	r.GET("/orders", h.GetOrders)
	r.GET("/orders/:id", h.GetOrder)
	r.GET("/orders/:id/total", h.GetOrderTotal)
	r.PUT("/orders/:id", h.UpdateOrder)
	r.PUT("/orders/:id/status", h.UpdateOrderStatus)
	r.POST("/orders/:id/ship", h.ShipOrder)
	r.POST("/orders/:id/cancel", h.CancelOrder)
	r.DELETE("/orders/:id", h.DeleteOrder)

	r.POST("/products", h.CreateProduct)
	r.GET("/products", h.GetProducts)
	r.GET("/products/:id", h.GetProduct)
	r.PUT("/products/:id", h.UpdateProduct)
	r.DELETE("/products/:id", h.DeleteProduct)

	r.POST("/customers", h.CreateCustomer)
	r.GET("/customers", h.GetCustomers)
	r.GET("/customers/:id", h.GetCustomer)
	r.GET("/customers/:id/orders", h.GetCustomerOrders)
	r.PUT("/customers/:id", h.UpdateCustomer)
	r.DELETE("/customers/:id", h.DeleteCustomer)

	r.POST("/employees", h.CreateEmployee)
	r.GET("/employees", h.GetEmployees)
	r.GET("/employees/:id", h.GetEmployee)
	r.PUT("/employees/:id", h.UpdateEmployee)
	r.DELETE("/employees/:id", h.DeleteEmployee)

	r.POST("/categories", h.CreateCategory)
	r.GET("/categories", h.GetCategories)
	r.GET("/categories/:id", h.GetCategory)
	r.PUT("/categories/:id", h.UpdateCategory)
	r.DELETE("/categories/:id", h.DeleteCategory)

	r.POST("/shippers", h.CreateShipper)
	r.GET("/shippers", h.GetShippers)
	r.GET("/shippers/:id", h.GetShipper)
	r.PUT("/shippers/:id", h.UpdateShipper)
	r.DELETE("/shippers/:id", h.DeleteShipper)

	r.GET("/reports/sales-by-category", h.SalesByCategory)
	r.GET("/reports/order-stats", h.OrderStats)
}

// Health pings both backing stores so load balancers see real readiness.
func (h *Handler) Health(c *gin.Context) {
	ctx := c.Request.Context()

	if h.db != nil {
		if err := h.db.PingContext(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "postgres": err.Error()})
			return
		}
	}
	if h.redis != nil {
		if err := h.redis.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "redis": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps service errors onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, sql.ErrNoRows):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownReference),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
