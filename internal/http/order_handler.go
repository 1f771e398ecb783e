package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/northwind-service/internal/model"
	"github.com/northwind-service/internal/service"
)

type orderResponse struct {
	*model.Order
	Total float64 `json:"total"`
}

func toOrderResponse(o *model.Order) orderResponse {
	return orderResponse{Order: o, Total: o.Total()}
}

func (h *Handler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toOrderResponse(order))
}

func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.orders.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *Handler) GetOrders(c *gin.Context) {
	orders, err := h.orders.GetOrders(c.Request.Context(), c.Query("customer_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderTotal reports the order total aggregated in the database, so the
// figure reflects the stored line items rather than the payload the client
// last saw.
func (h *Handler) GetOrderTotal(c *gin.Context) {
	id := c.Param("id")
	total, err := h.orders.OrderTotal(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"order_id": id, "total": total})
}

func (h *Handler) UpdateOrder(c *gin.Context) {
	var req service.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.UpdateOrder(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.orders.UpdateOrderStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": req.Status})
}

func (h *Handler) ShipOrder(c *gin.Context) {
	var req struct {
		ShipperID string `json:"shipper_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.ShipOrder(c.Request.Context(), c.Param("id"), req.ShipperID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toOrderResponse(order))
}

func (h *Handler) CancelOrder(c *gin.Context) {
	if err := h.orders.CancelOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": model.StatusCancelled})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.orders.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) GetCustomerOrders(c *gin.Context) {
	customerID := c.Param("id")

	if _, err := h.customers.GetCustomer(c.Request.Context(), customerID); err != nil {
		respondError(c, err)
		return
	}

	orders, err := h.orders.GetOrders(c.Request.Context(), customerID)
	if err != nil {
		respondError(c, err)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}
	c.JSON(http.StatusOK, orders)
}

func (h *Handler) SalesByCategory(c *gin.Context) {
	sales, err := h.orders.SalesByCategory(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if sales == nil {
		sales = []model.CategorySales{}
	}
	c.JSON(http.StatusOK, sales)
}

func (h *Handler) OrderStats(c *gin.Context) {
	stats, err := h.orders.OrderStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if stats == nil {
		stats = []model.StatusCount{}
	}
	c.JSON(http.StatusOK, stats)
}
