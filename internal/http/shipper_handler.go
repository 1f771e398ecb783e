package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/northwind-service/internal/model"
	"github.com/northwind-service/internal/service"
)

func (h *Handler) CreateShipper(c *gin.Context) {
	var req service.ShipperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipper, err := h.shippers.CreateShipper(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, shipper)
}

func (h *Handler) GetShipper(c *gin.Context) {
	shipper, err := h.shippers.GetShipper(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shipper)
}

func (h *Handler) GetShippers(c *gin.Context) {
	shippers, err := h.shippers.GetShippers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if shippers == nil {
		shippers = []model.Shipper{}
	}
	c.JSON(http.StatusOK, shippers)
}

func (h *Handler) UpdateShipper(c *gin.Context) {
	var req service.ShipperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	shipper, err := h.shippers.UpdateShipper(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, shipper)
}

func (h *Handler) DeleteShipper(c *gin.Context) {
	if err := h.shippers.DeleteShipper(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
