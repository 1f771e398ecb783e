package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/northwind-service/internal/model"
	"github.com/northwind-service/internal/service"
)

func (h *Handler) CreateEmployee(c *gin.Context) {
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employees.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *Handler) GetEmployee(c *gin.Context) {
	employee, err := h.employees.GetEmployee(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *Handler) GetEmployees(c *gin.Context) {
	employees, err := h.employees.GetEmployees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	if employees == nil {
		employees = []model.Employee{}
	}
	c.JSON(http.StatusOK, employees)
}

func (h *Handler) UpdateEmployee(c *gin.Context) {
	var req service.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	employee, err := h.employees.UpdateEmployee(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *Handler) DeleteEmployee(c *gin.Context) {
	if err := h.employees.DeleteEmployee(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
