package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/ncabrera/purchasing_backend/internal/apperrors"
	portssvc "github.com/ncabrera/purchasing_backend/internal/core/ports/services"
	"github.com/ncabrera/purchasing_backend/internal/dto"
	"github.com/ncabrera/purchasing_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerPostingFailedMsg is deliberately generic: the remote ledger's error
// text is logged, never forwarded to API consumers.
const ledgerPostingFailedMsg = "The order was saved but the accounting entry could not be generated"

// orderHandler handles HTTP requests related to purchase orders.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerOrderRoutes registers routes related to purchase orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrderByID)
		orders.PUT("/:id", h.updateOrder)
		orders.DELETE("/:id", h.deleteOrder)
	}
}

// createOrder godoc
// @Summary Create a new purchase order
// @Description Creates a purchase order. An order number is assigned automatically. Creating directly into APPROVED status also posts the order to the accounting ledger; if that posting fails the order is still saved and a 502 is returned with the saved order in the response body.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 502 {object} ErrorResponse "Order saved but ledger posting failed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, creatorUserID)
	if err != nil {
		// A posting failure arrives together with the saved order.
		if order != nil && errors.Is(err, apperrors.ErrLedgerPosting) {
			logger.Error("Order saved but ledger posting failed",
				slog.String("order_id", order.OrderID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{
				"error": ledgerPostingFailedMsg,
				"order": dto.ToOrderResponse(order),
			})
			return
		}
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create order"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List purchase orders
// @Description Retrieves all purchase orders with article and supplier display data, newest first.
// @Tags orders
// @Produce  json
// @Success 200 {array} dto.OrderDetailsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	orders, err := h.orderService.ListOrders(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list orders", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list orders"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderDetailsResponses(orders))
}

// getOrderByID godoc
// @Summary Get a purchase order by ID
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID (UUID)"
// @Success 200 {object} dto.OrderDetailsResponse
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrderByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
			return
		}
		logger.Error("Failed to get order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve order"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderDetailsResponse(order))
}

// updateOrder godoc
// @Summary Update a purchase order
// @Description Updates order fields. Status changes must follow the lifecycle (PENDING to APPROVED/REJECTED, APPROVED to COMPLETED). Approving an order posts it to the accounting ledger; if that posting fails the update is kept and a 502 is returned with the updated order in the response body.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path string true "Order ID (UUID)"
// @Param   order body dto.UpdateOrderRequest true "Fields to update"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Invalid input or disallowed status transition"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 502 {object} ErrorResponse "Order updated but ledger posting failed"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [put]
func (h *orderHandler) updateOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	var req dto.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	order, err := h.orderService.UpdateOrder(c.Request.Context(), orderID, req, userID)
	if err != nil {
		if order != nil && errors.Is(err, apperrors.ErrLedgerPosting) {
			logger.Error("Order updated but ledger posting failed",
				slog.String("order_id", order.OrderID),
				slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{
				"error": ledgerPostingFailedMsg,
				"order": dto.ToOrderResponse(order),
			})
			return
		}
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update order", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update order"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// deleteOrder godoc
// @Summary Delete a purchase order
// @Description Removes a purchase order. Ledger entries already posted for it are not reversed.
// @Tags orders
// @Produce  json
// @Param   id path string true "Order ID (UUID)"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Order not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID := c.Param("id")

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Order not found"})
			return
		}
		logger.Error("Failed to delete order", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete order"})
		return
	}

	c.Status(http.StatusNoContent)
}
