package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/talkincode/restodesk/internal/app"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/views"
	"github.com/talkincode/restodesk/internal/webserver"
)

type orderItemPayload struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1"`
	Notes      string `json:"notes" validate:"omitempty,max=500"`
}

type orderPayload struct {
	CustomerName    string             `json:"customerName" validate:"required,min=1,max=200"`
	CustomerPhone   string             `json:"customerPhone" validate:"omitempty,max=50"`
	CustomerEmail   string             `json:"customerEmail" validate:"omitempty,email"`
	Items           []orderItemPayload `json:"items" validate:"required,min=1,dive"`
	SpecialRequests string             `json:"specialRequests" validate:"omitempty,max=1000"`
	TableNumber     string             `json:"tableNumber" validate:"omitempty,max=20"`
	PaymentMethod   string             `json:"paymentMethod" validate:"required,max=50"`
	IsDelivery      bool               `json:"isDelivery"`
	DeliveryAddress string             `json:"deliveryAddress" validate:"required_if=IsDelivery true,max=500"`
}

type orderStatusPayload struct {
	Status domain.OrderStatus `json:"status" validate:"required,oneof=new preparing ready served cancelled"`
}

// registerOrderRoutes registers order board routes
func registerOrderRoutes() {
	webserver.ApiGET("/orders", listOrders)
	webserver.ApiGET("/orders/:id", getOrder)
	webserver.ApiPOST("/orders", createOrder)
	webserver.ApiPUT("/orders/:id/status", updateOrderStatus)
}

func listOrders(c echo.Context) error {
	s := GetAppContext(c).Store().State()
	return paged(c, views.FilterOrders(s.Orders, queryParam(c, "status"), queryParam(c, "q")))
}

func getOrder(c echo.Context) error {
	order, found := GetAppContext(c).Store().State().FindOrder(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found", nil)
	}
	return ok(c, order)
}

// createOrder prices each line from the current menu; special prices apply.
func createOrder(c echo.Context) error {
	var payload orderPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse order parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	appCtx := GetAppContext(c)
	s := appCtx.Store().State()
	items := make([]domain.OrderItem, 0, len(payload.Items))
	for _, it := range payload.Items {
		menuItem, found := s.FindMenuItem(it.MenuItemID)
		if !found {
			return fail(c, http.StatusBadRequest, "MENU_ITEM_NOT_FOUND", "Menu item not found", it.MenuItemID)
		}
		if !menuItem.IsAvailable {
			return fail(c, http.StatusConflict, "MENU_ITEM_UNAVAILABLE", "Menu item is not available", it.MenuItemID)
		}
		items = append(items, domain.OrderItem{
			MenuItemID: menuItem.ID,
			MenuItem:   menuItem,
			Quantity:   it.Quantity,
			Notes:      it.Notes,
			Price:      menuItem.EffectivePrice(),
		})
	}

	order, err := appCtx.PlaceOrder(domain.Order{
		CustomerName:    payload.CustomerName,
		CustomerPhone:   payload.CustomerPhone,
		CustomerEmail:   payload.CustomerEmail,
		Items:           items,
		SpecialRequests: payload.SpecialRequests,
		TableNumber:     payload.TableNumber,
		PaymentMethod:   payload.PaymentMethod,
		IsDelivery:      payload.IsDelivery,
		DeliveryAddress: payload.DeliveryAddress,
	})
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_ORDER", "Order is invalid", err.Error())
	}
	return created(c, order)
}

func updateOrderStatus(c echo.Context) error {
	var payload orderStatusPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse status", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	order, err := GetAppContext(c).SetOrderStatus(c.Param("id"), payload.Status)
	switch {
	case errors.Is(err, app.ErrOrderNotFound):
		return fail(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found", nil)
	case errors.Is(err, domain.ErrInvalidTransition):
		return fail(c, http.StatusConflict, "INVALID_TRANSITION", "Order status transition not allowed", err.Error())
	case err != nil:
		return fail(c, http.StatusBadRequest, "INVALID_STATUS", "Order status is invalid", err.Error())
	}
	return ok(c, order)
}
