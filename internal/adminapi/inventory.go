package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/store"
	"github.com/talkincode/restodesk/internal/views"
	"github.com/talkincode/restodesk/internal/webserver"
)

type inventoryUpdatePayload struct {
	CurrentStock *float64 `json:"currentStock" validate:"omitempty,gte=0"`
	MinStock     *float64 `json:"minStock" validate:"omitempty,gte=0"`
	CostPerUnit  *float64 `json:"costPerUnit" validate:"omitempty,gte=0"`
	Supplier     *string  `json:"supplier" validate:"omitempty,max=200"`
	Restocked    bool     `json:"restocked"`
}

// registerInventoryRoutes registers stock routes
func registerInventoryRoutes() {
	webserver.ApiGET("/inventory", listInventory)
	webserver.ApiPUT("/inventory/:id", updateInventoryItem)
}

func listInventory(c echo.Context) error {
	items := GetAppContext(c).Store().State().Inventory
	return ok(c, map[string]interface{}{
		"items":    items,
		"lowStock": views.LowStock(items),
	})
}

func updateInventoryItem(c echo.Context) error {
	var payload inventoryUpdatePayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse inventory parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}

	appCtx := GetAppContext(c)
	item, found := appCtx.Store().State().FindInventoryItem(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "INVENTORY_ITEM_NOT_FOUND", "Inventory item not found", nil)
	}
	if payload.CurrentStock != nil {
		item.CurrentStock = *payload.CurrentStock
	}
	if payload.MinStock != nil {
		item.MinStock = *payload.MinStock
	}
	if payload.CostPerUnit != nil {
		item.CostPerUnit = *payload.CostPerUnit
	}
	if payload.Supplier != nil {
		item.Supplier = *payload.Supplier
	}
	if payload.Restocked {
		item.LastRestocked = domain.FromTime(appCtx.Now())
	}
	appCtx.Store().Dispatch(store.UpdateInventory{Item: item})
	return ok(c, item)
}
