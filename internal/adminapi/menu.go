package adminapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/store"
	"github.com/talkincode/restodesk/internal/views"
	"github.com/talkincode/restodesk/internal/webserver"
)

type menuItemPayload struct {
	Name            string   `json:"name" validate:"required,min=1,max=200"`
	Description     string   `json:"description" validate:"omitempty,max=1000"`
	Price           float64  `json:"price" validate:"gte=0"`
	Category        string   `json:"category" validate:"required,max=100"`
	Image           string   `json:"image" validate:"omitempty,url"`
	IsAvailable     *bool    `json:"isAvailable"`
	IsSpecial       bool     `json:"isSpecial"`
	SpecialPrice    *float64 `json:"specialPrice" validate:"omitempty,gte=0"`
	PreparationTime int      `json:"preparationTime" validate:"gte=0"`
	Ingredients     []string `json:"ingredients"`
	Allergens       []string `json:"allergens"`
}

type availabilityPayload struct {
	IsAvailable bool `json:"isAvailable"`
}

type categoryPayload struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Image       string `json:"image" validate:"omitempty,url"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    *bool  `json:"isActive"`
}

// registerMenuRoutes registers menu item and category routes
func registerMenuRoutes() {
	webserver.ApiGET("/menu/items", listMenuItems)
	webserver.ApiGET("/menu/items/:id", getMenuItem)
	webserver.ApiPOST("/menu/items", createMenuItem)
	webserver.ApiPUT("/menu/items/:id", updateMenuItem)
	webserver.ApiDELETE("/menu/items/:id", deleteMenuItem)
	webserver.ApiPUT("/menu/items/:id/availability", setMenuItemAvailability)
	webserver.ApiGET("/menu/categories", listCategories)
	webserver.ApiPOST("/menu/categories", createCategory)
}

func listMenuItems(c echo.Context) error {
	s := GetAppContext(c).Store().State()
	return ok(c, views.FilterMenuItems(s.MenuItems, queryParam(c, "q"), queryParam(c, "category")))
}

func getMenuItem(c echo.Context) error {
	item, found := GetAppContext(c).Store().State().FindMenuItem(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "MENU_ITEM_NOT_FOUND", "Menu item not found", nil)
	}
	return ok(c, item)
}

func (p menuItemPayload) apply(item domain.MenuItem) domain.MenuItem {
	item.Name = strings.TrimSpace(p.Name)
	item.Description = p.Description
	item.Price = p.Price
	item.Category = strings.TrimSpace(p.Category)
	item.Image = p.Image
	if p.IsAvailable != nil {
		item.IsAvailable = *p.IsAvailable
	}
	item.IsSpecial = p.IsSpecial
	item.SpecialPrice = p.SpecialPrice
	item.PreparationTime = p.PreparationTime
	item.Ingredients = orEmpty(p.Ingredients)
	item.Allergens = orEmpty(p.Allergens)
	return item
}

func createMenuItem(c echo.Context) error {
	var payload menuItemPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse menu item parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}
	appCtx := GetAppContext(c)
	now := domain.FromTime(appCtx.Now())
	item := payload.apply(domain.MenuItem{
		ID:          appCtx.NewID(),
		IsAvailable: true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err := domain.ValidateMenuItem(item); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_MENU_ITEM", err.Error(), nil)
	}
	appCtx.Store().Dispatch(store.AddMenuItem{Item: item})
	return created(c, item)
}

func updateMenuItem(c echo.Context) error {
	var payload menuItemPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse menu item parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}
	appCtx := GetAppContext(c)
	existing, found := appCtx.Store().State().FindMenuItem(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "MENU_ITEM_NOT_FOUND", "Menu item not found", nil)
	}
	item := payload.apply(existing)
	item.UpdatedAt = domain.FromTime(appCtx.Now())
	if err := domain.ValidateMenuItem(item); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_MENU_ITEM", err.Error(), nil)
	}
	appCtx.Store().Dispatch(store.UpdateMenuItem{Item: item})
	return ok(c, item)
}

func deleteMenuItem(c echo.Context) error {
	id := c.Param("id")
	appCtx := GetAppContext(c)
	if _, found := appCtx.Store().State().FindMenuItem(id); !found {
		return fail(c, http.StatusNotFound, "MENU_ITEM_NOT_FOUND", "Menu item not found", nil)
	}
	appCtx.Store().Dispatch(store.DeleteMenuItem{ID: id})
	return ok(c, map[string]interface{}{"id": id})
}

func setMenuItemAvailability(c echo.Context) error {
	var payload availabilityPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse availability", nil)
	}
	appCtx := GetAppContext(c)
	item, found := appCtx.Store().State().FindMenuItem(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "MENU_ITEM_NOT_FOUND", "Menu item not found", nil)
	}
	item.IsAvailable = payload.IsAvailable
	item.UpdatedAt = domain.FromTime(appCtx.Now())
	appCtx.Store().Dispatch(store.UpdateMenuItem{Item: item})
	return ok(c, item)
}

func listCategories(c echo.Context) error {
	return ok(c, GetAppContext(c).Store().State().Categories)
}

func createCategory(c echo.Context) error {
	var payload categoryPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse category parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}
	appCtx := GetAppContext(c)
	category := domain.Category{
		ID:          appCtx.NewID(),
		Name:        strings.TrimSpace(payload.Name),
		Description: payload.Description,
		Image:       payload.Image,
		SortOrder:   payload.SortOrder,
		IsActive:    payload.IsActive == nil || *payload.IsActive,
	}
	appCtx.Store().Dispatch(store.AddCategory{Category: category})
	return created(c, category)
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
