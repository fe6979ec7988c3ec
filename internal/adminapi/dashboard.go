package adminapi

import (
	"github.com/labstack/echo/v4"
	"github.com/talkincode/restodesk/internal/views"
	"github.com/talkincode/restodesk/internal/webserver"
)

// registerDashboardRoutes registers the landing page summary route
func registerDashboardRoutes() {
	webserver.ApiGET("/dashboard", getDashboard)
}

func getDashboard(c echo.Context) error {
	appCtx := GetAppContext(c)
	return ok(c, views.Dashboard(appCtx.Store().State(), appCtx.Now()))
}
