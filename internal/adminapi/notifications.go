package adminapi

import (
	"github.com/labstack/echo/v4"
	"github.com/talkincode/restodesk/internal/store"
	"github.com/talkincode/restodesk/internal/webserver"
)

// registerNotificationRoutes registers notification queue routes
func registerNotificationRoutes() {
	webserver.ApiGET("/notifications", listNotifications)
	webserver.ApiDELETE("/notifications", clearNotifications)
}

func listNotifications(c echo.Context) error {
	return ok(c, GetAppContext(c).Store().State().Notifications)
}

func clearNotifications(c echo.Context) error {
	s := GetAppContext(c).Store().Dispatch(store.ClearNotifications{})
	return ok(c, s.Notifications)
}
