package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/talkincode/restodesk/internal/store"
	"github.com/talkincode/restodesk/internal/webserver"
)

// registerStateRoutes registers snapshot and raw dispatch routes
func registerStateRoutes() {
	webserver.ApiGET("/state", getState)
	webserver.ApiPOST("/dispatch", dispatchAction)
}

func getState(c echo.Context) error {
	appCtx := GetAppContext(c)
	return ok(c, map[string]interface{}{
		"state":               appCtx.Store().State(),
		"persistenceDegraded": appCtx.PersistenceDegraded(),
	})
}

// dispatchAction applies a raw action envelope and returns the new state.
func dispatchAction(c echo.Context) error {
	var env store.Envelope
	if err := c.Bind(&env); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse action", nil)
	}
	action, err := store.DecodeAction(env)
	if errors.Is(err, store.ErrUnknownAction) {
		return fail(c, http.StatusBadRequest, "UNKNOWN_ACTION", "Unknown action type", env.Type)
	} else if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_PAYLOAD", "Action payload is invalid", err.Error())
	}
	return ok(c, GetAppContext(c).Store().Dispatch(action))
}
