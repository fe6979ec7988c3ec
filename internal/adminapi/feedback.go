package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/views"
	"github.com/talkincode/restodesk/internal/webserver"
)

type feedbackPayload struct {
	CustomerName  string `json:"customerName" validate:"required,max=200"`
	CustomerEmail string `json:"customerEmail" validate:"omitempty,email"`
	Rating        int    `json:"rating" validate:"min=1,max=5"`
	Comment       string `json:"comment" validate:"omitempty,max=2000"`
	OrderID       string `json:"orderId"`
}

// registerFeedbackRoutes registers customer feedback routes
func registerFeedbackRoutes() {
	webserver.ApiGET("/feedback", listFeedback)
	webserver.ApiPOST("/feedback", createFeedback)
}

func listFeedback(c echo.Context) error {
	feedback := GetAppContext(c).Store().State().Feedback
	return ok(c, map[string]interface{}{
		"averageRating": views.AverageRating(feedback),
		"feedback":      feedback,
	})
}

func createFeedback(c echo.Context) error {
	var payload feedbackPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse feedback parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}
	fb, err := GetAppContext(c).SubmitFeedback(domain.Feedback{
		CustomerName:  payload.CustomerName,
		CustomerEmail: payload.CustomerEmail,
		Rating:        payload.Rating,
		Comment:       payload.Comment,
		OrderID:       payload.OrderID,
	})
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_FEEDBACK", err.Error(), nil)
	}
	return created(c, fb)
}
