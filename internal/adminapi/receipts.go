package adminapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/talkincode/restodesk/internal/app"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/views"
	"github.com/talkincode/restodesk/internal/webserver"
)

type receiptPayload struct {
	OrderID string `json:"orderId" validate:"required"`
}

// registerReceiptRoutes registers receipt listing, issue and export routes
func registerReceiptRoutes() {
	webserver.ApiGET("/receipts", listReceipts)
	webserver.ApiGET("/receipts/:id", getReceipt)
	webserver.ApiGET("/receipts/:id/export", exportReceipt)
	webserver.ApiPOST("/receipts", issueReceipt)
}

func listReceipts(c echo.Context) error {
	r, err := views.ParseDateRange(queryParam(c, "range"), views.Last30Days)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_RANGE", err.Error(), nil)
	}
	appCtx := GetAppContext(c)
	receipts := views.FilterReceipts(appCtx.Store().State().Receipts, queryParam(c, "q"), r, appCtx.Now())
	return ok(c, map[string]interface{}{
		"summary":  views.ReceiptSummary(receipts),
		"receipts": receipts,
	})
}

func getReceipt(c echo.Context) error {
	receipt, found := GetAppContext(c).Store().State().FindReceipt(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "RECEIPT_NOT_FOUND", "Receipt not found", nil)
	}
	return ok(c, receipt)
}

// exportReceipt serves the receipt as a standalone JSON document download.
func exportReceipt(c echo.Context) error {
	receipt, found := GetAppContext(c).Store().State().FindReceipt(c.Param("id"))
	if !found {
		return fail(c, http.StatusNotFound, "RECEIPT_NOT_FOUND", "Receipt not found", nil)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", ExportFilename(receipt)))
	return c.JSONPretty(http.StatusOK, receipt, "  ")
}

// ExportFilename names the downloaded document of a receipt.
func ExportFilename(r domain.Receipt) string {
	return fmt.Sprintf("receipt-%s.json", r.ReceiptNumber)
}

func issueReceipt(c echo.Context) error {
	var payload receiptPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse receipt parameters", nil)
	}
	if err := c.Validate(&payload); err != nil {
		return handleValidationError(c, err)
	}
	receipt, err := GetAppContext(c).IssueReceipt(payload.OrderID)
	if errors.Is(err, app.ErrOrderNotFound) {
		return fail(c, http.StatusNotFound, "ORDER_NOT_FOUND", "Order not found", nil)
	} else if err != nil {
		return fail(c, http.StatusInternalServerError, "RECEIPT_ERROR", "Failed to issue receipt", err.Error())
	}
	return created(c, receipt)
}
