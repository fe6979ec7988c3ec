package adminapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/talkincode/restodesk/internal/domain"
	"github.com/talkincode/restodesk/internal/views"
	"github.com/talkincode/restodesk/internal/webserver"
)

type fundsPayload struct {
	Amount float64 `json:"amount" validate:"gt=0"`
	Method string  `json:"method" validate:"required,max=50"`
}

// registerWalletRoutes registers wallet ledger and funds routes
func registerWalletRoutes() {
	webserver.ApiGET("/wallet", getWallet)
	webserver.ApiPOST("/wallet/deposit", depositFunds)
	webserver.ApiPOST("/wallet/withdraw", withdrawFunds)
}

func getWallet(c echo.Context) error {
	r, err := views.ParseDateRange(queryParam(c, "range"), views.Last7Days)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_RANGE", err.Error(), nil)
	}
	appCtx := GetAppContext(c)
	s := appCtx.Store().State()
	txs := views.FilterTransactions(s.Transactions, queryParam(c, "type"), r, appCtx.Now())
	return ok(c, map[string]interface{}{
		"balance":      s.WalletBalance,
		"range":        r,
		"totals":       views.TransactionTotals(txs),
		"transactions": txs,
	})
}

func bindFunds(c echo.Context, payload *fundsPayload) error {
	if err := c.Bind(payload); err != nil {
		return err
	}
	return c.Validate(payload)
}

func depositFunds(c echo.Context) error {
	var payload fundsPayload
	if err := bindFunds(c, &payload); err != nil {
		return handleValidationError(c, err)
	}
	tx, err := GetAppContext(c).Deposit(payload.Amount, payload.Method)
	if err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_AMOUNT", err.Error(), nil)
	}
	return created(c, tx)
}

func withdrawFunds(c echo.Context) error {
	var payload fundsPayload
	if err := bindFunds(c, &payload); err != nil {
		return handleValidationError(c, err)
	}
	tx, err := GetAppContext(c).Withdraw(payload.Amount, payload.Method)
	switch {
	case errors.Is(err, domain.ErrInsufficientFunds):
		return fail(c, http.StatusConflict, "INSUFFICIENT_FUNDS", "Insufficient funds", err.Error())
	case err != nil:
		return fail(c, http.StatusBadRequest, "INVALID_AMOUNT", err.Error(), nil)
	}
	return created(c, tx)
}
