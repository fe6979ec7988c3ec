package adminapi

// Init registers every admin API route on the web server.
func Init() {
	registerStateRoutes()
	registerDashboardRoutes()
	registerOrderRoutes()
	registerMenuRoutes()
	registerWalletRoutes()
	registerReceiptRoutes()
	registerInventoryRoutes()
	registerFeedbackRoutes()
	registerNotificationRoutes()
}
