package domain

// Cached read views that ledger mutations make stale.
const (
	ViewDonations    = "donations"
	ViewExpenses     = "expenses"
	ViewCashLedger   = "cash_ledger"
	ViewBankAccounts = "bank_accounts"
	ViewInventory    = "inventory"
	ViewDashboard    = "dashboard"
)

// CashLedgerView is the cash view of a single volunteer.
func CashLedgerView(volunteerID string) string {
	return ViewCashLedger + ":" + volunteerID
}

// LedgerMutationViews lists the views to drop after an entry changes state.
// contextID, when set, names the volunteer whose own cash view is also dropped.
func LedgerMutationViews(contextID *string) []string {
	views := []string{ViewDonations, ViewExpenses, ViewCashLedger, ViewBankAccounts, ViewInventory, ViewDashboard}
	if contextID != nil && *contextID != "" {
		views = append(views, CashLedgerView(*contextID))
	}
	return views
}
