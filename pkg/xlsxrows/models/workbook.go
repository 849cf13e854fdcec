package models

// Result is the outcome of one extraction: one SheetResult per selected
// sheet, in selection order.
type Result struct {
	Sheets []SheetResult `json:"sheets"`
}
