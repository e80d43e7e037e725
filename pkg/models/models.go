package models

import "encoding/json"

// FieldSalesURL is the only key carried from a search result (an input.json
// record such as {"name", "title", "sales_url"}) into a profile request.
const FieldSalesURL = "sales_url"

// ProfileRequest is one entry of the profiles request body (output.json).
//
// SalesURL holds the compact JSON value copied from the search result, so the
// value round-trips unchanged whatever its JSON type.
type ProfileRequest struct {
	SalesURL json.RawMessage `json:"sales_url"`
}

// URL returns the sales_url as a Go string. Non-string values are returned in
// their JSON form.
func (p ProfileRequest) URL() string {
	var s string
	if err := json.Unmarshal(p.SalesURL, &s); err != nil {
		return string(p.SalesURL)
	}
	return s
}
