package models

// FundSearchResult is one hit from a mutual fund name search.
type FundSearchResult struct {
	SchemeCode string `json:"scheme_code"`
	SchemeName string `json:"scheme_name"`
}
