package models

import "strings"

// Transaction is one normalized record from the market transaction registry.
// Amount is in 10,000-won units, as published by the registry.
type Transaction struct {
	ReceiptYear      string  `json:"receipt_year,omitempty"`
	DistrictCode     string  `json:"district_code"`
	DistrictName     string  `json:"district_name"`
	LegalDongCode    string  `json:"legal_dong_code,omitempty"`
	Neighborhood     string  `json:"neighborhood"`
	LotType          string  `json:"lot_type,omitempty"`
	MainLotNo        string  `json:"main_lot_no,omitempty"`
	SubLotNo         string  `json:"sub_lot_no,omitempty"`
	BuildingName     string  `json:"building_name"`
	ContractDate     string  `json:"contract_date"` // YYYYMMDD
	Amount           int64   `json:"amount"`
	FloorArea        float64 `json:"floor_area"` // ㎡
	LandArea         float64 `json:"land_area"`  // ㎡
	Floor            int     `json:"floor"`
	RightCategory    string  `json:"right_category,omitempty"`
	CancellationDate string  `json:"cancellation_date,omitempty"`
	ConstructionYear string  `json:"construction_year,omitempty"`
	BuildingUse      string  `json:"building_use"`
	ReportCategory   string  `json:"report_category,omitempty"`
}

// Cancelled reports whether the contract was voided after it was reported.
func (t Transaction) Cancelled() bool {
	return strings.TrimSpace(t.CancellationDate) != ""
}

// InYear reports whether the contract date falls in the given year.
func (t Transaction) InYear(year string) bool {
	return year != "" && strings.HasPrefix(strings.TrimSpace(t.ContractDate), year)
}
