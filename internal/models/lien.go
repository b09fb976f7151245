package models

import "time"

// LienProfile is the encumbrance picture of a property at lookup time.
// ArrearsAmount is in won.
type LienProfile struct {
	ArrearsAmount      int64  `json:"arrears_amount"`
	SeniorLienRatioPct int    `json:"senior_lien_ratio_pct"`
	ArrearsCategory    string `json:"arrears_category,omitempty"`
}

// LienRecord is the stored registry row behind a LienProfile.
type LienRecord struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	District           string    `gorm:"not null;uniqueIndex:idx_lien_district_address" json:"district"`
	Address            string    `gorm:"not null;uniqueIndex:idx_lien_district_address" json:"address"` // normalized
	ArrearsAmount      int64     `gorm:"not null;default:0" json:"arrears_amount"`
	SeniorLienRatioPct int       `gorm:"not null;default:0" json:"senior_lien_ratio_pct"`
	ArrearsCategory    string    `json:"arrears_category,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Profile converts the stored row into the value the scorer consumes.
func (r LienRecord) Profile() LienProfile {
	p := LienProfile{
		ArrearsAmount:      r.ArrearsAmount,
		SeniorLienRatioPct: r.SeniorLienRatioPct,
	}
	if r.ArrearsAmount > 0 {
		p.ArrearsCategory = r.ArrearsCategory
	}
	return p
}

// IncidentRecord is a known lease-fraud case near an address.
type IncidentRecord struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	District     string    `gorm:"not null;index:idx_incident_area" json:"district"`
	Neighborhood string    `gorm:"index:idx_incident_area" json:"neighborhood"`
	Address      string    `gorm:"not null;index" json:"address"` // normalized
	Description  string    `json:"description"`
	ReportedAt   time.Time `json:"reported_at"`
	CreatedAt    time.Time `json:"created_at"`
}
