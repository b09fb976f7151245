package market

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"depositguard/internal/models"

	"golang.org/x/net/html/charset"
)

// registryDocument is the XML envelope returned by the registry. When the
// registry has nothing to return it answers with a bare <RESULT> root, so the
// code and message are also read from the top level.
type registryDocument struct {
	XMLName    xml.Name
	TotalCount string          `xml:"list_total_count"`
	Result     *registryResult `xml:"RESULT"`
	Code       string          `xml:"CODE"`
	Message    string          `xml:"MESSAGE"`
	Rows       []registryRow   `xml:"row"`
}

type registryResult struct {
	Code    string `xml:"CODE"`
	Message string `xml:"MESSAGE"`
}

func (d *registryDocument) result() (code, message string) {
	if d.Result != nil {
		return strings.TrimSpace(d.Result.Code), strings.TrimSpace(d.Result.Message)
	}
	return strings.TrimSpace(d.Code), strings.TrimSpace(d.Message)
}

func decodeDocument(r io.Reader) (*registryDocument, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var doc registryDocument
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding registry document: %w", err)
	}
	return &doc, nil
}

type registryRow struct {
	ReceiptYear      string `xml:"RCPT_YR"`
	DistrictCode     string `xml:"CGG_CD"`
	DistrictName     string `xml:"CGG_NM"`
	LegalDongCode    string `xml:"STDG_CD"`
	Neighborhood     string `xml:"STDG_NM"`
	LotType          string `xml:"LOTNO_SE_NM"`
	MainLotNo        string `xml:"MNO"`
	SubLotNo         string `xml:"SNO"`
	BuildingName     string `xml:"BLDG_NM"`
	ContractDate     string `xml:"CTRT_DAY"`
	Amount           string `xml:"THING_AMT"`
	FloorArea        string `xml:"ARCH_AREA"`
	LandArea         string `xml:"LAND_AREA"`
	Floor            string `xml:"FLR"`
	RightCategory    string `xml:"RGHT_SE"`
	CancellationDate string `xml:"RTRCN_DAY"`
	ConstructionYear string `xml:"ARCH_YR"`
	BuildingUse      string `xml:"BLDG_USG"`
	ReportCategory   string `xml:"DCLR_SE"`
}

// normalize converts a raw row into a Transaction. The amount is mandatory
// and must be a non-negative integer; areas and floor may be blank.
func (r registryRow) normalize() (models.Transaction, error) {
	amount, err := parseAmount(r.Amount)
	if err != nil {
		return models.Transaction{}, err
	}
	floorArea, err := parseOptionalFloat(r.FloorArea)
	if err != nil {
		return models.Transaction{}, err
	}
	landArea, err := parseOptionalFloat(r.LandArea)
	if err != nil {
		return models.Transaction{}, err
	}
	floor, err := parseOptionalFloor(r.Floor)
	if err != nil {
		return models.Transaction{}, err
	}

	return models.Transaction{
		ReceiptYear:      strings.TrimSpace(r.ReceiptYear),
		DistrictCode:     strings.TrimSpace(r.DistrictCode),
		DistrictName:     strings.TrimSpace(r.DistrictName),
		LegalDongCode:    strings.TrimSpace(r.LegalDongCode),
		Neighborhood:     strings.TrimSpace(r.Neighborhood),
		LotType:          strings.TrimSpace(r.LotType),
		MainLotNo:        strings.TrimSpace(r.MainLotNo),
		SubLotNo:         strings.TrimSpace(r.SubLotNo),
		BuildingName:     strings.TrimSpace(r.BuildingName),
		ContractDate:     strings.TrimSpace(r.ContractDate),
		Amount:           amount,
		FloorArea:        floorArea,
		LandArea:         landArea,
		Floor:            floor,
		RightCategory:    strings.TrimSpace(r.RightCategory),
		CancellationDate: strings.TrimSpace(r.CancellationDate),
		ConstructionYear: strings.TrimSpace(r.ConstructionYear),
		BuildingUse:      strings.TrimSpace(r.BuildingUse),
		ReportCategory:   strings.TrimSpace(r.ReportCategory),
	}, nil
}

func parseAmount(s string) (int64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("%w: missing amount", errMalformedRecord)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q", errMalformedRecord, s)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: negative amount %d", errMalformedRecord, n)
	}
	if n > MaxDeposit {
		return 0, fmt.Errorf("%w: amount %d out of range", errMalformedRecord, n)
	}
	return n, nil
}

func parseOptionalFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 {
		return 0, fmt.Errorf("%w: area %q", errMalformedRecord, s)
	}
	return f, nil
}

// parseOptionalFloor accepts "3" and "3.0"; basements are negative.
func parseOptionalFloor(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: floor %q", errMalformedRecord, s)
	}
	return int(f), nil
}
