package pdip

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	enc "github.com/jpmercado/infratrack/internal/encoding"
	"github.com/jpmercado/infratrack/internal/project"
)

// Parser reads investment-plan CSV exports and produces project proposals.
// It auto-detects which plan format (AIP, LDIP) is being used by matching
// column headers against known profiles; real uploads carry several preamble
// rows (form number, LGU name, fiscal year) before the header.
type Parser struct{}

func New() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]project.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	profile, colMap, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching plan format found: expected columns for AIP or LDIP")
	}

	return parseRows(profile, colMap, rows[headerIdx+1:], headerIdx+1)
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header that matches a known profile.
// Returns the matched profile, column index map, and header row index.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			name := strings.TrimSpace(cell)
			if name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

// matchesProfile checks if all required columns of a profile are present.
func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts proposals from data rows using the matched profile.
// headerRowNum is the 0-based index of the header in the original file (for error messages).
func parseRows(p *Profile, cols colIndex, rows [][]string, headerRowNum int) ([]project.CreateParams, error) {
	titleIdx := cols[p.TitleCol]
	amountIdx := cols[p.AmountCol]
	officeIdx := cols[p.OfficeCol]

	var proposals []project.CreateParams

	for i, row := range rows {
		rowNum := headerRowNum + i + 2 // 1-based, skipping header

		title := cellValue(row, titleIdx)
		if title == "" || isSummaryRow(title) {
			continue
		}

		amountCell := cellValue(row, amountIdx)
		if amountCell == "" {
			continue
		}

		centavos, err := parsePesoAmount(amountCell)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad amount %q: %w", rowNum, amountCell, err)
		}

		if centavos <= 0 {
			continue
		}

		proposals = append(proposals, project.CreateParams{
			Title:         title,
			Description:   optionalCell(row, cols, p.DescCol),
			Category:      optionalCell(row, cols, p.SectorCol),
			Location:      optionalCell(row, cols, p.LocCol),
			Office:        cellValue(row, officeIdx),
			EstimatedCost: centavos,
		})
	}

	return proposals, nil
}

// isSummaryRow recognizes the total rows every plan export appends after
// the last proposal.
func isSummaryRow(title string) bool {
	t := strings.ToUpper(title)

	return t == "TOTAL" || t == "GRAND TOTAL" || t == "SUB-TOTAL" || t == "SUBTOTAL"
}

// optionalCell reads a column that a profile may not define.
func optionalCell(row []string, cols colIndex, name string) string {
	if name == "" {
		return ""
	}

	idx, ok := cols[name]
	if !ok {
		return ""
	}

	return cellValue(row, idx)
}

// cellValue safely gets a trimmed cell value from a row.
func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}
