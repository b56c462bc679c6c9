package pdip_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/jpmercado/infratrack/internal/importer/pdip"
)

func TestParser_LDIP(t *testing.T) {
	csv := `Local Development Investment Program (LDIP),,,,,
LGU:,Municipality of San Isidro,,,,
CY 2026-2028,,,,,

Project Title,Description,Sector,Location,Implementing Office,Estimated Cost
Farm-to-Market Road Phase 2,Concreting of 1.2km road,infrastructure,Barangay Malaya,Municipal Engineering Office,"5,500,000.00"
Rural Health Unit Expansion,Two new consultation rooms,health,Poblacion,Municipal Health Office,"2,350,000.50"
TOTAL,,,,,"7,850,000.50"
`

	p := pdip.New()
	proposals, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, proposals, 2)

	assert.Equal(t, "Farm-to-Market Road Phase 2", proposals[0].Title)
	assert.Equal(t, "Concreting of 1.2km road", proposals[0].Description)
	assert.Equal(t, "infrastructure", proposals[0].Category)
	assert.Equal(t, "Barangay Malaya", proposals[0].Location)
	assert.Equal(t, "Municipal Engineering Office", proposals[0].Office)
	assert.Equal(t, int64(550000000), proposals[0].EstimatedCost)

	assert.Equal(t, "Rural Health Unit Expansion", proposals[1].Title)
	assert.Equal(t, int64(235000050), proposals[1].EstimatedCost)
}

func TestParser_AIP(t *testing.T) {
	csv := `Annual Investment Program (AIP),,,
CY 2026,,,

Program/Project/Activity Description,Sector,Implementing Office/Department,Total
Drainage Improvement along Rizal St.,infrastructure,City Engineering Office,"PHP 1,200,000.00"
Day Care Center Repair,social,CSWDO,"350,000.00"
GRAND TOTAL,,,"1,550,000.00"
`

	p := pdip.New()
	proposals, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, proposals, 2)

	assert.Equal(t, "Drainage Improvement along Rizal St.", proposals[0].Title)
	assert.Equal(t, "City Engineering Office", proposals[0].Office)
	assert.Equal(t, int64(120000000), proposals[0].EstimatedCost)
	assert.Empty(t, proposals[0].Description)

	assert.Equal(t, "CSWDO", proposals[1].Office)
	assert.Equal(t, int64(35000000), proposals[1].EstimatedCost)
}

func TestParser_Windows1252Encoding(t *testing.T) {
	utf8CSV := "Project Title,Implementing Office,Estimated Cost\n" +
		"Sto. Niño Plaza Lighting,Municipal Engineering Office,\"150,000.00\"\n"

	encoder := charmap.Windows1252.NewEncoder()
	raw, err := encoder.Bytes([]byte(utf8CSV))
	require.NoError(t, err)

	p := pdip.New()
	proposals, err := p.Parse(bytes.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, proposals, 1)

	assert.Equal(t, "Sto. Niño Plaza Lighting", proposals[0].Title)
}

func TestParser_DifferentColumnOrder(t *testing.T) {
	csv := `Random,Preamble
Estimated Cost,Project Title,Implementing Office,Ignored
"10,000.00",REORDERED,MEO,XXX
`

	p := pdip.New()
	proposals, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, proposals, 1)

	assert.Equal(t, "REORDERED", proposals[0].Title)
	assert.Equal(t, int64(1000000), proposals[0].EstimatedCost)
}

func TestParser_EmptyFile(t *testing.T) {
	p := pdip.New()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no matching plan format")
}

func TestParser_HeaderOnly(t *testing.T) {
	csv := `Project Title,Implementing Office,Estimated Cost`

	p := pdip.New()
	proposals, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Empty(t, proposals)
}

func TestParser_BadAmount(t *testing.T) {
	csv := `Project Title,Implementing Office,Estimated Cost
Bridge Repair,MEO,not-a-number
`

	p := pdip.New()
	_, err := p.Parse(strings.NewReader(csv))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad amount")
}

func TestParser_SkipsBlankAndZeroRows(t *testing.T) {
	csv := `Project Title,Implementing Office,Estimated Cost
,MEO,"10,000.00"
Unfunded Placeholder,MEO,0.00
Bridge Repair,MEO,"10,000.00"
`

	p := pdip.New()
	proposals, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, proposals, 1)

	assert.Equal(t, "Bridge Repair", proposals[0].Title)
}
