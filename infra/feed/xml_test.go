package feed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	body, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return body
}

func TestXMLParseDaily(t *testing.T) {
	payload, err := NewXML().Parse(fixture(t, "eurofxref-daily.xml"))
	require.NoError(t, err)
	require.Len(t, payload, 1)

	day := payload[0]
	assert.Equal(t, "2024-11-08", day.Date.Format("2006-01-02"))
	assert.Equal(t, "EUR", day.Base)
	assert.Len(t, day.Rates, 31, "30 quoted currencies plus synthesized EUR")

	assert.Equal(t, "1", day.Rates["EUR"].String())
	assert.Equal(t, "1.0772", day.Rates["USD"].String())
	assert.Equal(t, "0.83188", day.Rates["GBP"].String())
	assert.Equal(t, "164.18", day.Rates["JPY"].String())
}

func TestXMLParseNinetyDays(t *testing.T) {
	payload, err := NewXML().Parse(fixture(t, "eurofxref-hist-90d.xml"))
	require.NoError(t, err)
	require.Len(t, payload, 3)

	assert.Equal(t, "2024-11-08", payload[0].Date.Format("2006-01-02"), "most recent first")
	assert.Equal(t, "2024-11-06", payload[2].Date.Format("2006-01-02"))
	for _, day := range payload {
		assert.Equal(t, "1", day.Rates["EUR"].String())
	}
	assert.Equal(t, "1.0729", payload[1].Rates["USD"].String())
}

func TestXMLParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "not xml", body: "definitely not xml <<<"},
		{name: "empty envelope", body: `<Envelope><Cube></Cube></Envelope>`},
		{
			name: "bad date",
			body: `<Envelope><Cube><Cube time="2024-13-45"><Cube currency="USD" rate="1.1"/></Cube></Cube></Envelope>`,
		},
		{
			name: "bad rate",
			body: `<Envelope><Cube><Cube time="2024-11-08"><Cube currency="USD" rate="N/A"/></Cube></Cube></Envelope>`,
		},
		{
			name: "bad currency",
			body: `<Envelope><Cube><Cube time="2024-11-08"><Cube currency="US" rate="1.1"/></Cube></Cube></Envelope>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewXML().Parse([]byte(tt.body))
			assert.Error(t, err)
		})
	}
}
