package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{" yml ", FormatYAML, false},
		{"toml", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDocument(t *testing.T) {
	props := models.PropertiesOf(
		models.Prop("zeta", 1),
		models.Prop("alpha", "a"),
	)

	tests := []struct {
		name   string
		format Format
		indent int
		want   string
	}{
		{"compact json", FormatJSON, 0, "{\"zeta\":1,\"alpha\":\"a\"}\n"},
		{"indented json", FormatJSON, 2, "{\n  \"zeta\": 1,\n  \"alpha\": \"a\"\n}\n"},
		{"yaml", FormatYAML, 2, "zeta: 1\nalpha: a\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Document(&buf, props, tt.format, tt.indent))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestDocument_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Document(&buf, map[string]int{}, Format("xml"), 0)
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Empty(t, buf.String())
}

func TestTable(t *testing.T) {
	rows := []Row{
		{Key: "db.url", Value: models.StringValue("jdbc:test"), Source: "app-test.yml"},
		{Key: "port", Value: models.IntValue(8080), Source: "app.yml"},
		{Key: "db.url", Value: models.StringValue("jdbc:default"), Source: "app.yml", Overridden: true},
		{Key: "nothing", Value: models.Null(), Source: "app.yml"},
	}

	var buf bytes.Buffer
	require.NoError(t, Table(&buf, "billing", rows))
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, len(rows)+6)
	assert.Equal(t, "billing", lines[0])
	assert.Equal(t, "4 properties", lines[len(lines)-1])

	header := lines[2]
	assert.True(t, strings.HasPrefix(header, "KEY     │ VALUE        │ SOURCE"), header)

	for i, r := range rows {
		line := lines[4+i]
		assert.Contains(t, line, r.Key)
		assert.Contains(t, line, r.Value.String())
		assert.True(t, strings.HasSuffix(line, r.Source), line)
		// Columns stay aligned without escape sequences in a non-terminal writer.
		assert.Equal(t, strings.Index(header, "│"), strings.Index(line, "│"), line)
	}
}

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, "empty", nil))
	assert.Contains(t, buf.String(), "KEY │ VALUE │ SOURCE")
	assert.Contains(t, buf.String(), "0 properties")
}

func TestBuildInfo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BuildInfo(&buf, models.NewBuildInfo("1.0.0", "", "abc")))

	assert.Equal(t, "cloudconfig\nVersion: 1.0.0\nDate: N/A\nCommit: abc\n", buf.String())
}
