package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResponse = `{
	"name": "application",
	"profiles": ["test", "timeout"],
	"label": "develop",
	"version": "9c1b",
	"state": null,
	"propertySources": [
		{"name": "file:app-test.yml", "source": {"key01": "value01", "key03": null, "key04.key01": 42}},
		{"name": "file:app.yml", "source": {"key01": "banana", "key02": 2}}
	]
}`

func TestDecodeConfigData(t *testing.T) {
	data, err := DecodeConfigData([]byte(sampleResponse))
	require.NoError(t, err)

	assert.Equal(t, "application", data.Name)
	assert.Equal(t, []string{"test", "timeout"}, data.Profiles)
	assert.Equal(t, "develop", data.Label)
	assert.Equal(t, "9c1b", data.Version)
	require.Len(t, data.PropertySources, 2)

	first := data.PropertySources[0]
	assert.Equal(t, "file:app-test.yml", first.Name)
	assert.Equal(t, []string{"key01", "key03", "key04.key01"}, first.Source.Keys())

	v, ok := first.Source.Get("key04.key01")
	require.True(t, ok)
	n, isNum := v.Number()
	require.True(t, isNum)
	assert.Equal(t, "42", n.String())
}

func TestDecodeConfigData_Malformed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty", body: ``},
		{name: "not json", body: `<html></html>`},
		{name: "array body", body: `[]`},
		{name: "missing sources", body: `{"name":"application"}`},
		{name: "null sources", body: `{"propertySources":null}`},
		{name: "object sources", body: `{"propertySources":{}}`},
		{name: "source not object", body: `{"propertySources":[{"source":[1]}]}`},
		{name: "nested value", body: `{"propertySources":[{"source":{"a":{"b":1}}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeConfigData([]byte(tt.body))
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestDecodeConfigData_EmptySources(t *testing.T) {
	data, err := DecodeConfigData([]byte(`{"propertySources":[]}`))
	require.NoError(t, err)
	assert.Empty(t, data.PropertySources)
}

func TestConfigData_JSONRoundTrip(t *testing.T) {
	var data ConfigData
	require.NoError(t, json.Unmarshal([]byte(sampleResponse), &data))

	out, err := json.Marshal(&data)
	require.NoError(t, err)
	assert.Equal(t,
		`{"name":"application","profiles":["test","timeout"],"label":"develop","version":"9c1b",`+
			`"propertySources":[{"name":"file:app-test.yml","source":{"key01":"value01","key03":null,"key04.key01":42}},`+
			`{"name":"file:app.yml","source":{"key01":"banana","key02":2}}]}`,
		string(out))
}

func TestConfigData_JSONKeepsEmptyFields(t *testing.T) {
	data, err := DecodeConfigData([]byte(`{"name":"app","profiles":[],"label":null,"version":null,"state":null,"propertySources":[]}`))
	require.NoError(t, err)

	out, err := json.Marshal(data)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"app","profiles":[],"label":"","version":"","propertySources":[]}`, string(out))
}
