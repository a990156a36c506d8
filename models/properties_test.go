package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProperties_KeepsInsertionOrder(t *testing.T) {
	p := PropertiesOf(
		Prop("zeta", 1),
		Prop("alpha", "a"),
		Prop("mid", nil),
	)
	p.Set("alpha", StringValue("b"))
	p.Set("omega", BoolValue(true))

	assert.Equal(t, []string{"zeta", "alpha", "mid", "omega"}, p.Keys())
	assert.Equal(t, 4, p.Len())

	v, ok := p.Get("alpha")
	require.True(t, ok)
	assert.Equal(t, "b", v.String())

	v, ok = p.Get("mid")
	require.True(t, ok)
	assert.True(t, v.IsNull())
	assert.True(t, p.Has("mid"))
	assert.False(t, p.Has("missing"))
}

func TestProperties_NilIsEmpty(t *testing.T) {
	var p *Properties

	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Keys())
	assert.False(t, p.Has("x"))
	assert.Empty(t, p.Entries())
	assert.Equal(t, 0, p.Clone().Len())
	assert.Nil(t, p.DeepCopy())
	p.Range(func(string, Value) bool {
		t.Fatal("nil properties must not call fn")
		return true
	})
}

func TestProperties_RangeStops(t *testing.T) {
	p := PropertiesOf(Prop("a", 1), Prop("b", 2), Prop("c", 3))

	var seen []string
	p.Range(func(k string, _ Value) bool {
		seen = append(seen, k)
		return k != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestProperties_CloneIsIndependent(t *testing.T) {
	p := PropertiesOf(Prop("a", 1))
	c := p.Clone()
	c.Set("a", IntValue(2))
	c.Set("b", IntValue(3))

	v, _ := p.Get("a")
	assert.Equal(t, "1", v.String())
	assert.False(t, p.Has("b"))
}

func TestProperties_Map(t *testing.T) {
	p := PropertiesOf(Prop("a", 1), Prop("b", "x"), Prop("c", nil))
	assert.Equal(t, map[string]any{"a": json.Number("1"), "b": "x", "c": nil}, p.Map())
}

func TestProperties_JSONRoundTripPreservesOrder(t *testing.T) {
	in := `{"z":1,"a":"x","m":null,"b":false,"n":3.25}`

	var p Properties
	require.NoError(t, json.Unmarshal([]byte(in), &p))
	assert.Equal(t, []string{"z", "a", "m", "b", "n"}, p.Keys())

	out, err := json.Marshal(&p)
	require.NoError(t, err)
	assert.Equal(t, in, string(out))
}

func TestProperties_UnmarshalErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "array", in: `[1,2]`, want: ErrMalformedResponse},
		{name: "string", in: `"x"`, want: ErrMalformedResponse},
		{name: "nested object", in: `{"a":{"b":1}}`, want: ErrUnsupportedValue},
		{name: "nested array", in: `{"a":[1]}`, want: ErrUnsupportedValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p Properties
			assert.ErrorIs(t, p.UnmarshalJSON([]byte(tt.in)), tt.want)
		})
	}
}

func TestProperties_UnmarshalNull(t *testing.T) {
	p := PropertiesOf(Prop("old", 1))
	require.NoError(t, p.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, 0, p.Len())
}

func TestProperties_MarshalYAMLKeepsOrder(t *testing.T) {
	p := PropertiesOf(Prop("zeta", 1), Prop("alpha", "8080"), Prop("mid", nil))

	out, err := yaml.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, "zeta: 1\nalpha: \"8080\"\nmid: null\n", string(out))
}
