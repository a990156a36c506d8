package tree

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestNode_NilAndWrongKind(t *testing.T) {
	var n *Node
	assert.Equal(t, Unset, n.Kind())
	assert.Equal(t, 0, n.Len())
	assert.Nil(t, n.Fields())
	assert.Nil(t, n.Interface())

	_, ok := n.Value()
	assert.False(t, ok)
	_, ok = n.Field("a")
	assert.False(t, ok)
	_, ok = n.Index(0)
	assert.False(t, ok)
}

func TestNode_Lookup(t *testing.T) {
	root, err := FromProperties(complexData())
	require.NoError(t, err)

	tests := []struct {
		key    string
		wantOK bool
		kind   Kind
	}{
		{key: "key01", wantOK: true, kind: Leaf},
		{key: "key03", wantOK: true, kind: Object},
		{key: "key03.key01[0]", wantOK: true, kind: Leaf},
		{key: "key03.key01[5]", wantOK: false},
		{key: "key01.nope", wantOK: false},
		{key: "missing", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			n, ok := root.Lookup(tt.key)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.kind, n.Kind())
			}
		})
	}
}

func TestNode_Interface(t *testing.T) {
	root, err := FromProperties(complexData())
	require.NoError(t, err)

	v := root.Interface().(map[string]any)
	assert.Equal(t, "value01", v["key01"])
	assert.Nil(t, v["key02"])
	key03 := v["key03"].(map[string]any)
	assert.Len(t, key03["key01"], 2)
}

func TestNode_MarshalYAML(t *testing.T) {
	root, err := FromProperties(complexData())
	require.NoError(t, err)

	out, err := yaml.Marshal(root)
	require.NoError(t, err)
	text := string(out)

	assert.Less(t, strings.Index(text, "key01: value01"), strings.Index(text, "key02: null"))
	assert.Less(t, strings.Index(text, "key03:"), strings.Index(text, "key04:"))

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, map[string]any{
		"key01": "value01",
		"key02": nil,
		"key03": map[string]any{
			"key01": []any{1, map[string]any{"data": 2}},
			"key02": 3,
		},
		"key04": map[string]any{"key01": 42},
	}, back)
}

func TestNode_MarshalYAMLKeepsStringNumbers(t *testing.T) {
	root, err := FromProperties(models.PropertiesOf(
		models.Prop("port", "8080"),
		models.Prop("ratio", 0.5),
		models.Prop("enabled", true),
	))
	require.NoError(t, err)

	out, err := yaml.Marshal(root)
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, "8080", back["port"])
	assert.Equal(t, 0.5, back["ratio"])
	assert.Equal(t, true, back["enabled"])
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "unset", Unset.String())
	assert.Equal(t, "value", Leaf.String())
	assert.Equal(t, "object", Object.String())
	assert.Equal(t, "array", Array.String())
}

func TestConflictError_Message(t *testing.T) {
	err := &ConflictError{Key: "a.b", Path: "a", Want: Object, Got: Leaf}
	assert.Equal(t, `key "a.b": "a" is already a value, cannot use it as an object`, err.Error())
}
