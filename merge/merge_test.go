package merge

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func source(name string, entries ...models.Entry) models.PropertySource {
	return models.PropertySource{Name: name, Source: models.PropertiesOf(entries...)}
}

func dataSources() []models.PropertySource {
	return []models.PropertySource{
		source("first",
			models.Prop("key01", "value01"),
			models.Prop("key03", nil),
			models.Prop("key04.key01", 42),
		),
		source("second",
			models.Prop("key01", "banana"),
			models.Prop("key02", 2),
		),
	}
}

func arraySources() []models.PropertySource {
	return []models.PropertySource{
		source("specific", models.Prop("key01[0]", "four")),
		source("generic",
			models.Prop("key01[0]", "one"),
			models.Prop("key01[1]", "two"),
			models.Prop("key01[2]", "three"),
		),
	}
}

func TestFlatten(t *testing.T) {
	props := Flatten(dataSources())

	assert.Equal(t, []string{"key01", "key03", "key04.key01", "key02"}, props.Keys())

	tests := []struct {
		key  string
		want models.Value
	}{
		{key: "key01", want: models.StringValue("value01")},
		{key: "key02", want: models.IntValue(2)},
		{key: "key03", want: models.Null()},
		{key: "key04.key01", want: models.IntValue(42)},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, ok := props.Get(tt.key)
			require.True(t, ok)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestFlatten_NullInSpecificSourceWins(t *testing.T) {
	props := Flatten([]models.PropertySource{
		source("specific", models.Prop("a", nil)),
		source("generic", models.Prop("a", "set")),
	})

	v, ok := props.Get("a")
	require.True(t, ok)
	assert.True(t, v.IsNull())
}

func TestFlatten_Empty(t *testing.T) {
	assert.Equal(t, 0, Flatten(nil).Len())
	assert.Equal(t, 0, Flatten([]models.PropertySource{{Name: "nil source"}}).Len())
}

func TestFlatten_DoesNotModifySources(t *testing.T) {
	sources := dataSources()
	Flatten(sources)

	v, _ := sources[1].Source.Get("key01")
	assert.Equal(t, "banana", v.String())
	assert.Equal(t, 2, sources[1].Source.Len())
}

func TestFlatten_LowestIndexWinsProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		keys := []string{"a", "b", "c.d", "e[0]", "e[1]"}
		n := rapid.IntRange(0, 5).Draw(t, "sources")
		sources := make([]models.PropertySource, n)
		for i := range sources {
			props := models.NewProperties(len(keys))
			for _, k := range keys {
				if rapid.Bool().Draw(t, fmt.Sprintf("has%d.%s", i, k)) {
					props.Set(k, models.IntValue(int64(i)))
				}
			}
			sources[i] = models.PropertySource{Source: props}
		}

		props := Flatten(sources)
		for _, k := range keys {
			want := -1
			for i := range sources {
				if sources[i].Source.Has(k) {
					want = i
					break
				}
			}

			got, ok := props.Get(k)
			if want < 0 {
				if ok {
					t.Fatalf("key %q present but no source defines it", k)
				}
				continue
			}
			if !ok || !got.Equal(models.IntValue(int64(want))) {
				t.Fatalf("key %q = %v, want value of source %d", k, got, want)
			}
		}
	})
}

func TestCollectKeys(t *testing.T) {
	tests := []struct {
		name   string
		policy Policy
		want   []string
	}{
		{name: "merge", policy: Merge, want: []string{"key01[0]", "key01[1]", "key01[2]"}},
		{name: "replace", policy: Replace, want: []string{"key01[0]"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := CollectKeys(arraySources(), tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, keys)
		})
	}
}

func TestCollectKeys_ReplaceKeepsOtherKeys(t *testing.T) {
	sources := []models.PropertySource{
		source("specific",
			models.Prop("name", "svc"),
			models.Prop("hosts[0].addr", "a"),
		),
		source("generic",
			models.Prop("hosts[0].addr", "x"),
			models.Prop("hosts[1].addr", "y"),
			models.Prop("ports[0]", 1),
			models.Prop("name", "other"),
			models.Prop("timeout", 5),
		),
	}

	keys, err := CollectKeys(sources, Replace)
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "hosts[0].addr", "ports[0]", "timeout"}, keys)
}

func TestCollectKeys_ReplaceNestedBaseNames(t *testing.T) {
	sources := []models.PropertySource{
		source("specific", models.Prop("a.list[0]", 1)),
		source("generic",
			models.Prop("a.list[1]", 2),
			models.Prop("a.other[0]", 3),
		),
	}

	keys, err := CollectKeys(sources, Replace)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.list[0]", "a.other[0]"}, keys)
}

func TestCollectKeys_ReplaceConflict(t *testing.T) {
	sources := []models.PropertySource{
		source("specific", models.Prop("key01", "plain")),
		source("generic", models.Prop("key01[0]", "cell")),
	}

	_, err := CollectKeys(sources, Replace)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArrayPolicyConflict)

	keys, err := CollectKeys(sources, Merge)
	require.NoError(t, err)
	assert.Equal(t, []string{"key01", "key01[0]"}, keys)
}

func TestCollectKeys_ReplaceConflictReportsFirstBaseName(t *testing.T) {
	sources := []models.PropertySource{
		source("specific",
			models.Prop("m[0]", 1),
			models.Prop("c[0]", 1),
			models.Prop("x[0]", 1),
			models.Prop("a[0]", 1),
		),
		source("generic",
			models.Prop("a", "plain"),
			models.Prop("x", "plain"),
			models.Prop("c", "plain"),
			models.Prop("m", "plain"),
		),
	}

	for i := 0; i < 20; i++ {
		_, err := CollectKeys(sources, Replace)
		require.ErrorIs(t, err, ErrArrayPolicyConflict)
		assert.Contains(t, err.Error(), `"m" is an array in source 0 and a value in source 1`)
	}
}

func TestPolicy_String(t *testing.T) {
	assert.Equal(t, "replace", Replace.String())
	assert.Equal(t, "merge", Merge.String())
}
