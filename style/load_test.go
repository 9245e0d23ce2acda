package style

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wippyai/style-peers/errors"
)

func TestLoadFile(t *testing.T) {
	st, err := LoadFile("testdata/streets.json")
	require.NoError(t, err)

	assert.Equal(t, "Streets", st.Name())
	assert.Equal(t, []string{"background", "satellite", "water", "buildings", "roads", "pois", "labels", "overlay"}, ids(st))

	bg := st.Layer("background").(*BackgroundLayer)
	assert.Equal(t, "#f8f4f0", bg.Color.Hex())

	sat := st.Layer("satellite").(*RasterLayer)
	assert.InDelta(t, 0.5, sat.Opacity, 1e-6)
	assert.Equal(t, uint32(100), sat.FadeDuration)

	water := st.Layer("water").(*FillLayer)
	assert.False(t, water.Antialias)
	assert.Equal(t, "water", water.SourceLayer())

	buildings := st.Layer("buildings").(*FillExtrusionLayer)
	assert.Equal(t, float32(15), buildings.MinZoom())
	assert.Equal(t, float32(20), buildings.Height)

	roads := st.Layer("roads").(*LineLayer)
	assert.Equal(t, LineCapRound, roads.Cap)
	assert.Equal(t, LineJoinRound, roads.Join)
	assert.InDelta(t, 2.5, roads.Width, 1e-6)

	pois := st.Layer("pois").(*CircleLayer)
	assert.Equal(t, float32(6), pois.Radius)
	assert.Equal(t, uint32(0xe55e5eff), pois.Color.Packed())

	labels := st.Layer("labels").(*SymbolLayer)
	assert.Equal(t, Hidden, labels.Visibility())
	assert.Equal(t, "{name}", labels.TextField)
	assert.Equal(t, float32(12), labels.TextSize)

	_, ok := st.Layer("overlay").(*CustomLayer)
	assert.True(t, ok)
}

func TestLoad_YAML(t *testing.T) {
	doc := `
version: 8
name: yaml
layers:
  - id: roads
    type: line
    source: composite
    paint:
      line-width: 4
  - type: circle
    source: composite
`
	st, err := Load([]byte(doc))
	require.NoError(t, err)
	require.Equal(t, 2, st.Len())

	assert.Equal(t, float32(4), st.Layer("roads").(*LineLayer).Width)

	generated := st.Layers()[1].ID()
	_, err = uuid.Parse(generated)
	assert.NoError(t, err, "missing ids are generated")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		kind errors.Kind
	}{
		{"malformed", `{"layers": [`, errors.KindInvalidData},
		{"version", `{"version": 7}`, errors.KindUnsupported},
		{"unknown type", `{"layers": [{"id": "h", "type": "heatmap"}]}`, errors.KindUnsupported},
		{"bad color", `{"layers": [{"id": "f", "type": "fill", "paint": {"fill-color": "red"}}]}`, errors.KindInvalidData},
		{"bad number", `{"layers": [{"id": "c", "type": "circle", "paint": {"circle-radius": "big"}}]}`, errors.KindInvalidData},
		{"expression", `{"layers": [{"id": "c", "type": "circle", "paint": {"circle-radius": ["get", "r"]}}]}`, errors.KindInvalidData},
		{"bad enum", `{"layers": [{"id": "l", "type": "line", "layout": {"line-cap": "pointy"}}]}`, errors.KindInvalidData},
		{"bad visibility", `{"layers": [{"id": "l", "type": "line", "layout": {"visibility": "maybe"}}]}`, errors.KindInvalidData},
		{"duplicate id", `{"layers": [{"id": "a", "type": "fill"}, {"id": "a", "type": "line"}]}`, errors.KindAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.doc))
			require.Error(t, err)
			var se *errors.Error
			require.ErrorAs(t, err, &se)
			assert.Equal(t, tt.kind, se.Kind)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile("testdata/does-not-exist.json")
	assert.Error(t, err)
}
