package dataset

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuralErrorMissingAttribute(t *testing.T) {
	const doc = `<dataset>
  <video dirname="video1" frames="100" width="200" height="100" uri="v1"/>
</dataset>`

	_, err := buildDataset(t, doc)
	require.Error(t, err)

	var structural *StructuralError
	require.ErrorAs(t, err, &structural)
	assert.Equal(t, "video", structural.Element)
	assert.Equal(t, "fps", structural.Attr)
	assert.NoError(t, structural.Err)
	assert.Contains(t, structural.Error(), "fps")
}

func TestStructuralErrorMalformedAttribute(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		element string
		attr    string
	}{
		{
			"non-numeric fps",
			`<dataset><video dirname="v" fps="fast" frames="1" width="200" height="100" uri="v1"/></dataset>`,
			"video", "fps",
		},
		{
			"non-numeric corner",
			screenDoc(`<screen condition="normal" vgg256="[0]" x0="left" y0="5" x1="50" y1="5" x2="5" y2="50" x3="50" y3="50"/>`),
			"screen", "x0",
		},
		{
			"descriptor is not a JSON array",
			screenDoc(`<screen condition="normal" vgg256="{}" x0="5" y0="5" x1="50" y1="5" x2="5" y2="50" x3="50" y3="50"/>`),
			"screen", "vgg256",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildDataset(t, tt.doc)
			require.Error(t, err)

			var structural *StructuralError
			require.ErrorAs(t, err, &structural)
			assert.Equal(t, tt.element, structural.Element)
			assert.Equal(t, tt.attr, structural.Attr)
			assert.Error(t, structural.Err)
		})
	}
}

func TestReferentialErrorUnknownKey(t *testing.T) {
	_, err := buildDataset(t, screenDoc(`<screen `+screenAttrs+`>
		<keyref similarity="full">missing</keyref>
	</screen>`))
	require.Error(t, err)

	var referential *ReferentialError
	require.ErrorAs(t, err, &referential)
	assert.Equal(t, "missing", referential.Key)
	assert.Equal(t, filepath.Join("ds", "video1"), referential.Video)

	// The two failure kinds stay distinguishable.
	var structural *StructuralError
	assert.False(t, errors.As(err, &structural))
}
