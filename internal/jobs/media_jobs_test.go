package jobs

import (
	"bytes"
	"image"
	"image/color"
	_ "image/jpeg"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spacebook-backend/internal/media"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := imaging.New(800, 600, color.NRGBA{R: 120, G: 30, B: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, imaging.Encode(&buf, img, imaging.PNG))
	return buf.Bytes()
}

func TestSweepKindRemovesOnlyOrphans(t *testing.T) {
	store, err := media.NewStore(t.TempDir(), 2, 5, 10)
	require.NoError(t, err)

	data := pngBytes(t)
	_, err = store.Ingest("SEL", "a.png", data, media.KindBranch)
	require.NoError(t, err)
	_, err = store.Ingest("JHR", "b.png", data, media.KindBranch)
	require.NoError(t, err)

	jr := NewJobRunner(nil, store, nil)
	jr.sweepKind(media.KindBranch, map[string]bool{"sel": true})

	keys, err := store.Keys(media.KindBranch)
	require.NoError(t, err)
	assert.Equal(t, []string{"sel"}, keys)

	// Still decodable after the sweep
	f, err := store.Open("SEL", media.KindBranch)
	require.NoError(t, err)
	defer f.Close()
	_, _, err = image.Decode(f)
	assert.NoError(t, err)
}
