package typewriter_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	typewriter "github.com/Azure/go-typewriter"
)

func TestBufferSurface(t *testing.T) {
	t.Parallel()

	surface := typewriter.NewBufferSurface("ça")
	assert.Equal(t, 2, surface.Len())

	var seen []string
	surface.OnChange(func(text string) {
		seen = append(seen, text)
	})

	surface.Append("v")
	surface.SetText("")
	assert.Equal(t, []string{"çav", ""}, seen)
	assert.Equal(t, 0, surface.Len())
}

func TestWriterSurface(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	surface := typewriter.NewWriterSurface(out)

	surface.Append("h")
	surface.Append("é")
	assert.Equal(t, 2, surface.Len())

	surface.SetText("h")
	assert.Equal(t, "hé\b \b", out.String())

	out.Reset()
	surface.SetText("other")
	assert.Equal(t, "\r\x1b[2Kother", out.String())
	assert.Equal(t, "other", surface.Text())
	assert.NoError(t, surface.Err())
}

func TestWriterSurfaceKeepsFirstError(t *testing.T) {
	t.Parallel()

	surface := typewriter.NewWriterSurface(failingWriter{})
	surface.Append("a")
	surface.Append("b")

	assert.Equal(t, "ab", surface.Text())
	assert.ErrorContains(t, surface.Err(), "writing to surface: closed")
}

func TestWriterSurfaceWithTypewriter(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	scheduler := typewriter.NewVirtualScheduler()
	tw := typewriter.New(typewriter.NewWriterSurface(out), typewriter.WithScheduler(scheduler))

	require.NoError(t, tw.TypeString("abc").DeleteAll(0).TypeString("ok").Start(context.Background()))
	assert.Equal(t, "abc\b \b\b \b\b \bok", out.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}
