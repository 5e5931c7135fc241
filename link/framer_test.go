package link

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFramerSplitsAcrossFeeds(t *testing.T) {
	var f Framer
	var got []string
	emit := func(b []byte) { got = append(got, string(b)) }

	f.Feed([]byte("ab"), emit)
	f.Feed([]byte("c\nde"), emit)
	f.Feed([]byte("\n\n"), emit)

	require.Equal(t, []string{"abc", "de", ""}, got)
}

func TestFramerMaxLine(t *testing.T) {
	var f Framer
	var got []string
	emit := func(b []byte) { got = append(got, string(b)) }

	exact := make([]byte, MaxLineBytes)
	for i := range exact {
		exact[i] = 'a'
	}
	f.Feed(append(append([]byte(nil), exact...), '\n'), emit)
	f.Feed(append(append([]byte(nil), exact...), 'b', 'c', '\n'), emit)
	f.Feed([]byte("ok\n"), emit)

	require.Len(t, got, 2)
	require.Len(t, got[0], MaxLineBytes)
	require.Equal(t, "ok", got[1])
	require.Equal(t, 1, f.Discarded)
}

func TestFramerCRLF(t *testing.T) {
	var f Framer
	var got []string
	emit := func(b []byte) { got = append(got, string(b)) }

	exact := make([]byte, MaxLineBytes)
	for i := range exact {
		exact[i] = 'a'
	}
	f.Feed(append(append([]byte(nil), exact...), '\r', '\n'), emit)
	f.Feed([]byte("a\rb\r\r\n"), emit)

	require.Equal(t, []string{string(exact), "a\rb\r"}, got)
	require.Zero(t, f.Discarded)
}
