package Words

import (
	"math/rand"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sample = "pear\n  apple \n\nplum\napple\nfig\n"

func TestRead(t *testing.T) {
	l, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	require.Equal(t, []string{"pear", "apple", "plum", "apple", "fig"}, l.Words)
	require.Equal(t, []string{"pear", "apple", "plum", "fig"}, l.Unique())
	require.Equal(t, 4, l.Set.Len())
	require.True(t, l.Has("plum"))
	require.False(t, l.Has("kiwi"))
	require.Equal(t, 1, l.Index("apple"))
	require.Equal(t, -1, l.Index("kiwi"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))
	l, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 5, l.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.ErrorContains(t, err, "open word list")
}

func TestSample(t *testing.T) {
	l, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	rg := rand.New(rand.NewSource(0))

	s := l.Sample(rg, 3)
	require.Len(t, s, 3)
	for _, w := range s {
		require.True(t, l.Has(w))
	}
	require.Len(t, l.Sample(rg, 100), l.Len())

	sh := l.Shuffled(rg)
	slices.Sort(sh)
	want := slices.Clone(l.Unique())
	slices.Sort(want)
	require.Equal(t, want, sh)
}

func TestSample_NonPositive(t *testing.T) {
	l, err := Read(strings.NewReader(sample))
	require.NoError(t, err)
	rg := rand.New(rand.NewSource(0))
	require.Empty(t, l.Sample(rg, 0))
	require.Empty(t, l.Sample(rg, -1))
}
