// Package Words loads the word lists used to measure the trees.
package Words

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/cornelk/hashmap"
)

// List of words in file order. Words may repeat; Set and Unique see each
// word once.
type List struct {
	Words  []string
	Set    *hashmap.Map[string, struct{}]
	unique []string
}

// Load reads one word per line from the file at path.
func Load(path string) (*List, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()
	return Read(f)
}

// Read reads one word per line from r. Lines are trimmed, blank lines skipped.
func Read(r io.Reader) (*List, error) {
	l := &List{Set: hashmap.New[string, struct{}]()}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" {
			continue
		}
		l.Words = append(l.Words, w)
		if l.Set.Insert(w, struct{}{}) {
			l.unique = append(l.unique, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list: %w", err)
	}
	return l, nil
}

// Len is the number of words read, repeats included.
// Time: O(1)
func (l *List) Len() int {
	return len(l.Words)
}

// Unique words in the order they first appear.
func (l *List) Unique() []string {
	return l.unique
}

// Has reports whether w is in the list.
// Time: O(1)
func (l *List) Has(w string) bool {
	_, ok := l.Set.Get(w)
	return ok
}

// Index of the first occurrence of w found by a linear scan, -1 if absent.
// Time: O(n)
func (l *List) Index(w string) int {
	for i, v := range l.Words {
		if v == w {
			return i
		}
	}
	return -1
}

// Sample n distinct positions of Words, in random order. n is clipped to [0, Len].
func (l *List) Sample(rg *rand.Rand, n int) []string {
	n = max(min(n, len(l.Words)), 0)
	s := make([]string, n)
	for i, p := range rg.Perm(len(l.Words))[:n] {
		s[i] = l.Words[p]
	}
	return s
}

// Shuffled returns the unique words in random order.
func (l *List) Shuffled(rg *rand.Rand) []string {
	s := make([]string, len(l.unique))
	copy(s, l.unique)
	rg.Shuffle(len(s), func(i, j int) {
		s[i], s[j] = s[j], s[i]
	})
	return s
}
