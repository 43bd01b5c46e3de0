package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/alphadose/haxmap"
	"github.com/g-m-twostay/linkedbst/Trees"
	"github.com/g-m-twostay/linkedbst/Words"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
)

// Result of looking up every sampled word in one structure.
type Result struct {
	Name    string
	Found   int
	Elapsed time.Duration
}

type measurer struct {
	cfg *Config
	log *logrus.Logger
}

func (m *measurer) bar(n int, desc string) *progressbar.ProgressBar {
	if !m.cfg.Progress {
		return progressbar.NewOptions(n, progressbar.OptionSetWriter(io.Discard))
	}
	return progressbar.NewOptions(n,
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

// lookup times find over every word in queries.
func (m *measurer) lookup(name string, queries []string, find func(string) bool) Result {
	bar := m.bar(len(queries), name)
	r := Result{Name: name}
	start := time.Now()
	for _, w := range queries {
		if find(w) {
			r.Found++
		}
		bar.Add(1)
	}
	r.Elapsed = time.Since(start)
	bar.Finish()
	if r.Found != len(queries) {
		m.log.WithFields(logrus.Fields{"structure": name, "found": r.Found, "queries": len(queries)}).Warn("some words were not found")
	}
	return r
}

// chain adds words already sorted to a tree, which makes every node the
// right child of the previous one. Each word is linked onto the rightmost
// node, so a full dictionary costs O(n) here and O(n) per lookup later.
func (m *measurer) chain(words []string) *Trees.LinkedBST[string] {
	tree := Trees.New[string]()
	tree.AddAscending(words...)
	return tree
}

func (m *measurer) describe(name string, tree *Trees.LinkedBST[string]) {
	h, err := tree.Height()
	if err != nil {
		m.log.WithField("tree", name).WithError(err).Warn("no shape to describe")
		return
	}
	m.log.WithFields(logrus.Fields{
		"tree":     name,
		"size":     tree.Size(),
		"height":   h,
		"balanced": tree.IsBalanced(),
	}).Info("tree shape")
}

// Run loads the word list and times the lookups of the sampled words in a
// slice, a hash map, a chain tree, a tree of shuffled words and the latter
// after Rebalance.
func (m *measurer) Run(out io.Writer) ([]Result, error) {
	m.log.WithField("path", m.cfg.Words).Info("reading word list")
	list, err := Words.Load(m.cfg.Words)
	if err != nil {
		return nil, err
	}
	if list.Len() == 0 {
		return nil, fmt.Errorf("word list %s is empty", m.cfg.Words)
	}
	rg := rand.New(rand.NewSource(m.cfg.Seed))
	queries := list.Sample(rg, m.cfg.Samples)
	m.log.WithFields(logrus.Fields{"words": list.Len(), "unique": len(list.Unique()), "queries": len(queries)}).Info("sampled queries")

	var results []Result
	report := func(r Result) {
		results = append(results, r)
		fmt.Fprintf(out, "%-24s %d elements are found in %.3f seconds\n", r.Name, r.Found, r.Elapsed.Seconds())
	}

	report(m.lookup("list", queries, func(w string) bool {
		return list.Index(w) >= 0
	}))

	hm := haxmap.New[string, int]()
	for i, w := range list.Unique() {
		hm.Set(w, i)
	}
	report(m.lookup("hash map", queries, func(w string) bool {
		_, ok := hm.Get(w)
		return ok
	}))

	sorted := slices.Clone(list.Unique())
	slices.Sort(sorted)
	tree := m.chain(sorted)
	m.describe("alphabetic", tree)
	report(m.lookup("alphabetic tree", queries, tree.Contains))

	tree = Trees.From(list.Shuffled(rg)...)
	m.describe("random", tree)
	report(m.lookup("random tree", queries, tree.Contains))

	tree.Rebalance()
	m.describe("rebalanced", tree)
	report(m.lookup("balanced tree", queries, tree.Contains))
	return results, nil
}
