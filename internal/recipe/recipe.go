// Package recipe holds a collection of blocks forming one program. Build the
// program into a Recipe, pick its entry point, then fry it to run it.
package recipe

import (
	"errors"
	"sort"
	"strconv"
	"strings"

	"github.com/tliron/commonlog"

	"stir/internal/blocks"
)

// ErrNoEntry is returned by Fry when no entry point was configured.
var ErrNoEntry = errors.New("recipe has no entry point")

var log = commonlog.GetLogger("stir.recipe")

// Recipe is a collection of blocks keyed by label, with at most one entry.
type Recipe struct {
	entry  blocks.Block
	blocks map[string]blocks.Block
}

// New returns an empty Recipe.
func New() *Recipe {
	return &Recipe{
		blocks: make(map[string]blocks.Block),
	}
}

// Add registers block under its label, replacing any block registered under
// the same label.
func (r *Recipe) Add(block blocks.Block) *Recipe {
	r.blocks[block.Label()] = block
	log.Debug("block added", "label", block.Label(), "kind", blocks.Kind(block))
	return r
}

// AddEntry makes block the entry point and registers it. It returns false,
// leaving the recipe untouched, when an entry is already set.
func (r *Recipe) AddEntry(entry blocks.Block) bool {
	if r.entry != nil {
		log.Warning("entry point already set", "entry", r.entry.Label(), "rejected", entry.Label())
		return false
	}

	r.entry = entry
	r.Add(entry)
	return true
}

// Fry interprets the recipe from its entry point.
func (r *Recipe) Fry() (bool, error) {
	if r.entry == nil {
		return false, ErrNoEntry
	}

	log.Debug("frying", "entry", r.entry.Label(), "blocks", len(r.blocks))
	result := r.entry.Interpret()
	log.Debug("fried", "entry", r.entry.Label(), "result", result)
	return result, nil
}

// Entry returns the entry point, or nil.
func (r *Recipe) Entry() blocks.Block {
	return r.entry
}

// Len returns the number of registered blocks.
func (r *Recipe) Len() int {
	return len(r.blocks)
}

func (r *Recipe) Get(label string) (blocks.Block, bool) {
	b, ok := r.blocks[label]
	return b, ok
}

func (r *Recipe) Contains(label string) bool {
	_, ok := r.blocks[label]
	return ok
}

// Labels returns the registered labels in the order their blocks were
// created.
func (r *Recipe) Labels() []string {
	labels := make([]string, 0, len(r.blocks))
	for l := range r.blocks {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labelLess(labels[i], labels[j])
	})
	return labels
}

// labelLess orders labels by the counter value that ends every label name.
func labelLess(a, b string) bool {
	ia, errA := strconv.ParseUint(a[strings.LastIndexByte(a, '_')+1:], 10, 64)
	ib, errB := strconv.ParseUint(b[strings.LastIndexByte(b, '_')+1:], 10, 64)
	if errA != nil || errB != nil || ia == ib {
		return a < b
	}
	return ia < ib
}

// Critical returns, in creation order, the labels of critical blocks in the
// recipe, nested ones included. Nothing in STIR schedules blocks; this is
// metadata for whoever does.
func (r *Recipe) Critical() []string {
	seen := make(map[string]bool)
	var labels []string
	for _, l := range r.Labels() {
		blocks.Walk(r.blocks[l], func(b blocks.Block) bool {
			if b.IsCritical() && !seen[b.Label()] {
				seen[b.Label()] = true
				labels = append(labels, b.Label())
			}
			return true
		})
	}
	sort.Slice(labels, func(i, j int) bool { return labelLess(labels[i], labels[j]) })
	return labels
}

// Output renders every registered block in creation order, separated by blank
// lines. The entry point is prefixed with ENTRY.
func (r *Recipe) Output() string {
	var sb strings.Builder
	for i, l := range r.Labels() {
		if i > 0 {
			sb.WriteString("\n")
		}

		b := r.blocks[l]
		if b == r.entry {
			sb.WriteString("ENTRY ")
		}

		out := b.Output()
		sb.WriteString(out)
		if !strings.HasSuffix(out, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
