// Package nbdiff reports per-cell source differences between two
// notebook trees. Cells are paired by position; diffing the traversal
// itself is out of scope.
package nbdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/gridbook/nbfmt/ir"
)

type Kind int

const (
	Equal Kind = iota
	Modified
	Added
	Removed
)

func (k Kind) String() string {
	switch k {
	case Equal:
		return "equal"
	case Modified:
		return "modified"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "<unknown kind>"
	}
}

type CellDiff struct {
	Index int
	Kind  Kind
	Diffs []diffpatch.Diff
}

// Text renders the diff with inline markers, insertions wrapped in
// {+ +} and deletions in {- -}.
func (d *CellDiff) Text() string {
	b := strings.Builder{}
	for i := range d.Diffs {
		diff := &d.Diffs[i]
		switch diff.Type {
		case diffpatch.DiffInsert:
			b.WriteString("{+")
			b.WriteString(diff.Text)
			b.WriteString("+}")
		case diffpatch.DiffDelete:
			b.WriteString("{-")
			b.WriteString(diff.Text)
			b.WriteString("-}")
		case diffpatch.DiffEqual:
			b.WriteString(diff.Text)
		}
	}
	return b.String()
}

// Diff compares two notebooks cell by cell. Unequal lengths yield
// Added entries for cells only in b and Removed entries for cells
// only in a.
func Diff(a, b *ir.Root) []CellDiff {
	var res []CellDiff
	aKids, bKids := a.Children(), b.Children()
	n := max(len(aKids), len(bKids))
	dmp := diffpatch.New()
	for i := 0; i < n; i++ {
		switch {
		case i >= len(aKids):
			res = append(res, CellDiff{
				Index: i,
				Kind:  Added,
				Diffs: []diffpatch.Diff{{Type: diffpatch.DiffInsert, Text: ir.CellSource(bKids[i])}},
			})
		case i >= len(bKids):
			res = append(res, CellDiff{
				Index: i,
				Kind:  Removed,
				Diffs: []diffpatch.Diff{{Type: diffpatch.DiffDelete, Text: ir.CellSource(aKids[i])}},
			})
		default:
			res = append(res, diffCell(dmp, i, aKids[i], bKids[i]))
		}
	}
	return res
}

func diffCell(dmp *diffpatch.DiffMatchPatch, i int, a, b ir.Node) CellDiff {
	from, to := ir.CellSource(a), ir.CellSource(b)
	if from == to {
		return CellDiff{
			Index: i,
			Kind:  Equal,
			Diffs: []diffpatch.Diff{{Type: diffpatch.DiffEqual, Text: from}},
		}
	}
	doMultiLine := strings.Contains(from, "\n") && strings.Contains(to, "\n")
	diffs := dmp.DiffMain(from, to, doMultiLine)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return CellDiff{Index: i, Kind: Modified, Diffs: diffs}
}
