package patcher

import "strings"

// EditOp represents a single edit operation in a diff.
type EditOp int

const (
	// OpEqual means the line is unchanged.
	OpEqual EditOp = iota
	// OpInsert means a line was added.
	OpInsert
)

// Edit is one line-level operation in the preview. The patcher only ever
// appends, so deletes cannot occur.
type Edit struct {
	Op   EditOp
	Text string
}

// PreviewEdits computes the line-level edits that applying the patch would
// make, using an LCS diff of the current and prospective file contents.
func PreviewEdits(before, after string) []Edit {
	a := splitLines(before)
	b := splitLines(after)

	// dp[i][j] = length of LCS of a[:i] and b[:j]
	m, n := len(a), len(b)
	dp := make([][]int, m+1)
	for i := range dp {
		dp[i] = make([]int, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			switch {
			case a[i-1] == b[j-1]:
				dp[i][j] = dp[i-1][j-1] + 1
			case dp[i-1][j] >= dp[i][j-1]:
				dp[i][j] = dp[i-1][j]
			default:
				dp[i][j] = dp[i][j-1]
			}
		}
	}

	// Backtrack, then reverse into forward order.
	var rev []Edit
	i, j := m, n
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && a[i-1] == b[j-1]:
			rev = append(rev, Edit{Op: OpEqual, Text: a[i-1]})
			i--
			j--
		case j > 0 && (i == 0 || dp[i][j-1] >= dp[i-1][j]):
			rev = append(rev, Edit{Op: OpInsert, Text: b[j-1]})
			j--
		default:
			i--
		}
	}

	edits := make([]Edit, len(rev))
	for k, e := range rev {
		edits[len(rev)-1-k] = e
	}
	return edits
}

// RenderPreview formats the pending insertions, one "+"-prefixed line per
// inserted line. Context lines are omitted; an append-only patch has
// nothing else to show.
func RenderPreview(before, after string) string {
	edits := PreviewEdits(before, after)

	var b strings.Builder
	for _, e := range edits {
		switch e.Op {
		case OpInsert:
			b.WriteString("+ " + e.Text + "\n")
		case OpEqual:
			// Context is noise for an append-only patch; skip it.
		}
	}
	return b.String()
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}
