// Package testutil contains helpers shared by the challenge tests.
package testutil

import (
	"testing"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/stretchr/testify/require"
)

// RequireTextEqual fails the test with a unified diff when got differs from
// want. For multi-line text such as grid renderings the diff is far easier
// to read than testify's single-line mismatch report.
func RequireTextEqual(t *testing.T, want, got string) {
	t.Helper()
	if want == got {
		return
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	require.NoError(t, err)
	require.Fail(t, "text mismatch", "diff (-want +got):\n%s", diff)
}
