package commitgen_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/commitgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffHunk_ApplicablePatch(t *testing.T) {
	t.Parallel()

	t.Run("builds a minimal standalone patch", func(t *testing.T) {
		t.Parallel()

		hunk, err := commitgen.NewDiffHunk("pkg/app.go", "", 10, 3, 10, 4, "@@ -10,3 +10,4 @@", " ctx\n-old\n+new\n+more")
		require.NoError(t, err)

		patch, err := hunk.ApplicablePatch()

		require.NoError(t, err)
		assert.Equal(t,
			"--- a/pkg/app.go\n"+
				"+++ b/pkg/app.go\n"+
				"@@ -10,3 +10,4 @@\n"+
				" ctx\n-old\n+new\n+more\n",
			patch)
	})

	t.Run("re-emits explicit counts for single-line hunks", func(t *testing.T) {
		t.Parallel()

		raw := "diff --git a/f.txt b/f.txt\n" +
			"@@ -5 +5 @@\n" +
			"-old\n" +
			"+new"
		hunk, err := commitgen.ParseHunk(raw)
		require.NoError(t, err)

		patch, err := hunk.ApplicablePatch()

		require.NoError(t, err)
		assert.Contains(t, patch, "@@ -5,1 +5,1 @@")
	})

	t.Run("normalizes CRLF and guarantees one trailing newline", func(t *testing.T) {
		t.Parallel()

		hunk, err := commitgen.NewDiffHunk("f.txt", "", 1, 1, 1, 1, "@@ -1 +1 @@", "-old\r\n+new\r\n\n\n")
		require.NoError(t, err)

		patch, err := hunk.ApplicablePatch()

		require.NoError(t, err)
		assert.NotContains(t, patch, "\r")
		assert.True(t, strings.HasSuffix(patch, "+new\n"))
		assert.False(t, strings.HasSuffix(patch, "\n\n"))
	})

	t.Run("counts deletions of dash-prefixed lines as changes", func(t *testing.T) {
		t.Parallel()

		// Deleting the line "-- end of section" renders as "--- end of
		// section", which must not be mistaken for a file header.
		hunk, err := commitgen.NewDiffHunk("notes.txt", "", 3, 2, 3, 1, "@@ -3,2 +3,1 @@", " ctx\n--- end of section")
		require.NoError(t, err)

		patch, err := hunk.ApplicablePatch()

		require.NoError(t, err)
		assert.Contains(t, patch, "--- end of section\n")
	})

	t.Run("rejects context-only hunks", func(t *testing.T) {
		t.Parallel()

		hunk, err := commitgen.NewDiffHunk("f.txt", "", 1, 2, 1, 2, "@@ -1,2 +1,2 @@", " one\n two")
		require.NoError(t, err)

		_, err = hunk.ApplicablePatch()

		var diffErr *commitgen.DiffError
		require.ErrorAs(t, err, &diffErr)
		assert.Equal(t, commitgen.ReasonNoActualChanges, diffErr.Reason)
		assert.Equal(t, "f.txt", diffErr.Path)
	})
}

func TestDiffHunk_FullDiff(t *testing.T) {
	t.Parallel()

	t.Run("reconstructs the original fragment", func(t *testing.T) {
		t.Parallel()

		raw := "diff --git a/old.txt b/new.txt\n" +
			"@@ -5 +5 @@\n" +
			"-old\n" +
			"+new"
		hunk, err := commitgen.ParseHunk(raw)
		require.NoError(t, err)

		assert.Equal(t, raw, hunk.FullDiff())
	})

	t.Run("preserves the comma-less header form", func(t *testing.T) {
		t.Parallel()

		hunk, err := commitgen.NewDiffHunk("f.txt", "", 5, 1, 5, 1, "@@ -5 +5 @@", "-a\n+b")
		require.NoError(t, err)

		assert.Contains(t, hunk.FullDiff(), "@@ -5 +5 @@\n")
	})
}

func TestDiffHunk_AddedLines(t *testing.T) {
	t.Parallel()

	t.Run("returns only added lines without markers", func(t *testing.T) {
		t.Parallel()

		hunk, err := commitgen.NewDiffHunk("f.go", "", 1, 3, 1, 3, "@@ -1,3 +1,3 @@", " ctx\n-removed\n+first\n+second")
		require.NoError(t, err)

		assert.Equal(t, "first\nsecond", hunk.AddedLines())
	})

	t.Run("excludes file header lines", func(t *testing.T) {
		t.Parallel()

		hunk, err := commitgen.NewDiffHunk("f.go", "", 1, 1, 1, 1, "@@ -1 +1 @@", "+++ b/f.go\n+real")
		require.NoError(t, err)

		assert.Equal(t, "real", hunk.AddedLines())
	})

	t.Run("returns empty string when nothing was added", func(t *testing.T) {
		t.Parallel()

		hunk, err := commitgen.NewDiffHunk("f.go", "", 1, 2, 1, 1, "@@ -1,2 +1,1 @@", " ctx\n-gone")
		require.NoError(t, err)

		assert.Equal(t, "", hunk.AddedLines())
	})
}
