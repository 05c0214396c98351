package commitgen_test

import (
	"testing"

	"github.com/fwojciec/commitgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFormatter_Format(t *testing.T) {
	t.Parallel()

	newHunk := func(t *testing.T, path, content string) commitgen.DiffHunk {
		t.Helper()
		h, err := commitgen.NewDiffHunk(path, "", 1, 1, 1, 2, "@@ -1,1 +1,2 @@", content)
		require.NoError(t, err)
		return h
	}

	t.Run("includes hunk metadata and content", func(t *testing.T) {
		t.Parallel()

		f := &commitgen.DefaultFormatter{}
		out := f.Format(commitgen.GenerateRequest{
			Hunks:   []commitgen.DiffHunk{newHunk(t, "app.py", " ctx\n+return 1")},
			Context: "JIRA-123",
		})

		assert.Contains(t, out, "File: app.py")
		assert.Contains(t, out, "Language: python")
		assert.Contains(t, out, "Complexity: 1.00")
		assert.Contains(t, out, "+return 1")
		assert.Contains(t, out, "Additional context: JIRA-123")
	})

	t.Run("annotates new files and renames", func(t *testing.T) {
		t.Parallel()

		newFile, err := commitgen.NewDiffHunk("fresh.go", "", 0, 0, 1, 1, "@@ -0,0 +1 @@", "+package fresh")
		require.NoError(t, err)
		renamed, err := commitgen.NewDiffHunk("new.go", "old.go", 1, 1, 1, 1, "@@ -1 +1 @@", "-a\n+b")
		require.NoError(t, err)

		f := &commitgen.DefaultFormatter{}
		out := f.Format(commitgen.GenerateRequest{Hunks: []commitgen.DiffHunk{newFile, renamed}})

		assert.Contains(t, out, "Change: new file")
		assert.Contains(t, out, "Change: renamed from old.go")
	})

	t.Run("truncates long hunk bodies", func(t *testing.T) {
		t.Parallel()

		f := &commitgen.DefaultFormatter{MaxContentLines: 2}
		out := f.Format(commitgen.GenerateRequest{
			Hunks: []commitgen.DiffHunk{newHunk(t, "big.go", "+one\n+two\n+three\n+four")},
		})

		assert.Contains(t, out, "+one")
		assert.Contains(t, out, "+two")
		assert.NotContains(t, out, "+three")
		assert.Contains(t, out, "(2 lines omitted)")
	})
}
