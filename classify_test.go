package commitgen_test

import (
	"testing"

	"github.com/fwojciec/commitgen"
	"github.com/stretchr/testify/assert"
)

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{"main.go", "go"},
		{"index.php", "php"},
		{"app.js", "javascript"},
		{"app.ts", "javascript"},
		{"script.py", "python"},
		{"Main.java", "java"},
		{"gem.rb", "ruby"},
		{"lib.rs", "rust"},
		{"core.cpp", "c++"},
		{"core.c", "c++"},
		{"core.h", "c++"},
		{"App.swift", "swift"},
		{"Main.kt", "kotlin"},
		{"build.gradle.kts", "kotlin"},
		{"README", "text"},
		{"notes.txt", "text"},
		{"archive.tar.gz", "text"},
		{"", "text"},
		// Extension matching is case-sensitive.
		{"MAIN.GO", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, commitgen.DetectLanguage(tt.path))
		})
	}
}

func TestComplexity(t *testing.T) {
	t.Parallel()

	t.Run("returns zero when nothing was added", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 0.0, commitgen.Complexity(" context only\n-removed line"))
	})

	t.Run("returns one when every added line is complex", func(t *testing.T) {
		t.Parallel()
		content := "+return a\n+return b\n+return c"
		assert.InDelta(t, 1.0, commitgen.Complexity(content), 0.001)
	})

	t.Run("scores the fraction of complex added lines", func(t *testing.T) {
		t.Parallel()
		content := "+plain words here\n+if something\n+more plain words\n+x := call()"
		assert.InDelta(t, 0.5, commitgen.Complexity(content), 0.001)
	})

	t.Run("counts structural characters as complex", func(t *testing.T) {
		t.Parallel()

		for _, line := range []string{"+x = 1;", "+fn()", "+done}", "+start{"} {
			assert.InDelta(t, 1.0, commitgen.Complexity(line), 0.001, "line %q", line)
		}
	})

	t.Run("counts marker substrings as complex", func(t *testing.T) {
		t.Parallel()

		for _, line := range []string{"+if x", "+for item in items", "+while true do", "+a => b", "+return"} {
			assert.InDelta(t, 1.0, commitgen.Complexity(line), 0.001, "line %q", line)
		}
	})

	t.Run("ignores context and deleted lines", func(t *testing.T) {
		t.Parallel()

		content := " if ctx {\n-while old {\n+plain added text"
		assert.Equal(t, 0.0, commitgen.Complexity(content))
	})
}
