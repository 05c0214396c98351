package chroma_test

import (
	"testing"

	"github.com/fwojciec/commitgen"
	"github.com/fwojciec/commitgen/chroma"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_DetectFromPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		path string
		want string
	}{
		{"go file", "main.go", "Go"},
		{"strips a/ prefix", "a/main.go", "Go"},
		{"strips b/ prefix", "b/src/app.py", "Python"},
		{"typescript", "component.ts", "TypeScript"},
		{"unknown extension", "file.zzz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, chroma.NewDetector().DetectFromPath(tt.path))
		})
	}
}

func TestTokenizer_Tokenize(t *testing.T) {
	t.Parallel()

	palette := commitgen.Palette{
		Keyword: "#ff0000",
		String:  "#00ff00",
	}

	newTokenizer := func(t *testing.T) *chroma.Tokenizer {
		t.Helper()
		tok, err := chroma.NewTokenizer(chroma.StyleFromPalette(palette))
		require.NoError(t, err)
		return tok
	}

	t.Run("styles keywords from the palette", func(t *testing.T) {
		t.Parallel()

		tokens := newTokenizer(t).Tokenize("Go", "package main")
		require.NotEmpty(t, tokens)

		var foundKeyword bool
		for _, tok := range tokens {
			if tok.Text == "package" {
				foundKeyword = true
				assert.Equal(t, "#ff0000", tok.Style.Foreground)
				assert.True(t, tok.Style.Bold)
			}
		}
		assert.True(t, foundKeyword, "expected a package keyword token")
	})

	t.Run("returns nil for unsupported languages", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, newTokenizer(t).Tokenize("not-a-language", "some source"))
	})

	t.Run("returns empty slice for empty source", func(t *testing.T) {
		t.Parallel()
		tokens := newTokenizer(t).Tokenize("Go", "")
		assert.NotNil(t, tokens)
		assert.Empty(t, tokens)
	})

	t.Run("requires a style function", func(t *testing.T) {
		t.Parallel()
		_, err := chroma.NewTokenizer(nil)
		assert.Error(t, err)
	})
}
