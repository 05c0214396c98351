package commitgen_test

import (
	"testing"

	"github.com/fwojciec/commitgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommitMessage(t *testing.T) {
	t.Parallel()

	t.Run("parses a minimal header", func(t *testing.T) {
		t.Parallel()

		msg, err := commitgen.ParseCommitMessage("fix: handle empty diff input")

		require.NoError(t, err)
		assert.Equal(t, commitgen.TypeFix, msg.Type)
		assert.Empty(t, msg.Scope)
		assert.False(t, msg.Breaking)
		assert.Equal(t, "handle empty diff input", msg.Description)
	})

	t.Run("parses scope and breaking marker", func(t *testing.T) {
		t.Parallel()

		msg, err := commitgen.ParseCommitMessage("feat(parser)!: drop legacy header support")

		require.NoError(t, err)
		assert.Equal(t, commitgen.TypeFeat, msg.Type)
		assert.Equal(t, "parser", msg.Scope)
		assert.True(t, msg.Breaking)
	})

	t.Run("parses body and footer", func(t *testing.T) {
		t.Parallel()

		text := "refactor(core): simplify hunk splitting\n\n" +
			"The previous implementation scanned the input twice.\n\n" +
			"Refs: #42"

		msg, err := commitgen.ParseCommitMessage(text)

		require.NoError(t, err)
		assert.Equal(t, "The previous implementation scanned the input twice.", msg.Body)
		assert.Equal(t, "Refs: #42", msg.Footer)
	})

	t.Run("breaking change footer sets the flag", func(t *testing.T) {
		t.Parallel()

		text := "feat(api): rework request types\n\n" +
			"Details here.\n\n" +
			"BREAKING CHANGE: request structs renamed"

		msg, err := commitgen.ParseCommitMessage(text)

		require.NoError(t, err)
		assert.True(t, msg.Breaking)
		assert.Contains(t, msg.Footer, "BREAKING CHANGE")
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		t.Parallel()

		_, err := commitgen.ParseCommitMessage("added some stuff")
		assert.Error(t, err)
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		t.Parallel()

		_, err := commitgen.ParseCommitMessage("wip: half done")
		assert.ErrorContains(t, err, "unknown commit type")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		t.Parallel()

		_, err := commitgen.ParseCommitMessage("   \n  ")
		assert.Error(t, err)
	})
}

func TestCommitMessage_String(t *testing.T) {
	t.Parallel()

	t.Run("renders the literal form", func(t *testing.T) {
		t.Parallel()

		msg := &commitgen.CommitMessage{
			Type:        commitgen.TypeFeat,
			Scope:       "cli",
			Breaking:    true,
			Description: "add interactive mode",
			Body:        "Adds a hunk picker.",
			Footer:      "Refs: #7",
		}

		assert.Equal(t,
			"feat(cli)!: add interactive mode\n\nAdds a hunk picker.\n\nRefs: #7",
			msg.String())
	})

	t.Run("round-trips through parsing", func(t *testing.T) {
		t.Parallel()

		original := "fix(git)!: quote paths with spaces\n\nLong explanation.\n\nRefs: #99"

		msg, err := commitgen.ParseCommitMessage(original)
		require.NoError(t, err)
		assert.Equal(t, original, msg.String())
	})
}

func TestCommitType_Valid(t *testing.T) {
	t.Parallel()

	for _, typ := range []commitgen.CommitType{
		commitgen.TypeFeat, commitgen.TypeFix, commitgen.TypeDocs,
		commitgen.TypeStyle, commitgen.TypeRefactor, commitgen.TypePerf,
		commitgen.TypeTest, commitgen.TypeBuild, commitgen.TypeCI,
		commitgen.TypeChore, commitgen.TypeRevert,
	} {
		assert.True(t, typ.Valid(), "type %q", typ)
	}
	assert.False(t, commitgen.CommitType("wip").Valid())
}
