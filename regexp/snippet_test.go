package regexp_test

import (
	"strings"
	"testing"

	"github.com/danespinosa/unsublink"
	"github.com/danespinosa/unsublink/regexp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnippetExtractor_ExtractSnippets(t *testing.T) {
	t.Parallel()

	t.Run("implements unsublink.SnippetExtractor interface", func(t *testing.T) {
		t.Parallel()
		var _ unsublink.SnippetExtractor = regexp.NewSnippetExtractor()
	})

	t.Run("returns nothing without keywords", func(t *testing.T) {
		t.Parallel()

		snippets := regexp.NewSnippetExtractor().ExtractSnippets("Hello there, see you soon.")

		assert.Empty(t, snippets)
	})

	t.Run("uses wide window without nearby anchor", func(t *testing.T) {
		t.Parallel()

		pad := strings.Repeat("x", 1500)
		body := pad + "unsubscribe" + pad

		snippets := regexp.NewSnippetExtractor().ExtractSnippets(body)

		require.Len(t, snippets, 1)
		assert.Equal(t, 1500, snippets[0].Position)
		assert.Len(t, snippets[0].Text, regexp.WideMargin*2+len("unsubscribe"))
		assert.Contains(t, snippets[0].Text, "unsubscribe")
	})

	t.Run("clips wide window at body boundaries", func(t *testing.T) {
		t.Parallel()

		body := "Reply STOP to unsubscribe."

		snippets := regexp.NewSnippetExtractor().ExtractSnippets(body)

		require.Len(t, snippets, 1)
		assert.Equal(t, body, snippets[0].Text)
	})

	t.Run("uses tight window around forward anchor", func(t *testing.T) {
		t.Parallel()

		anchor := `<a href="/stop">click here</a>`
		body := strings.Repeat("y", 1200) + "To unsubscribe " + strings.Repeat("z", 400) + anchor + strings.Repeat("w", 1200)

		snippets := regexp.NewSnippetExtractor().ExtractSnippets(body)

		require.Len(t, snippets, 1)
		assert.Contains(t, snippets[0].Text, anchor)
		assert.Len(t, snippets[0].Text, regexp.TightMargin*2+len(anchor))
	})

	t.Run("uses tight window around backward anchor", func(t *testing.T) {
		t.Parallel()

		anchor := `<a href="/prefs">Unsubscribe</a>`
		body := strings.Repeat("y", 1200) + anchor + strings.Repeat("z", 300) + " manage preferences " + strings.Repeat("w", 1200)

		snippets := regexp.NewSnippetExtractor().ExtractSnippets(body)

		// The anchor text is itself a keyword occurrence, so it seeds the
		// first snippet; "manage preferences" looks back to the same anchor.
		require.Len(t, snippets, 2)
		assert.Equal(t, strings.Index(body, "manage preferences"), snippets[1].Position)
		assert.Contains(t, snippets[1].Text, anchor)
		assert.Len(t, snippets[1].Text, regexp.TightMargin*2+len(anchor))
		assert.Equal(t, snippets[0].Text, snippets[1].Text)
	})

	t.Run("caps snippets and skips covered occurrences", func(t *testing.T) {
		t.Parallel()

		gap := strings.Repeat(".", 2500)
		body := "unsubscribe unsubscribe" + gap + "opt out" + gap + "preferences" + gap + "optout"

		snippets := regexp.NewSnippetExtractor().ExtractSnippets(body)

		require.Len(t, snippets, unsublink.MaxSnippets)
		assert.Equal(t, 0, snippets[0].Position)
		assert.Equal(t, strings.Index(body, "opt out"), snippets[1].Position)
		assert.Equal(t, strings.Index(body, "preferences"), snippets[2].Position)
	})
}
