package help

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchServiceType(t *testing.T) {
	vocab := []string{"hospital", "pharmacy", "police"}

	t.Run("exact label", func(t *testing.T) {
		assert.Equal(t, "hospital", matchServiceType("hospital", vocab))
	})

	t.Run("close label", func(t *testing.T) {
		assert.Equal(t, "hospital", matchServiceType("hosp", vocab))
	})

	t.Run("case insensitive, original label returned", func(t *testing.T) {
		assert.Equal(t, "Fire Station", matchServiceType("fire station", []string{"Fire Station"}))
	})

	t.Run("token order insensitive", func(t *testing.T) {
		assert.Equal(t, "general hospital", matchServiceType("hospital general", []string{"general hospital"}))
	})

	t.Run("no label above threshold", func(t *testing.T) {
		assert.Equal(t, TypeUnknown, matchServiceType("xyzzy", vocab))
	})

	t.Run("weak character overlap is not a match", func(t *testing.T) {
		// These hints share letters with the vocabulary labels but score
		// well below the threshold; they must resolve to the sentinel,
		// not to the least-dissimilar label.
		assert.Equal(t, TypeUnknown, matchServiceType("clinic", []string{"police"}))
		assert.Equal(t, TypeUnknown, matchServiceType("food", []string{"doctor"}))
		assert.Equal(t, TypeUnknown, matchServiceType("garage", []string{"pharmacy"}))
	})

	t.Run("empty vocabulary", func(t *testing.T) {
		assert.Equal(t, TypeUnknown, matchServiceType("hospital", nil))
	})

	t.Run("empty hint", func(t *testing.T) {
		assert.Equal(t, TypeUnknown, matchServiceType("  ", vocab))
	})

	t.Run("idempotent for unchanged vocabulary", func(t *testing.T) {
		first := matchServiceType("pharmcy", vocab)
		second := matchServiceType("pharmcy", vocab)
		assert.Equal(t, first, second)
	})
}
