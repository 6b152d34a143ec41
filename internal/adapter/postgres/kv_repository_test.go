package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikePrefixEscapesWildcards(t *testing.T) {
	tests := map[string]string{
		"":             "%",
		"note:offers:": "note:offers:%",
		"flag:a_b:":    `flag:a\_b:%`,
		"50%":          `50\%%`,
		`back\slash`:   `back\\slash%`,
	}
	for in, want := range tests {
		assert.Equal(t, want, likePrefix(in), in)
	}
}
