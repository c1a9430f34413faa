package idgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/block-cats/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("game")
	assert.Equal(t, "game_1", gen.Generate())
	assert.Equal(t, "game_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUIDGenerator(t *testing.T) {
	gen := idgen.NewUUID("game")
	a, b := gen.Generate(), gen.Generate()

	assert.True(t, strings.HasPrefix(a, "game_"))
	assert.NotEqual(t, a, b)
	assert.Len(t, strings.TrimPrefix(a, "game_"), 36)
}
