package idgen_test

import (
	"strings"
	"testing"

	"github.com/jimyag/vml/pkg/idgen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateServerID(t *testing.T) {
	t.Parallel()

	t.Run("has srv prefix", func(t *testing.T) {
		t.Parallel()
		id, err := idgen.GenerateServerID()
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(id, "srv-"))
	})

	t.Run("ids are unique and increasing", func(t *testing.T) {
		t.Parallel()
		gen := idgen.New()

		seen := make(map[uint64]bool)
		var prev uint64
		for i := 0; i < 1000; i++ {
			id, err := gen.GenerateID()
			require.NoError(t, err)
			assert.False(t, seen[id], "duplicate ID generated")
			assert.Greater(t, id, prev)
			seen[id] = true
			prev = id
		}
	})
}

func TestDefaultGenerator(t *testing.T) {
	t.Parallel()

	// 默认生成器是单例
	assert.Same(t, idgen.DefaultGenerator(), idgen.DefaultGenerator())
}
