package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// %や_はリテラルとして扱う（%だけで全件ヒットさせない）
func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "gold", escapeLike("gold"))
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `ring\_gold`, escapeLike("ring_gold"))
	assert.Equal(t, `a\\b`, escapeLike(`a\b`))
	assert.Equal(t, `\%\%`, escapeLike("%%"))
}
