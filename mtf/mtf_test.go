package mtf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabet(t *testing.T) {
	assert.Equal(t, []rune{0, 'a', 'b', 'n'}, Alphabet([]rune("annb\x00aa")))
	assert.Equal(t, []rune{}, Alphabet(nil))
	assert.Equal(t, []rune("ÄÜß€"), Alphabet([]rune("€ÜÄßÄ")))
}

func TestEncode_Banana(t *testing.T) {
	symbols := []rune("annb\x00aa")
	out, err := Encode(symbols, Alphabet(symbols))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 0, 3, 3, 3, 0}, out)
}

func TestEncoder_Steps(t *testing.T) {
	e := NewEncoder([]rune("abc"))

	type testRow struct {
		sym   rune
		pos   int
		after string
	}

	testData := [...]testRow{
		{sym: 'c', pos: 2, after: "cab"},
		{sym: 'c', pos: 0, after: "cab"},
		{sym: 'b', pos: 2, after: "bca"},
		{sym: 'a', pos: 2, after: "abc"},
		{sym: 'b', pos: 1, after: "bac"},
	}
	for _, row := range testData {
		pos, err := e.Encode(row.sym)
		require.NoError(t, err)
		assert.Equal(t, row.pos, pos)
		assert.Equal(t, row.after, string(e.List()))
	}
}

func TestEncode_ConstantInput(t *testing.T) {
	symbols := []rune("zzzzzzzzzz")
	out, err := Encode(symbols, []rune("z"))
	require.NoError(t, err)
	assert.Equal(t, make([]int, len(symbols)), out)
}

func TestEncode_Empty(t *testing.T) {
	out, err := Encode(nil, nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestEncode_SymbolNotInAlphabet(t *testing.T) {
	_, err := Encode([]rune("abx"), []rune("ab"))
	require.ErrorIs(t, err, ErrInvariantViolation)
	assert.Contains(t, err.Error(), "position 2")
}

func TestDecode_IndexOutOfRange(t *testing.T) {
	_, err := Decode([]int{0, 2}, []rune("ab"))
	assert.ErrorIs(t, err, ErrInvariantViolation)

	_, err = Decode([]int{-1}, []rune("ab"))
	assert.ErrorIs(t, err, ErrInvariantViolation)
}

func TestEncode_DoesNotModifyAlphabet(t *testing.T) {
	alphabet := []rune("abc")
	_, err := Encode([]rune("cba"), alphabet)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(alphabet))
}

func TestDecode_RoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	pool := []rune("\x00abcdefghij€ß")
	for trial := 0; trial < 200; trial++ {
		symbols := make([]rune, rng.Intn(100))
		span := 1 + rng.Intn(len(pool))
		for i := range symbols {
			symbols[i] = pool[rng.Intn(span)]
		}
		alphabet := Alphabet(symbols)

		out, err := Encode(symbols, alphabet)
		require.NoError(t, err)
		require.Len(t, out, len(symbols))
		for _, pos := range out {
			require.True(t, pos >= 0 && pos < len(alphabet))
		}

		decoded, err := Decode(out, alphabet)
		require.NoError(t, err)
		assert.Equal(t, string(symbols), string(decoded), "trial %d", trial)
	}
}
