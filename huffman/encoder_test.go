package huffman

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeFrequencies(counts ...uint64) Frequencies {
	var freq Frequencies
	copy(freq[:], counts)
	return freq
}

func TestEncoder(t *testing.T) {
	freq := makeFrequencies(5, 9, 12, 13, 16, 45)

	var e Encoder
	e.Init(&freq)

	expectDump := strings.Join([]string{
		"Encoder{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 4\n",
		"\tEncode(0) = \"1100\"\n",
		"\tEncode(1) = \"1101\"\n",
		"\tEncode(2) = \"100\"\n",
		"\tEncode(3) = \"101\"\n",
		"\tEncode(4) = \"111\"\n",
		"\tEncode(5) = \"0\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = e.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	if e.Root().Frequency() != 100 {
		t.Errorf("wrong root frequency: expected 100, got %d", e.Root().Frequency())
	}
}

func TestEncoder_TieBreak(t *testing.T) {
	type testRow struct {
		name   string
		counts []uint64
		codes  map[byte]string
	}

	testData := [...]testRow{
		{
			name:   "equal-leaves",
			counts: []uint64{1, 1, 1, 1},
			codes:  map[byte]string{0: "00", 1: "01", 2: "10", 3: "11"},
		},
		{
			name:   "leaf-before-internal",
			counts: []uint64{1, 1, 2},
			codes:  map[byte]string{0: "10", 1: "11", 2: "0"},
		},
		{
			name:   "two-leaves-by-frequency",
			counts: []uint64{5, 1},
			codes:  map[byte]string{0: "1", 1: "0"},
		},
		{
			name:   "older-internal-first",
			counts: []uint64{1, 1, 1, 1, 4},
			codes:  map[byte]string{0: "100", 1: "101", 2: "110", 3: "111", 4: "0"},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			freq := makeFrequencies(row.counts...)
			var e Encoder
			e.Init(&freq)
			assert.Equal(t, row.codes, e.CodeTable().Map())
		})
	}
}

func TestEncoder_SingleSymbol(t *testing.T) {
	var freq Frequencies
	freq['x'] = 11

	var e Encoder
	e.Init(&freq)

	_, isLeaf := e.Root().(*Leaf)
	require.True(t, isLeaf, "root of a one-symbol tree must be a leaf")
	assert.Equal(t, MakeCode(1, 0), e.Encode('x'))
	assert.Empty(t, e.Tree().Merges)
	assert.Equal(t, byte(1), e.MinSize())
	assert.Equal(t, byte(1), e.MaxSize())
}

func TestEncoder_EncodeBytesUnknownSymbol(t *testing.T) {
	freq := CountFrequencies([]byte("aab"))
	var e Encoder
	e.Init(&freq)

	_, err := e.EncodeBytes([]byte("abc"))
	require.ErrorIs(t, err, ErrUnknownSymbol)
	assert.Contains(t, err.Error(), "offset 2")
}

func TestBuildTree_Merges(t *testing.T) {
	freq := CountFrequencies([]byte{1, 3, 0, 3, 3, 3, 0})
	tree := BuildTree(&freq)

	require.Len(t, tree.Merges, 2)

	first := tree.Merges[0]
	assert.Equal(t, "sym=1 freq=1", first.Left.String())
	assert.Equal(t, "sym=0 freq=2", first.Right.String())
	assert.Equal(t, uint64(3), first.Parent.Freq)

	second := tree.Merges[1]
	assert.Same(t, first.Parent, second.Left)
	assert.Equal(t, "sym=3 freq=4", second.Right.String())
	assert.Equal(t, "inner freq=7", second.Parent.String())
	assert.Same(t, second.Parent, tree.Root)
}

func TestBuildTree_InternalFrequencyIsSum(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, 4096)
	for i := range data {
		data[i] = byte(rng.Intn(40) * rng.Intn(6))
	}
	freq := CountFrequencies(data)
	tree := BuildTree(&freq)

	var check func(n Node) uint64
	check = func(n Node) uint64 {
		switch n := n.(type) {
		case *Leaf:
			assert.Equal(t, freq[n.Symbol], n.Freq)
			return n.Freq
		case *Internal:
			sum := check(n.Left) + check(n.Right)
			assert.Equal(t, sum, n.Freq)
			return sum
		default:
			t.Fatalf("unexpected node type %T", n)
			return 0
		}
	}
	assert.Equal(t, uint64(len(data)), check(tree.Root))
}

func TestEncode_Banana(t *testing.T) {
	res, err := Encode([]byte{1, 3, 0, 3, 3, 3, 0})
	require.NoError(t, err)

	assert.Equal(t, map[byte]string{0: "01", 1: "00", 3: "1"}, res.Codes.Map())
	assert.Equal(t, "0010111101", res.Bits.String())
	assert.Equal(t, []byte{0x2F, 0x40}, res.Packed)
	assert.Equal(t, 6, res.PadBits)
	assert.Equal(t, uint64(4), res.Frequencies[3])
}

func TestEncode_Empty(t *testing.T) {
	res, err := Encode(nil)
	require.NoError(t, err)

	assert.Nil(t, res.Tree.Root)
	assert.Empty(t, res.Codes)
	assert.Empty(t, res.Packed)
	assert.Equal(t, 0, res.PadBits)
	assert.Equal(t, 0, res.Bits.Len())
}

func TestEncode_SingleSymbol(t *testing.T) {
	data := []byte(strings.Repeat("z", 11))
	res, err := Encode(data)
	require.NoError(t, err)

	assert.Equal(t, map[byte]string{'z': "0"}, res.Codes.Map())
	assert.Equal(t, len(data), res.Bits.Len())
	assert.Equal(t, []byte{0x00, 0x00}, res.Packed)
	assert.Equal(t, 5, res.PadBits)
}

func TestEncode_PrefixFree(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.Intn(2000)
		spread := 1 + rng.Intn(256)
		data := make([]byte, n)
		for i := range data {
			// Squaring skews the distribution toward small values, which
			// produces deeper trees than a uniform one.
			v := rng.Intn(spread)
			data[i] = byte(v * v / spread)
		}

		res, err := Encode(data)
		require.NoError(t, err)
		require.NoError(t, res.Codes.CheckPrefixFree(), "trial %d", trial)

		var total int
		for _, b := range data {
			hc, ok := res.Codes.Lookup(b)
			require.True(t, ok)
			total += int(hc.Size)
		}
		assert.Equal(t, total, res.Bits.Len())
		assert.Equal(t, (total+7)/8, len(res.Packed))
	}
}

func TestEncode_Deterministic(t *testing.T) {
	data := []byte("it was the best of times, it was the worst of times")
	a, err := Encode(data)
	require.NoError(t, err)
	b, err := Encode(data)
	require.NoError(t, err)

	assert.Equal(t, a.Packed, b.Packed)
	assert.Equal(t, a.PadBits, b.PadBits)
	assert.Equal(t, a.Codes, b.Codes)
}
