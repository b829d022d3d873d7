package huffman

// NumSymbols is the size of the byte alphabet.
const NumSymbols = 256

// Frequencies holds the number of occurrences of each byte value.
type Frequencies [NumSymbols]uint64

// CountFrequencies tallies the occurrences of each byte value in data.
func CountFrequencies(data []byte) Frequencies {
	var freq Frequencies
	for _, b := range data {
		freq[b]++
	}
	return freq
}

// Symbols returns the byte values with a non-zero frequency, ascending.
func (freq *Frequencies) Symbols() []byte {
	out := make([]byte, 0, NumSymbols)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freq[symbol] != 0 {
			out = append(out, byte(symbol))
		}
	}
	return out
}

// Total returns the sum of all frequencies.
func (freq *Frequencies) Total() uint64 {
	var sum uint64
	for _, f := range freq {
		sum += f
	}
	return sum
}
