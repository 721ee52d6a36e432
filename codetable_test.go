package huffman

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeriveCodes_Dump(t *testing.T) {
	codes := DeriveCodes(BuildTree(countBytes("aab")))

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 2\n",
		"\tEncode(97) = \"0\"\n",
		"\tEncode(98) = \"10\"\n",
		"\tEncode(256) = \"11\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = codes.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}

func TestDeriveCodes_SingleSymbol(t *testing.T) {
	codes := DeriveCodes(BuildTree(countBytes(strings.Repeat("\x41", 1000))))

	require.Equal(t, MakeCode(1, 1), codes.Encode(0x41))
	require.Equal(t, MakeCode(1, 0), codes.Encode(EOFSymbol))
	require.Equal(t, Code{}, codes.Encode(0x42))
}

func TestDeriveCodes_PrefixProperty(t *testing.T) {
	inputs := []string{
		"",
		"aab",
		"abracadabra",
		"the quick brown fox jumps over the lazy dog",
		allBytes(),
		strings.Repeat("a", 64) + strings.Repeat("b", 32) + strings.Repeat("c", 16) + strings.Repeat("d", 8) + "efgh",
	}
	for _, input := range inputs {
		tree := BuildTree(countBytes(input))
		codes := DeriveCodes(tree)

		var symbols []Symbol
		for symbol, hc := range codes {
			if hc.Size != 0 {
				symbols = append(symbols, Symbol(symbol))
			}
		}
		require.ElementsMatch(t, tree.Leaves(), symbols, "input %q", input)

		for _, a := range symbols {
			for _, b := range symbols {
				if a == b {
					continue
				}
				require.False(t, codes[a].HasPrefix(codes[b]), "input %q: %d=%s has prefix %d=%s", input, a, codes[a], b, codes[b])
			}
		}
	}
}

func TestDeriveCodes_AllBytes(t *testing.T) {
	codes := DeriveCodes(BuildTree(countBytes(allBytes())))

	// 256 leaves of weight 1 plus the sentinel: one leaf is one bit
	// deeper than the rest.
	require.Equal(t, byte(8), codes.MinSize())
	require.Equal(t, byte(9), codes.MaxSize())
}
