package huffman

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCountFrequencies(t *testing.T) {
	freq := countBytes("abracadabra")

	require.Equal(t, uint64(5), freq['a'])
	require.Equal(t, uint64(2), freq['b'])
	require.Equal(t, uint64(2), freq['r'])
	require.Equal(t, uint64(1), freq['c'])
	require.Equal(t, uint64(1), freq['d'])
	require.Equal(t, uint64(0), freq['z'])
	require.Equal(t, uint64(1), freq[EOFSymbol])
	require.Equal(t, uint64(11), freq.Total())
}

func TestCountFrequencies_Empty(t *testing.T) {
	freq := countBytes("")

	require.Equal(t, uint64(0), freq.Total())
	require.Equal(t, uint64(1), freq[EOFSymbol])
}

func TestCountFrequencies_IOError(t *testing.T) {
	_, err := CountFrequencies(&failingReader{failRead: true})

	require.True(t, errors.Is(err, IOError))
	require.True(t, errors.Is(err, errTest))
	var e *Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, PhaseCount, e.Phase)
}

func TestFrequencyTable_Dump(t *testing.T) {
	freq := countBytes("aab")

	expectDump := strings.Join([]string{
		"FrequencyTable{\n",
		"\tCount(97) = 2\n",
		"\tCount(98) = 1\n",
		"\tCount(256) = 1\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = freq.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
