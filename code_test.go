package huffman

import (
	"testing"
)

func TestCode_String(t *testing.T) {
	type testRow struct {
		size   byte
		bits   uint64
		expect string
	}

	testData := [...]testRow{
		{size: 0, bits: 0x00, expect: `""`},
		{size: 1, bits: 0x00, expect: `"0"`},
		{size: 1, bits: 0x01, expect: `"1"`},
		{size: 3, bits: 0x01, expect: `"001"`},
		{size: 4, bits: 0x0b, expect: `"1011"`},
	}
	for _, row := range testData {
		hc := MakeCode(row.size, row.bits)
		t.Run(row.expect, func(t *testing.T) {
			actual := hc.String()
			if row.expect != actual {
				t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", row.expect, actual)
			}
		})
	}
}

func TestCode_Append(t *testing.T) {
	var hc Code
	for _, bit := range []uint64{1, 0, 1, 1} {
		hc = hc.Append(bit)
	}
	expect := MakeCode(4, 0x0b)
	if hc != expect {
		t.Errorf("wrong code:\n\texpect: %s\n\tactual: %s", expect, hc)
	}
	for i, bit := range []uint64{1, 0, 1, 1} {
		if actual := hc.Bit(byte(i)); actual != bit {
			t.Errorf("Bit(%d): expected %d, got %d", i, bit, actual)
		}
	}
}

func TestCode_HasPrefix(t *testing.T) {
	hc := MakeCode(4, 0x0b)

	type testRow struct {
		prefix Code
		expect bool
	}

	testData := [...]testRow{
		{prefix: MakeCode(0, 0x00), expect: true},
		{prefix: MakeCode(1, 0x01), expect: true},
		{prefix: MakeCode(1, 0x00), expect: false},
		{prefix: MakeCode(3, 0x05), expect: true},
		{prefix: MakeCode(4, 0x0b), expect: true},
		{prefix: MakeCode(4, 0x0a), expect: false},
		{prefix: MakeCode(5, 0x16), expect: false},
	}
	for _, row := range testData {
		t.Run(row.prefix.String(), func(t *testing.T) {
			if actual := hc.HasPrefix(row.prefix); actual != row.expect {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}
