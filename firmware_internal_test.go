package hmcfgusb

import (
	"strings"
	"testing"
)

func TestParseCustomNoBlocks(t *testing.T) {
	img, err := parseCustom(strings.NewReader(""))
	fe, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("parseCustom() = %v, %v, want FormatError", img, err)
	}
	if fe.Msg != "no blocks found" {
		t.Errorf("error = %v", fe)
	}
}

func TestChunkImageNoBlocks(t *testing.T) {
	chip := ATmega328P
	img, err := chunkImage(nil, &chip)
	fe, ok := err.(*FormatError)
	if !ok {
		t.Fatalf("chunkImage() = %v, %v, want FormatError", img, err)
	}
	if fe.Msg != "no blocks found" {
		t.Errorf("error = %v", fe)
	}
}

func TestCopyInImage(t *testing.T) {
	image := make([]byte, 4)
	tests := []struct {
		addr int
		want int
	}{
		{0, 2},
		{3, 1},
		{4, 0},
		{0x1000, 0},
	}
	for _, tt := range tests {
		if n := copyInImage(image, tt.addr, []byte{1, 2}); n != tt.want {
			t.Errorf("copyInImage(%d) = %d, want %d", tt.addr, n, tt.want)
		}
	}
}
