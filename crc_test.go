package hmcfgusb_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/volschin/hmcfgusb"
)

func TestCRC16Vectors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want uint16
	}{
		{"empty", nil, 0xFFFF},
		{"1234", []byte("1234"), 0x9741},
		{"check string", []byte("123456789"), 0xA69D},
		{"check string augmented", []byte("123456789\x00\x00"), 0xE5CC},
		{"zeros", []byte{0, 0, 0, 0}, 0x84C0},
		{"blank 328P image", blankImage(0x7000), 0x7F67},
		{"blank 644P image", blankImage(0xF000), 0xF688},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := hmcfgusb.CRC16(tt.data, hmcfgusb.CRC16Init); got != tt.want {
				t.Errorf("CRC16() = %#04x, want %#04x", got, tt.want)
			}
		})
	}
}

func TestCRC16DoesNotModifyInput(t *testing.T) {
	data := []byte{0x80, 0xFF, 0x01, 0x55}
	orig := append([]byte(nil), data...)
	hmcfgusb.CRC16(data, hmcfgusb.CRC16Init)
	if !bytes.Equal(data, orig) {
		t.Errorf("input changed to % x, want % x", data, orig)
	}
}

func TestCRC16Chained(t *testing.T) {
	data := []byte("HM-CFG-USB firmware")
	whole := hmcfgusb.CRC16(data, hmcfgusb.CRC16Init)
	split := hmcfgusb.CRC16(data[7:], hmcfgusb.CRC16(data[:7], hmcfgusb.CRC16Init))
	if whole != split {
		t.Errorf("chained CRC16 = %#04x, want %#04x", split, whole)
	}
}

// augCCITT is a plain CRC-16/AUG-CCITT (poly 0x1021, init 0x1D0F).
func augCCITT(data []byte) uint16 {
	crc := uint16(0x1D0F)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

func TestCRC16MatchesAugCCITT(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		data := make([]byte, rnd.Intn(300))
		rnd.Read(data)
		want := augCCITT(data)
		got := hmcfgusb.CRC16(append(data, 0, 0), hmcfgusb.CRC16Init)
		if got != want {
			t.Fatalf("CRC16(% x 00 00) = %#04x, want %#04x", data, got, want)
		}
	}
}

func blankImage(size int) []byte {
	b := bytes.Repeat([]byte{0xFF}, size)
	b[size-2] = 0
	b[size-1] = 0
	return b
}
