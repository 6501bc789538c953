package hmcfgusb_test

import (
	"fmt"
	"strings"
)

// hexRecord formats a single Intel HEX record including its checksum.
func hexRecord(addr uint16, typ byte, data []byte) string {
	sum := byte(len(data)) + byte(addr>>8) + byte(addr) + typ
	var sb strings.Builder
	fmt.Fprintf(&sb, ":%02X%04X%02X", len(data), addr, typ)
	for _, b := range data {
		fmt.Fprintf(&sb, "%02X", b)
		sum += b
	}
	fmt.Fprintf(&sb, "%02X\n", -sum)
	return sb.String()
}

func hexEOF() string {
	return hexRecord(0, 0x01, nil)
}

// sequence returns n bytes counting up from start.
func sequence(start byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}
