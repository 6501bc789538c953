package hmcfgusb

// CRC16Init is the seed for a fresh checksum computation.
const CRC16Init = 0xFFFF

const crc16Poly = 0x1021

// CRC16 runs the bootloader checksum over buf, starting from crc.
//
// Input bits are shifted into the register MSB first and the polynomial is
// applied on the bit shifted out, without reflection or final XOR. Over a
// buffer that ends in two zero bytes the result equals CRC-16/AUG-CCITT of
// the bytes before them, which is what the bootloader checks.
func CRC16(buf []byte, crc uint16) uint16 {
	for _, b := range buf {
		for bit := 7; bit >= 0; bit-- {
			flag := crc & 0x8000
			crc <<= 1
			if b&(1<<uint(bit)) != 0 {
				crc |= 1
			}
			if flag != 0 {
				crc ^= crc16Poly
			}
		}
	}
	return crc
}
