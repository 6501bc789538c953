package hmcfgusb

import (
	"bufio"
	"io"
)

const (
	recordData = 0x00
	recordEOF  = 0x01
)

// Records must fit into a 16 bit address space.
const maxAddress = 0x10000

// Size of the record header after the start code: byte count, address, type.
const recordHeaderLength = 2 + 4 + 2

// parseIntelHex reads an AsksinPP style Intel HEX file whose leading ':' has
// already been consumed and splits the resulting flash image into blocks
// of chip.BlockLength bytes.
func parseIntelHex(r *bufio.Reader, chip *ChipProfile) (*Image, error) {
	if chip == nil {
		return nil, ErrChipProfileRequired
	}
	if err := chip.validate(); err != nil {
		return nil, err
	}
	pkgLog.Infof("using %v values for direct hex flashing", chip.Name)

	image, err := buildRawImage(r, chip.ImageSize)
	if err != nil {
		return nil, err
	}
	return chunkImage(image, chip)
}

// buildRawImage applies the data records read from r to an erased image of
// size bytes. The last two bytes of the image are reserved for the checksum
// and are cleared.
func buildRawImage(r *bufio.Reader, size int) ([]byte, error) {
	image := make([]byte, size)
	for i := range image {
		image[i] = 0xFF
	}

	var hdr [recordHeaderLength]byte
	for record := 1; ; record++ {
		err := readField(r, hdr[:], "can't get record information")
		if err == io.EOF {
			return nil, formatErrorf(record, "EOF without EOF record")
		}
		if err != nil {
			return nil, err
		}

		v, err := decodeUint(hdr[:])
		if err != nil {
			return nil, atBlock(err, record)
		}
		length := int(v >> 24)
		addr := int(v>>8) & 0xFFFF
		typ := byte(v)
		pkgLog.Debugf("length: %d, address: 0x%04x, type: 0x%02x", length, addr, typ)

		if length > MaxBlockLength {
			return nil, formatErrorf(record, "invalid block length %d > %d", length, MaxBlockLength)
		}

		switch typ {
		case recordData:
			// Data followed by the record checksum, which is not checked.
			src := make([]byte, length*2+2)
			err := readField(r, src, "read record")
			if err == io.EOF {
				return finishImage(image), nil
			}
			if err != nil {
				return nil, err
			}
			if addr+length > maxAddress {
				return nil, formatErrorf(record, "data at 0x%04x-0x%04x exceeds address space", addr, addr+length)
			}
			data := make([]byte, length)
			if err := DecodeHex(data, src[:length*2]); err != nil {
				return nil, atBlock(err, record)
			}
			// Only the flash image is sent, anything above it is dropped.
			if n := copyInImage(image, addr, data); n < length {
				pkgLog.Debugf("ignoring data at 0x%04x-0x%04x beyond image size 0x%04x", addr+n, addr+length, size)
			}
			if err := skipToRecord(r); err != nil {
				return nil, err
			}

		case recordEOF:
			return finishImage(image), nil

		default:
			return nil, formatErrorf(record, "can't handle record type 0x%02x", typ)
		}
	}
}

// copyInImage copies data to image at addr and returns the number of bytes
// that fell inside the image.
func copyInImage(image []byte, addr int, data []byte) int {
	if addr >= len(image) {
		return 0
	}
	return copy(image[addr:], data)
}

// skipToRecord consumes input up to and including the next ':'.
// Reaching the end of the input is not an error here.
func skipToRecord(r *bufio.Reader) error {
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return &IoError{Op: "read", Err: err}
		}
		if c == ':' {
			return nil
		}
	}
}

func finishImage(image []byte) []byte {
	image[len(image)-2] = 0x00
	image[len(image)-1] = 0x00
	return image
}

// chunkImage splits the image into blocks. The checksum over the whole
// image replaces the two cleared bytes at the end of the last block.
func chunkImage(image []byte, chip *ChipProfile) (*Image, error) {
	crc := CRC16(image, CRC16Init)
	pkgLog.Debugf("CRC: %04x", crc)

	img := &Image{Chip: chip}
	for offset := 0; offset < len(image); offset += chip.BlockLength {
		block := image[offset : offset+chip.BlockLength : offset+chip.BlockLength]
		if offset+chip.BlockLength == len(image) {
			img.add(block[:len(block)-2], []byte{byte(crc), byte(crc >> 8)})
		} else {
			img.add(block, nil)
		}
		pkgLog.Debugf("firmware block %d with length %d read", img.Len(), chip.BlockLength)
	}

	if img.Len() == 0 {
		return nil, &FormatError{Msg: "no blocks found"}
	}
	return img, nil
}
