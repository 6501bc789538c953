package hmcfgusb

import (
	"io"
)

// parseCustom reads the native HM-CFG-USB firmware format: a sequence of
// 4 hex digit lengths each followed by that many hex encoded bytes. Every
// entry is sent to the device as one block.
func parseCustom(r io.Reader) (*Image, error) {
	img := new(Image)
	var lenBuf [4]byte

	for {
		num := img.Len() + 1

		err := readField(r, lenBuf[:], "can't get length information")
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		length, err := decodeUint(lenBuf[:])
		if err != nil {
			return nil, atBlock(err, num)
		}
		if length > MaxBlockLength {
			return nil, formatErrorf(num, "invalid block length %d > %d", length, MaxBlockLength)
		}
		if num > 0xFFFF+1 {
			return nil, formatErrorf(num, "too many blocks")
		}

		// A zero length block is the last one, there is no payload to read.
		if length == 0 {
			img.add([]byte{}, nil)
			pkgLog.Debugf("firmware block %d with length 0 read", num)
			break
		}

		src := make([]byte, length*2)
		if err := readField(r, src, "read block"); err != nil {
			if err == io.EOF {
				return nil, &IoError{Op: "read block", Err: io.ErrUnexpectedEOF}
			}
			return nil, err
		}
		payload := make([]byte, length)
		if err := DecodeHex(payload, src); err != nil {
			return nil, atBlock(err, num)
		}
		img.add(payload, nil)
		pkgLog.Debugf("firmware block %d with length %d read", num, length)
	}

	if img.Len() == 0 {
		return nil, &FormatError{Msg: "no blocks found"}
	}
	return img, nil
}
