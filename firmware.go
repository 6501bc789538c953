package hmcfgusb

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// MaxBlockLength is the largest payload accepted for a single block.
const MaxBlockLength = 2048

const blockHeaderLength = 4

// Block is a single flash write unit as sent to the bootloader.
type Block struct {
	Index   uint16
	Payload []byte
	// Trailer holds the image checksum (low byte first) on the last block of
	// an image built from a hex file. It is nil otherwise.
	Trailer []byte
}

// Len returns the length field sent in the block header.
func (b *Block) Len() int {
	return len(b.Payload) + len(b.Trailer)
}

// Bytes returns the block in wire format: big-endian index and length,
// followed by the payload and trailer.
func (b *Block) Bytes() []byte {
	buf := make([]byte, blockHeaderLength, blockHeaderLength+b.Len())
	binary.BigEndian.PutUint16(buf[0:], b.Index)
	binary.BigEndian.PutUint16(buf[2:], uint16(b.Len()))
	buf = append(buf, b.Payload...)
	return append(buf, b.Trailer...)
}

// Image is a firmware image split into blocks in transfer order.
type Image struct {
	Blocks []*Block
	// Chip is the profile used to build the blocks, nil for native firmware files.
	Chip *ChipProfile
}

// Len returns the number of blocks in the image.
func (img *Image) Len() int {
	return len(img.Blocks)
}

// Release drops the blocks held by the image. It is safe to call more than once.
func (img *Image) Release() {
	img.Blocks = nil
}

func (img *Image) add(payload, trailer []byte) {
	img.Blocks = append(img.Blocks, &Block{
		Index:   uint16(len(img.Blocks)),
		Payload: payload,
		Trailer: trailer,
	})
}

// LoadFirmwareFile reads a firmware image from the named file.
// chip is only needed for hex files.
func LoadFirmwareFile(fileName string, chip *ChipProfile) (*Image, error) {
	if _, err := os.Stat(fileName); err != nil {
		return nil, &IoError{Op: "can't stat " + fileName, Err: err}
	}
	file, err := os.Open(fileName)
	if err != nil {
		return nil, &IoError{Op: "can't open " + fileName, Err: err}
	}
	defer file.Close()

	pkgLog.Infof("reading firmware from %v...", fileName)
	img, err := LoadFirmware(file, chip)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %v", fileName)
	}
	return img, nil
}

// LoadFirmware detects the format of r and parses it. Input starting with ':'
// is read as an Intel HEX file built for chip, anything else as the native
// block format.
func LoadFirmware(r io.ReadSeeker, chip *ChipProfile) (*Image, error) {
	var first [1]byte
	if _, err := io.ReadFull(r, first[:]); err != nil {
		return nil, &IoError{Op: "read", Err: err}
	}

	var (
		img *Image
		err error
	)
	if first[0] == ':' {
		pkgLog.Infof("HEX file detected (AsksinPP)")
		img, err = parseIntelHex(bufio.NewReader(r), chip)
	} else {
		if _, err := r.Seek(0, io.SeekStart); err != nil {
			return nil, &IoError{Op: "seek", Err: err}
		}
		img, err = parseCustom(bufio.NewReader(r))
	}
	if err != nil {
		return nil, err
	}

	pkgLog.Infof("firmware with %d blocks successfully read", img.Len())
	return img, nil
}

// readField reads exactly len(buf) bytes. It returns io.EOF only if nothing
// was read and an *IoError for short reads.
func readField(r io.Reader, buf []byte, what string) error {
	n, err := io.ReadFull(r, buf)
	switch {
	case err == io.EOF:
		return io.EOF
	case err == io.ErrUnexpectedEOF:
		return &IoError{Op: what, Err: errors.Errorf("short read (%d < %d)", n, len(buf))}
	case err != nil:
		return &IoError{Op: what, Err: err}
	}
	return nil
}

// atBlock sets the block number on format errors that lack one.
func atBlock(err error, block int) error {
	var fe *FormatError
	if errors.As(err, &fe) && fe.Block == 0 {
		fe.Block = block
	}
	return err
}
