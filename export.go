package hmcfgusb

import (
	"io"

	"github.com/marcinbor85/gohex"
	"github.com/pkg/errors"
)

// Flatten returns the flash contents described by the image: the payload and
// trailer of every block, in order.
func (img *Image) Flatten() []byte {
	size := 0
	for _, b := range img.Blocks {
		size += b.Len()
	}
	data := make([]byte, 0, size)
	for _, b := range img.Blocks {
		data = append(data, b.Payload...)
		data = append(data, b.Trailer...)
	}
	return data
}

// WriteIntelHex writes the flattened image as an Intel HEX file starting at
// address 0, e.g. to inspect it or to program it with a different tool.
func (img *Image) WriteIntelHex(w io.Writer) error {
	if img.Len() == 0 {
		return errors.New("empty image")
	}
	mem := gohex.NewMemory()
	if err := mem.AddBinary(0, img.Flatten()); err != nil {
		return errors.Wrap(err, "add image data")
	}
	if err := mem.DumpIntelHex(w, 16); err != nil {
		return errors.Wrap(err, "write hex")
	}
	return nil
}
