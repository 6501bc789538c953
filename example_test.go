package hmcfgusb

import (
	"log"
)

func Example() {
	// Load the firmware. The chip profile is only used for AsksinPP hex files.
	img, err := LoadFirmwareFile("hmusbif.03c7.enc", &ATmega328P)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("firmware with %d blocks loaded", img.Len())

	// Create a programmer that opens the device over USB
	programmer := NewProgrammer(USBConnector{},
		WithProgressCallback(func(p Progress) {
			log.Printf("block %d/%d", p.Block, p.Total)
		}),
	)

	log.Print("flashing...")
	if err := programmer.Flash(img); err != nil {
		log.Fatal(err)
	}
	log.Print("complete")
}
