package codec_test

import (
	"fmt"
	"log"
	"time"

	"github.com/ssargent/seedforge/pkg/codec"
)

// ExampleEntryCodec demonstrates framing a published seed for the archive
func ExampleEntryCodec() {
	c := codec.NewEntryCodec()

	entry := codec.NewEntry("5f2b8c", []byte{0x0a, 0x06}, time.Unix(1700000000, 0))
	frame, err := c.Encode(entry)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Encoded %d bytes\n", len(frame))

	decoded, err := c.Decode(frame)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Serial: %s\n", decoded.Serial)
	fmt.Printf("Payload: %d bytes\n", len(decoded.Payload))

	// Output:
	// Encoded 28 bytes
	// Serial: 5f2b8c
	// Payload: 2 bytes
}
