package stdmux_test

import (
	"fmt"

	"dockerlog/pkg/stdmux"
)

func ExampleReadLines() {
	var buf []byte
	buf = stdmux.AppendFrame(buf, stdmux.Stdout, []byte("hel"))
	buf = stdmux.AppendFrame(buf, stdmux.Stderr, []byte("warning\n"))
	buf = stdmux.AppendFrame(buf, stdmux.Stdout, []byte("lo\nworld"))

	for line, err := range stdmux.ReadLines(buf, stdmux.Stdout) {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(line)
	}
	// Output:
	// hello
	// world
}

func ExampleFrames() {
	input := []byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05, 'h', 'e', 'l', 'l', 'o',
		0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01, '\n',
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	for frame, err := range stdmux.Frames(input) {
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s %q\n", frame.Stream, frame.Payload)
	}
	// Output:
	// stdout "hello"
	// stderr "\n"
	// error: unrecognized stream id 3 (0x03) at offset 22
}
