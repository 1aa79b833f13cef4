package main

import (
	"boardcore/assert"
	"boardcore/config"
	"boardcore/platform"
	"boardcore/x/conv"
)

func main() {
	board, err := config.Lookup("")
	if err != nil {
		assert.Fail(err.Error())
	}
	p := platform.New(platform.Config{Clock: board.Clock()})

	// Allow USB CDC to enumerate before we print.
	p.Delay(2000)
	println("boot", board.Name, "tick_us", p.Tick.Microseconds)

	var buf [20]byte
	for n := uint64(1); ; n++ {
		p.Delay(1000)
		println(string(conv.Utoa(buf[:], n)), "Heartbeat")
	}
}
