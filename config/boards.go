package config

import (
	"sort"

	"boardcore/errcode"
)

// DefaultBoard is used when no board name is given.
const DefaultBoard = "stm32wb50"

const cfgSTM32WB50 = `{
  "name": "stm32wb50",
  "lse_hz": 32768,
  "rtcclk_div": 16,
  "wucksel": 0,
  "async_prescaler": 127,
  "sync_prescaler": 255
}`

const cfgSTM32WB50Fast = `{
  "name": "stm32wb50-fast",
  "lse_hz": 32768,
  "rtcclk_div": 2,
  "wucksel": 3
}`

// embeddedBoards maps board name to raw JSON.
var embeddedBoards = map[string][]byte{
	"stm32wb50":      []byte(cfgSTM32WB50),
	"stm32wb50-fast": []byte(cfgSTM32WB50Fast),
}

// EmbeddedBoardLookup allows overriding how boards are resolved.
var EmbeddedBoardLookup = func(name string) ([]byte, bool) {
	b, ok := embeddedBoards[name]
	return b, ok
}

// Lookup loads the named embedded board; "" selects DefaultBoard.
func Lookup(name string) (Board, error) {
	if name == "" {
		name = DefaultBoard
	}
	raw, ok := EmbeddedBoardLookup(name)
	if !ok || len(raw) == 0 {
		return Board{}, &errcode.E{C: errcode.UnknownBoard, Op: "config.lookup", Msg: name}
	}
	return Load(raw)
}

// Names lists the embedded boards in sorted order.
func Names() []string {
	out := make([]string, 0, len(embeddedBoards))
	for k := range embeddedBoards {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
