package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"boardcore/config"
	"boardcore/timing"
	"boardcore/x/bitx"
)

type clockFlags struct {
	board string
	osc   uint32
	div   uint32
}

func (f *clockFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.board, "board", "b", config.DefaultBoard, "embedded board name")
	cmd.Flags().Uint32Var(&f.osc, "osc", 0, "oscillator frequency in Hz (overrides --board)")
	cmd.Flags().Uint32Var(&f.div, "div", 0, "clock divider (overrides --board)")
}

// clock resolves the board, then applies any explicit overrides.
func (f *clockFlags) clock() (timing.ClockConfig, error) {
	b, err := config.Lookup(f.board)
	if err != nil {
		return timing.ClockConfig{}, err
	}
	if f.osc != 0 {
		b.LSEHz = f.osc
	}
	if f.div != 0 {
		b.RTCClockDiv = f.div
	}
	if err := b.Validate(); err != nil {
		return timing.ClockConfig{}, err
	}
	return b.Clock(), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tickcalc",
		Short:        "RTC wakeup tick calculator",
		SilenceUsage: true,
	}
	root.AddCommand(newDeriveCmd(), newTicksCmd(), newPackCmd(), newBoardsCmd())
	return root
}

func newDeriveCmd() *cobra.Command {
	var cf clockFlags
	cmd := &cobra.Command{
		Use:   "derive",
		Short: "Print the duration of one wakeup tick",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			clk, err := cf.clock()
			if err != nil {
				return err
			}
			d := timing.Derive(clk)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "oscillator_hz %d\n", clk.OscillatorHz)
			fmt.Fprintf(out, "divider       %d\n", clk.Divider)
			fmt.Fprintf(out, "tick_hz       %d\n", clk.TickHz())
			fmt.Fprintf(out, "tick_us       %d\n", d.Microseconds)
			fmt.Fprintf(out, "tick_ps       %d\n", d.Picoseconds)
			return nil
		},
	}
	cf.register(cmd)
	return cmd
}

func newTicksCmd() *cobra.Command {
	var cf clockFlags
	cmd := &cobra.Command{
		Use:   "ticks <ms>...",
		Short: "Convert millisecond delays to wakeup ticks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			clk, err := cf.clock()
			if err != nil {
				return err
			}
			d := timing.Derive(clk)
			out := cmd.OutOrStdout()
			for _, a := range args {
				ms, err := strconv.ParseUint(a, 10, 32)
				if err != nil {
					return fmt.Errorf("bad delay %q: %w", a, err)
				}
				if ms > timing.MaxDelayMs {
					return fmt.Errorf("delay %d ms overflows the 32-bit converter", ms)
				}
				fmt.Fprintf(out, "%d ms: %d ticks (ceil %d)\n",
					ms, d.MsToTicks(uint32(ms)), d.MsToTicksCeil(uint32(ms)))
			}
			return nil
		},
	}
	cf.register(cmd)
	return cmd
}

func newPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <u32>",
		Short: "Show the little-endian buffer of a value and its big-endian read-back",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 0, 32)
			if err != nil {
				return fmt.Errorf("bad value %q: %w", args[0], err)
			}
			var buf [4]byte
			bitx.PutUint32LE(buf[:], uint32(v))
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "le_bytes % X\n", buf[:])
			fmt.Fprintf(out, "be_read  0x%08X\n", bitx.Uint32BE(buf[:]))
			return nil
		},
	}
}

func newBoardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boards",
		Short: "List embedded boards",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, n := range config.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
		},
	}
}
