package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/lr35902/sm83-core/pkg/cpu"
	"github.com/lr35902/sm83-core/pkg/decode"
	"github.com/lr35902/sm83-core/pkg/inst"
	"github.com/lr35902/sm83-core/pkg/verify"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sm83",
		Short: "SM83 ALU core: execute, decode and verify the arithmetic unit",
	}

	// exec command
	var seed registerSeed
	var trace bool

	execCmd := &cobra.Command{
		Use:   "exec [instructions]",
		Short: "Execute a ':'-separated mnemonic sequence and print the final state",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseProgram(strings.Join(args, " "))
			if err != nil {
				return err
			}

			c := cpu.New()
			if err := seed.apply(c); err != nil {
				return err
			}

			for _, in := range seq {
				c.Execute(in)
				if trace {
					fmt.Printf("%-14s %s\n", in, dumpState(c))
				}
			}
			fmt.Println(dumpState(c))
			return nil
		},
	}
	execCmd.Flags().StringVar(&seed.a, "a", "0", "Initial A register")
	execCmd.Flags().StringVar(&seed.b, "b", "0", "Initial B register")
	execCmd.Flags().StringVar(&seed.c, "c", "0", "Initial C register")
	execCmd.Flags().StringVar(&seed.d, "d", "0", "Initial D register")
	execCmd.Flags().StringVar(&seed.e, "e", "0", "Initial E register")
	execCmd.Flags().StringVar(&seed.h, "hreg", "0", "Initial H register")
	execCmd.Flags().StringVar(&seed.l, "l", "0", "Initial L register")
	execCmd.Flags().StringVar(&seed.f, "f", "0", "Initial F register (low nibble ignored)")
	execCmd.Flags().BoolVarP(&trace, "trace", "t", false, "Print state after every instruction")

	// decode command
	decodeCmd := &cobra.Command{
		Use:   "decode [opcode bytes]",
		Short: "Decode hex opcode bytes to mnemonics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unknown := 0
			for _, arg := range args {
				v, err := parseByte(arg)
				if err != nil {
					return fmt.Errorf("cannot parse %q: %w", arg, err)
				}
				in, err := decode.Decode(v)
				if err != nil {
					fmt.Printf("%02X  (%v)\n", v, err)
					unknown++
					continue
				}
				fmt.Printf("%02X  %s\n", v, in)
			}
			if unknown > 0 {
				return fmt.Errorf("%d byte(s) not implemented", unknown)
			}
			return nil
		},
	}

	// verify command
	var numWorkers int
	var verbose bool

	verifyCmd := &cobra.Command{
		Use:   "verify",
		Short: "Sweep the core's input domain against its arithmetic and flag laws",
		RunE: func(cmd *cobra.Command, args []string) error {
			props := verify.Properties()
			fmt.Printf("Verifying %d properties...\n", len(props))

			failures := verify.Run(verify.Config{
				NumWorkers: numWorkers,
				Verbose:    verbose,
			})
			if len(failures) > 0 {
				for _, f := range failures {
					fmt.Println("  " + f.String())
				}
				return fmt.Errorf("%d propert(ies) failed", len(failures))
			}
			fmt.Println("All properties hold.")
			return nil
		},
	}
	verifyCmd.Flags().IntVar(&numWorkers, "workers", 0, "Number of workers (0 = NumCPU)")
	verifyCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print one line per property")

	// ops command
	opsCmd := &cobra.Command{
		Use:   "ops",
		Short: "List every instruction this core implements, with its encoding",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, in := range inst.All() {
				if op, ok := decode.Opcode(in); ok {
					fmt.Printf("%02X  %s\n", op, in)
				}
			}
			return nil
		},
	}

	rootCmd.AddCommand(execCmd, decodeCmd, verifyCmd, opsCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// registerSeed holds the raw --a/--b/... flag values before parsing.
type registerSeed struct {
	a, b, c, d, e, h, l, f string
}

func (s registerSeed) apply(c *cpu.CPU) error {
	regs := []struct {
		name string
		raw  string
		dst  *uint8
	}{
		{"a", s.a, &c.A}, {"b", s.b, &c.B}, {"c", s.c, &c.C}, {"d", s.d, &c.D},
		{"e", s.e, &c.E}, {"hreg", s.h, &c.H}, {"l", s.l, &c.L},
	}
	for _, r := range regs {
		v, err := parseByte(r.raw)
		if err != nil {
			return fmt.Errorf("--%s: %w", r.name, err)
		}
		*r.dst = v
	}
	fv, err := parseByte(s.f)
	if err != nil {
		return fmt.Errorf("--f: %w", err)
	}
	c.F.SetByte(fv)
	return nil
}

func dumpState(c *cpu.CPU) string {
	return fmt.Sprintf("A: %02X F: %s B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X  HL: %04X",
		c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L, c.HL.Uint16())
}

// parseProgram converts mnemonic text like "ADD A, B : INC C" into
// instructions. Sequences are separated by ':'.
func parseProgram(text string) ([]inst.Instruction, error) {
	var seq []inst.Instruction
	for _, part := range strings.Split(text, ":") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		in, err := parseInstruction(part)
		if err != nil {
			return nil, err
		}
		seq = append(seq, in)
	}
	if len(seq) == 0 {
		return nil, fmt.Errorf("no instructions parsed from %q", text)
	}
	return seq, nil
}

// parseInstruction matches one mnemonic against the instruction set,
// ignoring case and comma/space layout.
func parseInstruction(text string) (inst.Instruction, error) {
	norm := normalize(text)
	for _, in := range inst.All() {
		if norm == normalize(in.String()) {
			return in, nil
		}
	}
	return inst.Instruction{}, fmt.Errorf("unknown instruction: %s", text)
}

func normalize(s string) string {
	s = strings.ToUpper(strings.ReplaceAll(s, ",", " "))
	return strings.Join(strings.Fields(s), " ")
}

// parseByte accepts 0x3C, 3Ch and plain decimal or hex digits.
func parseByte(s string) (uint8, error) {
	s = strings.TrimSpace(s)
	base := 10
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		s, base = s[2:], 16
	case strings.HasSuffix(s, "h"), strings.HasSuffix(s, "H"):
		s, base = s[:len(s)-1], 16
	default:
		// Bare hex digits are common in opcode listings; fall back to hex
		// when the text is not valid decimal.
		if _, err := strconv.ParseUint(s, 10, 8); err != nil {
			base = 16
		}
	}
	v, err := strconv.ParseUint(s, base, 8)
	if err != nil {
		return 0, fmt.Errorf("not an 8-bit value: %q", s)
	}
	return uint8(v), nil
}
