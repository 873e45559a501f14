package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordtone/lily"
	"github.com/jsphweid/chordtone/midi"
	"github.com/jsphweid/chordtone/model"
	"github.com/jsphweid/chordtone/staff"
	"github.com/spf13/cobra"
)

var (
	clef          string
	timeSignature string
)

func init() {
	lilyCmd.Flags().StringVar(&clef, "clef", "", "clef to draw (defaults to CHORDTONE_CLEF)")
	lilyCmd.Flags().StringVar(&timeSignature, "time", "", "time signature (defaults to CHORDTONE_TIME_SIGNATURE)")

	rootCmd.AddCommand(notesCmd, staffCmd, lilyCmd, typesCmd)
}

var notesCmd = &cobra.Command{
	Use:     "notes <root> <chord type>",
	Short:   "Prints the spelled notes of a chord",
	Example: `  chordtone notes C "Minor 7th"`,
	Args:    cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := spell(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), strings.Join(notes, " "))
		return nil
	},
}

var staffCmd = &cobra.Command{
	Use:   "staff <root> <chord type>",
	Short: "Prints staff key, accidental, MIDI key and MIDI name for each note",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := spell(args)
		if err != nil {
			return err
		}
		for i, pos := range staff.Infer(notes) {
			fmt.Fprintf(cmd.OutOrStdout(), "%-3s %-4s %-2s %s\n", notes[i], pos.Key(), pos.Accidental, keyLabel(pos))
		}
		return nil
	},
}

var lilyCmd = &cobra.Command{
	Use:   "lily <root> <chord type>",
	Short: "Prints the chord as a LilyPond staff",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		notes, err := spell(args)
		if err != nil {
			return err
		}
		opts := lily.Options{Clef: cfg.Clef, Time: cfg.TimeSignature}
		if clef != "" {
			opts.Clef = clef
		}
		if timeSignature != "" {
			opts.Time = timeSignature
		}
		fmt.Fprintln(cmd.OutOrStdout(), lily.Render(staff.Infer(notes), opts))
		return nil
	},
}

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "Lists the chord types",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range engine.Formulas().Names() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

// keyLabel is "<key> <name>" or "-" when the position has no MIDI key.
func keyLabel(pos model.StaffPosition) string {
	key, ok := midi.Key(pos)
	if !ok {
		return "-"
	}
	name, _ := midi.Name(pos)
	return fmt.Sprintf("%d %s", int(key), name)
}

// spell takes the root then the chord type, which may span several args.
func spell(args []string) (model.Notes, error) {
	root := args[0]
	chordType := strings.Join(args[1:], " ")

	notes := engine.Notes(root, chordType)
	if len(notes) == 0 {
		return nil, fmt.Errorf("no chord for root %q and type %q", root, chordType)
	}
	log.Debugw("spelled chord", "root", root, "type", chordType, "notes", notes)
	return notes, nil
}
