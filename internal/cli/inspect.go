package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jmylchreest/favico/internal/ico"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.ico>",
		Short: "List the images in an icon file",
		Long: `Print the directory of an ICO file: one line per embedded image with its
dimensions, encoding, size and offset.`,
		Args: cobra.ExactArgs(1),
		RunE: runInspect,
	}
}

// runInspect executes the inspect command.
func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	file, err := os.Open(path) // #nosec G304 - User-specified icon path, intended to be read
	if err != nil {
		return fmt.Errorf("failed to open icon: %w", err)
	}
	defer file.Close()

	entries, err := ico.DecodeConfig(file)
	if err != nil {
		return fmt.Errorf("failed to read icon directory: %w", err)
	}

	newLogger(cmd).Debug("read icon directory", "path", path, "entries", len(entries))

	out := cmd.OutOrStdout()
	fmt.Fprint(out, formatEntries(entries, isTerminal(out)))
	return nil
}

// formatEntries renders the directory as a table.
func formatEntries(entries []ico.Entry, rule bool) string {
	table := NewTable([]string{"#", "SIZE", "FORMAT", "BPP", "BYTES", "OFFSET"})
	table.SetRule(rule)
	table.SetRightAlign(0)
	table.SetRightAlign(3)
	table.SetRightAlign(4)
	table.SetRightAlign(5)

	for i, e := range entries {
		table.AddRow([]string{
			strconv.Itoa(i),
			e.String(),
			string(e.Format),
			strconv.Itoa(int(e.BitCount)),
			humanize.Bytes(uint64(e.Size)),
			strconv.FormatUint(uint64(e.Offset), 10),
		})
	}

	return table.Render()
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 - file descriptors fit in int
}
