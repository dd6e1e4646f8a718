package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/n2t/hackasm/asm"
)

var (
	outputFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "hackasm sourceFile",
	Short: "Assembler for the Hack computer",
	Long: `Hackasm translates Hack assembly into machine code, one 16-character
binary word per line. The output lands next to the source with a .hack
extension unless -o names another file.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]
		output := outputFile
		if output == "" {
			output = hackPath(source)
		}
		return assembleFile(source, output, verbose)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: source with .hack extension)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log a listing of each encoded word")
}

// hackPath swaps the extension of source for .hack.
func hackPath(source string) string {
	return strings.TrimSuffix(source, filepath.Ext(source)) + ".hack"
}

// assembleFile assembles source and writes the words to output. The output
// file is not touched unless assembly succeeds.
func assembleFile(source, output string, verbose bool) error {
	inf, err := os.Open(source)
	if err != nil {
		return err
	}
	defer inf.Close()

	assembler := &asm.Assembler{Verbose: verbose}
	words, err := assembler.Assemble(inf)
	if err != nil {
		return fmt.Errorf("%v: %w", source, err)
	}

	ouf, err := os.Create(output)
	if err != nil {
		return err
	}
	defer ouf.Close()

	w := bufio.NewWriter(ouf)
	for _, word := range words {
		fmt.Fprintf(w, "%016b\n", word)
	}

	return w.Flush()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
