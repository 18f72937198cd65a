// qsc - quest script compiler. Disassembles and assembles quest script
// binaries for every client version of the game.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tliron/commonlog"

	"github.com/questtools/questasm/manifest"
	"github.com/questtools/questasm/pkg/script"

	_ "github.com/tliron/commonlog/simple"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: qsc <command> [options]\n\n")
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  disassemble   Decode a quest binary to assembly text\n")
		fmt.Fprintf(os.Stderr, "  assemble      Encode assembly text to a quest binary\n")
		fmt.Fprintf(os.Stderr, "  build         Assemble a quest.toml project for its target versions\n")
		fmt.Fprintf(os.Stderr, "  check         Validate the opcode catalog\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  qsc disassemble -version BB_V4 quest58.bin\n")
		fmt.Fprintf(os.Stderr, "  qsc disassemble -version GC_V3 -reassembly -o quest58.asm quest58.bin\n")
		fmt.Fprintf(os.Stderr, "  qsc assemble -o quest58.bin quest58.asm\n")
		fmt.Fprintf(os.Stderr, "  qsc build ./quests/q58\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch cmd := flag.Arg(0); cmd {
	case "disassemble":
		err = runDisassemble(flag.Args()[1:])
	case "assemble":
		err = runAssemble(flag.Args()[1:])
	case "build":
		err = runBuild(flag.Args()[1:])
	case "check":
		err = runCheck(flag.Args()[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func configureLogging(verbose bool) {
	verbosity := 0
	if verbose {
		verbosity = 2
	}
	commonlog.Configure(verbosity, nil)
}

func runDisassemble(args []string) error {
	fs := flag.NewFlagSet("disassemble", flag.ExitOnError)
	versionName := fs.String("version", "", "Client version of the input (e.g. GC_V3, BB_V4)")
	output := fs.String("o", "", "Output file (default stdout)")
	reassembly := fs.Bool("reassembly", false, "Emit reassemblable output instead of annotated output")
	editorNames := fs.Bool("editor-names", false, "Use editor opcode mnemonics where they exist")
	language := fs.Int("language", -1, "Override the header language (0-7)")
	verbose := fs.Bool("v", false, "Verbose output")
	fs.Parse(args)
	configureLogging(*verbose)

	if *versionName == "" {
		return fmt.Errorf("-version is required")
	}
	v, err := script.ParseVersion(*versionName)
	if err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("exactly one input file is required")
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}

	opts := script.DisassembleOptions{
		Reassembly:  *reassembly,
		EditorNames: *editorNames,
	}
	if *language >= 0 {
		lang := uint8(*language)
		opts.OverrideLanguage = &lang
	}
	text, err := script.Disassemble(data, v, opts)
	if err != nil {
		return err
	}
	return writeOutput(*output, []byte(text))
}

func runAssemble(args []string) error {
	fs := flag.NewFlagSet("assemble", flag.ExitOnError)
	output := fs.String("o", "", "Output file (default input name with .bin extension)")
	includeDir := fs.String("I", "", "Directory for .include_bin and .include_native files")
	verbose := fs.Bool("v", false, "Verbose output")
	fs.Parse(args)
	configureLogging(*verbose)

	if fs.NArg() != 1 {
		return fmt.Errorf("exactly one input file is required")
	}
	input := fs.Arg(0)
	text, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	dir := *includeDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	bin, err := script.Assemble(string(text), dir)
	if err != nil {
		return err
	}

	out := *output
	if out == "" {
		out = strings.TrimSuffix(input, filepath.Ext(input)) + ".bin"
	}
	return writeOutput(out, bin)
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	fs.Parse(args)
	configureLogging(*verbose)

	startDir := "."
	if fs.NArg() > 0 {
		startDir = fs.Arg(0)
	}
	m, err := manifest.FindAndLoad(startDir)
	if err != nil {
		return err
	}
	if m == nil {
		return fmt.Errorf("no quest.toml found in %s or any parent directory", startDir)
	}

	text, err := os.ReadFile(m.EntryPath())
	if err != nil {
		return err
	}
	targets, err := m.Targets()
	if err != nil {
		return err
	}

	// The entry source names one version; per-target builds rewrite it.
	for _, v := range targets {
		src := retargetSource(string(text), v)
		bin, err := script.Assemble(src, m.IncludePath())
		if err != nil {
			return fmt.Errorf("%s: %w", v, err)
		}
		out := m.OutputPath(v)
		if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(out, bin, 0644); err != nil {
			return err
		}
		if *verbose {
			fmt.Printf("%s: %d bytes\n", out, len(bin))
		}
	}
	return nil
}

// retargetSource replaces the .version directive so one source can be
// assembled for every target version.
func retargetSource(text string, v script.Version) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), ".version ") {
			lines[i] = ".version " + v.String()
			return strings.Join(lines, "\n")
		}
	}
	return ".version " + v.String() + "\n" + text
}

func runCheck(args []string) error {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("v", false, "Verbose output")
	fs.Parse(args)
	configureLogging(*verbose)

	cat := script.Default()
	cat.SelfCheck()
	fmt.Println("opcode catalog OK")
	return nil
}

func writeOutput(path string, data []byte) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
