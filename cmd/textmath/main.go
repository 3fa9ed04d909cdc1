package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/textmath/textmath/pkg/textmath"
	"gopkg.in/yaml.v3"
)

const (
	version = "0.1.0"
	usage   = `textmath - find and evaluate math expressions in plain text

Usage:
  textmath [options]

Options:
  -h, --help            Show this help message
  -v, --version         Show version information
  --input <file>        Input file (defaults to stdin)
  --output <file>       Output file (defaults to stdout)
  --options <file>      YAML options file (optional)
  --make-options        Generate default options YAML to stdout
  --cursor <offset>     Select the expression at this byte offset
  --all                 Print every expression found, not just the first
  --tokens              Print the token stream instead of matches
  --exit0               Exit with code 0 even when nothing matches

Examples:
  echo "lunch was 12.50+8.75 total" | textmath   # Detect and evaluate
  textmath --input notes.txt --all               # Every expression in a file
  textmath --input notes.txt --cursor 14         # Expression nearest offset 14
  echo "(10+5)*2" | textmath --tokens            # Dump the token stream
  textmath --make-options > options.yaml         # Default configuration

Matches are printed one JSON object per line.
`
)

func main() {
	var showHelp, showVersion, exit0, makeOptions, printAll, printTokens bool
	var inputFile, outputFile, optionsFile string
	var cursor int

	flag.BoolVar(&showHelp, "h", false, "Show help")
	flag.BoolVar(&showHelp, "help", false, "Show help")
	flag.BoolVar(&showVersion, "v", false, "Show version")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&exit0, "exit0", false, "Exit with code 0 even when nothing matches")
	flag.BoolVar(&makeOptions, "make-options", false, "Generate default options YAML")
	flag.BoolVar(&printAll, "all", false, "Print every expression found")
	flag.BoolVar(&printTokens, "tokens", false, "Print the token stream instead of matches")
	flag.StringVar(&inputFile, "input", "", "Input file (defaults to stdin)")
	flag.StringVar(&outputFile, "output", "", "Output file (defaults to stdout)")
	flag.StringVar(&optionsFile, "options", "", "YAML options file (optional)")
	flag.IntVar(&cursor, "cursor", -1, "Select the expression at this byte offset")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if showVersion {
		fmt.Printf("textmath version %s\n", version)
		os.Exit(0)
	}

	if makeOptions {
		if err := generateDefaultOptions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating default options: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	// Reject any positional arguments
	if len(flag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: Unexpected positional arguments. Use --input and --output flags instead.\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var input string
	var err error

	// Read input
	if inputFile == "" {
		input, err = readFromStdin()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading from stdin: %v\n", err)
			os.Exit(1)
		}
	} else {
		input, err = readFromFile(inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file '%s': %v\n", inputFile, err)
			os.Exit(1)
		}
	}

	// Build the detector, with custom options if specified
	var detector *textmath.Detector
	if optionsFile != "" {
		opts, err := textmath.LoadOptionsFile(optionsFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading options file '%s': %v\n", optionsFile, err)
			os.Exit(1)
		}
		detector = textmath.NewDetectorWithOptions(opts)
	} else {
		detector = textmath.NewDetector()
	}

	// Prepare output destination
	var output io.Writer
	var outputCloser io.Closer

	if outputFile == "" {
		output = os.Stdout
	} else {
		file, err := os.Create(outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file '%s': %v\n", outputFile, err)
			os.Exit(1)
		}
		output = file
		outputCloser = file
	}

	found, runErr := run(detector, input, cursor, printAll, printTokens, output)

	// Close output file if we opened one
	if outputCloser != nil {
		if err := outputCloser.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing output file '%s': %v\n", outputFile, err)
			os.Exit(1)
		}
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		if exit0 {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if !found && !exit0 {
		fmt.Fprintln(os.Stderr, "No expression found")
		os.Exit(1)
	}
}

// run executes the selected mode and reports whether anything was emitted.
func run(detector *textmath.Detector, input string, cursor int, printAll, printTokens bool, output io.Writer) (bool, error) {
	if printTokens {
		tokens, err := textmath.Tokenize(input)
		if err != nil {
			return false, err
		}
		for _, token := range tokens {
			if err := printJSON(output, token); err != nil {
				return false, err
			}
		}
		return len(tokens) > 0, nil
	}

	if printAll {
		matches := detector.FindAllExpressions(input)
		for _, match := range matches {
			if err := printJSON(output, match); err != nil {
				return false, err
			}
		}
		return len(matches) > 0, nil
	}

	var match *textmath.Match
	if cursor >= 0 {
		match = detector.DetectAtCursor(input, cursor)
	} else {
		match = detector.Detect(input)
	}
	if match == nil {
		return false, nil
	}
	return true, printJSON(output, match)
}

// printJSON writes a value as a single JSON line.
func printJSON(output io.Writer, v any) error {
	jsonBytes, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("JSON encoding error: %w", err)
	}
	_, err = fmt.Fprintln(output, string(jsonBytes))
	return err
}

// readFromStdin reads all input from stdin.
func readFromStdin() (string, error) {
	bytes, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// readFromFile reads the contents of a file.
func readFromFile(filename string) (string, error) {
	bytes, err := os.ReadFile(filename)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// generateDefaultOptions outputs the default options in YAML format to stdout.
func generateDefaultOptions() error {
	yamlBytes, err := yaml.Marshal(textmath.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to marshal options to YAML: %w", err)
	}
	fmt.Print(string(yamlBytes))
	return nil
}
