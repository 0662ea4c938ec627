package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"

	"patternrec/internal/dot"
	"patternrec/internal/shell"
	"patternrec/regexlib"
)

func main() {
	pattern := flag.String("re", "", "pattern to compile (one-shot mode); without it commands are read from stdin")
	outFile := flag.String("o", "", "write the automaton as DOT to this file ('-' for stdout)")
	dfaFlag := flag.Bool("dfa", false, "export the determinized automaton instead of the NFA")
	printFlag := flag.Bool("print", false, "print the transition table")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng into -o")
	workers := flag.Int("workers", 0, "goroutines used to match positional inputs (0 = GOMAXPROCS)")
	batch := flag.Bool("batch", false, "no prompts when reading commands from stdin")
	logLevel := flag.String("log-level", getEnv("PATTERNREC_LOG_LEVEL", "warn"), "debug, info, warn or error")
	logJSON := flag.Bool("log-json", false, "log as JSON")
	flag.Parse()

	opts := &slog.HandlerOptions{Level: parseLogLevel(*logLevel)}
	var handler slog.Handler = slog.NewTextHandler(os.Stderr, opts)
	if *logJSON {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if *pattern == "" {
		sh := shell.New(os.Stdout, !*batch, logger)
		if err := sh.Run(os.Stdin); err != nil {
			logger.Error("shell stopped", "err", err)
			os.Exit(1)
		}
		return
	}

	re, err := regexlib.Compile(*pattern)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot compile %q: %v\n", *pattern, err)
		os.Exit(2)
	}
	logger.Debug("compiled", "pattern", *pattern, "states", re.States())

	if *printFlag {
		if err := re.Print(os.Stdout); err != nil {
			logger.Error("print failed", "err", err)
			os.Exit(1)
		}
	}

	if *outFile != "" {
		if err := export(re, *outFile, *dfaFlag, *pngFlag); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if *outFile != "-" {
			logger.Info("graph written", "path", *outFile, "png", *pngFlag)
		}
	}

	inputs := flag.Args()
	for i, ok := range re.MatchAll(inputs, *workers) {
		verdict := "no match"
		if ok {
			verdict = "match"
		}
		fmt.Printf("%q: %s\n", inputs[i], verdict)
	}
}

func export(re *regexlib.Regex, outFile string, asDFA, png bool) error {
	var buf bytes.Buffer
	render := re.ExportDOT
	if asDFA {
		render = re.ExportDFA
	}
	if err := render(&buf); err != nil {
		return err
	}

	if png {
		cmd := exec.Command("dot", "-Tpng", "-o", outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("dot failed: %w", err)
		}
		return nil
	}

	if outFile == "-" {
		_, err := io.Copy(os.Stdout, &buf)
		return err
	}
	return dot.WriteFile(outFile, func(w io.Writer) error {
		_, err := io.Copy(w, &buf)
		return err
	})
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
