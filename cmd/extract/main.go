package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - extract: read a local invoice photo with a vision provider and score it
// - calc:    score an already parsed invoice payload
// - health:  probe the OCR service

func main() {
	extractCmd := flag.NewFlagSet("extract", flag.ExitOnError)
	calcCmd := flag.NewFlagSet("calc", flag.ExitOnError)
	healthCmd := flag.NewFlagSet("health", flag.ExitOnError)

	extractFile := extractCmd.String("file", "", "Invoice image or PDF")
	extractProvider := extractCmd.String("provider", "", "Vision provider (default from config)")
	extractMime := extractCmd.String("mime", "", "Override the detected MIME type")

	calcFile := calcCmd.String("file", "", "Parsed invoice JSON")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	flags := cliFlags{
		Extract: extractFlags{
			cmd:      extractCmd,
			file:     extractFile,
			provider: extractProvider,
			mimeType: extractMime,
		},
		Calc: calcFlags{
			cmd:  calcCmd,
			file: calcFile,
		},
		Health: healthCmd,
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type cliFlags struct {
	Extract extractFlags
	Calc    calcFlags
	Health  *flag.FlagSet
}

type extractFlags struct {
	cmd      *flag.FlagSet
	file     *string
	provider *string
	mimeType *string
}

type calcFlags struct {
	cmd  *flag.FlagSet
	file *string
}

func runSubcommand(ctx context.Context, flags *cliFlags) error {
	switch os.Args[1] {
	case "extract":
		return handleExtract(ctx, flags)
	case "calc":
		return handleCalc(flags)
	case "health":
		return handleHealth(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleExtract(ctx context.Context, flags *cliFlags) error {
	if err := flags.Extract.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse extract flags")
	}

	if *flags.Extract.file == "" {
		return errors.New("--file flag is required for extract command")
	}

	return runExtract(ctx, *flags.Extract.file, *flags.Extract.provider, *flags.Extract.mimeType)
}

func handleCalc(flags *cliFlags) error {
	if err := flags.Calc.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse calc flags")
	}

	if *flags.Calc.file == "" {
		return errors.New("--file flag is required for calc command")
	}

	return runCalc(*flags.Calc.file)
}

func handleHealth(ctx context.Context, flags *cliFlags) error {
	if err := flags.Health.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse health flags")
	}

	return runHealth(ctx)
}

func printUsage() {
	fmt.Println("Usage: extract <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  extract     Read an invoice photo and print the points it earns")
	fmt.Println("  calc        Score a parsed invoice JSON file")
	fmt.Println("  health      Check the OCR service")
	fmt.Println("")
	fmt.Println("Use 'extract <command> -h' for more information about a command.")
}
