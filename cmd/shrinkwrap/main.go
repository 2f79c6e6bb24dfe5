package main

import (
	"fmt"
	"os"

	"github.com/agiangrant/shrinkwrap/cmd/shrinkwrap/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "measure":
		err = commands.Measure(args)
	case "preview":
		err = commands.Preview(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("shrinkwrap version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shrinkwrap - shrink-wrapped text layout

Usage: shrinkwrap <command> [options]

Commands:
  measure   Compare wrap-content and shrink-wrapped widths of messages
  preview   Show plain and shrink-wrapped chat bubbles side by side
  init      Write a default shrinkwrap.toml
  version   Print version information
  help      Show this help message

Examples:
  shrinkwrap measure "Hello Android! How are you today?"
  shrinkwrap measure --width 20 --config ./shrinkwrap.toml
  shrinkwrap preview --width 24
  shrinkwrap preview --static

Configuration:
  Commands read shrinkwrap.toml from the current directory or a parent.
  Run 'shrinkwrap init' to create one with default settings.`)
}
