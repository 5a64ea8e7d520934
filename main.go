package main

import (
	"fmt"
	"os"

	"github.com/gerunddev/docbridge/internal/commands"
	"github.com/gerunddev/docbridge/internal/config"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "convert":
		commands.Convert(os.Args[2:])
	case "classify":
		commands.Classify(os.Args[2:])
	case "build":
		commands.Build(os.Args[2:])
	case "diff":
		commands.Diff(os.Args[2:])
	case "browse":
		commands.Browse(os.Args[2:])
	case "watch":
		commands.Watch(os.Args[2:])
	case "status":
		commands.Status()
	case "config":
		commands.Config(os.Args[2:])
	case "version", "-v", "--version":
		fmt.Printf("docbridge v%s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	usage := fmt.Sprintf(`docbridge - Rewrite custom parameter docstrings into reStructuredText

Usage:
  docbridge <command> [options]

Commands:
  convert     Convert one docstring (file or stdin) to stdout
  classify    Show the role of every docstring line
  build       Convert every docstring of a manifest (use --dry-run to preview)
  diff        Show what conversion changes
  browse      Browse the objects of a manifest
  watch       Rebuild a manifest whenever it changes
  status      Display build state
  config      Show configuration (config init writes the defaults)
  version     Show version information
  help        Show this help message

Examples:
  docbridge convert docstring.txt
  cat docstring.txt | docbridge convert -
  docbridge build api.yaml --out api.rst.yaml
  docbridge build api.yaml --dry-run
  docbridge diff api.yaml --name lumache.get_random_ingredients
  docbridge browse api.yaml
  docbridge watch api.yaml --interval 5s
  docbridge status

Configuration:
  Config file: %s
  State file:  %s

For more information, visit: https://github.com/gerunddev/docbridge
`, config.ConfigPath(), config.StateFilePath())
	fmt.Print(usage)
}
