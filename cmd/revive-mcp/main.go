package main

import (
	"fmt"
	"os"
	"strings"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	configPath, args, err := splitConfigFlag(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		printUsage()
		os.Exit(1)
	}
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "mcp":
		err = cmdMCP(configPath)
	case "serve":
		err = cmdServe(configPath, args[1:])
	case "check":
		err = cmdCheck(configPath)
	case "config":
		err = cmdConfig(configPath, args[1:])
	case "help", "-h", "--help":
		printUsage()
	case "version", "-v", "--version":
		fmt.Printf("revive-mcp %s\n", Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", args[0])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// splitConfigFlag removes --config <path> (or --config=<path>) from args
func splitConfigFlag(args []string) (string, []string, error) {
	var path string
	rest := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--config" || arg == "-c":
			if i+1 >= len(args) {
				return "", nil, fmt.Errorf("%s requires a path", arg)
			}
			path = args[i+1]
			i++
		case strings.HasPrefix(arg, "--config="):
			path = strings.TrimPrefix(arg, "--config=")
		default:
			rest = append(rest, arg)
		}
	}
	return path, rest, nil
}

func printUsage() {
	fmt.Println(`revive-mcp - MCP tools for Revive Adserver

Usage:
  revive-mcp [--config <path>] <command> [arguments]

Server Commands:
  mcp             Start MCP server on stdio
  serve [addr]    Start MCP server on HTTP (default from server.http_addr)

Setup Commands:
  check           Verify the ad server is reachable and the account can log in
  config          Show current configuration
  config init     Write a default configuration file
  config set-password
                  Store the API password in secrets.yaml

Other:
  help            Show this help message
  version         Show version information

Configuration is read from ~/.revive-mcp/config.yaml (or REVIVE_MCP_CONFIG),
then overridden by environment variables such as REVIVE_API_URL,
REVIVE_API_USERNAME and REVIVE_API_PASSWORD.

Examples:
  revive-mcp config init          # Create ~/.revive-mcp/config.yaml
  revive-mcp check                # Test login against the ad server
  revive-mcp mcp                  # Start MCP server for an MCP client`)
}
