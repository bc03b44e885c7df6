package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/felixgeelhaar/revive-mcp/internal/config"
)

// cmdConfig shows or initializes configuration
func cmdConfig(configPath string, args []string) error {
	path := configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}

	if len(args) == 0 || args[0] == "show" {
		return cmdConfigShow(path)
	}

	switch args[0] {
	case "init":
		return cmdConfigInit(path)
	case "set-password":
		return cmdConfigSetPassword(path)
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func cmdConfigShow(path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fmt.Println("revive-mcp Configuration")
	fmt.Printf("File: %s\n\n", path)

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	fmt.Print(string(data))

	passwordStatus := "✗ not set"
	if cfg.Revive.Password != "" {
		passwordStatus = "✓ set"
	}
	fmt.Printf("\npassword: %s\n", passwordStatus)

	if err := cfg.Validate(); err != nil {
		fmt.Printf("\nProblems:\n%v\n", err)
	}
	return nil
}

func cmdConfigInit(path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Configuration already exists at %s ✓\n", path)
		return nil
	}

	if err := config.Save(path, config.Default()); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	fmt.Printf("✓ Default configuration written to %s\n", path)
	fmt.Println("Set revive.api_url and revive.username, then run 'revive-mcp config set-password'.")
	return nil
}

func cmdConfigSetPassword(path string) error {
	fmt.Print("Enter Revive API password: ")
	reader := bufio.NewReader(os.Stdin)
	password, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	password = strings.TrimSpace(password)

	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	dir := filepath.Dir(path)
	if err := config.SaveSecrets(dir, password); err != nil {
		return fmt.Errorf("save secrets: %w", err)
	}

	fmt.Printf("✓ Password saved to %s\n", filepath.Join(dir, "secrets.yaml"))
	return nil
}
