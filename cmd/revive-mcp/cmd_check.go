package main

import (
	"context"
	"fmt"
	"time"

	"github.com/felixgeelhaar/revive-mcp/internal/revive"
)

const checkTimeout = 30 * time.Second

// cmdCheck verifies the endpoint and the account
func cmdCheck(configPath string) error {
	cfg, a, cleanup, err := prepare(configPath)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	fmt.Printf("Endpoint:  %s\n", cfg.Revive.URL)

	allGood := true

	fmt.Print("Methods:   ")
	methods, err := a.client.ListMethods(ctx)
	if err != nil {
		// Introspection is optional on some servers
		fmt.Printf("- unavailable (%v)\n", err)
	} else {
		fmt.Printf("✓ %d available\n", len(methods))
	}

	fmt.Print("Login:     ")
	sess, err := a.sessions.EnsureValid(ctx)
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		allGood = false
	} else {
		fmt.Printf("✓ %s (expires %s)\n", cfg.Revive.Username, sess.ExpiresAt.Format(time.RFC3339))
	}

	fmt.Print("Agency:    ")
	if allGood {
		res := a.service.ListAdvertisers(ctx, revive.ListOptions{})
		if !res.Success {
			fmt.Printf("✗ %s\n", res.Error)
			allGood = false
		} else {
			fmt.Printf("✓ agency %d has %d advertisers\n", cfg.Revive.AgencyID, len(res.Data))
		}
	} else {
		fmt.Println("- skipped")
	}

	fmt.Println()
	if !allGood {
		return fmt.Errorf("some checks failed")
	}
	fmt.Println("All checks passed! ✓")
	return nil
}
