// Command client drives the account deletion flow from a terminal. It is
// the reference consumer of the deletion controller: two confirmations, one
// synchronous request, local teardown on success.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/kith-app/kith/internal/client"
	"github.com/kith-app/kith/internal/entitlement"
	"github.com/kith-app/kith/internal/platform/logger"
)

func main() {
	log := logger.New()

	serverURL := os.Getenv("KITH_SERVER_URL")
	if serverURL == "" {
		serverURL = "http://localhost:8080"
	}
	token := os.Getenv("KITH_SESSION_TOKEN")
	if token == "" {
		fmt.Fprintln(os.Stderr, "KITH_SESSION_TOKEN is required")
		os.Exit(1)
	}
	userID := os.Getenv("KITH_USER_ID")

	session := client.NewLocalSession(token, userID, nil)

	var (
		reconciler client.Reconciler
		opts       []client.Option
	)
	if entURL := os.Getenv("KITH_ENTITLEMENT_URL"); entURL != "" {
		cache := entitlement.NewMemoryCache()
		cached := entitlement.NewCachedClient(
			entitlement.NewHTTPClient(entURL, os.Getenv("KITH_ENTITLEMENT_API_KEY")),
			cache,
		)
		reconciler = entitlement.NewReconciler(cached, cache, log)
		opts = append(opts, client.WithEntitlementStatus(cached))
	}

	controller := client.NewController(client.NewAPI(serverURL), session, reconciler, log, opts...)
	ctx := context.Background()
	stdin := bufio.NewReader(os.Stdin)

	warning, err := controller.Begin(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(warning)
	if !confirm(stdin, "Type 'delete' to continue: ", "delete") {
		_ = controller.Cancel()
		fmt.Println("Cancelled.")
		return
	}

	finalWarning, err := controller.AcceptFirst()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(finalWarning)
	if !confirm(stdin, "Type 'delete my account' to confirm: ", "delete my account") {
		_ = controller.Cancel()
		fmt.Println("Cancelled.")
		return
	}

	outcome := controller.RequestDeletion(ctx)
	if outcome.Success {
		fmt.Println("Your account has been deleted. You are now signed out.")
		return
	}

	fmt.Fprintf(os.Stderr, "Deletion failed: %s\nYou are still signed in; you can retry.\n", outcome.Message)
	os.Exit(1)
}

func confirm(r *bufio.Reader, prompt, expected string) bool {
	fmt.Print(prompt)
	line, err := r.ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(line) == expected
}
