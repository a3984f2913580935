package cli

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// readPassword prompts for the registry password with hidden input when no
// value was supplied via flag.
func readPassword() (string, error) {
	fmt.Fprint(os.Stderr, "Registry password: ")
	passwordBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	fmt.Fprintln(os.Stderr) // newline after hidden input

	password := string(passwordBytes)
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}
	return password, nil
}
