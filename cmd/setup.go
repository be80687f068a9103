package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var setupAPIKey string

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Store the Google Civic API key in .env",
	Long: `Saves the Google Civic Information API key to a .env file in the current
directory, where it is picked up on every run. Get a key from the Google
Cloud console with the Civic Information API enabled.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		key := strings.TrimSpace(setupAPIKey)
		if key == "" {
			fmt.Print("Enter your Google Civic API key: ")
			line, err := bufio.NewReader(os.Stdin).ReadString('\n')
			if err != nil && line == "" {
				return eris.Wrap(err, "setup: read API key")
			}
			key = strings.TrimSpace(line)
		}
		if key == "" {
			return eris.New("setup: no API key provided")
		}

		if err := writeEnvKey(".env", "GOOGLE_CIVIC_API_KEY", key); err != nil {
			return err
		}
		fmt.Println("API key saved to .env")
		return nil
	},
}

func init() {
	setupCmd.Flags().StringVar(&setupAPIKey, "api-key", "", "Google Civic Information API key (prompts if omitted)")
	rootCmd.AddCommand(setupCmd)
}

// writeEnvKey sets key=value in the env file at path, replacing an existing
// assignment and preserving every other line.
func writeEnvKey(path, key, value string) error {
	entry := key + "=" + value

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return eris.Wrapf(err, "setup: read %s", path)
	}

	content := strings.TrimRight(string(data), "\n")
	if content == "" {
		return writeEnvFile(path, entry+"\n")
	}

	lines := strings.Split(content, "\n")
	replaced := false
	for i, line := range lines {
		if strings.HasPrefix(line, key+"=") {
			lines[i] = entry
			replaced = true
		}
	}
	if !replaced {
		lines = append(lines, entry)
	}
	return writeEnvFile(path, strings.Join(lines, "\n")+"\n")
}

func writeEnvFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return eris.Wrapf(err, "setup: write %s", path)
	}
	return nil
}
