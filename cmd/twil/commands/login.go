package commands

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/dialkit-io/twilio-client/internal/constants"
	"github.com/dialkit-io/twilio-client/pkg/restclient"
	"github.com/dialkit-io/twilio-client/pkg/twilio"
)

// cliConfig is the on-disk shape of ~/.twil/config.yml.
type cliConfig struct {
	AccountSid string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	API        string `yaml:"api,omitempty"`
	Output     string `yaml:"output,omitempty"`
}

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		accountSid string
		authToken  string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store account credentials",
		Long:  "Verify account credentials against the API and store them in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if accountSid == "" {
				accountSid = viper.GetString("account_sid")
			}

			if accountSid == "" {
				reader := bufio.NewReader(os.Stdin)
				fmt.Print("Account SID: ")
				accountSid, _ = reader.ReadString('\n')
				accountSid = strings.TrimSpace(accountSid)
			}

			if accountSid == "" {
				return ErrAccountSidRequired
			}

			if authToken == "" {
				authToken = viper.GetString("auth_token")
			}

			if authToken == "" {
				fmt.Print("Auth token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read auth token: %w", err)
				}

				authToken = string(byteToken)

				fmt.Println()
			}

			if authToken == "" {
				return ErrAuthTokenRequired
			}

			client, err := restclient.New(&twilio.Config{
				AccountSid: accountSid,
				AuthToken:  authToken,
				Endpoint:   viper.GetString("api"),
			})
			if err != nil {
				return fmt.Errorf("creating client: %w", err)
			}

			// Verify the credentials before persisting them.
			account, err := client.Accounts().Get(context.Background(), "")
			if err != nil {
				return fmt.Errorf("verifying credentials: %w", err)
			}

			err = saveConfig(&cliConfig{
				AccountSid: accountSid,
				AuthToken:  authToken,
				API:        viper.GetString("api"),
			})
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", account.FriendlyName, account.Sid)

			return nil
		},
	}

	cmd.Flags().StringVar(&accountSid, "account-sid", "", "account SID (AC...)")
	cmd.Flags().StringVar(&authToken, "auth-token", "", "account auth token")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			err = os.Remove(path)
			if err != nil {
				if os.IsNotExist(err) {
					fmt.Println("Not logged in")

					return nil
				}

				return fmt.Errorf("removing config file: %w", err)
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}

func configFilePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}

	return filepath.Join(home, ".twil", "config.yml"), nil
}

func saveConfig(config *cliConfig) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	// The file holds the auth token, so keep it owner-readable only.
	if err := os.WriteFile(path, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
