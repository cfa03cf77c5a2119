package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/bnema/webclicker/internal/domain"
	"github.com/spf13/cobra"
)

func newProfileCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage saved polling profiles",
	}

	cmd.AddCommand(
		newProfileAddCmd(app),
		newProfileListCmd(app),
		newProfileRemoveCmd(app),
	)

	return cmd
}

func newProfileAddCmd(app *app) *cobra.Command {
	var (
		url           string
		interval      float64
		headless      bool
		username      string
		password      string
		passwordStdin bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create or update a profile",
		Long: "Create or update a profile. The password is kept in the secret store " +
			"(pass, or files under ~/.webclicker/secrets) and only referenced from profiles.toml.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if password != "" && passwordStdin {
				return fmt.Errorf("--password and --password-stdin are mutually exclusive")
			}
			if passwordStdin {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("read password from stdin: %w", err)
				}
				password = strings.TrimRight(line, "\r\n")
			}
			if password != "" && username == "" {
				return domain.ErrIncompleteCredentials
			}

			intervalDuration, err := parseInterval(fmt.Sprintf("%g", interval))
			if err != nil {
				return err
			}

			profile := domain.Profile{
				Name:     domain.ProfileName(args[0]),
				URL:      url,
				Interval: intervalDuration,
				Headless: headless,
				Username: username,
			}
			if err := app.profiles.Save(cmd.Context(), profile, password); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved profile %s\n", profile.Name)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&url, "url", "", "Polling page URL")
	flags.Float64Var(&interval, "interval", 0, "Seconds between checks (0 keeps the run default)")
	flags.BoolVar(&headless, "headless", false, "Run the browser without a window")
	flags.StringVar(&username, "username", "", "Login username")
	flags.StringVar(&password, "password", "", "Login password")
	flags.BoolVar(&passwordStdin, "password-stdin", false, "Read the login password from stdin")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

func newProfileListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := app.profiles.List(cmd.Context())
			if err != nil {
				return err
			}

			rendered, err := app.profileRenderer(profiles)
			if err != nil {
				return fmt.Errorf("render profiles: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}
}

func newProfileRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Remove a profile and its stored password",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.profiles.Remove(cmd.Context(), domain.ProfileName(args[0])); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed profile %s\n", args[0])
			return err
		},
	}
}
