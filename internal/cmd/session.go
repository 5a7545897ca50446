package cmd

import (
	"context"
	"fmt"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ecosaathi/ecosaathi/internal/application/navigation"
)

var loginCmd = &cobra.Command{
	Use:   "login <email-or-phone>",
	Short: "Authenticate and store the session",
	Args:  cobra.ExactArgs(1),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the stored session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), "Password: ")
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf("read password: %w", err)
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
	defer cancel()

	s, landing, err := a.authUC.Login(ctx, args[0], string(pw))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s (%s), landing at %s\n", s.DisplayName, s.Role, landing)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	a.authUC.Logout()
	fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := bootstrap()
	if err != nil {
		return err
	}
	s := a.store.Current()
	if s == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  role=%s  subject=%s  landing=%s\n",
		s.DisplayName, s.Role, s.SubjectID, navigation.DefaultLandingPath(s))
	return nil
}
