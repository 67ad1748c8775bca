package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"taskflow/internal/api"
)

var registerEmail string

var registerCmd = &cobra.Command{
	Use:   "register <username> <password>",
	Short: "Create a TaskFlow account",
	Args:  cobra.ExactArgs(2),
	RunE:  runRegister,
}

var loginCmd = &cobra.Command{
	Use:   "login <username> <password>",
	Short: "Log in and persist the session",
	Args:  cobra.ExactArgs(2),
	RunE:  runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user, validating the session against the server",
	RunE:  runWhoami,
}

func init() {
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address for the account")
	registerCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(registerCmd, loginCmd, logoutCmd, whoamiCmd)
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	user, err := a.client.Register(cmd.Context(), api.RegisterRequest{
		Username: args[0],
		Email:    registerEmail,
		Password: args[1],
	})
	if err != nil {
		return err
	}
	fmt.Printf("Registered %s <%s>. Now run: taskflow login %s <password>\n", user.Username, user.Email, user.Username)
	return nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	token, err := a.client.Login(cmd.Context(), args[0], args[1])
	if err != nil {
		return err
	}
	if err := a.session.SetCredentials(token, nil); err != nil {
		return err
	}
	user, err := a.session.Validate(cmd.Context(), a.client)
	if err != nil {
		return err
	}
	if err := a.session.SetCredentials(token, user); err != nil {
		return err
	}
	fmt.Printf("Logged in as %s.\n", user.Username)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	a.session.Teardown()
	fmt.Println("Logged out.")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	user, err := a.session.Validate(cmd.Context(), a.client)
	if err != nil {
		return err
	}
	fmt.Printf("%s <%s>\n", user.Username, user.Email)
	return nil
}
