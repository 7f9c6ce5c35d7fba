package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-orderform/pkg/renderers/tui"
)

func newOrderCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Fill in and place an order interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.app()
			if err != nil {
				return err
			}
			session, err := app.Session(tui.WithPromptDriver(tui.NewSurveyDriver(cmd.OutOrStdout())))
			if err != nil {
				return err
			}
			outcome, err := session.Run(cmd.Context())
			if errors.Is(err, tui.ErrAborted) {
				return nil
			}
			if err != nil {
				return err
			}
			if outcome.IsFailure() {
				return errors.New(outcome.Message)
			}
			return nil
		},
	}
}
