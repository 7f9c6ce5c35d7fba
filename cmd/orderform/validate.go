package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-orderform/pkg/form"
	"github.com/goliatone/go-orderform/pkg/renderers/text"
)

var errOrderRejected = errors.New("order not accepted")

func newValidateCmd(c *cli) *cobra.Command {
	var (
		name     string
		size     string
		toppings []string
		format   string
		output   string
		submit   bool
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate an order given as flags and optionally place it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.app()
			if err != nil {
				return err
			}
			registry, err := app.Renderers()
			if err != nil {
				return err
			}
			if _, err := registry.Get(format); err != nil {
				return err
			}

			ctrl, err := app.NewController()
			if err != nil {
				return err
			}
			ctrl.SetFullName(name)
			ctrl.SetSize(size)
			for _, id := range toppings {
				ctrl.ToggleTopping(id, true)
			}

			var result error
			if submit {
				outcome, err := ctrl.Submit(cmd.Context())
				switch {
				case errors.Is(err, form.ErrNotSubmittable):
					result = errOrderRejected
				case err != nil:
					return err
				case outcome.IsFailure():
					result = fmt.Errorf("%w: %s", errOrderRejected, outcome.Message)
				}
			} else if !ctrl.CanSubmit() {
				result = errOrderRejected
			}

			out, _, err := registry.Render(cmd.Context(), format, ctrl.Snapshot(), app.RenderOptions())
			if err != nil {
				return err
			}
			if output != "" {
				if err := os.WriteFile(output, out, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Order written to %s\n", output)
			} else if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return err
			}
			return result
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	cmd.Flags().StringVar(&size, "size", "", "Pizza size (S, M or L)")
	cmd.Flags().StringSliceVar(&toppings, "topping", nil, "Topping id, repeatable")
	cmd.Flags().StringVar(&format, "format", text.TextName, "Output renderer: text, json or html")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (stdout if empty)")
	cmd.Flags().BoolVar(&submit, "submit", false, "Place the order when it is valid")
	return cmd
}
