package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"digital.vasic.failmsg/pkg/assertion"
	"digital.vasic.failmsg/pkg/operator"
)

func newBinaryCmd(a *app) *cobra.Command {
	var (
		op          string
		left, right []string
	)

	cmd := &cobra.Command{
		Use:   "binary --op TOKEN --left LIT... --right LIT...",
		Short: "Print the message for a failed binary comparison",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := parseToken(op)
			if err != nil {
				return err
			}
			l, err := parseLiterals(left)
			if err != nil {
				return fmt.Errorf("left: %w", err)
			}
			r, err := parseLiterals(right)
			if err != nil {
				return fmt.Errorf("right: %w", err)
			}

			msg := a.synth.Binary(cmd.Context(), token, l, r)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	}

	cmd.Flags().StringVar(&op, "op", string(operator.Equal), "comparison operator")
	cmd.Flags().StringArrayVar(&left, "left", nil, "left operand literal (repeatable)")
	cmd.Flags().StringArrayVar(&right, "right", nil, "right operand literal (repeatable)")
	return cmd
}

func newUnaryCmd(a *app) *cobra.Command {
	var op string

	cmd := &cobra.Command{
		Use:   "unary [--op OP] LIT",
		Short: "Print the message for a failed single-operand assertion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := parseLiteral(args[0])
			if err != nil {
				return err
			}

			msg := a.synth.Unary(cmd.Context(), op, x)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	}

	cmd.Flags().StringVar(&op, "op", assertion.UnaryNegation, "unary operator")
	return cmd
}

func newInvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "invert TOKEN",
		Short: "Print the negation of a comparison operator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token, err := parseToken(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), operator.Invert(token))
			return err
		},
	}
}

func parseToken(s string) (operator.Token, error) {
	token, ok := operator.Lookup(s)
	if !ok {
		return "", &operator.InvalidTokenError{Token: operator.Token(s)}
	}
	return token, nil
}
