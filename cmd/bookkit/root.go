package main

import (
	"fmt"
	"strings"

	"bookkit/internal/sentence"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "bookkit",
		Short:        "Validate book records and transform text",
		SilenceUsage: true,
		RunE:         func(c *cobra.Command, _ []string) error { return c.Help() },
	}
	cmd.AddCommand(newBookCmd())
	cmd.AddCommand(newLanguagesCmd())
	cmd.AddCommand(newTextCmd("reverse-words", "Reverse the letters of every word", sentence.ReverseWords))
	cmd.AddCommand(newTextCmd("reverse-sentence", "Reverse the order of the words", sentence.ReverseSentence))
	cmd.AddCommand(newCipherCmd("encrypt", "Caesar-shift letters forward", sentence.Encrypt))
	cmd.AddCommand(newCipherCmd("decrypt", "Caesar-shift letters back", sentence.Decrypt))
	return cmd
}

func newTextCmd(use, short string, transform func(string) string) *cobra.Command {
	return &cobra.Command{
		Use:   use + " TEXT...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), transform(strings.Join(args, " ")))
			return nil
		},
	}
}

func newCipherCmd(use, short string, transform func(string, int) string) *cobra.Command {
	var shift int
	cmd := &cobra.Command{
		Use:   use + " TEXT...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), transform(strings.Join(args, " "), shift))
			return nil
		},
	}
	cmd.Flags().IntVarP(&shift, "shift", "s", defaultShift(), "number of places to shift (BOOKKIT_SHIFT)")
	return cmd
}
