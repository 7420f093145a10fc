package cmd

import (
	"fmt"
	"regexp"

	"github.com/rawbytedev/u16view"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSplitCmd(o *options) *cobra.Command {
	var useRegexp bool
	c := &cobra.Command{
		Use:   "split <sep> [text...]",
		Short: "Split text around a separator, one part per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := o.text(cmd, args[1:])
			if err != nil {
				return err
			}
			var parts []u16view.View
			if useRegexp {
				re, err := regexp.Compile(args[0])
				if err != nil {
					return fmt.Errorf("compile separator: %w", err)
				}
				parts = text.SplitRegexp(re, o.splitBehavior())
			} else {
				parts = text.Split(u16view.Of(args[0]), o.splitBehavior(), o.caseSensitivity())
			}
			logrus.WithFields(logrus.Fields{"op": "split", "size": text.Size(), "parts": len(parts)}).Debug("split done")

			out := cmd.OutOrStdout()
			for _, p := range parts {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
	c.Flags().BoolVarP(&useRegexp, "regexp", "E", false, "treat the separator as a regular expression")
	return c
}

func newTokenizeCmd(o *options) *cobra.Command {
	var limit int
	c := &cobra.Command{
		Use:   "tokenize <sep> [text...]",
		Short: "Print numbered tokens, stopping after --limit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := o.text(cmd, args[1:])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			n := 0
			for tok := range text.Tokenize(u16view.Of(args[0]), o.splitBehavior(), o.caseSensitivity()) {
				if limit > 0 && n == limit {
					break
				}
				fmt.Fprintf(out, "%d\t%s\n", n, tok)
				n++
			}
			logrus.WithFields(logrus.Fields{"op": "tokenize", "size": text.Size(), "parts": n}).Debug("tokenize done")
			return nil
		},
	}
	c.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many tokens (0 for all)")
	return c
}
