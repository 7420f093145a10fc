package cmd

import (
	"fmt"

	"github.com/rawbytedev/u16view"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newFindCmd(o *options) *cobra.Command {
	var (
		last bool
		from int
	)
	c := &cobra.Command{
		Use:   "find <needle> [text...]",
		Short: "Print the unit offset of the first (or last) match, or -1",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := o.text(cmd, args[1:])
			if err != nil {
				return err
			}
			needle := u16view.Of(args[0])
			var idx int
			if last {
				if !cmd.Flags().Changed("from") {
					from = -1
				}
				idx = text.LastIndexOf(needle, from, o.caseSensitivity())
			} else {
				idx = text.IndexOf(needle, from, o.caseSensitivity())
			}
			logrus.WithFields(logrus.Fields{"op": "find", "size": text.Size(), "last": last, "from": from, "index": idx}).Debug("find done")
			fmt.Fprintln(cmd.OutOrStdout(), idx)
			return nil
		},
	}
	c.Flags().BoolVar(&last, "last", false, "search backwards from --from")
	c.Flags().IntVar(&from, "from", 0, "start offset; negative counts from the end (default -1 with --last)")
	return c
}

func newCountCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "count <needle> [text...]",
		Short: "Count non-overlapping matches",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := o.text(cmd, args[1:])
			if err != nil {
				return err
			}
			n := text.Count(u16view.Of(args[0]), o.caseSensitivity())
			logrus.WithFields(logrus.Fields{"op": "count", "size": text.Size(), "count": n}).Debug("count done")
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newCompareCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Print -1, 0 or 1 as a sorts before, equal to or after b",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := u16view.Of(args[0]), u16view.Of(args[1])
			r := a.Compare(b, o.caseSensitivity())
			logrus.WithFields(logrus.Fields{"op": "compare", "case": o.caseSensitivity(), "result": r}).Debug("compare done")
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}
