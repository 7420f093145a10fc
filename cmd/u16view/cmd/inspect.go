package cmd

import (
	"errors"
	"fmt"

	"github.com/rawbytedev/u16view"
	"github.com/rawbytedev/u16view/pkg/compactwire"
	"github.com/rawbytedev/u16view/zc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	errInvalidText = errors.New("text is not well-formed UTF-16")
	errNotNumber   = errors.New("not a number")
)

func newTrimCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "trim [text...]",
		Short: "Strip leading and trailing whitespace",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := o.text(cmd, args)
			if err != nil {
				return err
			}
			t := text.Trimmed()
			logrus.WithFields(logrus.Fields{"op": "trim", "size": text.Size(), "trimmed": t.Size()}).Debug("trim done")
			fmt.Fprintln(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func newValidateCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [text...]",
		Short: "Check that every surrogate is correctly paired",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := o.text(cmd, args)
			if err != nil {
				return err
			}
			if !text.IsValidUtf16() {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return errInvalidText
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

func newRTLCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "rtl [text...]",
		Short: "Report whether the text reads right-to-left",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := o.text(cmd, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text.IsRightToLeft())
			return nil
		},
	}
}

func newNumberCmd(o *options) *cobra.Command {
	var base int
	c := &cobra.Command{
		Use:   "number [text...]",
		Short: "Parse the text as an integer, falling back to a float",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := o.text(cmd, args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if n, ok := text.ToInt64(base); ok {
				fmt.Fprintf(out, "int %d\n", n)
				return nil
			}
			if u, ok := text.ToUint64(base); ok {
				fmt.Fprintf(out, "uint %d\n", u)
				return nil
			}
			if f, ok := text.ToFloat64(); ok {
				fmt.Fprintf(out, "float %g\n", f)
				return nil
			}
			return fmt.Errorf("%w: %q", errNotNumber, text.String())
		},
	}
	c.Flags().IntVar(&base, "base", 10, "integer base; 0 reads a 0x, 0o, 0b or 0 prefix")
	return c
}

func newInspectCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect --file <frame>",
		Short: "Validate a compactwire frame and print its contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := o.raw(cmd)
			if err != nil {
				return err
			}
			typ, err := compactwire.FrameType(data)
			if err != nil {
				return err
			}
			dec := compactwire.NewDecoder(zc.Options{CheckAlignment: o.cfg.Frame.CheckAlignment, AllowCopy: true})
			defer dec.Close()

			out := cmd.OutOrStdout()
			var text u16view.View
			switch typ {
			case compactwire.TypeData:
				text, err = dec.DecodeView(data)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "data frame, %d bytes, %d units\n", len(data), text.Size())
			case compactwire.TypeError:
				var code byte
				code, text, err = dec.DecodeError(data)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "error frame, %d bytes, code %d\n", len(data), code)
			default:
				return fmt.Errorf("%w: unknown type 0x%02x", compactwire.ErrNotFrame, typ)
			}
			logrus.WithFields(logrus.Fields{"op": "inspect", "type": typ, "size": text.Size()}).Debug("frame decoded")
			fmt.Fprintln(out, text)
			return nil
		},
	}
}
