package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/rawbytedev/u16view/pkg/compactwire"
	"github.com/rawbytedev/u16view/zc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newConvertCmd(o *options) *cobra.Command {
	var (
		to     string
		bom    bool
		asHex  bool
		errTag int
	)
	c := &cobra.Command{
		Use:   "convert --to <latin1|utf8|local|utf16le|frame> [text...]",
		Short: "Encode the text and write the bytes to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := o.text(cmd, args)
			if err != nil {
				return err
			}
			var out []byte
			switch to {
			case "latin1":
				out = text.ToLatin1()
			case "utf8":
				out = text.ToUtf8()
			case "local":
				out = text.ToLocal8Bit()
			case "utf16le":
				out, err = zc.EncodeText(text, bom)
			case "frame":
				enc := compactwire.NewEncoder(o.cfg.Frame.Compress)
				if errTag > 0xFF {
					return fmt.Errorf("error code %d does not fit in a byte", errTag)
				}
				if errTag >= 0 {
					out, err = enc.EncodeError(byte(errTag), text)
				} else {
					out, err = enc.EncodeView(text)
				}
			default:
				return fmt.Errorf("unknown target encoding %q", to)
			}
			if err != nil {
				return err
			}
			logrus.WithFields(logrus.Fields{"op": "convert", "to": to, "size": text.Size(), "bytes": len(out)}).Debug("convert done")

			w := cmd.OutOrStdout()
			if asHex {
				_, err = fmt.Fprintln(w, hex.EncodeToString(out))
				return err
			}
			_, err = w.Write(out)
			return err
		},
	}
	c.Flags().StringVar(&to, "to", "utf8", "target: latin1, utf8, local, utf16le or frame")
	c.Flags().BoolVar(&bom, "bom", false, "prefix utf16le output with a byte order mark")
	c.Flags().BoolVar(&asHex, "hex", false, "print the bytes as hex")
	c.Flags().IntVar(&errTag, "error-code", -1, "with --to frame, write an error frame with this code")
	return c
}
