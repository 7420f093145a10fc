package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rawbytedev/u16view"
	"github.com/rawbytedev/u16view/zc"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errNoInput = errors.New("no input: pass text or --file")

// raw returns the bytes named by --file.
func (o *options) raw(cmd *cobra.Command) ([]byte, error) {
	if o.file == "" {
		return nil, errNoInput
	}
	var (
		data []byte
		err  error
	)
	if o.file == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(o.file)
	}
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	logrus.WithFields(logrus.Fields{"file": o.file, "bytes": len(data)}).Debug("input read")
	return data, nil
}

// text returns the input as a view: the joined arguments, or the decoded
// contents of --file when it is set.
func (o *options) text(cmd *cobra.Command, args []string) (u16view.View, error) {
	if o.file == "" {
		return u16view.Of(strings.Join(args, " ")), nil
	}
	data, err := o.raw(cmd)
	if err != nil {
		return u16view.View{}, err
	}
	if o.cfg.InputEncoding == "utf16" {
		data = bytes.TrimPrefix(data, []byte{0xFF, 0xFE})
		return zc.Alias(data, zc.Options{CheckAlignment: o.cfg.Frame.CheckAlignment, AllowCopy: true})
	}
	return zc.DecodeText(data)
}
