package cmd

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/rawbytedev/u16view"
	"github.com/rawbytedev/u16view/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags.
var Version = "dev"

// init routes logrus output to stderr so command output stays clean.
func init() {
	logrus.SetOutput(os.Stderr)
}

type options struct {
	cfgFile         string
	verbose         bool
	caseInsensitive bool
	skipEmpty       bool
	file            string
	memProfile      string

	cfg *config.Config
}

// NewRootCmd builds the command tree. Each call returns fresh flag state.
func NewRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "u16view",
		Short: "Slice, search and convert UTF-16 text without copying",
		Long: `u16view runs view operations over UTF-16 text.

Text comes from the trailing arguments, or from --file (use - for stdin).
File input is decoded according to input_encoding in the config: utf8
(a byte order mark may switch it to UTF-16) or raw utf16 little-endian.

Examples:
  u16view split , "a,,b"
  u16view --skip-empty split , "a,,b"
  u16view -i find WORLD "hello world"
  u16view convert --to frame --hex "framed text"`,
		SilenceUsage:       true,
		PersistentPreRunE:  func(*cobra.Command, []string) error { return o.setup() },
		PersistentPostRunE: func(*cobra.Command, []string) error { return o.writeProfile() },
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "config file, .toml or .yaml (default: $"+config.EnvPath+")")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "debug logging")
	pf.BoolVarP(&o.caseInsensitive, "case-insensitive", "i", false, "fold case when matching")
	pf.BoolVar(&o.skipEmpty, "skip-empty", false, "drop empty parts when splitting")
	pf.StringVarP(&o.file, "file", "f", "", "read text from a file (- for stdin)")
	pf.StringVar(&o.memProfile, "memprofile", "", "write a heap profile to this file on exit")

	root.AddCommand(
		newSplitCmd(o),
		newTokenizeCmd(o),
		newFindCmd(o),
		newCountCmd(o),
		newCompareCmd(o),
		newTrimCmd(o),
		newValidateCmd(o),
		newRTLCmd(o),
		newNumberCmd(o),
		newConvertCmd(o),
		newInspectCmd(o),
		newVersionCmd(),
	)
	return root
}

func Execute() error {
	return NewRootCmd().Execute()
}

func (o *options) setup() error {
	var err error
	if o.cfgFile != "" {
		o.cfg, err = config.Load(o.cfgFile)
	} else {
		o.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	level, err := logrus.ParseLevel(o.cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("%w: log_level %q", config.ErrInvalidConfig, o.cfg.LogLevel)
	}
	if o.verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)

	if o.cfg.LocalEncoding != "" {
		if err := u16view.SetLocalEncoding(o.cfg.LocalEncoding); err != nil {
			return err
		}
	}
	if o.memProfile != "" {
		runtime.MemProfileRate = 1
	}

	logrus.WithFields(logrus.Fields{
		"config": o.cfgFile,
		"case":   o.caseSensitivity(),
		"split":  o.splitBehavior(),
		"local":  u16view.LocalEncodingName(),
	}).Debug("configuration loaded")
	return nil
}

func (o *options) writeProfile() error {
	if o.memProfile == "" {
		return nil
	}
	f, err := os.Create(o.memProfile)
	if err != nil {
		return fmt.Errorf("create profile: %w", err)
	}
	defer f.Close()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write profile: %w", err)
	}
	logrus.WithField("file", o.memProfile).Debug("heap profile written")
	return nil
}

func (o *options) caseSensitivity() u16view.CaseSensitivity {
	if o.caseInsensitive {
		return u16view.CaseInsensitive
	}
	return o.cfg.Case()
}

func (o *options) splitBehavior() u16view.SplitBehavior {
	if o.skipEmpty {
		return u16view.SkipEmptyParts
	}
	return o.cfg.Behavior()
}
