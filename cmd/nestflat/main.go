package main

import (
	"fmt"
	"io"
	"os"

	"github.com/ehsanranjbar/nestutils"
	"github.com/ehsanranjbar/nestutils/codec"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	fromFormat string
	toFormat   string
	key        string
	maxDepth   int
	verbose    bool

	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "nestflat [file]",
	Short: "Flatten the nested lists of a document",
	Long: `nestflat reads a JSON, YAML, MessagePack or TOML document, flattens the
nested list it holds depth-first and writes the flat list back out.

The input is read from the file argument, or from stdin when it is absent or "-".

With --paths, --type, --skip or --limit the list is walked lazily and only the
selected scalars are written.

Examples:
  echo '[1, [2, [3]]]' | nestflat
  nestflat --key data.items --to yaml input.json
  nestflat --type string --limit 10 --paths input.json`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}

		l, err := config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: runFlatten,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.Flags().StringVarP(&fromFormat, "from", "f", "", "Input format (default: from file extension, else json)")
	rootCmd.Flags().StringVarP(&toFormat, "to", "t", "", "Output format (default: input format)")
	rootCmd.Flags().StringVarP(&key, "key", "k", "", "Dot separated key of the list inside the document")
	rootCmd.Flags().IntVar(&maxDepth, "max-depth", 0, "Fail when lists are nested deeper than this (0 = unlimited)")
}

func runFlatten(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	from, err := inputFormat(path)
	if err != nil {
		return err
	}
	to := toFormat
	if to == "" {
		to = from
	}

	dec, err := codec.NewSequenceCodec(from, codec.WithKey(key))
	if err != nil {
		return err
	}
	enc, err := codec.NewSequenceCodec(to, codec.WithKey(key))
	if err != nil {
		return err
	}

	bz, err := readInput(cmd, path)
	if err != nil {
		return err
	}
	logger.Debug("read input", zap.String("path", path), zap.String("format", from), zap.Int("bytes", len(bz)))

	seq, err := dec.Decode(bz)
	if err != nil {
		return err
	}

	var flat nestutils.Sequence
	if selecting() {
		flat, err = selectLeaves(seq)
	} else {
		flat, err = nestutils.FlattenWith(seq, nestutils.WithMaxDepth(maxDepth))
	}
	if err != nil {
		return fmt.Errorf("failed to flatten %s: %w", path, err)
	}
	logger.Debug("flattened",
		zap.Int("depth", nestutils.Depth(seq)),
		zap.Int("scalars", len(flat)),
	)

	out, err := enc.Encode(flat)
	if err != nil {
		return err
	}
	if !enc.Format().Binary && (len(out) == 0 || out[len(out)-1] != '\n') {
		out = append(out, '\n')
	}

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func inputFormat(path string) (string, error) {
	if fromFormat != "" {
		return fromFormat, nil
	}
	if f, ok := codec.FormatFromPath(path); ok {
		return f.Name, nil
	}
	return "json", nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		bz, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return bz, nil
	}

	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return bz, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
