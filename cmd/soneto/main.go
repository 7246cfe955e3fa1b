// Package main provides the CLI entrypoint for soneto.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/verte-zerg/soneto/internal/config"
	"github.com/verte-zerg/soneto/internal/elision"
	"github.com/verte-zerg/soneto/internal/meter"
	"github.com/verte-zerg/soneto/internal/model"
	"github.com/verte-zerg/soneto/internal/poem"
	"github.com/verte-zerg/soneto/internal/report"
	"github.com/verte-zerg/soneto/internal/sonnet"
	"github.com/verte-zerg/soneto/internal/suggest"
	"github.com/verte-zerg/soneto/internal/tui"
	"github.com/verte-zerg/soneto/internal/watch"
	"github.com/verte-zerg/soneto/internal/wordlist"
)

const (
	defaultFormat       = report.FormatText
	defaultSuggestLimit = suggest.DefaultLimit
	defaultDebounceMs   = 200
)

var (
	logger  = zap.NewNop()
	verbose bool

	reportColor       bool
	editorSuggestions bool
	dictWordList      string
	dictSuggestLimit  int
	watchDebounceMs   int
	reportFormat      string
	reportWidth       int

	markVerse int
	markPos   int
	markWrite bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "soneto [file]",
		Short:         "Write and check Spanish sonnets",
		Long:          "soneto counts metrical syllables, groups rhymes and scores classic Spanish sonnets.\n\nRun with a file to open it in the editor.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// The editor owns the terminal; stderr logs would tear its frame.
			if cmd.Parent() == nil && !verbose {
				return nil
			}
			l, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = logger.Sync()
		},
		RunE: runEditorCmd,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().BoolVar(&editorSuggestions, "suggestions", true, "show rhyme suggestions for the focused verse")
	rootCmd.Flags().StringVar(&dictWordList, "wordlist", "", "extra rhyme word list (one word per line)")
	rootCmd.Flags().IntVar(&dictSuggestLimit, "limit", defaultSuggestLimit, "maximum rhyme suggestions")

	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newSuggestCmd())
	rootCmd.AddCommand(newMarkCmd())
	rootCmd.AddCommand(newSyllablesCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.DisableStacktrace = true
	cfg.Sampling = nil
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}

// loadConfig merges the config file into flags the user did not set.
func loadConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyBoolConfig(cmd, "color", &reportColor, fileCfg.Report.Color)
	applyBoolConfig(cmd, "suggestions", &editorSuggestions, fileCfg.Editor.Suggestions)
	applyStringConfig(cmd, "wordlist", &dictWordList, fileCfg.Dictionary.WordList)
	applyIntConfig(cmd, "limit", &dictSuggestLimit, fileCfg.Dictionary.SuggestLimit)
	applyIntConfig(cmd, "debounce-ms", &watchDebounceMs, fileCfg.Watch.DebounceMs)
	applyStringConfig(cmd, "format", &reportFormat, fileCfg.Report.Format)

	cfg := model.Config{
		Color:        reportColor,
		Suggestions:  editorSuggestions,
		WordListPath: dictWordList,
		SuggestLimit: dictSuggestLimit,
		DebounceMs:   watchDebounceMs,
		Format:       reportFormat,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func runEditorCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := ""
	p := poem.Poem{}
	if len(args) == 1 {
		path = args[0]
		p, err = poem.Load(path)
		if err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return err
			}
			p = poem.Poem{Title: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))}
		}
	}

	var suggester tui.Suggester
	if cfg.Suggestions {
		idx, err := openIndex(commandContext(cmd), cfg)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := idx.Close(); cerr != nil {
				logger.Warn("failed to close rhyme index", zap.Error(cerr))
			}
		}()
		suggester = idx
	}

	editor := tui.NewModel(cfg, logger, suggester, path, p)
	program := tea.NewProgram(editor, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Print the analysis of a sonnet file",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyzeCmd,
	}
	cmd.Flags().StringVarP(&reportFormat, "format", "f", defaultFormat, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&reportColor, "color", false, "force colored text output")
	cmd.Flags().IntVar(&reportWidth, "width", 0, "maximum text width (default: terminal width)")
	return cmd
}

func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	p, err := poem.Load(args[0])
	if err != nil {
		return err
	}
	if p.Extra > 0 {
		logger.Warn("extra lines ignored", zap.String("path", args[0]), zap.Int("lines", p.Extra))
	}
	res := sonnet.Analyze(p.Verses, nil)
	logger.Debug("analyzed", zap.String("path", args[0]), zap.Int("score", res.Score.Total))
	return report.Write(cmd.OutOrStdout(), report.NewDocument(p, res), report.Options{
		Format: cfg.Format,
		Color:  cfg.Color,
		Width:  reportWidth,
	})
}

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Re-print the analysis whenever the file changes",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatchCmd,
	}
	cmd.Flags().StringVarP(&reportFormat, "format", "f", defaultFormat, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&reportColor, "color", false, "force colored text output")
	cmd.Flags().IntVar(&watchDebounceMs, "debounce-ms", defaultDebounceMs, "quiet period before re-analyzing")
	return cmd
}

func runWatchCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	w := watch.New(args[0], time.Duration(cfg.DebounceMs)*time.Millisecond, logger,
		func(_ context.Context, p poem.Poem, res model.AnalysisResult) error {
			if err := report.Write(out, report.NewDocument(p, res), report.Options{Format: cfg.Format, Color: cfg.Color}); err != nil {
				return err
			}
			_, err := fmt.Fprintln(out)
			return err
		})
	logger.Info("watching", zap.String("path", args[0]))
	return w.Run(ctx)
}

func newSuggestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "suggest <word-or-verse>",
		Short: "List dictionary words that rhyme with a word or verse",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSuggestCmd,
	}
	cmd.Flags().IntVarP(&dictSuggestLimit, "limit", "n", defaultSuggestLimit, "maximum suggestions")
	cmd.Flags().StringVar(&dictWordList, "wordlist", "", "extra rhyme word list (one word per line)")
	cmd.Flags().StringVarP(&reportFormat, "format", "f", defaultFormat, "output format: text, json or yaml")
	return cmd
}

func runSuggestCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctx := commandContext(cmd)
	idx, err := openIndex(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := idx.Close(); cerr != nil {
			logger.Warn("failed to close rhyme index", zap.Error(cerr))
		}
	}()
	found, err := idx.For(ctx, strings.Join(args, " "), cfg.SuggestLimit)
	if err != nil {
		return fmt.Errorf("failed to look up rhymes: %w", err)
	}
	return report.WriteSuggestions(cmd.OutOrStdout(), found, cfg.Format)
}

func newMarkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mark <file>",
		Short: "Insert a synalepha marker and print the poem",
		Args:  cobra.ExactArgs(1),
		RunE:  runMarkCmd,
	}
	cmd.Flags().IntVar(&markVerse, "verse", 0, "verse number (1-14)")
	cmd.Flags().IntVar(&markPos, "pos", 0, "character position inside the verse (0-based)")
	cmd.Flags().BoolVarP(&markWrite, "write", "w", false, "write the result back to the file")
	_ = cmd.MarkFlagRequired("verse")
	_ = cmd.MarkFlagRequired("pos")
	return cmd
}

func runMarkCmd(cmd *cobra.Command, args []string) error {
	if markVerse < 1 || markVerse > model.VerseCount {
		return fmt.Errorf("--verse must be between 1 and %d", model.VerseCount)
	}
	p, err := poem.Load(args[0])
	if err != nil {
		return err
	}
	index := markVerse - 1
	updated := elision.InsertMarker(p.Verses, index, markPos)
	if updated[index] == p.Verses[index] {
		return fmt.Errorf("no synalepha possible at verse %d position %d", markVerse, markPos)
	}
	p.Verses = updated
	if markWrite {
		if err := poem.Save(args[0], p); err != nil {
			return err
		}
		logger.Info("marker written", zap.String("path", args[0]), zap.Int("verse", markVerse))
		return nil
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), poem.Render(p)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newSyllablesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "syllables <verse>",
		Short: "Show the syllables and metrical count of a verse",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSyllablesCmd,
	}
}

func runSyllablesCmd(cmd *cobra.Command, args []string) error {
	res := meter.Count(strings.Join(args, " "), nil)
	line := fmt.Sprintf("%s\n%s\n", strings.Join(res.Syllables, "-"), sonnet.MetricsDescription(res.Count))
	if _, err := fmt.Fprint(cmd.OutOrStdout(), line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Explain the rules of the classic sonnet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := fmt.Fprint(cmd.OutOrStdout(), report.Help()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path, err := ensureConfigFile(config.DefaultConfigPath())
	if err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// ensureConfigFile writes the commented template when path does not exist.
func ensureConfigFile(path string) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return "", fmt.Errorf("failed to write config: %w", err)
		}
	}
	return path, nil
}

// openIndex builds the rhyme index from the built-in words plus the
// configured list. The default list location is optional.
func openIndex(ctx context.Context, cfg model.Config) (*suggest.Index, error) {
	var extra []string
	path := cfg.WordListPath
	explicit := path != ""
	if !explicit {
		path = config.DefaultWordListPath()
	}
	words, err := wordlist.LoadWords(path)
	switch {
	case err == nil:
		extra = words
		logger.Debug("loaded word list", zap.String("path", path), zap.Int("words", len(words)))
	case explicit:
		return nil, fmt.Errorf("failed to load word list %s: %w", path, err)
	case !errors.Is(err, os.ErrNotExist):
		logger.Warn("ignoring word list", zap.String("path", path), zap.Error(err))
	}
	return suggest.New(ctx, logger, extra)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if flag := cmd.Flags().Lookup(name); flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# soneto configuration
# Uncomment a value to enable it. CLI flags override config values.

[editor]
# suggestions = true      # Show rhyme suggestions in the editor

[dictionary]
# wordlist = "%s"
# suggest-limit = %d      # Maximum rhyme suggestions

[watch]
# debounce-ms = %d       # Quiet period before re-analyzing

[report]
# format = %q          # text, json or yaml
# color = false           # Force ANSI colors in analyze and watch text output
`,
		config.DefaultWordListPath(),
		defaultSuggestLimit,
		defaultDebounceMs,
		defaultFormat,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Format != "" && !report.ValidFormat(cfg.Format) {
		return fmt.Errorf("--format must be one of text, json, yaml")
	}
	if cfg.SuggestLimit <= 0 {
		return fmt.Errorf("--limit must be > 0")
	}
	if cfg.DebounceMs < 0 {
		return fmt.Errorf("--debounce-ms must be >= 0")
	}
	return nil
}
