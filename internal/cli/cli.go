// Package cli implements the pathsel command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pathsel/pathsel"
	"github.com/pathsel/pathsel/handoff"
	"github.com/pathsel/pathsel/scene"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Version is set at build time.
var Version = "dev"

// Host is the running application a selection is handed to.
type Host interface {
	Apply(ctx context.Context, ids []string, delay time.Duration) error
	Close() error
}

// dialHost acquires the host connection for a non-debug run.
var dialHost = func(ctx context.Context, log logrus.FieldLogger) (Host, error) {
	conn, err := handoff.Dial(ctx, log)
	if err != nil {
		return nil, err
	}
	return conn, nil
}

type option struct {
	name, usage, shorthand string
	defaultVal             any
	flagsets               []*pflag.FlagSet
}

// New returns the root command. Output goes to out, logs to errOut.
func New(out, errOut io.Writer) *cobra.Command {
	cfg := viper.New()
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	root := &cobra.Command{
		Use:   "pathsel",
		Short: "Select drawing objects touched or enclosed by a path.",
		Long: `pathsel selects the objects of a drawing that a reference path touches or
encloses, and hands the resulting selection to a running Inkscape.

Configuration can be changed with a TOML configuration file (given with
--config), command-line flags, or environment variables in the format
PATHSEL_VAR, where VAR is the upper-cased flag name with dashes replaced by
underscores.`,
		SilenceUsage:      true,
		DisableAutoGenTag: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			if path := cfg.GetString("config"); path != "" {
				cfg.SetConfigFile(path)
				if err := cfg.ReadInConfig(); err != nil {
					return fmt.Errorf("pathsel: problem reading configuration file: %w", err)
				}
			}
			if cfg.GetBool("verbose") {
				log.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Printf("pathsel %s\n", Version)
		},
		DisableAutoGenTag: true,
	}

	selectCmd := &cobra.Command{
		Use:   "select scene.toml",
		Short: "Run a selection pass on a scene file.",
		Long: `select tests every candidate of the scene against its reference path and
hands the reconciled selection to Inkscape. With --debug, the selection is
printed instead, as a comma separated list of ids.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := optionsFromConfig(cfg)
			if err != nil {
				return err
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return runSelect(cmd.Context(), cmd.OutOrStdout(), log, opts, args[0])
		},
		DisableAutoGenTag: true,
	}

	root.AddCommand(versionCmd, selectCmd)

	def := pathsel.DefaultOptions()
	options := []option{
		{
			name:       "config",
			usage:      "configuration file location",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{root.PersistentFlags()},
		},
		{
			name:       "verbose",
			shorthand:  "v",
			usage:      "log every matching candidate",
			defaultVal: false,
			flagsets:   []*pflag.FlagSet{root.PersistentFlags()},
		},
		{
			name:       "method",
			shorthand:  "m",
			usage:      "selection method: touching or enclosed",
			defaultVal: string(def.Method),
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
		{
			name:       "touch-criteria",
			usage:      "criterion for touching: bounding_box_cross or bounding_box_center",
			defaultVal: string(def.Touch),
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
		{
			name:       "enclose-criteria",
			usage:      "criterion for enclosed: bounding_box_center, all_points or any_point",
			defaultVal: string(def.Enclose),
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
		{
			name:       "mode",
			usage:      "how to combine with the current selection: replace, add or subtract",
			defaultVal: def.Mode.String(),
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
		{
			name:       "include-hidden",
			usage:      "include hidden and locked objects",
			defaultVal: def.IncludeHidden,
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
		{
			name:       "include-groups",
			usage:      "include groups",
			defaultVal: def.IncludeGroups,
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
		{
			name:       "selection-tolerance",
			usage:      "tolerance of the touching criteria, in document units",
			defaultVal: def.SelectionTolerance,
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
		{
			name:       "bezier-tolerance",
			usage:      "convergence tolerance of the curve intersection solver",
			defaultVal: def.BezierTolerance,
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
		{
			name:       "max-iter",
			usage:      "Newton iterations per seed of the intersection solver",
			defaultVal: def.MaxIter,
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
		{
			name:       "samples",
			usage:      "points sampled per path segment by the touching criteria",
			defaultVal: def.Samples,
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
		{
			name:       "delay",
			usage:      "time to wait before handing the selection to Inkscape, with a unit (500ms, 1s)",
			defaultVal: def.Delay,
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
		{
			name:       "debug",
			usage:      "print the selection instead of handing it to Inkscape",
			defaultVal: def.Debug,
			flagsets:   []*pflag.FlagSet{selectCmd.Flags()},
		},
	}

	cfg.SetEnvPrefix("PATHSEL")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()
	for _, option := range options {
		for i, set := range option.flagsets {
			if i != 0 { // We don't want to create the same flag twice.
				set.AddFlag(option.flagsets[0].Lookup(option.name))
				continue
			}
			switch v := option.defaultVal.(type) {
			case string:
				set.StringP(option.name, option.shorthand, v, option.usage)
			case bool:
				set.BoolP(option.name, option.shorthand, v, option.usage)
			case int:
				set.IntP(option.name, option.shorthand, v, option.usage)
			case float64:
				set.Float64P(option.name, option.shorthand, v, option.usage)
			case time.Duration:
				set.DurationP(option.name, option.shorthand, v, option.usage)
			default:
				panic("invalid argument type")
			}
			if err := cfg.BindPFlag(option.name, set.Lookup(option.name)); err != nil {
				panic(err)
			}
		}
	}
	return root
}

// optionsFromConfig converts the resolved configuration. Values from
// configuration files and the environment arrive untyped, so every value is
// converted strictly.
func optionsFromConfig(cfg *viper.Viper) (pathsel.Options, error) {
	var opts pathsel.Options
	var err error
	if opts.Method, err = pathsel.ParseMethod(cfg.GetString("method")); err != nil {
		return opts, err
	}
	if opts.Touch, err = pathsel.ParseTouchCriterion(cfg.GetString("touch-criteria")); err != nil {
		return opts, err
	}
	if opts.Enclose, err = pathsel.ParseEncloseCriterion(cfg.GetString("enclose-criteria")); err != nil {
		return opts, err
	}
	if opts.Mode, err = pathsel.ParseMode(cfg.GetString("mode")); err != nil {
		return opts, err
	}

	if opts.IncludeHidden, err = cast.ToBoolE(cfg.Get("include-hidden")); err != nil {
		return opts, configError("include-hidden", err)
	}
	if opts.IncludeGroups, err = cast.ToBoolE(cfg.Get("include-groups")); err != nil {
		return opts, configError("include-groups", err)
	}
	if opts.SelectionTolerance, err = cast.ToFloat64E(cfg.Get("selection-tolerance")); err != nil {
		return opts, configError("selection-tolerance", err)
	}
	if opts.BezierTolerance, err = cast.ToFloat64E(cfg.Get("bezier-tolerance")); err != nil {
		return opts, configError("bezier-tolerance", err)
	}
	if opts.MaxIter, err = cast.ToIntE(cfg.Get("max-iter")); err != nil {
		return opts, configError("max-iter", err)
	}
	if opts.Samples, err = cast.ToIntE(cfg.Get("samples")); err != nil {
		return opts, configError("samples", err)
	}
	if opts.Delay, err = durationE(cfg.Get("delay")); err != nil {
		return opts, configError("delay", err)
	}
	if opts.Debug, err = cast.ToBoolE(cfg.Get("debug")); err != nil {
		return opts, configError("debug", err)
	}
	return opts, nil
}

// durationE converts a duration given with a unit, such as "500ms". Bare
// numbers are rejected instead of being read as nanoseconds.
func durationE(v any) (time.Duration, error) {
	switch v := v.(type) {
	case time.Duration:
		return v, nil
	case string:
		return time.ParseDuration(v)
	default:
		return 0, fmt.Errorf("want a duration with a unit such as \"500ms\", got %v", v)
	}
}

func configError(key string, err error) error {
	return fmt.Errorf("%w: %s: %v", pathsel.ErrConfiguration, key, err)
}

func runSelect(ctx context.Context, out io.Writer, log *logrus.Logger, opts pathsel.Options, path string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	doc, err := scene.Load(path)
	if err != nil {
		return err
	}
	in, err := doc.Input()
	if err != nil {
		return err
	}
	entry := log.WithField("reference", doc.Reference.ID)
	res, err := pathsel.NewSelector(opts, entry).Select(ctx, in)
	if err != nil {
		return err
	}

	if opts.Debug {
		_, err := fmt.Fprintln(out, strings.Join(res.Final, ","))
		return err
	}

	host, err := dialHost(ctx, entry)
	if err != nil {
		return err
	}
	defer host.Close()
	return host.Apply(ctx, res.Final, opts.Delay)
}
