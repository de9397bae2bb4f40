// Package cli provides the command-line interfaces for the iconkit tools.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	imgloader "github.com/jmylchreest/iconkit/internal/image"
	"github.com/jmylchreest/iconkit/internal/logging"
	"github.com/jmylchreest/iconkit/internal/util/imagecache"
	"github.com/jmylchreest/iconkit/internal/version"
)

// commonFlags are shared by both tools.
type commonFlags struct {
	verbose  bool
	quiet    bool
	strict   bool
	cache    bool
	cacheDir string
}

// register adds the shared flags to cmd.
func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&f.quiet, "quiet", "q", false, "suppress log output")
	cmd.PersistentFlags().BoolVar(&f.strict, "strict", false, "exit with a non-zero status when processing fails")
	cmd.PersistentFlags().BoolVar(&f.cache, "cache", false, "keep images downloaded from URLs in a local cache")
	cmd.PersistentFlags().StringVar(&f.cacheDir, "cache-dir", "", "cache directory for downloaded images (default: user cache dir)")
}

// loader returns the image loader for the tool. URL inputs go through the
// download cache when --cache or --cache-dir is given.
func (f *commonFlags) loader() *imgloader.SmartLoader {
	if !f.cache && f.cacheDir == "" {
		return imgloader.NewSmartLoader()
	}
	return imgloader.NewCachingSmartLoader(imagecache.CacheOptions{CacheDir: f.cacheDir})
}

// logger returns the tool logger writing to the command's stderr.
func (f *commonFlags) logger(cmd *cobra.Command, name string) hclog.Logger {
	return logging.New(name, cmd.ErrOrStderr(), logging.Options{
		Verbose: f.verbose,
		Quiet:   f.quiet,
	})
}

// fail reports err as the tool's single error line. The error is swallowed
// unless strict mode asks for it to reach the process exit status.
func (f *commonFlags) fail(w io.Writer, err error) error {
	fmt.Fprintf(w, "Error: %v\n", err)
	if f.strict {
		return reportedError{err: err}
	}
	return nil
}

// reportedError marks an error that has already been written for the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// Run executes cmd and returns the process exit status. Usage and
// configuration errors are written to stderr; processing errors have
// already been reported by the command itself.
func Run(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return 0
	}
	var reported reportedError
	if !errors.As(err, &reported) {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	return 1
}

// envKey returns the environment variable that can default a flag,
// e.g. prefix "CIRCLEFAVICON" and flag "ico" give CIRCLEFAVICON_ICO.
func envKey(prefix, flagName string) string {
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

// applyEnvDefaults sets every flag not given on the command line from its
// environment variable, if present. The help and version flags are actions,
// not settings, and are never read from the environment.
func applyEnvDefaults(fs *pflag.FlagSet, prefix string) error {
	var firstErr error
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed || firstErr != nil || f.Name == "help" || f.Name == "version" {
			return
		}
		value, ok := os.LookupEnv(envKey(prefix, f.Name))
		if !ok {
			return
		}
		if err := fs.Set(f.Name, value); err != nil {
			firstErr = fmt.Errorf("invalid value %q for %s: %w", value, envKey(prefix, f.Name), err)
		}
	})
	return firstErr
}

// newRootCmd builds the base command shared by both tools.
func newRootCmd(name, short, long string, flags *commonFlags) *cobra.Command {
	envPrefix := strings.ToUpper(name)
	cmd := &cobra.Command{
		Use:           name,
		Short:         short,
		Long:          long,
		Version:       version.Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnvDefaults(cmd.Flags(), envPrefix); err != nil {
				return err
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.SetVersionTemplate(version.String(name) + "\n")
	cmd.AddCommand(newVersionCmd(name))

	return cmd
}

// newVersionCmd prints detailed version information.
func newVersionCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String(name))
		},
	}
}
