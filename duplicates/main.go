package main

import (
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/brequin/brequin/audit/frames"
	"github.com/brequin/brequin/audit/report"
	"github.com/brequin/brequin/audit/requirements"
)

const defaultFile = "degreeworks.html"

// version is set at build time via ldflags.
var version = "dev"

func loadConfig(config *viper.Viper, configFile string) error {
	if configFile != "" {
		config.SetConfigFile(configFile)
	} else {
		config.SetConfigName("degreeworks")
		config.SetConfigType("yaml")
		config.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			config.AddConfigPath(filepath.Join(home, ".config", "degreeworks"))
		}
	}

	config.SetEnvPrefix("DEGREEWORKS")
	config.AutomaticEnv()

	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}
	log.Print("Using config file: ", config.ConfigFileUsed())
	return nil
}

func run(out io.Writer, file string, minimum int, quiet bool, verbose bool) error {
	resolver := frames.Resolver{}
	if verbose {
		resolver.Logf = log.Printf
	}

	document, err := resolver.Resolve(file)
	if err != nil {
		return err
	}

	index, registry := requirements.Extract(document)
	if verbose {
		log.Printf("found %v courses, %v with descriptions", len(index), len(registry))
	}

	return report.Print(out, index, registry, minimum, quiet)
}

func newRootCommand() *cobra.Command {
	config := viper.New()
	var configFile string

	command := &cobra.Command{
		Use:   "duplicates [file]",
		Short: "Parses Ellucian Degree Works to find courses that satisfy requirements",
		Long: `duplicates reads a locally saved copy of Degree Works and lists the courses
that satisfy at least --reqs requirements at once, along with the requirements
each of them satisfies.

Range and wildcard course numbers in the audit ("300:399", "1@9") are counted
toward every listed course they cover.`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(config, configFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			file := config.GetString("file")
			if len(args) == 1 {
				file = args[0]
			}
			return run(cmd.OutOrStdout(), file, config.GetInt("reqs"), config.GetBool("quiet"), config.GetBool("verbose"))
		},
	}

	flags := command.Flags()
	flags.BoolP("quiet", "q", false, "show course codes only")
	flags.IntP("reqs", "r", report.DefaultMinimum, "minimum number of requirements to satisfy")
	flags.BoolP("verbose", "v", false, "log the frames followed and the number of courses found")
	flags.StringVar(&configFile, "config", "", "config file (default: ./degreeworks.yaml or ~/.config/degreeworks/degreeworks.yaml)")

	for _, key := range []string{"quiet", "reqs", "verbose"} {
		if err := config.BindPFlag(key, flags.Lookup(key)); err != nil {
			log.Fatal(err)
		}
	}
	config.SetDefault("file", defaultFile)

	return command
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("duplicates: ")

	if err := newRootCommand().Execute(); err != nil {
		log.Fatal(err)
	}
}
