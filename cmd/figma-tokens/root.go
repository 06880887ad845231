package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	figmatokens "github.com/kataras/figma-tokens"
	"github.com/kataras/figma-tokens/pkg/figma"
	"github.com/kataras/figma-tokens/pkg/formatter"
)

const (
	configName = "figma-tokens"
	envPrefix  = "FIGMA_TOKENS"
)

// app carries the configuration shared by all commands.
type app struct {
	v       *viper.Viper
	cfgFile string
	out     io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), out: os.Stdout}

	rootCmd := &cobra.Command{
		Use:   "figma-tokens",
		Short: "Pull design tokens from a Figma file",
		Long: `Pull design tokens (colors, spacing, fonts and line heights) from the first
page of a Figma file and write them as a tokens.json document for styling tools.

Every top-level frame of the page is a token group; its name picks the category:
Color(s), Spacing(s), Font(s) or LineHeight(s). Other frames are skipped.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		RunE:              a.runPull,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./figma-tokens.yaml or ~/.config/figma-tokens/figma-tokens.yaml)")
	flags.StringP("token", "k", "", "Figma Personal Access Token (env FIGMA_TOKEN)")
	flags.StringP("file", "f", "", "Figma file URL or file key")
	flags.StringP("input", "i", "", "Read an exported document JSON instead of calling the Figma API")
	flags.Bool("rgba", false, "Emit colors as rgba() instead of hex")
	flags.String("format", string(formatter.JSON), "Output format: json, yaml, markdown")
	flags.StringP("output", "o", "", "Output file (default: tokens.json, tokens.yaml or tokens.md)")
	flags.String("api-url", figma.DefaultBaseURL, "Figma REST API root")
	flags.MarkHidden("api-url")

	for _, name := range []string{"token", "file", "input", "rgba", "format", "output", "api-url"} {
		a.v.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(newVersionCmd(), a.newWatchCmd())

	return rootCmd
}

// initConfig layers configuration sources: flags, then the environment
// (including a .env file), then the config file.
func (a *app) initConfig(cmd *cobra.Command, args []string) error {
	a.out = cmd.OutOrStdout()

	_ = godotenv.Load()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(configName)
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			a.v.AddConfigPath(filepath.Join(home, ".config", configName))
		}
	}

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindEnv("token", envPrefix+"_TOKEN", "FIGMA_TOKEN"); err != nil {
		return err
	}

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	} else {
		fmt.Fprintln(cmd.ErrOrStderr(), "Using config file:", a.v.ConfigFileUsed())
	}

	return nil
}

// options resolves the pipeline options and the output path.
func (a *app) options() (figmatokens.Options, string, error) {
	format, err := formatter.ParseFormat(a.v.GetString("format"))
	if err != nil {
		return figmatokens.Options{}, "", err
	}

	output := a.v.GetString("output")
	if output == "" {
		output = format.DefaultOutput()
	}

	opts := figmatokens.Options{
		AccessToken: a.v.GetString("token"),
		File:        a.v.GetString("file"),
		Input:       a.v.GetString("input"),
		UseRGBA:     a.v.GetBool("rgba"),
		Format:      format,
		Logger:      &cliLogger{w: a.out},
	}
	if opts.AccessToken != "" {
		opts.Client = figma.NewClient(opts.AccessToken, figma.WithBaseURL(a.v.GetString("api-url")))
	}

	return opts, output, nil
}

func (a *app) runPull(cmd *cobra.Command, args []string) error {
	cyan := color.New(color.FgCyan)

	cyan.Fprintln(a.out, "\n🎨 Figma Design Tokens")
	cyan.Fprintln(a.out, "======================")
	cyan.Fprintln(a.out)

	opts, output, err := a.options()
	if err != nil {
		return err
	}

	result, err := figmatokens.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	a.printSummary(result)

	if err := a.write(output, result.Output); err != nil {
		return err
	}

	color.New(color.FgGreen).Fprintf(a.out, "\n✨ Successfully extracted design tokens to %s\n\n", output)
	return nil
}

func (a *app) printSummary(result *figmatokens.Result) {
	color.New(color.FgCyan).Fprintln(a.out, "\n📊 Extraction Summary:")
	for _, group := range result.Tokens.Groups() {
		fmt.Fprintf(a.out, "  • %s (%s): %d token(s)\n", group.Name, group.Category, group.Len())
	}
	if len(result.Diagnostics) > 0 {
		fmt.Fprintf(a.out, "  • Skipped or empty groups: %d\n", len(result.Diagnostics))
	}
}

func (a *app) write(path string, data []byte) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	green.Fprintf(a.out, "\n💾 Writing to %s... ", path)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			red.Fprintln(a.out, "✗")
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		red.Fprintln(a.out, "✗")
		return fmt.Errorf("write output: %w", err)
	}
	green.Fprintln(a.out, "✓")

	return nil
}
