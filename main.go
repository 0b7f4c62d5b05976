package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mordilloSan/locale-logger/logger"
)

var (
	levelName  string
	lang       string
	timezone   string
	colorName  string
	localesDir string
	emitLevel  string
)

var rootCmd = &cobra.Command{
	Use:   "locale-logger [key...]",
	Short: "locale-logger - localized console logging demo",
	Long: `locale-logger logs message keys through the localized console logger.

Without arguments it prints a short demo at every level. Flags default to
LOGGER_LEVEL, LOGGER_LANG, LOGGER_TZ and LOGGER_COLOR.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	env, err := logger.ConfigFromEnv()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	f := rootCmd.Flags()
	f.StringVar(&levelName, "level", env.MinLevel.String(), "minimum level (debug, info, warning, error)")
	f.StringVar(&lang, "lang", env.Language, "language code of the locale table")
	f.StringVar(&timezone, "tz", env.Timezone, "IANA timezone for timestamps (default host local time)")
	f.StringVar(&colorName, "color", env.Color.String(), "color output (auto, always, never)")
	f.StringVar(&localesDir, "locales", "", "directory of <lang>.yaml locale tables (default bundled)")
	f.StringVar(&emitLevel, "emit", "info", "level used for keys given as arguments")
}

func run(cmd *cobra.Command, args []string) error {
	level, err := logger.ParseLevel(levelName)
	if err != nil {
		return err
	}
	color, err := logger.ParseColorMode(colorName)
	if err != nil {
		return err
	}

	var opts []logger.Option
	if localesDir != "" {
		c, err := logger.LoadCatalog(os.DirFS(localesDir))
		if err != nil {
			return err
		}
		opts = append(opts, logger.WithTranslator(c))
	}

	cfg := logger.Config{MinLevel: level, Language: lang, Timezone: timezone, Color: color}
	if err := logger.Init(cfg, opts...); err != nil {
		return err
	}

	if len(args) == 0 {
		logger.Debug("config_loaded")
		logger.Info("startup")
		logger.Warning("config_invalid")
		logger.Error("request_server_error")
		logger.Status(200, "request_ok")
		logger.Status(404, "request_client_error")
		logger.Info("no_such_key")
		logger.Info("shutdown")
		return nil
	}

	emit, err := logger.ParseLevel(emitLevel)
	if err != nil {
		return err
	}
	for _, key := range args {
		logger.Log(emit, key)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
