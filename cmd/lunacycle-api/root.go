package main

import (
	"os"
	"os/signal"
	"syscall"

	"lunacycle/internal/adapters/gemini"
	"lunacycle/internal/core/version"
	"lunacycle/internal/platform/config"
	"lunacycle/internal/platform/logger"
	phttp "lunacycle/internal/platform/net/http"
	"lunacycle/internal/platform/net/listen"

	"lunacycle/internal/services/api"

	"github.com/spf13/cobra"
)

// DefaultPort is used when neither PORT nor the positional argument name a valid port
const DefaultPort = 8000

var rootCmd = &cobra.Command{
	Use:   "lunacycle-api [port]",
	Short: "LunaCycle - menstrual cycle tracker API",
	Long: `lunacycle-api serves the cycle calculator, the community forum, the chat
assistant and the static site. The port comes from PORT, then the first
argument, then 8000; a taken port makes the server try the next ones.`,
	Args:          cobra.MaximumNArgs(1),
	Version:       version.Info(0).Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	// .env first so LOG_* and friends from the file apply
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	l := logger.Get()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	gemCfg := root.Prefix("GEMINI_")

	if _, ok := gemCfg.Lookup("API_KEY"); !ok {
		l.Fatal().Msg("GEMINI_API_KEY is required for /api/chat")
	}

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}
	port := listen.ResolvePort(DefaultPort, os.Getenv("PORT"), arg)

	srv := phttp.NewServer(apiCfg, port)
	reg := api.Mount(srv.Router(), api.Options{
		Config:        apiCfg,
		Logger:        l,
		Generator:     gemini.NewClient(gemini.FromConfig(gemCfg)),
		EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		Loc:           apiCfg.MayLocation("TZ"),
	})

	l.Info().Strs("modules", reg.Names()).Int("requested_port", port).Msg("api ready")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		l.Error().Err(err).Msg("http server stopped")
		return err
	}
	l.Info().Msg("bye")
	return nil
}

func init() {
	rootCmd.SetVersionTemplate("lunacycle-api {{.Version}}\n")
}
