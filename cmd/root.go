package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/spf13/cobra"

	"github.com/drksci/resumepdf/internal/adapters/filesystem"
	"github.com/drksci/resumepdf/internal/assets"
	"github.com/drksci/resumepdf/internal/core/domain"
	"github.com/drksci/resumepdf/internal/core/services"
	"github.com/drksci/resumepdf/pkg/config"
	"github.com/drksci/resumepdf/pkg/logging"
	"github.com/drksci/resumepdf/pkg/site"
	"github.com/drksci/resumepdf/pkg/ui"
)

var (
	appConfig *config.Config
	appSite   *site.Site
	logger    *slog.Logger

	// Services
	emitService   *services.EmitService
	verifyService *services.VerifyService

	// newSite resolves the publish target; replaced in tests
	newSite = site.New
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "resumepdf",
	Short: "Write the résumé PDF into the landing site",
	Long: ui.StyleTitle.Render("resumepdf") + " - Résumé PDF emitter\n\n" +
		"Writes the embedded one-page résumé to public/" + site.ResumeFilename + ",\n" +
		"replacing any existing copy.",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
	RunE:              runEmit,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	appConfig = loadConfig(cmd)

	ui.SetTheme(appConfig.ColorTheme)
	logger = logging.New(cmd.ErrOrStderr(), appConfig.LogLevel)

	appSite = newSite()

	sink := filesystem.NewFileSink()
	emitService = services.NewEmitService(sink)
	verifyService = services.NewVerifyService(sink)

	return nil
}

// loadConfig reads the optional config file. Config only affects
// presentation, so any problem falls back to defaults with a warning.
func loadConfig(cmd *cobra.Command) *config.Config {
	path, err := config.DefaultPath()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatWarning("Using default config: "+err.Error()))
		return config.DefaultConfig()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatWarning("Using default config: "+err.Error()))
		return config.DefaultConfig()
	}
	return cfg
}

// getContext returns a context carrying the configured logger
func getContext() context.Context {
	return ctxlog.With(context.Background(), logger)
}

// resumePayload returns the embedded document
func resumePayload() domain.Payload {
	return domain.NewPayload(assets.ResumePDF)
}

// resumeDestination returns where the document is written
func resumeDestination() domain.Destination {
	path := appSite.ResumePath()
	return domain.Destination{
		Path:     path,
		Fragment: appSite.Fragment(path),
	}
}
