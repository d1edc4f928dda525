package root

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wandb/wandb/stopwatch/cmd/stopwatch/root/config"
	"github.com/wandb/wandb/stopwatch/cmd/stopwatch/root/version"
	"github.com/wandb/wandb/stopwatch/internal/observability"
	"github.com/wandb/wandb/stopwatch/internal/sentry_ext"
	"github.com/wandb/wandb/stopwatch/internal/tui"
	swversion "github.com/wandb/wandb/stopwatch/internal/version"
)

const (
	envPrefix    = "STOPWATCH"
	debugLogFile = "stopwatch.debug.log"
)

// session holds what the commands share once flags are parsed.
type session struct {
	v      *viper.Viper
	fs     afero.Fs
	logger *observability.CoreLogger
	sentry *sentry_ext.Client

	logFile *os.File
}

// NewRootCmd returns the stopwatch command and a cleanup function that must
// be called after it executes.
func NewRootCmd() (*cobra.Command, func()) {
	s := &session{
		v:      viper.New(),
		fs:     afero.NewOsFs(),
		logger: observability.NewNoOpLogger(),
	}

	cmd := &cobra.Command{
		Use:   "stopwatch",
		Short: "A terminal stopwatch with lap splits",
		Long: heredoc.Doc(`
			A full-screen terminal stopwatch.

			Elapsed time is shown as HH:MM:SS.CC. Record laps while running to
			see the split since the previous lap next to the running total.
			Press h inside the stopwatch for all key bindings.
		`),
		Example: heredoc.Doc(`
			# Start the stopwatch
			$ stopwatch

			# Redraw less often on a slow terminal
			$ stopwatch --refresh-interval 50ms

			# Same, through the environment
			$ STOPWATCH_REFRESH_INTERVAL=50ms stopwatch
		`),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.run()
		},
	}

	cmd.PersistentFlags().String("config", "", "Preferences file (default is $STOPWATCH_CONFIG_DIR/stopwatch.json or ~/.config/stopwatch/stopwatch.json)")
	cmd.PersistentFlags().Bool("debug", false, "Write a JSON debug log to "+debugLogFile)
	cmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	cmd.Flags().Duration("refresh-interval", 0, "Redraw period for this session only (default from preferences)")
	cmd.Flags().Bool("no-alt-screen", false, "Draw in the main terminal buffer instead of the alternate screen")

	s.v.SetEnvPrefix(envPrefix)
	s.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	s.v.AutomaticEnv()
	_ = s.v.BindPFlags(cmd.PersistentFlags())
	_ = s.v.BindPFlags(cmd.Flags())

	cmd.AddCommand(
		config.NewConfigCmd(s.configManager),
		version.NewVersionCmd(),
	)

	return cmd, s.close
}

// setup opens the debug log and error reporting.
func (s *session) setup() error {
	if s.v.GetBool("no-color") {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	var writer io.Writer = io.Discard
	if s.v.GetBool("debug") {
		f, err := os.OpenFile(debugLogFile, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		s.logFile = f
		writer = f
	}

	dsn := s.v.GetString("sentry_dsn")
	s.sentry = sentry_ext.New(sentry_ext.Params{
		DSN:              dsn,
		Disabled:         dsn == "",
		AttachStacktrace: true,
		Release:          swversion.Version,
		Environment:      swversion.Environment,
	})

	// The session tag ties debug log lines to Sentry events.
	s.logger = observability.NewJSONLogger(
		writer,
		slog.LevelDebug,
		&observability.CoreLoggerParams{
			Tags:   observability.Tags{"session": uuid.NewString()},
			Sentry: s.sentry,
		},
	)

	return nil
}

func (s *session) close() {
	if s.sentry != nil {
		s.sentry.Flush(2 * time.Second)
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

func (s *session) configPath() tui.ConfigPath {
	return tui.ResolveConfigPath(s.fs, s.v.GetString("config"))
}

func (s *session) configManager() *tui.ConfigManager {
	return tui.NewConfigManager(s.fs, s.configPath(), s.logger)
}

// run starts the stopwatch UI and blocks until it exits.
func (s *session) run() error {
	defer s.logger.Reraise()

	model := tui.InjectModel(s.fs, s.configPath(), s.logger)

	if d := s.v.GetDuration("refresh-interval"); d != 0 {
		if err := model.SetRefreshInterval(d); err != nil {
			return err
		}
	}

	var opts []tea.ProgramOption
	if model.Config().AltScreen() && !s.v.GetBool("no-alt-screen") {
		opts = append(opts, tea.WithAltScreen())
	}

	s.logger.Info(fmt.Sprintf("main: starting stopwatch %s", swversion.Version))
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		s.logger.CaptureError(fmt.Errorf("main: %v", err))
		return err
	}

	return nil
}
