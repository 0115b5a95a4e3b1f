package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"skillsync-client/internal/common/config"
	"skillsync-client/internal/common/logger"
	"skillsync-client/internal/common/observability"
	"skillsync-client/internal/common/validation"
	"skillsync-client/internal/session"
	"skillsync-client/pkg/apiclient"
)

const (
	outputJSON   = "json"
	outputPretty = "pretty"
)

type globalFlags struct {
	configFile  string
	baseURL     string
	logLevel    string
	output      string
	metricsFile string
}

// app carries everything a subcommand needs. Fields that are already set
// when the command runs are kept, which lets tests inject a store or client.
type app struct {
	flags  globalFlags
	cfg    *config.Config
	zap    *zap.Logger
	log    logger.Logger
	obs    *observability.Observability
	store  session.Store
	client *apiclient.Client
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "skillsync",
		Short:         "Command-line client for the SkillSync job-matching backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd.Context())
		},
	}
	addGlobalFlags(root.PersistentFlags(), &a.flags)

	root.AddCommand(
		newRegisterCommand(a),
		newLoginCommand(a),
		newLogoutCommand(a),
		newWhoamiCommand(a),
		newProfileCommand(a),
		newResumeCommand(a),
		newJobsCommand(a),
		newApplicationsCommand(a),
		newFavoritesCommand(a),
		newAdminCommand(a),
	)
	return root
}

func addGlobalFlags(fs *pflag.FlagSet, f *globalFlags) {
	fs.StringVarP(&f.configFile, "config", "c", "", "Path to config file")
	fs.StringVar(&f.baseURL, "base-url", "", "Backend base URL (overrides config)")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVarP(&f.output, "output", "o", outputPretty, "Output format: json or pretty")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "Write request metrics in Prometheus text format to this file on exit")
}

func (a *app) setup(ctx context.Context) error {
	if a.flags.output != outputJSON && a.flags.output != outputPretty {
		return fmt.Errorf("--output must be %q or %q", outputJSON, outputPretty)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if a.cfg == nil {
		var (
			cfg *config.Config
			err error
		)
		if a.flags.configFile != "" {
			cfg, err = config.LoadFromFile(a.flags.configFile)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return err
		}
		a.cfg = cfg
	}
	if a.flags.baseURL != "" {
		a.cfg.API.BaseURL = a.flags.baseURL
	}
	if a.flags.logLevel != "" {
		a.cfg.Logging.Level = a.flags.logLevel
	}

	if a.log == nil {
		a.zap = logger.New(a.cfg.Logging.Level, a.cfg.Logging.Format)
		a.log = logger.NewZapAdapter(a.zap).WithFields(map[string]interface{}{
			"app": a.cfg.App.Name,
		})
	}

	if a.obs == nil {
		obs, err := observability.New(ctx, a.cfg.Tracing)
		if err != nil {
			return err
		}
		a.obs = obs
	}

	if a.store == nil {
		store, err := session.NewStore(ctx, a.cfg.Session, a.log)
		if err != nil {
			return fmt.Errorf("failed to open session store: %w", err)
		}
		a.store = store
	}

	if a.client == nil {
		client, err := apiclient.New(a.cfg.API.BaseURL,
			apiclient.WithTimeout(a.cfg.API.TimeoutDuration()),
			apiclient.WithUserAgent(a.cfg.API.UserAgent),
			apiclient.WithLogger(a.log),
		)
		if err != nil {
			return err
		}
		a.client = client
	}
	return nil
}

func (a *app) teardown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if a.flags.metricsFile != "" {
		if err := prometheus.WriteToTextfile(a.flags.metricsFile, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
	}
	if a.obs != nil {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := a.obs.Shutdown(shutdownCtx); err != nil && a.log != nil {
			a.log.Warn("Tracer shutdown failed", map[string]interface{}{"error": err.Error()})
		}
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil && a.log != nil {
			a.log.Warn("Session store close failed", map[string]interface{}{"error": err.Error()})
		}
	}
	if a.zap != nil {
		_ = a.zap.Sync()
	}
	return nil
}

// token returns the stored bearer token and warns when it has expired.
// An empty string means no one is logged in.
func (a *app) token(ctx context.Context) (string, error) {
	tok, err := session.Token(ctx, a.store)
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", nil
	}
	if claims, err := session.Inspect(tok); err == nil && claims.Expired(time.Now()) {
		a.log.Warn("Stored token has expired; run 'skillsync login' again", map[string]interface{}{
			"subject":    claims.Subject,
			"expired_at": claims.ExpiresAt.Format(time.RFC3339),
		})
	}
	return tok, nil
}

// requireToken is token for operations that cannot run anonymously.
func (a *app) requireToken(ctx context.Context) (string, error) {
	tok, err := a.token(ctx)
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", fmt.Errorf("not logged in; run 'skillsync login' first")
	}
	return tok, nil
}

func (a *app) print(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	if a.flags.output == outputPretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

// readDocument reads a JSON file ("-" for stdin) and checks it against schema.
func readDocument(cmd *cobra.Command, path, schema string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	result, err := validation.ValidateDocument(schema, data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("%s", result.Error())
	}
	return data, nil
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: must be an integer", what, arg)
	}
	return id, nil
}
