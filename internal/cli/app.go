package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aalvaropc/numutil/internal/domain"
	"github.com/aalvaropc/numutil/internal/infra/calculators"
	"github.com/aalvaropc/numutil/internal/infra/config"
	"github.com/aalvaropc/numutil/internal/infra/evalstore"
	"github.com/aalvaropc/numutil/internal/infra/logger"
	"github.com/aalvaropc/numutil/internal/ports"
	"github.com/aalvaropc/numutil/internal/usecase"
)

type appCtx struct {
	// root anchors relative store/log paths: the config file's directory,
	// or the working directory when no config exists.
	root    string
	cfgPath string
	cfg     domain.Config

	calc   ports.Calculator
	logger *slog.Logger
}

// loadApp wires config, logging and the calculator. With discover set, a
// numutil.yaml found upward from the working directory is used when --config
// is empty; otherwise only an explicit --config is read.
func loadApp(gf *globalFlags, discover bool) (*appCtx, func() error, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("get working directory: %w", err)
	}

	var (
		cfg     domain.Config
		cfgPath string
	)
	if p := strings.TrimSpace(gf.config); p != "" {
		cfgPath, err = filepath.Abs(p)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid config path: %w", err)
		}
		cfg, err = config.Load(cfgPath)
	} else if discover {
		cfg, cfgPath, err = config.Discover(wd)
	} else {
		cfg = domain.DefaultConfig()
	}
	if err != nil {
		return nil, nil, err
	}

	root := wd
	if cfgPath != "" {
		root = filepath.Dir(cfgPath)
	}

	logDir := cfg.Logging.Dir
	if logDir != "" && !filepath.IsAbs(logDir) {
		logDir = filepath.Join(root, logDir)
	}
	if strings.TrimSpace(gf.logDir) != "" {
		logDir = gf.logDir
	}

	cleanup, err := logger.Setup(logger.Config{
		Dir:   logDir,
		Debug: gf.debug || cfg.Logging.Debug,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	l := logger.L()
	l.Debug("config.loaded", "path", cfgPath, "root", root, "log", logger.Path())

	return &appCtx{
		root:    root,
		cfgPath: cfgPath,
		cfg:     cfg,
		calc:    calculators.New(),
		logger:  l,
	}, cleanup, nil
}

func (a *appCtx) store() *evalstore.JSONStore {
	return evalstore.NewJSONStore(a.root, a.cfg.Store)
}

// evaluate builds the use case; a nil store disables saving.
func (a *appCtx) evaluate(store ports.EvaluationStore) *usecase.Evaluate {
	return usecase.NewEvaluate(a.calc, store, usecase.WithLogger(a.logger))
}

func (a *appCtx) tabulate(workers int) *usecase.Tabulate {
	if workers <= 0 {
		workers = a.cfg.Table.Workers
	}
	return usecase.NewTabulate(a.calc,
		usecase.WithLogger(a.logger),
		usecase.WithWorkers(workers),
	)
}

func (a *appCtx) verify() *usecase.Verify {
	return usecase.NewVerify(a.calc, usecase.WithLogger(a.logger))
}

func parseN(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &domain.OpError{
			Op:   "cli.parse",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("%s must be an integer, got %q: %w", name, s, domain.ErrInvalidArgument),
		}
	}
	return n, nil
}
