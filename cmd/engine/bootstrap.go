package main

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"leadscout-engine/internal/config"
	"leadscout-engine/internal/events"
	"leadscout-engine/internal/job"
	"leadscout-engine/internal/logging"
	"leadscout-engine/internal/scraper"
	"leadscout-engine/internal/store"
)

// searchListsFile is an optional sidecar next to the config that overrides
// the keyword/company lists when present.
const searchListsFile = "search_lists.yml"

type engine struct {
	log         *zap.Logger
	cfgVal      *atomic.Value // stores config.Config
	userCfgPath string
	loadCfg     func() (config.Config, error)
	db          *store.DB
}

// bootstrap prepares everything both commands share: logger, data dir,
// user config, and the run-history database.
func bootstrap() (*engine, error) {
	log, err := logging.New(flagDebug)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(flagDataDir, 0o755); err != nil {
		return nil, eris.Wrapf(err, "create data dir %s", flagDataDir)
	}

	userCfgPath, err := config.EnsureUserConfig(flagDataDir)
	if err != nil {
		return nil, eris.Wrap(err, "config bootstrap")
	}

	loadCfg := func() (config.Config, error) {
		cfg, err := config.Load(userCfgPath)
		if err != nil {
			return cfg, eris.Wrapf(err, "load config %s", userCfgPath)
		}
		if cfg.App.DataDir == "" || cfg.App.DataDir == "." {
			cfg.App.DataDir = flagDataDir
		}
		if err := config.OverlaySearchLists(&cfg, filepath.Join(flagDataDir, searchListsFile)); err != nil {
			return cfg, eris.Wrap(err, "load search lists")
		}
		return cfg, nil
	}

	cfg, err := loadCfg()
	if err != nil {
		return nil, err
	}
	var cfgVal atomic.Value
	cfgVal.Store(cfg)

	db, err := store.Open(filepath.Join(flagDataDir, "leadscout.db"))
	if err != nil {
		return nil, eris.Wrap(err, "open run store")
	}

	return &engine{
		log:         log,
		cfgVal:      &cfgVal,
		userCfgPath: userCfgPath,
		loadCfg:     loadCfg,
		db:          db,
	}, nil
}

func (e *engine) config() config.Config {
	return e.cfgVal.Load().(config.Config)
}

func (e *engine) controller(hub *events.Hub) *job.Controller {
	return job.NewController(job.Options{
		Config: e.config,
		NewSearcher: func(cfg config.Config) (scraper.Searcher, error) {
			return scraper.NewBrowser(scraper.OptionsFromConfig(cfg), e.log)
		},
		Store: e.db,
		Hub:   hub,
		Log:   e.log,
	})
}

func (e *engine) close() {
	if e.db != nil {
		_ = e.db.Close()
	}
	_ = e.log.Sync()
}
