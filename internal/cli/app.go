package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"skilltest/internal/app"
	"skilltest/internal/auth"
	"skilltest/internal/bank"
	"skilltest/internal/config"
	"skilltest/internal/logging"
	"skilltest/internal/quiz"
	"skilltest/internal/store"
	"skilltest/internal/tui"
)

func runApp(configPath, storeFlag, bankFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logPath, err := cfg.LogPath()
	if err != nil {
		return err
	}
	log, err := logging.New(logPath)
	if err != nil {
		return err
	}
	defer log.Sync()

	recordStore, err := openStore(cfg, storeFlag, log)
	if err != nil {
		return err
	}
	if err := recordStore.EnsureInitialized(); err != nil {
		return fmt.Errorf("initialize record store: %w", err)
	}

	var loader bank.Loader = bank.NewEmbeddedLoader()
	if path := firstNonEmpty(bankFlag, cfg.Bank.Path); path != "" {
		loader = bank.NewFileLoader(path)
	}
	bankTTL := config.TTLDuration(cfg.Bank.CacheTTL, defaultBankTTL)
	bankRepo := bank.NewRepository(loader, bankTTL)

	manager := auth.NewManager(recordStore, log)
	engine := quiz.NewEngine(bankRepo, recordStore, log)
	controller := app.NewSessionController(manager, recordStore, bankRepo, engine, log)

	log.Info("starting skill test", zap.String("store", recordStore.Path()))
	program := tea.NewProgram(tui.New(controller), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		log.Error("ui exited with error", zap.Error(err))
		return err
	}
	return nil
}

func openStore(cfg config.Config, storeFlag string, log *zap.Logger) (*store.Store, error) {
	path := storeFlag
	if path == "" {
		var err error
		path, err = cfg.StorePath()
		if err != nil {
			return nil, err
		}
	}
	return store.New(path, log), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
