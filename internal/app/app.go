package app

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/templui/studytracker"
	"github.com/templui/studytracker/internal/config"
	"github.com/templui/studytracker/internal/metrics"
	"github.com/templui/studytracker/internal/repository"
	"github.com/templui/studytracker/internal/service"
	"github.com/templui/studytracker/internal/store"
	"github.com/templui/studytracker/internal/view"
)

type App struct {
	Cfg                 *config.Config
	Store               store.KV
	Metrics             *metrics.Metrics
	Hub                 *view.Hub
	SubjectService      *service.SubjectService
	PreferenceService   *service.PreferenceService
	ExportService       *service.ExportService
	HelpService         *service.HelpService
	NotificationService *service.NotificationService
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	kv, err := store.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}
	slog.Info("store opened", "driver", kv.Driver())

	content, err := helpContent(cfg.ContentPath)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	// Stores
	records := store.NewRecordStore(kv)
	preferences := store.NewPreferenceStore(kv)

	// Repositories
	subjectRepository := repository.NewSubjectRepository(records)

	m := metrics.New()
	hub := view.NewHub()

	// Services
	notificationService := service.NewNotificationService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.NotifyEmail,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	subjectService := service.NewSubjectService(subjectRepository, hub, notificationService, m)
	preferenceService := service.NewPreferenceService(preferences)
	exportService := service.NewExportService(subjectService)
	helpService := service.NewHelpService(content)

	return &App{
		Cfg:                 cfg,
		Store:               kv,
		Metrics:             m,
		Hub:                 hub,
		SubjectService:      subjectService,
		PreferenceService:   preferenceService,
		ExportService:       exportService,
		HelpService:         helpService,
		NotificationService: notificationService,
	}, nil
}

// helpContent serves CONTENT_PATH when set, the embedded pages otherwise.
func helpContent(path string) (fs.FS, error) {
	if path != "" {
		return os.DirFS(path), nil
	}
	content, err := fs.Sub(studytracker.ContentFS, "content")
	if err != nil {
		return nil, fmt.Errorf("failed to open embedded content: %w", err)
	}
	return content, nil
}

func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
