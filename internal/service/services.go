package service

import (
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
)

type Services struct {
	AuthService    AuthService
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, cfg.Limits, logger),
		NoteService:    NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
