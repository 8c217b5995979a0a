package admin

import (
	"log/slog"

	"capstone-showcase/internal/global/logger"
)

var log *slog.Logger

type ModuleAdmin struct{}

func (a *ModuleAdmin) GetName() string {
	return "Admin"
}

func (a *ModuleAdmin) Init() {
	log = logger.New("Admin")
}
