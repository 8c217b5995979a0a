package vote

import (
	"log/slog"

	"capstone-showcase/internal/global/logger"
)

var log *slog.Logger

type ModuleVote struct{}

func (*ModuleVote) GetName() string {
	return "Vote"
}

func (*ModuleVote) Init() {
	log = logger.New("Vote")
}
