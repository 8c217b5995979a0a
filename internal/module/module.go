package module

import (
	"capstone-showcase/internal/module/admin"
	"capstone-showcase/internal/module/feedback"
	"capstone-showcase/internal/module/ping"
	"capstone-showcase/internal/module/project"
	"capstone-showcase/internal/module/stats"
	"capstone-showcase/internal/module/team"
	"capstone-showcase/internal/module/upload"
	"capstone-showcase/internal/module/user"
	"capstone-showcase/internal/module/vote"

	"github.com/gin-gonic/gin"
)

type Module interface {
	GetName() string
	Init()
	InitRouter(r *gin.RouterGroup)
}

var Modules []Module

func registerModule(m []Module) {
	Modules = append(Modules, m...)
}

func init() {
	// Register your module here
	registerModule([]Module{
		&ping.ModulePing{},
		&user.ModuleUser{},
		&team.ModuleTeam{},
		&project.ModuleProject{},
		&feedback.ModuleFeedback{},
		&vote.ModuleVote{},
		&upload.ModuleUpload{},
		&stats.ModuleStats{},
		&admin.ModuleAdmin{},
	})
}
