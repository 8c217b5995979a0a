package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gin-gonic/gin"
)

var (
	VotesCast = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "showcase_votes_cast_total", Help: "Total votes cast"},
	)
	ProjectsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "showcase_projects_created_total", Help: "Total projects submitted"},
	)
	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "showcase_users_registered_total", Help: "Total users registered"},
	)
	AssetsStored = prometheus.NewCounter(
		prometheus.CounterOpts{Name: "showcase_assets_stored_total", Help: "Total uploaded assets stored"},
	)
)

func Init() {
	prometheus.MustRegister(VotesCast, ProjectsCreated, UsersRegistered, AssetsStored)
}

// Handler 暴露 /metrics 端点
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
