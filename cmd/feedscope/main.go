package main

import (
	"github.com/bwmarrin/snowflake"
	"github.com/smallbiznis/feedscope/internal/audit"
	"github.com/smallbiznis/feedscope/internal/config"
	"github.com/smallbiznis/feedscope/internal/migration"
	"github.com/smallbiznis/feedscope/internal/observability"
	"github.com/smallbiznis/feedscope/internal/server"
	"github.com/smallbiznis/feedscope/pkg/db"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		config.Module,
		observability.Module,
		fx.Provide(RegisterSnowflake),
		db.Module,
		migration.Module,

		audit.Module,

		fx.Provide(server.NewEngine),
		fx.Provide(server.NewServer),
		fx.Invoke(func(s *server.Server) {
			s.RegisterAPIRoutes()
		}),
		fx.Invoke(server.RunHTTP),
	)
	app.Run()
}

func RegisterSnowflake() *snowflake.Node {
	node, err := snowflake.NewNode(1)
	if err != nil {
		panic(err)
	}
	return node
}
