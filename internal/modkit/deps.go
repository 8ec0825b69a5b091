// Package modkit provides module wiring and core deps
package modkit

import (
	"issuehound/internal/adapters/github"
	"issuehound/internal/core/ratelimit"
	"issuehound/internal/platform/config"
	"issuehound/internal/platform/logger"
	"issuehound/internal/platform/store/kv"
)

// Deps holds the shared dependencies every module receives at mount time
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log  logger.Logger
	Cfg  config.Conf
	KV   kv.Store
	GH   *github.Client
	Gate *ratelimit.Gate
}
