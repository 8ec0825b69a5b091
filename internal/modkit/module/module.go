// Package module carries the module contract and the process-global ports registry
package module

import (
	phttp "issuehound/internal/platform/net/http"
)

// Module mirrors the modkit contract from a standalone package, so the
// composition root can hold a mixed slice without importing every service
type Module interface {
	MountRoutes(r phttp.Router)
	Ports() any
	Name() string
}
