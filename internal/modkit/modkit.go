package modkit

import (
	phttp "issuehound/internal/platform/net/http"
)

// Module is what a service package hands back to the composition root.
// Kept to three methods so modules only couple through the router seam
// and the ports registry
type Module interface {
	// MountRoutes attaches the module's endpoints under its prefix
	MountRoutes(r phttp.Router)

	// Ports exposes the module's cross-module surface, nil when it has none
	Ports() any

	// Name identifies the module in logs and the ports registry
	Name() string
}
