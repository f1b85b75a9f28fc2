package api

import "embed"

//go:embed static/dashboard.html
var dashboardFS embed.FS
