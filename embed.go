package naisite

import "embed"

// EmbeddedAssets contains the client assets shipped with the binary:
// site.js and site.css, served under /public/.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
