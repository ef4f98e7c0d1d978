// Package web embeds the static dashboard UI served at the root path.
package web

import "embed"

// StaticFS embeds static assets (html/css/js).
//
//go:embed static/*
var StaticFS embed.FS
