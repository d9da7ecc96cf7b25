package studytracker

import "embed"

// ContentFS holds the markdown pages served under /help.
//
//go:embed content
var ContentFS embed.FS
