package main

import (
	_ "embed"
	"strings"
)

// Message constants for command help text
const (
	MsgRootShort = "Stage the shorts-agents project skeleton"
	MsgRootLong  = `shortstage assembles the shorts-agents project skeleton from a flat
checkout: it creates the target directory tree, copies each known source
file to its place, writes the generated requirements.txt, and marks the
entry point executable.`

	MsgStageShort = "Stage the project skeleton into the target root"
	MsgStageLong  = `Stage creates the project root with its agents and utils directories,
copies every manifest file in order, writes requirements.txt, and marks
main.py executable. The run stops at the first error; a missing source
file is reported with its path and nothing after it is staged.`

	MsgStatusShort = "Report the state of a staged project tree"
	MsgStatusLong  = `Status compares every staged destination against what a fresh run would
produce and reports each one as staged, modified, or missing.`

	MsgGuideShort = "Show the quickstart guide"
)

// Embedded message files
var (
	//go:embed usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw) + "\n"
)
