// Package manifest defines the fixed file manifest for the shorts-agents
// project skeleton: the ordered source-to-destination copies, the generated
// package-init files, the dependency list written to requirements.txt, and
// the executable entry point. An optional YAML overlay can append entries.
package manifest
