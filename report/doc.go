// Package report renders scan and validation results for people and tools.
//
// A [Report] groups per-file [Annotation] and [Diagnostic] records, built
// from the annotation and diagnostic packages with [NewFile]. A [Renderer]
// writes a report as colored text, JSON, or YAML. Text output shows
// 1-indexed "file:line" positions; the structured formats keep the 0-indexed
// line fields unchanged. [Schema] describes the structured documents.
package report
