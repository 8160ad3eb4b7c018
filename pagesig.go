// Package pagesig extracts structural and semantic signals from web
// documents (word count, sections, author, outbound links, keyword
// relevancy) and aggregates them across a batch of URLs into a weighted
// composite score per document and per domain.
//
// This package contains domain types, interfaces, and pure scoring
// functions following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, http/, rod/).
package pagesig
