// Package dataprocessing decodes wide-schema spreadsheet tabs into the
// normalized portfolio domain model.
//
// # Architecture
//
// The package is organized into three components:
//
// 1. Sheet: a raw tab with a case-insensitive header index and row lookup
// 2. Decoder: category specs that recognize column families like
// math_test1_max_marks and fold them into typed record groups
// 3. Summary: derivation and aggregation over decoded records (percentages,
// assignment counts, attendance averages, recent-test selection)
//
// # Data Flow
//
// The typical flow through this package:
//
//	Tab values → Sheet → decodeGroups → domain records → Summarize
//
// # Error Handling
//
// Cell-level problems never fail a decode. Unparsable numbers fall back to
// zero, absent satellites to empty strings, and records whose primary cell is
// blank are skipped entirely. The only hard failure in the pipeline is a
// student row missing from the Students tab, which the service layer reports.
package dataprocessing
