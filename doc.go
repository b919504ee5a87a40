// Package holdings unifies the holdings extracts of several funds (ETFs)
// into a single in-memory relation and answers questions about which
// assets belong to which funds.
//
// The core functionalities include:
//   - Normalization: turning a raw tabular extract, whose columns are named
//     by a [Schema], into canonical [Holding] records, synthesizing missing
//     symbols and parsing textual weights.
//   - Portfolio: merging the normalized batches of every fund in a
//     deterministic, fund-sorted order, and filtering by fund subset.
//   - Aggregation: grouping holdings by asset symbol into [Asset] values,
//     in parallel over a bounded worker pool.
//   - Analysis: the assets, unique, overlap, mapping, summary, compare and
//     list reports, each with its own ordering contract (see [SortOrder]).
//   - Weights: the [Correlation] of fund weights, pair by pair, and the
//     look-through [Exposure] of a weighted combination of funds.
//   - Import/Export: reading CSV and JSON extracts, and writing the
//     portfolio or any report as CSV, JSONL or Parquet.
//
// This package serves as the foundational logic for the `etfa` command-line
// tool. Every run is a batch computation over fully loaded extracts.
package holdings
