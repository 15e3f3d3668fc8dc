// Package kurashi provides the domain logic of a small household
// life-management toolkit: tracking observed shop prices, comparing them
// on a per-unit basis, and answering "where was this cheapest" questions.
//
// The core functionalities include:
//   - Unit Price Normalization: converting a raw price entry (price,
//     quantity, volume) into a comparable per-unit cost, with strict
//     validation before anything is persisted.
//   - Best-Price Ranking: grouping historical price records by item and
//     producing, per item, the three cheapest distinct shops, plus a live
//     "best price so far" lookup used while a new entry is being typed.
//   - Two-Item Comparison: a stateless calculator that reports which of
//     two ad hoc products is cheaper per unit and by how much.
//   - Data Persistence helpers: encoding and decoding price records to and
//     from a human-readable JSONL stream.
//
// All computations are pure and synchronous: they take an immutable
// snapshot of the record list and return a new value, so they are safe to
// call from concurrent readers without coordination. Retrieval and storage
// of records live in the store package; this package never performs I/O.
//
// This package serves as the foundational logic for the `kcs` command-line
// tool and the kurashi API server.
package kurashi
