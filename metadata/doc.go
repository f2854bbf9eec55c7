// Package metadata carries the side-channel facts of a generated fixture:
// the replay tuple, size counters, selector usage and element ids.
//
// Three encodings are provided:
//
//   - Envelope: {"tags": {...}, "data": "..."} JSON, one per line, for
//     downstream tools that want the markup and its facts together;
//   - CSVWriter: one row per fixture with a header fixed by the first row,
//     for spreadsheets and plotting;
//   - Corpus: a msgpack stream of complete entries (record + markup + CSS),
//     the compact on-disk form of a batch.
package metadata
