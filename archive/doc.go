// Package archive stores encoded vectors in a SQLite catalogue.
//
// Model runs produce families of vectors that analysts revisit long after
// the run: productions by scenario year, attraction balances, growth
// factors. The archive keeps each vector's encoded payload together with
// its oracle names and a content digest, addressable by a generated ID and
// listable by name.
//
// Payloads are stored exactly as Vector.Encode writes them and are digest
// checked on every read, so a corrupted database row fails loudly instead
// of feeding a silently wrong vector back into a model.
package archive
