// Package models defines the core domain models for docwiser.
//
// # Models
//
//   - DocType: descriptor that parametrizes a document variant (estimate or
//     transaction statement): field schemas, labels and storage key names
//   - Profile: a user's reusable supplier/recipient data and stamp image
//   - LineItem: one billable row with its derived supply price and tax
//   - Document: an immutable snapshot produced when a document is generated
//
// Users are identified by a plain string key (email-like, never validated).
//
// # Design Principles
//
// 1. **One implementation, many variants**: everything that differs between an
// estimate and a statement lives in a DocType value, never in code paths.
// 2. **Exact numbers**: monetary values are decimals; formatting is a rendering concern.
// 3. **Snapshots by value**: a Document owns copies of the profile maps it was built from.
package models
