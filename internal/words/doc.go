// Package words holds the word set model and the reconciliation between a
// previous set and freshly tokenized file content.
package words
