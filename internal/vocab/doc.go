// Package vocab holds the flashcard data model and the pure logic around it:
// parsing model replies into items, normalizing fronts for duplicate
// detection, merging top-up batches into an existing list, and tracking the
// flashcard cursor.
package vocab
