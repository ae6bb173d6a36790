package segmap

import "errors"

// ErrSourceUnreadable reports that the input document could not be opened or
// parsed by the source adapter. It is fatal for the document but batch
// drivers are expected to report it and continue with the next file.
var ErrSourceUnreadable = errors.New("source document unreadable")

// ErrNoSegments reports that extraction finished without recognizing a
// single segment. A soft failure: nothing should be written for the
// document, but the batch goes on.
var ErrNoSegments = errors.New("no segments found")
