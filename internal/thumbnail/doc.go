package thumbnail

// Package thumbnail loads recipe pictures: a single GET per image, decoded as
// JPEG or PNG and scaled to the display box with nfnt/resize.
