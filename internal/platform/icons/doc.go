// Package icons renders the application launcher icon.
//
// The icon is a book glyph designed on a 48-unit grid: a blue body with a
// darker outline, a dark spine along the left edge and three white page
// lines. Every target size scales the reference design by size/48 and
// rounds down, so the glyph keeps its proportions across Android density
// buckets without any anti-aliasing.
package icons
