// Package graphics interprets content stream operations into drawing
// objects and page text.
//
// The interpreter maintains the PDF graphics state (CTM, stroke and
// fill colors, the q/Q stack), assembles path construction operators
// into subpaths, and emits one [model.DrawingObject] per painting
// operator. Points are transformed to device space as they are added,
// and curve operators contribute their control and end points joined by
// straight lines, the pipeline's polyline approximation, with no
// curvature subdivision.
//
// Text showing operators are accumulated into a single plain string per
// page. The interpreter does not consult font encodings: UTF-16BE
// strings (BOM-prefixed) are decoded properly, everything else is taken
// as Latin-1 bytes. That is sufficient for the scale notes and title
// blocks the pipeline reads; it is not a general text extractor. Form
// XObjects are not expanded, so geometry painted inside them is not
// seen; CAD exporters emit plan linework directly in the page stream.
package graphics
