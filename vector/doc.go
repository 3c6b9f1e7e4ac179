// Package vector turns a page's drawing objects into the deduplicated
// set of accepted polygons the classifier consumes.
//
// The work happens in three stages, matching the pipeline order:
//
//  1. [CollectPrimitives] normalizes drawing objects into typed
//     primitives: filled point paths, closed point paths, rectangles,
//     and the page-wide line network.
//  2. [Reconstructor.Reconstruct] builds candidate polygons from each
//     primitive category, repairing self-intersecting closed paths and
//     polygonizing the line network. Each source carries its own noise
//     floor: filled paths and rectangles at 100 square drawing units,
//     closed paths at 200, line-network faces at 500.
//  3. [FilterDeduplicate] rejects page-relative noise, border frames
//     and slivers, then collapses near-duplicates by a whole-unit
//     bounding-box fingerprint.
//
// Duplicates across stages are expected (a rectangle primitive and its
// outline recovered from the line network are the same shape twice) and
// are resolved only at stage 3, where the earliest source wins and so
// keeps its fill color for classification.
package vector
