// Package explain renders numtheory results as the narrative text shown to
// users. Numbers are printed with digit grouping (1,000,000).
//
// The engine never depends on this package; any caller that only needs the
// numbers can skip it.
package explain
