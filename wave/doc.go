// Package wave holds the per-cell superposition grid and its entropy
// bookkeeping: every cell starts as the full set of pattern ids and only
// ever shrinks (Remove) or collapses to a singleton (CollapseTo). The
// solver (package wfc) owns a Wave exclusively for the
// lifetime of one Generate call; nothing in this package reaches across
// cells on its own — that orchestration lives in wfc.
package wave
