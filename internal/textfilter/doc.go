// Package textfilter reduces text lines to a fixed character whitelist.
//
// The whitelist covers the common CJK ideograph block (U+4E00–U+9FA5), ASCII
// letters and digits, Unicode whitespace and a fixed set of Latin and CJK
// punctuation marks. FilterLine is the single-line contract: drop every rune
// outside the whitelist, trim surrounding whitespace and suppress lines that
// end up empty. Lines, Filter and FilterOrdered lift that contract over a
// decoded input stream while keeping output order equal to input order.
//
// The whitelist is fixed at compile time. Callers that need a different
// character set should build their own transformer rather than extend this
// one.
package textfilter
