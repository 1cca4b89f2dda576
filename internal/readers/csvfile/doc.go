// Package csvfile reads product CSV files into a domain Dataset.
//
// It owns everything between raw bytes and validated records: the
// UTF-8/CP1251 decoding policy, header schema validation, per-row
// field validation and brand normalisation. Aggregation and
// presentation live elsewhere.
package csvfile
