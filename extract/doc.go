// Package extract turns the first column of a tabular source into an
// integer sequence.
//
// Rows are visited in source order and only the first column is read. A
// cell is kept when it holds a number; text, booleans, errors, dates and
// empty cells are skipped without failing the extraction.
//
// Fractional values are truncated toward zero, not rounded: 10.9 becomes
// 10 and -10.9 becomes -10. Users who expect rounding are often surprised
// by this. Numbers whose integer part does not fit in an int64 are skipped.
//
// Formats are chosen by file extension:
//
//	.xlsx .xlsm   spreadsheet, first sheet unless extract.sheet is set
//	.csv          comma separated, or extract.delimiter
//	.tsv          tab separated
//
// In spreadsheets the stored cell type decides: a text cell reading "123"
// is text. In CSV and TSV a field is numeric when it parses as a finite
// float.
package extract
