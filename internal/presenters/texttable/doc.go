// Package texttable renders report rows as bordered text tables.
// Format names map one-to-one onto lipgloss border styles.
package texttable
