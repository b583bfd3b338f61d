// Package cleaner runs the whitelist filter over a whole file.
//
// Run streams the input through the textfilter pipeline and writes the
// surviving lines, newline terminated, to a sibling file named by OutputPath.
// Output is assembled in a temporary file next to the destination and renamed
// into place only after every line has been written and synced, so a failed
// run never leaves a partial output file behind. A "<output>.lock" file is
// held with flock for the duration of the run so two concurrent runs on the
// same input cannot race on the shared output path.
package cleaner
