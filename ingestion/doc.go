// Package ingestion provides the pipeline driver for one batch run.
//
// The Pipeline type walks the intake directory once, sequentially:
//   - classify each file by extension and extract its text
//   - embed the text into a vector
//   - build the story record
//   - move the file to the success or failure folder
//
// The per-file decision sequence (ProcessFile) is a pure function of
// the file and the embedder. Run interprets each Outcome: it moves the
// file and performs the single batched table append at the end of the
// run. Per-file failures are isolated and reported in the Summary;
// they never abort the run.
package ingestion
