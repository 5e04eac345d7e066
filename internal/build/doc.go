// Package build is the top-level conversion driver. It enumerates event
// folders under the input root, runs the event processor and the output
// writer for each of them and aggregates the outcomes into a Report.
//
// Events are processed one at a time and share nothing but the read-only
// run configuration. A failing event is recorded and the run moves on; the
// run as a whole fails when any event failed.
package build
