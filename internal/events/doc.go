// Package events provides the publish-on-mutate observer abstraction the
// learning engines expose their state through. The engines emit an event
// after every completed mutation; UI layers (or the HTTP server's push
// channel) register handlers to redraw from fresh snapshots. The core does
// not depend on any reactive framework; a plain handler list suffices.
package events
