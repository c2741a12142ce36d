// Package flightdata supplies raw flight offers to the routing engine. It has
// a live client for the Amadeus self-service API, a deterministic mock
// generator, and a fallback source that hides upstream failures behind the
// mock so searches always complete.
package flightdata
