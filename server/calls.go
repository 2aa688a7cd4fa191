package server

import (
	"net/http"
	"net/url"
)

// Call describes one request/response pair handled by the server.
type Call struct {
	// ID uniquely identifies the call.
	ID string

	URL    *url.URL
	Method string
	Status int

	RequestHeader http.Header
	RequestBody   []byte

	ResponseHeader http.Header
	ResponseBody   []byte
}

type callWatcher struct {
	fn    func(Call)
	paths []string
}

func newCallWatcher(fn func(Call), paths ...string) callWatcher {
	return callWatcher{
		fn:    fn,
		paths: paths,
	}
}

// isWatching reports whether the watcher wants calls for the given path. A
// watcher registered without paths watches everything.
func (w callWatcher) isWatching(path string) bool {
	if len(w.paths) == 0 {
		return true
	}

	for _, p := range w.paths {
		if p == path {
			return true
		}
	}

	return false
}

func (w callWatcher) publish(call Call) {
	w.fn(call)
}
