package queue

import "wanderbook/pkg/images"

// Queue serializes image-generation calls so a burst of per-page requests
// does not trip provider rate limits.
type Queue interface {
	Start()
	Stop()
	Add(req images.Request) (chan []byte, chan error, error)
}
