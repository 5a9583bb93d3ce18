package gemini

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"

	"wanderbook/pkg/images"
	"wanderbook/pkg/utils"
)

// Generator is the image-producing collaborator, satisfied by
// *images.Client.
type Generator interface {
	Generate(ctx context.Context, req images.Request) ([]byte, error)
}

// Queue runs Gemini image generations one at a time through a single
// worker goroutine.
type Queue struct {
	ctx    context.Context
	client Generator
	items  chan *item
	stop   chan struct{}
}

type item struct {
	request  images.Request
	response chan []byte
	err      chan error
}

func New(ctx context.Context, client Generator) *Queue {
	return &Queue{
		ctx:    ctx,
		client: client,
		items:  make(chan *item, 64),
		stop:   make(chan struct{}),
	}
}

func (q *Queue) Start() {
	go q.processLoop()
}

func (q *Queue) Stop() {
	close(q.stop)
}

// Add enqueues one generation. It never blocks; a full queue is reported
// immediately so the caller can tell the user to retry.
func (q *Queue) Add(req images.Request) (chan []byte, chan error, error) {
	respCh := make(chan []byte, 1)
	errCh := make(chan error, 1)

	select {
	case q.items <- &item{request: req, response: respCh, err: errCh}:
		return respCh, errCh, nil
	default:
		return nil, nil, errors.New("image queue is full")
	}
}

func (q *Queue) processLoop() {
	log.Info("image queue started")
	for {
		select {
		case <-q.stop:
			log.Info("image queue stopped")
			return
		case <-q.ctx.Done():
			return
		case it := <-q.items:
			q.processItem(it)
		}
	}
}

func (q *Queue) processItem(it *item) {
	log.Debug("generating page art", "prompt", utils.LimitStr(it.request.Prompt, 60))

	png, err := q.client.Generate(q.ctx, it.request)
	if err != nil {
		log.Error("page art generation failed", "error", err)
		it.err <- err
		return
	}

	// Exactly one channel ever carries a value. Closing the other would
	// make it ready too and let a consumer select pick it at random.
	it.response <- png
}
