package main

import (
	"context"
	"io"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/loader"
)

type streamEvent struct {
	name string
	data any
}

// streamView is the loader view for one SSE client. Its methods run on the
// request's loop goroutine and hand events to the HTTP goroutine.
type streamView struct {
	ctx     context.Context
	events  chan<- streamEvent
	percent int
}

func newStreamView(ctx context.Context, events chan<- streamEvent) *streamView {
	return &streamView{ctx: ctx, events: events, percent: -1}
}

func (v *streamView) send(name string, data any) {
	select {
	case v.events <- streamEvent{name: name, data: data}:
	case <-v.ctx.Done():
	}
}

// SetPercent forwards the displayed percent, dropping frames where it did
// not change.
func (v *streamView) SetPercent(p int) {
	if p == v.percent {
		return
	}
	v.percent = p
	v.send("percent", loader.FormatPercent(p))
}

func (v *streamView) Hide() {
	v.send("hidden", gin.H{})
}

func (v *streamView) stage(ev loader.StageEvent) {
	v.send("stage", gin.H{
		"index":  ev.Index,
		"id":     ev.Stage.ID,
		"label":  ev.Label,
		"target": ev.Target,
	})
}

func (v *streamView) finish() {
	v.send("finished", gin.H{})
}

func (v *streamView) complete() {
	v.send("complete", gin.H{})
}

// loaderStream plays the loading sequence for one client as server-sent
// events. Each request gets its own loop, stopped when the client leaves.
func (s *server) loaderStream(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	events := make(chan streamEvent, 8)
	view := newStreamView(ctx, events)
	loop := loader.NewLoop(s.frame)

	loop.Post(func() {
		_, err := loader.Run(loop, loader.View{Percent: view, Screen: view}, s.stages, s.labels, view.complete,
			loader.WithSettleDelay(s.settle),
			loader.WithStageHook(view.stage),
			loader.WithFinishHook(view.finish),
		)
		if err != nil {
			log.Printf("Loader stream failed to start: %v", err)
			cancel()
		}
	})
	go func() {
		_ = loop.Run(ctx)
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	gone := c.Stream(func(w io.Writer) bool {
		select {
		case ev := <-events:
			c.SSEvent(ev.name, ev.data)
			return ev.name != "complete"
		case <-ctx.Done():
			return false
		}
	})
	if gone {
		log.Printf("Loader stream client %s disconnected", c.ClientIP())
	}
}
