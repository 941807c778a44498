package main

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/russwtaylor/portfolio/internal/typewriter"
)

// typedStream drives one animator per connection and sends every frame as
// a "typed" server-sent event. The animator stops when the client leaves.
func (s *site) typedStream(c *gin.Context) {
	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()
	frames := make(chan string)

	display := typewriter.DisplayFunc(func(text string) {
		select {
		case frames <- text:
		case <-ctx.Done():
		}
	})
	anim, err := typewriter.New(s.content.Phrases,
		typewriter.WithTiming(s.timing),
		typewriter.WithDisplay(display),
	)
	if err != nil {
		log.Printf("Error creating typed text animator: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "typed text unavailable"})
		return
	}
	if err := anim.Start(typewriter.SystemScheduler()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	// Unblock a pending frame before stopping, or Stop waits on it.
	defer func() {
		cancel()
		anim.Stop()
	}()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")
	c.Stream(func(w io.Writer) bool {
		select {
		case text := <-frames:
			c.SSEvent("typed", text)
			return true
		case <-ctx.Done():
			return false
		}
	})
}
