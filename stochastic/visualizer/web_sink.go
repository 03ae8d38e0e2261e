// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package visualizer

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/0xsoniclabs/distlab/logger"
	"github.com/0xsoniclabs/distlab/stochastic"
	"github.com/cockroachdb/errors"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	eventsPath      = "/events"
	framePath       = "/frame"
	metricsPath     = "/metrics"
	shutdownTimeout = 5 * time.Second
)

// ErrNotBuilt is returned when a frame is pushed to a sink before Build.
var ErrNotBuilt = errors.New("display sink has not been built")

// changeEvent is one slider change waiting for the display loop.
type changeEvent struct {
	Values map[string]float64 `json:"values"`
	reply  chan error
}

// message is pushed to the browser after a frame changed or a change was handled.
type message struct {
	Frame *Frame `json:"frame,omitempty"`
	Error string `json:"error,omitempty"`
	Reply bool   `json:"reply,omitempty"`
}

type client struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *client) send(msg message) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(msg)
}

// WebSinkOption configures a web sink.
type WebSinkOption func(*WebSink)

// WithGatherer exposes the metrics of g on /metrics.
func WithGatherer(g prometheus.Gatherer) WebSinkOption {
	return func(s *WebSink) {
		s.gatherer = g
	}
}

// WebSink renders the view as an HTML page. Slider changes of all connected
// browsers are funneled into a single channel, so the handler never runs
// concurrently.
type WebSink struct {
	addr     string
	log      logger.Logger
	gatherer prometheus.Gatherer
	upgrader websocket.Upgrader
	events   chan changeEvent
	done     chan struct{}
	doneOnce sync.Once

	mu       sync.RWMutex
	built    bool
	layout   Layout
	frame    Frame
	clients  map[*client]struct{}
	listener net.Listener
}

// NewWebSink creates a sink serving on addr.
func NewWebSink(addr string, log logger.Logger, opts ...WebSinkOption) *WebSink {
	s := &WebSink{
		addr:    addr,
		log:     log,
		events:  make(chan changeEvent),
		done:    make(chan struct{}),
		clients: make(map[*client]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build stores the layout and the first frame.
func (s *WebSink) Build(layout Layout, frame Frame) error {
	var buf bytes.Buffer
	if err := renderPage(&buf, layout, frame); err != nil {
		return errors.Wrap(err, "cannot render page")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.layout = layout
	s.frame = frame
	s.built = true
	return nil
}

// Update replaces the displayed frame and pushes it to all connected browsers.
func (s *WebSink) Update(frame Frame) error {
	s.mu.Lock()
	if !s.built {
		s.mu.Unlock()
		return ErrNotBuilt
	}
	s.frame = frame
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.send(message{Frame: &frame}); err != nil {
			s.log.Warningf("cannot push frame to %v: %v", c.conn.RemoteAddr(), err)
		}
	}
	return nil
}

// Listen binds the listening socket. It is called by Run if not done before.
func (s *WebSink) Listen() (net.Addr, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener != nil {
		return s.listener.Addr(), nil
	}
	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot listen on %v", s.addr)
	}
	s.listener = l
	return l.Addr(), nil
}

// Handler returns the HTTP routes of the sink.
func (s *WebSink) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.renderIndex)
	mux.HandleFunc(framePath, s.renderFrame)
	mux.HandleFunc(eventsPath, s.serveEvents)
	if s.gatherer != nil {
		mux.Handle(metricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}
	return mux
}

// Run serves the page and calls handler for every slider change until ctx is done.
func (s *WebSink) Run(ctx context.Context, handler Handler) error {
	if handler == nil {
		return stochastic.InvalidArgumentf("display loop requires a handler")
	}
	if _, err := s.Listen(); err != nil {
		return err
	}
	defer s.doneOnce.Do(func() { close(s.done) })

	server := &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 10 * time.Second}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(s.listener)
	}()
	s.log.Noticef("serving distribution view on http://%v", s.listener.Addr())

	for {
		select {
		case <-ctx.Done():
			s.log.Info("shutting down display")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			s.closeClients()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return errors.Wrap(err, "cannot shut down display server")
			}
			return nil
		case err := <-serveErr:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return errors.Wrap(err, "display server failed")
		case ev := <-s.events:
			ev.reply <- handler(ev.Values)
		}
	}
}

func (s *WebSink) snapshot() (Layout, Frame, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.layout, s.frame, s.built
}

// renderIndex renders the page with the latest frame.
func (s *WebSink) renderIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	layout, frame, built := s.snapshot()
	if !built {
		http.Error(w, ErrNotBuilt.Error(), http.StatusServiceUnavailable)
		return
	}
	var buf bytes.Buffer
	if err := renderPage(&buf, layout, frame); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// renderFrame returns the latest frame as JSON.
func (s *WebSink) renderFrame(w http.ResponseWriter, r *http.Request) {
	_, frame, built := s.snapshot()
	if !built {
		http.Error(w, ErrNotBuilt.Error(), http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(frame); err != nil {
		s.log.Errorf("cannot encode frame: %v", err)
	}
}

// serveEvents reads slider changes of one browser and queues them for the display loop.
func (s *WebSink) serveEvents(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warningf("cannot upgrade connection: %v", err)
		return
	}
	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	frame, built := s.frame, s.built
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		_ = conn.Close()
	}()

	if built {
		if err := c.send(message{Frame: &frame}); err != nil {
			return
		}
	}

	for {
		var ev changeEvent
		if err := conn.ReadJSON(&ev); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Debugf("event connection closed: %v", err)
			}
			return
		}
		ev.reply = make(chan error, 1)
		select {
		case s.events <- ev:
		case <-s.done:
			return
		case <-r.Context().Done():
			return
		}

		var res error
		select {
		case res = <-ev.reply:
		case <-s.done:
			return
		}
		reply := message{Reply: true}
		if res != nil {
			reply.Error = res.Error()
		}
		if err := c.send(reply); err != nil {
			return
		}
	}
}

func (s *WebSink) closeClients() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		c.mu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutdown"),
			time.Now().Add(time.Second))
		c.mu.Unlock()
	}
}
