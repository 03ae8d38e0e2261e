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
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func httpGet(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func readMessage(t *testing.T, conn *websocket.Conn) message {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg message
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestWebSink_UpdateBeforeBuild(t *testing.T) {
	sink := NewWebSink("127.0.0.1:0", newTestLogger())
	assert.True(t, errors.Is(sink.Update(testFrame()), ErrNotBuilt))
}

func TestWebSink_RunRequiresHandler(t *testing.T) {
	sink := NewWebSink("127.0.0.1:0", newTestLogger())
	assert.Error(t, sink.Run(context.Background(), nil))
}

func TestWebSink_ServesPageFrameAndEvents(t *testing.T) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewCounter(prometheus.CounterOpts{Name: "distlab_test_total", Help: "test"}))

	sink := NewWebSink("127.0.0.1:0", newTestLogger(), WithGatherer(registry))
	layout := Layout{Title: "Lab 1", Sliders: []SliderSpec{samplesSlider}}
	require.NoError(t, sink.Build(layout, testFrame()))

	addr, err := sink.Listen()
	require.NoError(t, err)
	base := "http://" + addr.String()

	var handled []map[string]float64
	handler := func(values map[string]float64) error {
		handled = append(handled, values)
		if values["n"] < 0 {
			return errors.New("negative sample count")
		}
		return sink.Update(Frame{Samples: int(values["n"]), Values: values})
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sink.Run(ctx, handler)
	}()

	status, body := httpGet(t, base+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Lab 1")

	status, body = httpGet(t, base+framePath)
	assert.Equal(t, http.StatusOK, status)
	var frame Frame
	require.NoError(t, json.Unmarshal([]byte(body), &frame))
	assert.Equal(t, 10, frame.Samples)

	status, body = httpGet(t, base+metricsPath)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "distlab_test_total")

	status, _ = httpGet(t, base+"/missing")
	assert.Equal(t, http.StatusNotFound, status)

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+addr.String()+eventsPath, nil)
	require.NoError(t, err)
	defer conn.Close()

	initial := readMessage(t, conn)
	require.NotNil(t, initial.Frame)
	assert.Equal(t, 10, initial.Frame.Samples)

	require.NoError(t, conn.WriteJSON(map[string]any{"values": map[string]float64{"n": 20}}))
	pushed := readMessage(t, conn)
	require.NotNil(t, pushed.Frame)
	assert.Equal(t, 20, pushed.Frame.Samples)
	reply := readMessage(t, conn)
	assert.True(t, reply.Reply)
	assert.Empty(t, reply.Error)

	require.NoError(t, conn.WriteJSON(map[string]any{"values": map[string]float64{"n": -1}}))
	reply = readMessage(t, conn)
	assert.True(t, reply.Reply)
	assert.Equal(t, "negative sample count", reply.Error)

	status, body = httpGet(t, base+framePath)
	assert.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal([]byte(body), &frame))
	assert.Equal(t, 20, frame.Samples)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("display loop did not stop")
	}
	assert.Len(t, handled, 2)
}
