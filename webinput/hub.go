// This file is part of Inputrelay.
//
// Inputrelay is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Inputrelay is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Inputrelay.  If not, see <https://www.gnu.org/licenses/>.

package webinput

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/jetsetilly/inputrelay/curated"
	"github.com/jetsetilly/inputrelay/joysticks"
	"github.com/jetsetilly/inputrelay/logger"
	"github.com/jetsetilly/inputrelay/userinput"
)

// FirstDevice is the device ID given to the first remote gamepad. IDs for
// later gamepads count upwards from here. The value is chosen so that it
// doesn't clash with the instance IDs used by local platforms.
const FirstDevice userinput.DeviceID = 0x10000

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Hub accepts websocket connections from remote gamepads and pushes their
// input to the event queue.
type Hub struct {
	crit    sync.Mutex
	queue   *userinput.Queue
	clients map[*client]bool
	nextID  userinput.DeviceID
	closed  bool
}

// NewHub is the preferred method of initialisation for the Hub type.
func NewHub(q *userinput.Queue) *Hub {
	return &Hub{
		queue:   q,
		clients: make(map[*client]bool),
		nextID:  FirstDevice,
	}
}

// ServeHTTP implements the http.Handler interface. The connection is
// upgraded to a websocket and serviced until it is closed.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Logf(logger.Allow, "webinput", "upgrade: %v", err)
		return
	}

	h.crit.Lock()
	if h.closed {
		h.crit.Unlock()
		_ = conn.Close()
		return
	}
	c := &client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 16),
		addr: r.RemoteAddr,
	}
	h.clients[c] = true
	h.crit.Unlock()

	logger.Logf(logger.Allow, "webinput", "connection from %s", c.addr)

	go c.writePump()
	c.readPump()
}

// Devices implements the joysticks.Enumerator interface. Only connections
// that have sent a hello message are listed, in order of device ID.
func (h *Hub) Devices() ([]joysticks.Device, error) {
	h.crit.Lock()
	defer h.crit.Unlock()

	var devs []joysticks.Device
	for c := range h.clients {
		if c.ready {
			devs = append(devs, c.dev)
		}
	}
	slices.SortFunc(devs, func(a, b joysticks.Device) int {
		return int(a.Instance - b.Instance)
	})
	return devs, nil
}

// register gives the client a device ID and announces the new device.
func (h *Hub) register(c *client, dev joysticks.Device) userinput.DeviceID {
	h.crit.Lock()
	dev.Instance = h.nextID
	h.nextID++
	c.dev = dev
	c.ready = true
	h.crit.Unlock()

	logger.Logf(logger.Allow, "webinput", "%s is device %d: %s", c.addr, dev.Instance, dev)
	h.queue.Push(userinput.Event{Kind: userinput.KindDeviceAdded, Device: dev.Instance})
	return dev.Instance
}

func (h *Hub) unregister(c *client) {
	h.crit.Lock()
	_, ok := h.clients[c]
	delete(h.clients, c)
	ready := c.ready
	h.crit.Unlock()

	if !ok {
		return
	}

	logger.Logf(logger.Allow, "webinput", "%s disconnected", c.addr)
	if ready {
		h.queue.Push(userinput.Event{Kind: userinput.KindDeviceRemoved, Device: c.dev.Instance})
	}
}

// Close all connections. No new connections are accepted after Close().
func (h *Hub) Close() {
	h.crit.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.crit.Unlock()

	for _, c := range clients {
		_ = c.conn.Close()
	}
}

// ListenAndServe serves the hub on the address until the context is
// cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		h.Close()
		_ = srv.Close()
	}()

	logger.Logf(logger.Allow, "webinput", "listening on %s", addr)

	err := srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return curated.Errorf("webinput: %v", err)
}

type client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
	addr string

	// dev and ready are guarded by the hub's critical section
	dev   joysticks.Device
	ready bool
}

func (c *client) readPump() {
	defer func() {
		c.hub.unregister(c)
		close(c.send)
		_ = c.conn.Close()
	}()

	for {
		_, b, err := c.conn.ReadMessage()
		if err != nil {
			// connection closed
			return
		}

		msg, err := validMessage(b)
		if err != nil {
			c.reply(errorReply(err))
			continue
		}

		c.hub.crit.Lock()
		ready := c.ready
		dev := c.dev
		c.hub.crit.Unlock()

		if msg.Get("type").String() == "hello" {
			if ready {
				c.reply(errorReply(curated.Errorf(MessageError, "device already described")))
				continue
			}
			dev, err := parseHello(msg)
			if err != nil {
				c.reply(errorReply(err))
				continue
			}
			c.reply(welcomeReply(c.hub.register(c, dev)))
			continue
		}

		if !ready {
			c.reply(errorReply(curated.Errorf(MessageError, "hello expected")))
			continue
		}

		ev, err := parseInput(dev, msg)
		if err != nil {
			c.reply(errorReply(err))
			continue
		}
		c.hub.queue.Push(ev)
	}
}

// reply is dropped if the client isn't keeping up.
func (c *client) reply(b []byte) {
	select {
	case c.send <- b:
	default:
		logger.Logf(logger.Allow, "webinput", "%s: reply dropped", c.addr)
	}
}

func (c *client) writePump() {
	for b := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, b); err != nil {
			logger.Logf(logger.Allow, "webinput", "%s: %v", c.addr, err)
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
