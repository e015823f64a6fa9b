// internal/net/client.go
package net

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/galcock/Ractr/internal/component"
)

const (
	writeWait      = 5 * time.Second
	redialInterval = 3.0 // секунды игрового времени между попытками
	sendQueueSize  = 16
)

// message — кадр уведомления, уходящий на сервер статистики.
type message struct {
	Type     string                   `msgpack:"type"`
	Player   component.PlayerSnapshot `msgpack:"player"`
	Survival float64                  `msgpack:"survival,omitempty"`
}

// Client шлёт уведомления о вехах забега по WebSocket. Все сетевые ошибки
// гасятся на границе: в симуляцию они не просачиваются, переподключение
// идёт по счётчику игрового времени.
type Client struct {
	url       string
	sendCh    chan message
	closeCh   chan struct{}
	closeOnce sync.Once
	connected atomic.Bool
	dialing   atomic.Bool
	redialIn  float64
}

func NewClient(url string) *Client {
	c := &Client{
		url:     url,
		sendCh:  make(chan message, sendQueueSize),
		closeCh: make(chan struct{}),
	}
	c.dial()
	return c
}

func (c *Client) RunStarted(player component.PlayerSnapshot) {
	c.enqueue(message{Type: "run_started", Player: player})
}

func (c *Client) RunEnded(player component.PlayerSnapshot, survival float64) {
	c.enqueue(message{Type: "run_ended", Player: player, Survival: survival})
}

func (c *Client) LevelUp(player component.PlayerSnapshot) {
	c.enqueue(message{Type: "level_up", Player: player})
}

// Update тикает счётчик переподключения. Это не настоящий таймер:
// счётчик переоценивается каждый тик, дрейф стенного времени не важен.
func (c *Client) Update(dt float64) {
	if c.connected.Load() || c.dialing.Load() {
		return
	}
	c.redialIn -= dt
	if c.redialIn <= 0 {
		c.redialIn = redialInterval
		c.dial()
	}
}

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.closeCh)
	})
}

// enqueue кладёт уведомление в очередь; при полной очереди кадр молча
// выбрасывается — симуляция никогда не блокируется на сети.
func (c *Client) enqueue(msg message) {
	select {
	case c.sendCh <- msg:
	default:
	}
}

// dial устанавливает соединение в фоне; вызывающий тик не ждёт.
func (c *Client) dial() {
	if !c.dialing.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.dialing.Store(false)
		conn, _, err := websocket.DefaultDialer.Dial(c.url, nil)
		if err != nil {
			log.Printf("stats connect failed: %v", err)
			return
		}
		c.connected.Store(true)
		go c.writePump(conn)
		go c.readPump(conn)
	}()
}

func (c *Client) writePump(conn *websocket.Conn) {
	defer func() {
		c.connected.Store(false)
		_ = conn.Close()
	}()
	for {
		select {
		case msg := <-c.sendCh:
			data, err := msgpack.Marshal(&msg)
			if err != nil {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
				log.Printf("stats send failed: %v", err)
				return
			}
		case <-c.closeCh:
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		}
	}
}

// readPump вычитывает и отбрасывает входящие кадры: сервер ничего
// осмысленного не присылает, но control-сообщения обрабатывать надо.
// Обрыв чтения закрывает сокет: следующая запись проваливается сразу,
// writePump снимает флаг подключения, и счётчик переподключения
// берёт своё. Флаг здесь не трогаем — им владеет writePump.
func (c *Client) readPump(conn *websocket.Conn) {
	conn.SetReadLimit(1 << 16)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			_ = conn.Close()
			return
		}
	}
}
