package realtime

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/nats-io/nats.go"
)

var (
	natsServer *server.Server
	conn       *nats.Conn
)

// InitRelay starts the embedded NATS server and connects the process to it.
// Browser subscribers attach through the websocket listener; the backend
// publishes over the client connection. Nothing is persisted — the relay only
// exists for live UI refresh hints.
func InitRelay() error {
	port := envInt("NATS_PORT", 4222)
	wsPort := envInt("NATS_WS_PORT", 8222)

	opts := &server.Options{
		Port: port,
		Websocket: server.WebsocketOpts{
			Port:  wsPort,
			NoTLS: true,
		},
	}

	ns, err := server.NewServer(opts)
	if err != nil {
		return fmt.Errorf("failed to create NATS server: %w", err)
	}

	go ns.Start()
	if !ns.ReadyForConnections(10 * time.Second) {
		return fmt.Errorf("NATS server not ready for connections")
	}
	natsServer = ns

	nc, err := nats.Connect(fmt.Sprintf("nats://localhost:%d", port),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
		nats.ErrorHandler(func(_ *nats.Conn, _ *nats.Subscription, err error) {
			log.Printf("NATS error: %v", err)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to embedded NATS: %w", err)
	}
	conn = nc

	log.Printf("✅ Notification relay started (nats :%d, ws :%d)", port, wsPort)
	return nil
}

// ConnectExternal attaches the relay to an already-running NATS server instead
// of embedding one. Used by tests.
func ConnectExternal(url string) error {
	nc, err := nats.Connect(url)
	if err != nil {
		return err
	}
	conn = nc
	return nil
}

func Shutdown() {
	if conn != nil {
		conn.Close()
		conn = nil
	}
	if natsServer != nil {
		natsServer.Shutdown()
		natsServer = nil
	}
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
