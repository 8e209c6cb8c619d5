package realtime

import (
	"testing"
	"time"

	"github.com/nats-io/nats-server/v2/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/growupanand/convoform/src/models"
)

func startTestRelay(t *testing.T) {
	t.Helper()

	ns, err := server.NewServer(&server.Options{Port: -1})
	require.NoError(t, err)

	go ns.Start()
	require.True(t, ns.ReadyForConnections(5*time.Second))
	t.Cleanup(ns.Shutdown)

	require.NoError(t, ConnectExternal(ns.ClientURL()))
	t.Cleanup(Shutdown)
}

func TestPublishConversationEvent(t *testing.T) {
	startTestRelay(t)

	event := models.ConversationEvent{
		Type:           models.EventConversationStarted,
		ConversationID: "c1",
		FormID:         "f1",
		OrganizationID: "o1",
		At:             time.Now().UTC(),
	}

	received := make(chan models.ConversationEvent, 1)
	sub, err := SubscribeForm("f1", func(e models.ConversationEvent) {
		received <- e
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	PublishConversationEvent(event)

	select {
	case got := <-received:
		assert.Equal(t, models.EventConversationStarted, got.Type)
		assert.Equal(t, "c1", got.ConversationID)
		assert.Equal(t, "f1", got.FormID)
	case <-time.After(5 * time.Second):
		t.Fatal("event never reached the form room")
	}
}

func TestPublishWithoutConnectionIsDropped(t *testing.T) {
	// no relay connection: must be a silent no-op
	Shutdown()
	PublishConversationEvent(models.ConversationEvent{
		Type:           models.EventConversationStopped,
		ConversationID: "c1",
		FormID:         "f1",
	})
}

func TestSubscribeWithoutConnectionFails(t *testing.T) {
	Shutdown()
	_, err := SubscribeForm("f1", func(models.ConversationEvent) {})
	assert.Error(t, err)
}
