package jobs

import (
	"log"

	"github.com/hibiken/asynq"

	"github.com/growupanand/convoform/src/database"
)

// RunWorker starts the Asynq server processing background tasks. It blocks, so
// run it in its own goroutine.
func RunWorker() {
	if database.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker disabled.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeAbandonConversation, HandleAbandonConversationTask)
	mux.HandleFunc(TypeNotifyCompleted, HandleNotifyCompletedTask)

	log.Println("✅ Background worker started")
	if err := srv.Run(mux); err != nil {
		log.Fatal("❌ Background worker failed:", err)
	}
}
