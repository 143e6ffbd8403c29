package jobs

import (
	"log"

	"github.com/hibiken/asynq"
)

// StartWorker runs the asynq server on the given Redis address. Called from
// main in its own goroutine; blocks until the process exits.
func StartWorker(redisURI string) {
	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: redisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeNotifyLead, HandleNotifyLeadTask)

	if err := srv.Run(mux); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}
