// Package job provides background job processing using Asynq.
//
// Asynq is a Redis-backed job queue. Tasks are enqueued with
// asynq.Client and executed by the handlers registered in Start.
package job

import (
	"github.com/alpereneser/connectlist-sub003/internal/config"
	"github.com/alpereneser/connectlist-sub003/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// JobService holds the Asynq client (enqueue) and server (workers).
type JobService struct {
	Client *asynq.Client
	server *asynq.Server
	logger *zerolog.Logger

	emailClient *email.Client
}

// NewJobService creates a JobService configured to use Redis from cfg.
//
// Queue weights give "critical" tasks the largest share of the 10 workers.
func NewJobService(logger *zerolog.Logger, cfg *config.Config) *JobService {
	redisOpt := asynq.RedisClientOpt{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}

	client := asynq.NewClient(redisOpt)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"critical": 6,
				"default":  3,
				"low":      1,
			},
		},
	)

	return &JobService{
		Client: client,
		server: server,
		logger: logger,
	}
}

// InitHandlers sets the dependencies used by task handlers. It must run
// before Start.
func (j *JobService) InitHandlers(emailClient *email.Client) {
	j.emailClient = emailClient
}

// Start registers task handlers and starts the worker server.
func (j *JobService) Start() error {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskNotificationEmail, j.handleNotificationEmailTask)

	j.logger.Info().Msg("starting background job server")
	if err := j.server.Start(mux); err != nil {
		return err
	}

	return nil
}

// Stop waits for running tasks and closes the enqueue client.
func (j *JobService) Stop() {
	j.logger.Info().Msg("stopping background job server")
	j.server.Shutdown()
	if err := j.Client.Close(); err != nil {
		j.logger.Error().Err(err).Msg("failed to close job client")
	}
}
