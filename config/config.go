package config

import "github.com/caarlos0/env/v6"

type Config struct {
	Server struct {
		// Port the HTTP server listens on
		Port string `env:"PORT" envDefault:"5000"`

		// Origins allowed to call the API from a browser
		AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	}

	// Model configuration, applied once at startup
	Model struct {
		// Number of synthetic samples the model is trained on
		TrainingSamples int `env:"MODEL_TRAINING_SAMPLES" envDefault:"1000"`

		// Seed for the training data generator and the forest
		Seed int64 `env:"MODEL_SEED" envDefault:"42"`

		Trees    int `env:"MODEL_TREES" envDefault:"100"`
		MaxDepth int `env:"MODEL_MAX_DEPTH" envDefault:"20"`

		// Number of trees built concurrently
		Workers int `env:"MODEL_WORKERS" envDefault:"4"`
	}

	Database struct {
		// SQLite file for valuation history; empty disables persistence
		Path string `env:"DATABASE_PATH" envDefault:""`

		// Default number of rows returned by the history endpoint
		HistoryLimit int `env:"HISTORY_LIMIT" envDefault:"10"`
	}

	// BatchProcessing configuration for valuation history writes
	BatchProcessing struct {
		// Number of pending batches the queue holds before rejecting pushes
		QueueSize int `env:"BATCH_QUEUE_SIZE" envDefault:"100"`

		// Maximum number of retries for failed batches
		MaxRetries int `env:"BATCH_MAX_RETRIES" envDefault:"3"`

		// Delay between retries in milliseconds
		RetryDelay int `env:"BATCH_RETRY_DELAY_MS" envDefault:"500"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
