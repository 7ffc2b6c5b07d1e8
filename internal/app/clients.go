package app

import (
	"github.com/focusbridge/focusbridge-backend/internal/clients/gcp"
	"github.com/focusbridge/focusbridge-backend/internal/clients/openai"
	"github.com/focusbridge/focusbridge-backend/internal/pkg/logger"
)

type Clients struct {
	OpenAI openai.Client
	Bucket gcp.BucketService
}

func wireClients(log *logger.Logger) (Clients, error) {
	log.Info("Wiring clients...")
	openaiClient, err := openai.NewClient(log)
	if err != nil {
		return Clients{}, err
	}
	// The bucket is optional: without it generated images keep their
	// time-limited generator URLs.
	bucket, err := gcp.NewBucketService(log)
	if err != nil {
		log.Warn("GCS bucket unavailable, visualizer images will not be re-homed", "error", err)
		bucket = nil
	}
	return Clients{
		OpenAI: openaiClient,
		Bucket: bucket,
	}, nil
}
