package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/mcirin3/sports-info/internal/models"
)

// PublishGameSnapshots wraps each canonical game in a snapshot envelope and
// writes the batch to the scores topic.
func PublishGameSnapshots(ctx context.Context, writer *kafka.Writer, source string, games []models.Game) error {
	if writer == nil || len(games) == 0 {
		return nil
	}

	captured := time.Now().UTC()
	msgs := make([]kafka.Message, 0, len(games))
	for _, game := range games {
		snapshot := models.NewSnapshot(source, game, captured)
		payload, err := json.Marshal(snapshot)
		if err != nil {
			return fmt.Errorf("marshal snapshot %d: %w", game.ID, err)
		}
		key := fmt.Sprintf("%s-%d-%d", source, game.ID, captured.UnixNano())
		msgs = append(msgs, kafka.Message{Key: []byte(key), Value: payload})
	}
	return writer.WriteMessages(ctx, msgs...)
}

// PublishGameOdds writes normalized best-price selections to the odds topic.
func PublishGameOdds(ctx context.Context, writer *kafka.Writer, odds []models.GameOdds) error {
	if writer == nil || len(odds) == 0 {
		return nil
	}

	msgs := make([]kafka.Message, 0, len(odds))
	for _, o := range odds {
		payload, err := json.Marshal(o)
		if err != nil {
			return fmt.Errorf("marshal odds %d: %w", o.GameID, err)
		}
		msgs = append(msgs, kafka.Message{Key: []byte(fmt.Sprintf("%d", o.GameID)), Value: payload})
	}
	return writer.WriteMessages(ctx, msgs...)
}
