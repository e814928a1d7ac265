// Package event publishes content lifecycle events to Kafka. Publishing
// is best-effort from the caller's point of view: services log failures
// and never fail the originating operation on them.
package event

import (
	"context"
	"log/slog"

	"github.com/2bleO/CoolStff.com/internal/domain"
	"github.com/2bleO/CoolStff.com/pkg/kafka"
	"github.com/2bleO/CoolStff.com/pkg/logger"
)

const (
	TopicProducts = "marketplace.products"
	TopicArticles = "marketplace.articles"
	TopicComments = "marketplace.comments"

	EventProductCreated = "product.created"
	EventProductUpdated = "product.updated"
	EventProductDeleted = "product.deleted"
	EventArticleCreated = "article.created"
	EventArticleUpdated = "article.updated"
	EventArticleDeleted = "article.deleted"
	EventCommentCreated = "comment.created"

	source = "marketplace-api"
)

// Producer is the topic writer the publisher fans out to. pkg/kafka's
// Producer satisfies it.
type Producer interface {
	Publish(ctx context.Context, event *kafka.Event) error
	Close() error
}

// Publisher emits domain events to their aggregate topics.
type Publisher struct {
	products Producer
	articles Producer
	comments Producer
	logger   *slog.Logger
}

// NewPublisher creates a publisher over the three aggregate topics.
func NewPublisher(brokers []string, log *slog.Logger) *Publisher {
	return &Publisher{
		products: kafka.NewProducer(kafka.DefaultProducerConfig(brokers, TopicProducts), log),
		articles: kafka.NewProducer(kafka.DefaultProducerConfig(brokers, TopicArticles), log),
		comments: kafka.NewProducer(kafka.DefaultProducerConfig(brokers, TopicComments), log),
		logger:   log.With(slog.String("component", "event_publisher")),
	}
}

// NewPublisherWithProducers wires explicit producers, used by tests.
func NewPublisherWithProducers(products, articles, comments Producer, log *slog.Logger) *Publisher {
	return &Publisher{
		products: products,
		articles: articles,
		comments: comments,
		logger:   log.With(slog.String("component", "event_publisher")),
	}
}

func (p *Publisher) ProductCreated(ctx context.Context, product *domain.Product) error {
	return p.publish(ctx, p.products, EventProductCreated, product.ID, "product", product)
}

func (p *Publisher) ProductUpdated(ctx context.Context, product *domain.Product) error {
	return p.publish(ctx, p.products, EventProductUpdated, product.ID, "product", product)
}

func (p *Publisher) ProductDeleted(ctx context.Context, id string) error {
	return p.publish(ctx, p.products, EventProductDeleted, id, "product", map[string]string{"id": id})
}

func (p *Publisher) ArticleCreated(ctx context.Context, article *domain.Article) error {
	return p.publish(ctx, p.articles, EventArticleCreated, article.ID, "article", article)
}

func (p *Publisher) ArticleUpdated(ctx context.Context, article *domain.Article) error {
	return p.publish(ctx, p.articles, EventArticleUpdated, article.ID, "article", article)
}

func (p *Publisher) ArticleDeleted(ctx context.Context, id string) error {
	return p.publish(ctx, p.articles, EventArticleDeleted, id, "article", map[string]string{"id": id})
}

func (p *Publisher) CommentCreated(ctx context.Context, comment *domain.Comment) error {
	return p.publish(ctx, p.comments, EventCommentCreated, comment.ID, "comment", comment)
}

func (p *Publisher) publish(ctx context.Context, producer Producer, eventType, aggregateID, aggregateType string, data any) error {
	evt, err := kafka.NewEvent(eventType, aggregateID, aggregateType, source, data)
	if err != nil {
		return err
	}
	if correlationID := logger.CorrelationIDFromContext(ctx); correlationID != "" {
		evt.WithCorrelationID(correlationID)
	}
	return producer.Publish(ctx, evt)
}

// Close flushes and closes all topic writers.
func (p *Publisher) Close() error {
	var firstErr error
	for _, producer := range []Producer{p.products, p.articles, p.comments} {
		if err := producer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
