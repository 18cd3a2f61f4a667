package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Reserved watermill metadata carrying Message.Topic and Message.Key.
const (
	headerKey   = "avatarkit.key"
	headerTopic = "avatarkit.topic"
)

const defaultBuffer = 64

// WatermillBridge is the in-process bus behind Publisher and Subscriber,
// backed by watermill's GoChannel.
type WatermillBridge struct {
	channel *gochannel.GoChannel
	logger  *slog.Logger
}

// BridgeOption configures a WatermillBridge.
type BridgeOption func(*bridgeOptions)

type bridgeOptions struct {
	buffer int64
	logger *slog.Logger
}

// WithBuffer sets how many undelivered messages each subscriber may queue.
func WithBuffer(n int64) BridgeOption {
	return func(o *bridgeOptions) { o.buffer = n }
}

// WithBridgeLogger routes both bridge and watermill logs to l.
func WithBridgeLogger(l *slog.Logger) BridgeOption {
	return func(o *bridgeOptions) { o.logger = l }
}

// NewWatermillBridge starts an in-memory bus.
func NewWatermillBridge(opts ...BridgeOption) *WatermillBridge {
	o := bridgeOptions{buffer: defaultBuffer}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return &WatermillBridge{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: o.buffer},
			slogAdapter{o.logger.With("component", "pubsub")},
		),
		logger: o.logger,
	}
}

func encode(msg Message) *message.Message {
	out := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		out.Metadata.Set(k, v)
	}
	out.Metadata.Set(headerKey, msg.Key)
	out.Metadata.Set(headerTopic, msg.Topic)
	return out
}

func decode(in *message.Message) Message {
	msg := Message{
		Topic:   in.Metadata.Get(headerTopic),
		Key:     in.Metadata.Get(headerKey),
		Payload: in.Payload,
	}
	for k, v := range in.Metadata {
		if k == headerKey || k == headerTopic {
			continue
		}
		if msg.Metadata == nil {
			msg.Metadata = make(map[string]string)
		}
		msg.Metadata[k] = v
	}
	return msg
}

// Publish implements the Publisher interface.
func (b *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	return b.channel.Publish(msg.Topic, encode(msg))
}

// Subscribe implements the Subscriber interface. Handler errors are logged
// and the message is still acked: GoChannel would otherwise redeliver it
// forever.
func (b *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	deliveries, err := b.channel.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go func() {
		for in := range deliveries {
			msg := decode(in)
			if err := handler(ctx, msg); err != nil {
				b.logger.Error("Event handler failed", "topic", topic, "key", msg.Key, "msg_id", in.UUID, "error", err)
			}
			in.Ack()
		}
		b.logger.Debug("Subscription closed", "topic", topic)
	}()

	return nil
}

// Close stops delivery to every subscriber.
func (b *WatermillBridge) Close() error {
	return b.channel.Close()
}

// slogAdapter lets watermill log through slog.
type slogAdapter struct {
	l *slog.Logger
}

func fieldArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}

func (a slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.l.Error(msg, append(fieldArgs(fields), "error", err)...)
}

func (a slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.l.Info(msg, fieldArgs(fields)...)
}

func (a slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.l.Debug(msg, fieldArgs(fields)...)
}

// Trace is folded into debug; slog has no lower level.
func (a slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.l.Debug(msg, fieldArgs(fields)...)
}

func (a slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return slogAdapter{a.l.With(fieldArgs(fields)...)}
}
