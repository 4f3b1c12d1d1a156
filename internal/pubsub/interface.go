package pubsub

// PubSubClient publishes and decodes MessagePack-encoded events.
type PubSubClient interface {
	SendMessage(topic EventType, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
