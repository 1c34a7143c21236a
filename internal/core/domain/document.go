package domain

import "time"

// IDField is the identity field every stored document carries.
const IDField = "_id"

// Fields is the stored form of a document: field name to value.
type Fields = map[string]any

// Episode locates one simulated trading iteration. Daily snapshots are
// indexed by all three values, episode metadata by Loop and Episode only.
type Episode struct {
	// Date is the trading day of the snapshot.
	Date time.Time

	// Loop is the outer iteration index.
	Loop int

	// Episode is the sub-episode index within the loop.
	Episode int
}

// DateString returns the date rendered as a key segment.
func (e Episode) DateString() string {
	return e.Date.Format(DateLayout)
}

// ID returns the "{loop}_{episode}" identifier used inside episode payloads.
func (e Episode) ID() string {
	key, _ := EncodeKey(e.Loop, e.Episode)
	return key
}

// Document is one seeded record: its key, the shared context fields and the
// generator payload.
type Document struct {
	// ID is the document key within its collection.
	ID string

	// Collection is where the document is written.
	Collection Collection

	// Context holds the shared date/loop/episode fields when applicable.
	Context Fields

	// Payload is the generator output.
	Payload Fields
}

// Fields flattens the document into its stored representation. Context
// fields are written before the payload, and the identity field last so
// that neither can override it.
func (d Document) Fields() Fields {
	out := make(Fields, len(d.Context)+len(d.Payload)+1)
	for k, v := range d.Context {
		out[k] = v
	}
	for k, v := range d.Payload {
		out[k] = v
	}
	out[IDField] = d.ID
	return out
}

// DailyContext returns the context fields stamped on daily snapshots.
func DailyContext(e Episode) Fields {
	return Fields{
		"date":    e.DateString(),
		"loop":    e.Loop,
		"episode": e.Episode,
	}
}

// EpisodeContext returns the context fields stamped on episode metadata.
func EpisodeContext(e Episode) Fields {
	return Fields{
		"loop":    e.Loop,
		"episode": e.Episode,
	}
}
