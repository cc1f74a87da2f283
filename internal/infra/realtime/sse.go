package realtime

import (
	"encoding/json"
	"io"
	"iter"
	"net/http"

	"knect/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/tmaxmax/go-sse"
)

// ContentTypeEventStream is the media type of a Server-Sent Events response.
const ContentTypeEventStream = "text/event-stream"

// Stream writes connection changes to a client over Server-Sent Events.
type Stream struct {
	session *sse.Session
}

// Upgrade turns the response into an event stream. Nothing is written until the first send.
func Upgrade(w http.ResponseWriter, r *http.Request) (*Stream, error) {
	w.Header().Set("X-Accel-Buffering", "no")
	session, err := sse.Upgrade(w, r)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &Stream{session: session}, nil
}

// Comment sends a comment frame, used as a keep-alive.
func (s *Stream) Comment(text string) error {
	msg := &sse.Message{}
	msg.AppendComment(text)

	return s.send(msg)
}

// Send encodes change as JSON and sends it tagged with its id and type.
func (s *Stream) Send(change entity.ConnectionChange) error {
	data, err := json.Marshal(change)
	if err != nil {
		return errors.Wrap(err, "encode change")
	}

	msg := &sse.Message{Type: sse.Type(string(change.Type))}
	if change.ID != "" {
		id, err := sse.NewID(change.ID)
		if err != nil {
			return errors.Wrapf(err, "change id %q", change.ID)
		}
		msg.ID = id
	}
	msg.AppendData(string(data))

	return s.send(msg)
}

func (s *Stream) send(msg *sse.Message) error {
	if err := s.session.Send(msg); err != nil {
		return errors.WithStack(err)
	}

	return errors.WithStack(s.session.Flush())
}

// Changes decodes the change events read from r. Events whose payload is not a change are
// yielded with an error and the sequence continues; a read failure ends it.
func Changes(r io.Reader) iter.Seq2[entity.ConnectionChange, error] {
	return func(yield func(entity.ConnectionChange, error) bool) {
		for event, err := range sse.Read(r, nil) {
			if err != nil {
				yield(entity.ConnectionChange{}, errors.WithStack(err))

				return
			}

			var change entity.ConnectionChange
			if err := json.Unmarshal([]byte(event.Data), &change); err != nil {
				if !yield(change, &MalformedEventError{ID: event.LastEventID, Err: err}) {
					return
				}

				continue
			}
			if !yield(change, nil) {
				return
			}
		}
	}
}

// MalformedEventError reports an event whose data is not a connection change.
type MalformedEventError struct {
	ID  string
	Err error
}

func (e *MalformedEventError) Error() string {
	return "malformed change event " + e.ID + ": " + e.Err.Error()
}

func (e *MalformedEventError) Unwrap() error {
	return e.Err
}
