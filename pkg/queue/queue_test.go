package queue

import (
	"context"
	"testing"
	"time"
)

var handled = make(chan string, 8)

type echoJob struct {
	Value string `json:"value"`
}

func (j echoJob) Handle() error {
	handled <- j.Value
	return nil
}

func TestMemoryDriverPushPop(t *testing.T) {
	d := NewMemoryDriver()
	if err := d.Push([]byte("payload")); err != nil {
		t.Fatal(err)
	}

	got, err := d.Pop(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "payload" {
		t.Errorf("got %q, want payload", got)
	}
}

func TestMemoryDriverPopRespectsContext(t *testing.T) {
	d := NewMemoryDriver()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if _, err := d.Pop(ctx); err == nil {
		t.Error("expected context error on empty queue")
	}
}

func TestDispatchAndProcess(t *testing.T) {
	Register("queue.echoJob", func() Job { return &echoJob{} })
	SetDriver(NewMemoryDriver())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	StartWorkers(ctx, 1)

	if err := Dispatch(echoJob{Value: "hello"}); err != nil {
		t.Fatal(err)
	}

	select {
	case v := <-handled:
		if v != "hello" {
			t.Errorf("got %q, want hello", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("job was not processed in time")
	}
}

func TestUnregisteredJobIsDropped(t *testing.T) {
	// Must not panic or block.
	defaultManager.process([]byte(`{"type":"queue.unknownJob","payload":{}}`))
}

func TestMalformedEnvelopeIsDropped(t *testing.T) {
	defaultManager.process([]byte(`not json`))
}
